package glyph

import (
	"image"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Bitmap scales a tinyfont bitmap font with nearest-neighbour sampling.
//
// The font's line advance is treated as its em size, so a Bitmap at size 48
// is roughly as tall as an OpenType face at size 48. Edges stay blocky.
type Bitmap struct {
	font tinyfont.Fonter
}

func NewBitmap(f tinyfont.Fonter) *Bitmap { return &Bitmap{font: f} }

// Proggy returns the tiny proggy font used on the device terminal.
func Proggy() *Bitmap { return NewBitmap(&proggy.TinySZ8pt7b) }

// native returns unscaled metrics in font pixels.
func (b *Bitmap) native(text string) (w, ascent, descent int) {
	_, outbox := tinyfont.LineWidth(b.font, text)
	w = int(outbox)
	for _, r := range text {
		info := b.font.GetGlyph(r).Info()
		if a := -int(info.YOffset); a > ascent {
			ascent = a
		}
		if d := int(info.Height) + int(info.YOffset); d > descent {
			descent = d
		}
	}
	return w, ascent, descent
}

func (b *Bitmap) scale(size float64) float64 {
	em := float64(b.font.GetYAdvance())
	if em <= 0 {
		return 0
	}
	return size / em
}

func (b *Bitmap) Measure(text string, size float64) (Metrics, bool) {
	if b == nil || b.font == nil {
		return Metrics{}, false
	}
	s := b.scale(size)
	w, asc, desc := b.native(text)
	if s <= 0 || w <= 0 {
		return Metrics{}, false
	}
	return Metrics{
		Width:   float64(w) * s,
		Ascent:  float64(asc) * s,
		Descent: float64(desc) * s,
	}, true
}

func (b *Bitmap) Draw(dst *image.Alpha, text string, size float64, x, y float64) {
	if b == nil || b.font == nil || dst == nil {
		return
	}
	s := b.scale(size)
	w, asc, desc := b.native(text)
	if s <= 0 || w <= 0 || asc+desc <= 0 {
		return
	}

	src := newAlphaDisplayer(w, asc+desc)
	tinyfont.WriteLine(src, b.font, 0, int16(asc), text, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	top := y - float64(asc)*s
	bounds := dst.Bounds()
	x0 := max(bounds.Min.X, int(math.Floor(x)))
	y0 := max(bounds.Min.Y, int(math.Floor(top)))
	x1 := min(bounds.Max.X, int(math.Ceil(x+float64(w)*s)))
	y1 := min(bounds.Max.Y, int(math.Ceil(top+float64(asc+desc)*s)))
	for py := y0; py < y1; py++ {
		sy := int((float64(py) + 0.5 - top) / s)
		for px := x0; px < x1; px++ {
			sx := int((float64(px) + 0.5 - x) / s)
			if src.at(sx, sy) {
				dst.SetAlpha(px, py, color.Alpha{A: 0xFF})
			}
		}
	}
}

// alphaDisplayer is a 1-bit scratch target for tinyfont.
type alphaDisplayer struct {
	w, h int
	bits []bool
}

var _ drivers.Displayer = (*alphaDisplayer)(nil)

func newAlphaDisplayer(w, h int) *alphaDisplayer {
	return &alphaDisplayer{w: w, h: h, bits: make([]bool, w*h)}
}

func (d *alphaDisplayer) Size() (x, y int16) { return int16(d.w), int16(d.h) }

func (d *alphaDisplayer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= d.w || iy >= d.h || c.A == 0 {
		return
	}
	d.bits[iy*d.w+ix] = true
}

func (d *alphaDisplayer) Display() error { return nil }

func (d *alphaDisplayer) at(x, y int) bool {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return false
	}
	return d.bits[y*d.w+x]
}
