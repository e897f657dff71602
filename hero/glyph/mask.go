package glyph

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Options controls how the text is fitted and shaded.
type Options struct {
	// SizeFactor sets the starting font size to width/SizeFactor.
	SizeFactor float64
	// FitWidth and FitHeight bound the text box as a fraction of the surface.
	FitWidth  float64
	FitHeight float64
	// Layers is the number of face layers; LayerShift is the per-layer offset in px.
	Layers     int
	LayerShift float64
}

func DefaultOptions() Options {
	return Options{
		SizeFactor: 8,
		FitWidth:   0.50,
		FitHeight:  0.6,
		Layers:     8,
		LayerShift: 1.0,
	}
}

const (
	minStartSize = 24
	minFontSize  = 12
)

// Mask is the rasterized text covering the full surface.
type Mask struct {
	W, H int
	// Alpha is the coverage of each pixel, row-major.
	Alpha []uint8
	// Luma is the un-premultiplied gray level of each pixel. Face layers are dark,
	// the front face is light.
	Luma []uint8
}

// NewMask allocates an empty w×h mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{W: w, H: h, Alpha: make([]uint8, w*h), Luma: make([]uint8, w*h)}
}

func (m *Mask) AlphaAt(x, y int) uint8 {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0
	}
	return m.Alpha[y*m.W+x]
}

func (m *Mask) LumaAt(x, y int) uint8 {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0
	}
	return m.Luma[y*m.W+x]
}

// FitSize picks the font size for text on a w×h surface.
func FitSize(tf Typeface, text string, w, h int, o Options) float64 {
	factor := o.SizeFactor
	if factor <= 0 {
		factor = DefaultOptions().SizeFactor
	}
	size := math.Max(minStartSize, float64(w)/factor)
	m := measure(tf, text, size)

	extra := float64(o.Layers) * o.LayerShift
	maxW := float64(w)*o.FitWidth - extra
	maxH := float64(h)*o.FitHeight - extra
	rawH := m.Ascent + m.Descent

	scale := math.Inf(1)
	if m.Width > 0 {
		scale = maxW / m.Width
	}
	if rawH > 0 {
		scale = math.Min(scale, maxH/rawH)
	}
	if math.IsInf(scale, 1) || math.IsNaN(scale) {
		scale = 1
	}
	return math.Max(minFontSize, size*scale)
}

// Rasterize draws text onto a w×h surface and returns its mask.
//
// A nil typeface uses Default().
func Rasterize(tf Typeface, text string, w, h int, o Options) *Mask {
	mask := NewMask(w, h)
	if w <= 0 || h <= 0 || text == "" {
		return mask
	}
	if tf == nil {
		tf = Default()
	}

	size := FitSize(tf, text, w, h, o)
	m := measure(tf, text, size)

	total := float64(o.Layers) * o.LayerShift
	cx := float64(w)/2 - total/2
	cy := float64(h)/2 - total/2

	// Glyph coverage at the front position; face layers reuse it shifted.
	rect := image.Rect(0, 0, w, h)
	ink := image.NewAlpha(rect)
	tf.Draw(ink, text, size, cx-m.Width/2, cy+(m.Ascent-m.Descent)/2)

	dst := image.NewRGBA(rect)
	for d := o.Layers; d > 0; d-- {
		shade := uint8(20 + float64(d)/float64(o.Layers)*80)
		off := int(math.Round(float64(d) * o.LayerShift))
		src := image.NewUniform(color.RGBA{R: shade, G: shade, B: shade, A: 0xFF})
		draw.DrawMask(dst, rect, src, image.Point{}, ink, image.Pt(-off, -off), draw.Over)
	}

	front := &verticalGradient{
		top:    float64(h)/2 - size*0.4,
		bottom: float64(h)/2 + size*0.4,
		from:   0xFF,
		to:     0xAA,
	}
	draw.DrawMask(dst, rect, front, image.Point{}, ink, image.Point{}, draw.Over)

	for i := 0; i < w*h; i++ {
		px := dst.Pix[i*4 : i*4+4]
		a := px[3]
		mask.Alpha[i] = a
		if a > 0 {
			mask.Luma[i] = uint8(uint32(px[0]) * 0xFF / uint32(a))
		}
	}
	return mask
}

// verticalGradient is an infinite image whose gray level runs linearly from
// `from` at y=top to `to` at y=bottom, clamped outside.
type verticalGradient struct {
	top, bottom float64
	from, to    uint8
}

func (g *verticalGradient) ColorModel() color.Model { return color.GrayModel }

func (g *verticalGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *verticalGradient) At(_, y int) color.Color {
	t := 0.0
	if g.bottom > g.top {
		t = (float64(y) + 0.5 - g.top) / (g.bottom - g.top)
	}
	t = math.Max(0, math.Min(1, t))
	v := float64(g.from) + (float64(g.to)-float64(g.from))*t
	return color.Gray{Y: uint8(math.Round(v))}
}
