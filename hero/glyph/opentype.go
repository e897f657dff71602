package glyph

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// OpenType is a scalable typeface backed by an OpenType/TrueType font.
type OpenType struct {
	font *opentype.Font
}

// NewOpenType parses a TTF/OTF font.
func NewOpenType(data []byte) (*OpenType, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	return &OpenType{font: f}, nil
}

// GoBold returns the embedded Go Bold font, the closest match to a bold sans-serif.
func GoBold() (*OpenType, error) { return NewOpenType(gobold.TTF) }

func (t *OpenType) face(size float64) (font.Face, error) {
	return opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (t *OpenType) Measure(text string, size float64) (Metrics, bool) {
	if t == nil || t.font == nil || size <= 0 {
		return Metrics{}, false
	}
	face, err := t.face(size)
	if err != nil {
		return Metrics{}, false
	}
	defer face.Close()

	bounds, advance := font.BoundString(face, text)
	if advance <= 0 {
		return Metrics{}, false
	}
	return Metrics{
		Width:   fromFixed(advance),
		Ascent:  -fromFixed(bounds.Min.Y),
		Descent: fromFixed(bounds.Max.Y),
	}, true
}

func (t *OpenType) Draw(dst *image.Alpha, text string, size float64, x, y float64) {
	if t == nil || t.font == nil || dst == nil || size <= 0 {
		return
	}
	face, err := t.face(size)
	if err != nil {
		return
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(text)
}

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
