package glyph

import (
	"image"
	"unicode/utf8"
)

// Metrics describes a measured line of text in pixels.
type Metrics struct {
	Width   float64 // advance width
	Ascent  float64 // ink above the baseline
	Descent float64 // ink below the baseline
}

// Typeface measures and draws a single line of text at an arbitrary pixel size.
type Typeface interface {
	// Measure reports the metrics of text at size. ok is false if the typeface
	// cannot measure it.
	Measure(text string, size float64) (m Metrics, ok bool)
	// Draw renders text into dst with the left end of its baseline at (x, y).
	Draw(dst *image.Alpha, text string, size float64, x, y float64)
}

// Default returns the Go Bold typeface, or the bitmap typeface if the embedded
// font cannot be parsed.
func Default() Typeface {
	if ot, err := GoBold(); err == nil {
		return ot
	}
	return Proggy()
}

// ByName resolves a typeface flag value. Unknown names return Default().
func ByName(name string) Typeface {
	switch name {
	case "proggy", "bitmap":
		return Proggy()
	default:
		return Default()
	}
}

// measure returns the metrics of text, substituting the character-count
// approximation when the typeface cannot measure it.
func measure(tf Typeface, text string, size float64) Metrics {
	if tf != nil {
		if m, ok := tf.Measure(text, size); ok && m.Width > 0 {
			if m.Ascent+m.Descent <= 0 {
				m.Ascent = size * 0.78
				m.Descent = size * 0.22
			}
			return m
		}
	}
	return Metrics{
		Width:   float64(utf8.RuneCountInString(text)) * size * 0.6,
		Ascent:  size * 0.78,
		Descent: size * 0.22,
	}
}
