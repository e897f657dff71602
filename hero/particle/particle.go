// Package particle builds the particle field from a rasterized text mask.
package particle

import (
	"image/color"

	"particlehero/hero/quarkgl"
)

// Particle is one sampled ink pixel of the text.
//
// Pos, Vel and Acc change every tick; everything else is fixed when the
// particle is built.
type Particle struct {
	Pos    quarkgl.Vec3
	Target quarkgl.Vec3
	Vel    quarkgl.Vec3
	Acc    quarkgl.Vec3

	// Damping multiplies the velocity each tick, in (0.93, 0.98).
	Damping float64

	Radius  float64
	AspectX float64
	AspectY float64
	Theta   float64
	Alpha   float64
	Color   color.RGBA
}

// Palette is the gold and purple set particles pick their color from.
var Palette = []color.RGBA{
	{R: 0xFF, G: 0xB3, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0xD5, B: 0x4F, A: 0xFF},
	{R: 0xFF, G: 0x8F, B: 0x00, A: 0xFF},
	{R: 0x4D, G: 0x00, B: 0x99, A: 0xFF},
	{R: 0x7E, G: 0x57, B: 0xC2, A: 0xFF},
	{R: 0xB3, G: 0x88, B: 0xFF, A: 0xFF},
}

// Field is the full particle set for one surface size and text.
type Field struct {
	Particles []Particle
	// Step is the sampling grid step in pixels.
	Step int
	W, H int
}

func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Particles)
}
