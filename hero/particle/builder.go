package particle

import (
	"image/color"
	"math"
	"math/rand"

	"particlehero/hero/glyph"
	"particlehero/hero/quarkgl"
)

// BuildConfig holds the sampling and appearance ranges of a field.
type BuildConfig struct {
	// BaseSamples is the number of grid samples across the width at density 1.
	BaseSamples float64
	// DensityScale multiplies BaseSamples; higher means a finer grid and more particles.
	DensityScale float64
	// AlphaThreshold is the exclusive minimum mask alpha that counts as ink.
	AlphaThreshold uint8
	// ExtrusionDepth is the width of the random z band around the text plane.
	ExtrusionDepth float64
	// SizeScale multiplies the base radius range [1, 5).
	SizeScale float64
	// InitialSpeed is the width of the random initial velocity range per axis.
	InitialSpeed float64
	// Shade darkens colors by the mask luma, so face-layer samples read darker.
	Shade   bool
	Palette []color.RGBA
}

func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		BaseSamples:    220,
		DensityScale:   4.0,
		AlphaThreshold: 150,
		ExtrusionDepth: 80,
		SizeScale:      1.0,
		InitialSpeed:   15,
		Shade:          true,
		Palette:        Palette,
	}
}

const (
	dampingMin  = 0.93
	dampingSpan = 0.05
)

// GridStep returns the sampling step for a surface width.
func GridStep(width int, baseSamples, density float64) int {
	n := baseSamples * density
	if n <= 0 {
		return 1
	}
	step := int(math.Round(float64(width) / n))
	if step < 1 {
		step = 1
	}
	return step
}

// Build samples mask on the grid and creates one particle per ink point.
//
// Targets are center-relative so rotation pivots at the middle of the surface.
// Starting positions are scattered over the whole surface so the text forms
// visibly on the first frames. All randomness comes from rng.
func Build(mask *glyph.Mask, cfg BuildConfig, rng *rand.Rand) *Field {
	if mask == nil {
		return &Field{Step: 1}
	}
	step := GridStep(mask.W, cfg.BaseSamples, cfg.DensityScale)
	f := &Field{Step: step, W: mask.W, H: mask.H}

	halfW, halfH := float64(mask.W)/2, float64(mask.H)/2
	for x := 0; x < mask.W; x += step {
		for y := 0; y < mask.H; y += step {
			if mask.AlphaAt(x, y) <= cfg.AlphaThreshold {
				continue
			}
			target := quarkgl.V3(
				float64(x)-halfW,
				float64(y)-halfH,
				(rng.Float64()-0.5)*cfg.ExtrusionDepth,
			)
			f.Particles = append(f.Particles, newParticle(target, mask.LumaAt(x, y), mask.W, mask.H, cfg, rng))
		}
	}
	return f
}

func newParticle(target quarkgl.Vec3, luma uint8, w, h int, cfg BuildConfig, rng *rand.Rand) Particle {
	palette := cfg.Palette
	if len(palette) == 0 {
		palette = Palette
	}

	p := Particle{
		Target: target,
		Pos: quarkgl.V3(
			(rng.Float64()-0.5)*float64(w),
			(rng.Float64()-0.5)*float64(h),
			(rng.Float64()-0.5)*cfg.ExtrusionDepth,
		),
		Vel: quarkgl.V3(
			(rng.Float64()-0.5)*cfg.InitialSpeed,
			(rng.Float64()-0.5)*cfg.InitialSpeed,
			(rng.Float64()-0.5)*cfg.InitialSpeed,
		),
		// Keep off both ends of the interval.
		Damping: dampingMin + dampingSpan*(0.001+0.998*rng.Float64()),
	}

	p.Radius = (1.0 + rng.Float64()*4.0) * cfg.SizeScale
	p.AspectX = 0.65 + rng.Float64()*0.70
	p.AspectY = 0.65 + rng.Float64()*0.70
	p.Theta = rng.Float64() * math.Pi
	p.Alpha = 0.4 + rng.Float64()*0.6

	c := palette[rng.Intn(len(palette))]
	if cfg.Shade {
		c = shade(c, luma)
	}
	p.Color = c
	return p
}

// shade darkens c by the mask luma: black face pixels keep 55% brightness,
// white front pixels keep all of it.
func shade(c color.RGBA, luma uint8) color.RGBA {
	k := 0.55 + 0.45*float64(luma)/0xFF
	mul := func(ch uint8) uint8 { return uint8(math.Round(float64(ch) * k)) }
	return color.RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}
