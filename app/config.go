package app

import (
	"particlehero/hero/glyph"
	"particlehero/hero/interact"
	"particlehero/hero/particle"
	"particlehero/hero/physics"
	"particlehero/hero/quarkgl"
)

// Config is fixed at startup.
type Config struct {
	Text string

	// Field
	SizeScale      float64
	DensityScale   float64
	ExtrusionDepth float64
	AlphaThreshold uint8
	BaseSamples    float64
	Shade          bool

	// Glyph fitting
	TextSizeFactor float64
	FitWidth       float64
	FitHeight      float64
	FaceLayers     int
	FaceShift      float64
	Typeface       string

	// Camera
	FOV     float64
	CameraZ float64

	// Interaction
	RepelRadius     float64
	RepelForce      float64
	MinZoom         float64
	MaxZoom         float64
	NeutralZoom     float64
	ScrollZoomRange float64
	EscapeLow       float64
	EscapeHigh      float64
	DragSensitivity float64

	SpringDivisor float64

	HUD bool
	// Seed seeds the particle generator; 0 picks a time-based seed.
	Seed int64
}

func DefaultConfig() Config {
	ic := interact.DefaultConfig()
	bc := particle.DefaultBuildConfig()
	gc := glyph.DefaultOptions()
	return Config{
		Text: "EXABYTE STUDIO",

		SizeScale:      bc.SizeScale,
		DensityScale:   bc.DensityScale,
		ExtrusionDepth: bc.ExtrusionDepth,
		AlphaThreshold: bc.AlphaThreshold,
		BaseSamples:    bc.BaseSamples,
		Shade:          bc.Shade,

		TextSizeFactor: gc.SizeFactor,
		FitWidth:       gc.FitWidth,
		FitHeight:      gc.FitHeight,
		FaceLayers:     gc.Layers,
		FaceShift:      gc.LayerShift,
		Typeface:       "gobold",

		FOV:     1200,
		CameraZ: 1400,

		RepelRadius:     ic.RepelRadius,
		RepelForce:      ic.RepelForce,
		MinZoom:         ic.MinZoom,
		MaxZoom:         ic.MaxZoom,
		NeutralZoom:     ic.NeutralZoom,
		ScrollZoomRange: ic.ScrollZoomRange,
		EscapeLow:       ic.EscapeLow,
		EscapeHigh:      ic.EscapeHigh,
		DragSensitivity: ic.DragSensitivity,

		SpringDivisor: physics.DefaultSpringDivisor,
	}
}

func (c Config) glyphOptions() glyph.Options {
	return glyph.Options{
		SizeFactor: c.TextSizeFactor,
		FitWidth:   c.FitWidth,
		FitHeight:  c.FitHeight,
		Layers:     c.FaceLayers,
		LayerShift: c.FaceShift,
	}
}

// buildConfig scales particle sizes by the device pixel ratio so they keep
// their logical size on dense displays.
func (c Config) buildConfig(deviceScale float64) particle.BuildConfig {
	bc := particle.DefaultBuildConfig()
	if deviceScale <= 0 {
		deviceScale = 1
	}
	bc.BaseSamples = c.BaseSamples
	bc.DensityScale = c.DensityScale
	bc.AlphaThreshold = c.AlphaThreshold
	bc.ExtrusionDepth = c.ExtrusionDepth
	bc.SizeScale = c.SizeScale * deviceScale
	bc.Shade = c.Shade
	return bc
}

func (c Config) interactConfig() interact.Config {
	return interact.Config{
		DragSensitivity: c.DragSensitivity,
		MinZoom:         c.MinZoom,
		MaxZoom:         c.MaxZoom,
		NeutralZoom:     c.NeutralZoom,
		ScrollZoomRange: c.ScrollZoomRange,
		EscapeLow:       c.EscapeLow,
		EscapeHigh:      c.EscapeHigh,
		RepelRadius:     c.RepelRadius,
		RepelForce:      c.RepelForce,
	}
}

func (c Config) camera() quarkgl.Camera {
	return quarkgl.Camera{FOV: c.FOV, BaseZ: c.CameraZ}
}
