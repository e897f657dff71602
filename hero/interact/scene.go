// Package interact turns pointer and wheel input into scene rotation, zoom and
// a repulsion center, and applies the repulsion to particles.
package interact

import "math"

// Point is a screen-space position in surface pixels.
type Point struct {
	X, Y float64
}

// FarAway is the pointer sentinel that disables repulsion.
var FarAway = Point{X: -9999, Y: -9999}

// Scene is the camera and interaction state shared by the controller and the
// render loop. There is one per surface.
type Scene struct {
	RotX float64 // clamped to [-π/2, π/2]
	RotY float64 // unbounded
	Zoom float64

	Pointer Point

	// AccumulatedScroll is the clamped sum of wheel deltas driving Zoom.
	AccumulatedScroll float64
}

// Config holds the interaction constants.
type Config struct {
	// DragSensitivity converts pointer pixels to radians.
	DragSensitivity float64

	MinZoom     float64
	MaxZoom     float64
	NeutralZoom float64
	// ScrollZoomRange is the wheel delta that spans MaxZoom to MinZoom.
	ScrollZoomRange float64

	// EscapeLow and EscapeHigh are the scroll progress values past which the
	// wheel is handed back to the page.
	EscapeLow  float64
	EscapeHigh float64

	RepelRadius float64
	RepelForce  float64
}

func DefaultConfig() Config {
	return Config{
		DragSensitivity: 0.005,
		MinZoom:         0.5,
		MaxZoom:         4.0,
		NeutralZoom:     1.0,
		ScrollZoomRange: 1000,
		EscapeLow:       0.01,
		EscapeHigh:      0.99,
		RepelRadius:     90,
		RepelForce:      2.0,
	}
}

// ZoomAt maps an accumulated scroll value to a zoom level.
//
// ZoomAt(0) is MaxZoom and ZoomAt(ScrollZoomRange) is MinZoom; values in between
// are interpolated linearly, values outside are clamped.
func (c Config) ZoomAt(accumulated float64) float64 {
	return c.MaxZoom - (c.MaxZoom-c.MinZoom)*c.progress(accumulated)
}

// ScrollFor is the inverse of ZoomAt for zoom levels inside [MinZoom, MaxZoom].
func (c Config) ScrollFor(zoom float64) float64 {
	span := c.MaxZoom - c.MinZoom
	if span <= 0 {
		return 0
	}
	zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, zoom))
	return (c.MaxZoom - zoom) / span * c.ScrollZoomRange
}

func (c Config) progress(accumulated float64) float64 {
	if c.ScrollZoomRange <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, accumulated/c.ScrollZoomRange))
}
