// Package compositor collects projected particles into draw records, orders them
// back to front and paints them onto a Canvas.
package compositor

import (
	"image/color"
	"sort"

	"particlehero/hero/particle"
	"particlehero/hero/quarkgl"
)

// Record is one particle ready to draw, in screen space.
type Record struct {
	X, Y    float64
	Depth   float64
	Radius  float64
	AspectX float64
	AspectY float64
	Theta   float64
	Alpha   float64
	Color   color.RGBA
}

// Canvas is a 2D surface that can fill rotated, alpha-blended ellipses.
type Canvas interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	// FillEllipse fills an ellipse centered at (cx, cy) with radii rx, ry,
	// rotated by theta radians, blending c over the canvas with opacity alpha.
	FillEllipse(cx, cy, rx, ry, theta float64, c color.RGBA, alpha float64)
}

const (
	defaultMinScale = 0.5
	defaultMaxScale = 2.0
)

// Compositor is reused across frames to avoid reallocating records.
type Compositor struct {
	// MinScale and MaxScale bound the projection scale applied to particle size.
	MinScale float64
	MaxScale float64
	// Background clears the canvas before each frame.
	Background color.RGBA

	records []Record
}

func New() *Compositor {
	return &Compositor{
		MinScale:   defaultMinScale,
		MaxScale:   defaultMaxScale,
		Background: color.RGBA{A: 0xFF},
	}
}

// Reset drops the records of the previous frame, keeping capacity.
func (c *Compositor) Reset() {
	c.records = c.records[:0]
}

// Add records p at its projection.
func (c *Compositor) Add(p *particle.Particle, proj quarkgl.Projection) {
	size := quarkgl.Clamp(proj.Scale, c.MinScale, c.MaxScale)
	c.records = append(c.records, Record{
		X:       proj.X,
		Y:       proj.Y,
		Depth:   proj.Depth,
		Radius:  p.Radius * size,
		AspectX: p.AspectX,
		AspectY: p.AspectY,
		Theta:   p.Theta,
		Alpha:   p.Alpha,
		Color:   p.Color,
	})
}

// Records returns the records collected since the last Reset.
func (c *Compositor) Records() []Record { return c.records }

// SortBackToFront orders records by descending depth. Records at equal depth
// keep their insertion order.
func SortBackToFront(rs []Record) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Depth > rs[j].Depth })
}

// Draw clears the canvas and paints every record, farthest first.
func (c *Compositor) Draw(dst Canvas) {
	if dst == nil {
		return
	}
	dst.Clear(c.Background)
	SortBackToFront(c.records)
	for _, r := range c.records {
		dst.FillEllipse(r.X, r.Y, r.Radius*r.AspectX, r.Radius*r.AspectY, r.Theta, r.Color, r.Alpha)
	}
}
