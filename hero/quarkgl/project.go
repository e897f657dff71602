package quarkgl

import "math"

// Camera describes the fixed perspective camera on the +Z axis.
type Camera struct {
	// FOV is the focal length in pixels: a point at depth FOV projects 1:1.
	FOV float64
	// BaseZ is the camera distance at zoom 1.
	BaseZ float64
}

// Projection is one projected point.
type Projection struct {
	X, Y float64
	// Depth is the distance from the camera along the view axis. Larger is farther.
	Depth float64
	// Scale is the perspective factor applied to X and Y.
	Scale float64
}

// Distance returns the effective camera distance for a zoom level.
func (c Camera) Distance(zoom float64) float64 {
	if zoom <= 0 {
		zoom = 1
	}
	return c.BaseZ / zoom
}

// Project maps a rotated point to screen space around the center (cx, cy).
//
// Project is pure: identical inputs always give identical output.
func (c Camera) Project(p Vec3, zoom, cx, cy float64) Projection {
	depth := c.Distance(zoom) - p.Z
	scale := c.FOV / math.Max(1, depth)
	return Projection{
		X:     cx + p.X*scale,
		Y:     cy + p.Y*scale,
		Depth: depth,
		Scale: scale,
	}
}

// LocalDirection converts a screen-space delta at a projected point back into an
// object-space unit direction.
//
// The delta is divided by the projection scale (a zero scale counts as 1), placed
// in the z=0 plane of view space, and rotated by the inverse of Rotation(rotX, rotY).
// The result is normalized; a zero-length delta yields the zero vector.
func LocalDirection(dx, dy, scale, rotX, rotY float64) Vec3 {
	if scale == 0 {
		scale = 1
	}
	view := V3(dx/scale, dy/scale, 0)
	return Normalize(Rotation(rotX, rotY).Transpose().MulV3(view))
}
