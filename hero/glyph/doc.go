// Package glyph rasterizes a text string into an alpha mask that the particle
// field samples.
//
// The mask covers the whole drawing surface. The text is fitted into a fraction
// of the surface, drawn several times at small diagonal offsets in darkening
// grays (the "face" of a fake extrusion), and finally drawn once more at the
// front with a light vertical gradient. Alpha marks ink; luma tells face from
// front.
package glyph
