// Package quarkgl provides the small, predictable 3D math used by the particle hero.
//
// It covers exactly one pipeline:
//
//	object space → rigid rotation (Y, then X) → perspective projection → screen.
//
// There is no view matrix and no clipping: the camera sits on the +Z axis looking
// at the origin, and the distance to it is divided by the current zoom. Rotation
// order is part of the contract; Rx·Ry and Ry·Rx give different pictures.
//
// The inverse path (screen delta → object-space direction) is provided by
// LocalDirection and is used for pointer repulsion.
package quarkgl
