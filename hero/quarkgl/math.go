package quarkgl

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Mat3 is a row-major 3x3 matrix: m[row*3+col].
type Mat3 [9]float64

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Len(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length.
//
// A zero vector is divided by 1 instead, so the result is the zero vector
// rather than NaN.
func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		l = 1
	}
	return v.Mul(1 / l)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func Mat3Mul(a, b Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] =
				a[row*3+0]*b[0*3+col] +
					a[row*3+1]*b[1*3+col] +
					a[row*3+2]*b[2*3+col]
		}
	}
	return out
}

func (m Mat3) MulV3(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose is also the inverse for pure rotations.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Mat3RotateX rotates about the horizontal axis. Positive angles tip +Y toward +Z.
func Mat3RotateX(rad float64) Mat3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// Mat3RotateY rotates about the vertical axis. Positive angles swing +X toward -Z.
func Mat3RotateY(rad float64) Mat3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Rotation returns the scene rotation: first about Y by rotY, then about X by rotX.
func Rotation(rotX, rotY float64) Mat3 {
	return Mat3Mul(Mat3RotateX(rotX), Mat3RotateY(rotY))
}

// Rotate applies the scene rotation to p.
func Rotate(p Vec3, rotX, rotY float64) Vec3 {
	return Rotation(rotX, rotY).MulV3(p)
}
