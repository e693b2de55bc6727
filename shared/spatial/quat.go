package spatial

import "math"

// Quat is a rotation quaternion. Headings are always rebuilt from an angle
// with AxisAngle rather than composed incrementally, so a Quat produced by
// this package is unit length by construction.
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// AxisAngle builds a quaternion rotating by angle radians about axis.
// The axis must be unit length.
func AxisAngle(axis Vec3, angle float64) Quat {
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}
}

// Yaw builds a rotation about world-up by angle radians.
func Yaw(angle float64) Quat {
	return AxisAngle(Vec3{Y: 1}, angle)
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2*cross(q.xyz, cross(q.xyz, v) + w*v)
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Add(v.Scale(q.W)).Scale(2)
	return v.Add(u.Cross(t))
}

// Mul composes two rotations, applying r first.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Norm returns the quaternion's length.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}
