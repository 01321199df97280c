package vec

import (
	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion, W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatAxisAngle returns the rotation by angle radians around axis.
func QuatAxisAngle(axis Vec3, angle float32) Quat {
	a := axis.Normalize()
	s, c := math32.Sincos(angle / 2)
	return Quat{a.X * s, a.Y * s, a.Z * s, c}
}

func (q Quat) Dot(o Quat) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quat) Length() float32 {
	return math32.Sqrt(q.Dot(q))
}

func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		return Quat{W: 1}
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Slerp interpolates along the shorter arc between a and b.
func Slerp(a, b Quat, t float32) Quat {
	cos := a.Dot(b)
	if cos < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		cos = -cos
	}
	var wa, wb float32
	if cos > 1-1e-6 {
		// nearly parallel, sin(theta) would underflow
		wa, wb = 1-t, t
	} else {
		theta := math32.Acos(cos)
		sin := math32.Sin(theta)
		wa = math32.Sin((1-t)*theta) / sin
		wb = math32.Sin(t*theta) / sin
	}
	return Quat{
		wa*a.X + wb*b.X,
		wa*a.Y + wb*b.Y,
		wa*a.Z + wb*b.Z,
		wa*a.W + wb*b.W,
	}.Normalize()
}
