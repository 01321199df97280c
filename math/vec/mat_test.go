package vec

import (
	"testing"

	"github.com/chewxy/math32"
)

func eq3(a, b Mat3) bool {
	for i := range a.M {
		for j := range a.M[i] {
			if !near(a.M[i][j], b.M[i][j]) {
				return false
			}
		}
	}
	return true
}

func eq4(a, b Mat4) bool {
	for i := range a.M {
		for j := range a.M[i] {
			if !near(a.M[i][j], b.M[i][j]) {
				return false
			}
		}
	}
	return true
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3FromCols(Vec3{2, 0, 1}, Vec3{1, 3, 0}, Vec3{0, 1, 4})
	if got := m.Mul(m.Inverse()); !eq3(got, Mat3Identity()) {
		t.Errorf("m * m^-1 = %v", got)
	}
	if got := m.InverseTranspose(); !eq3(got, m.Inverse().Transpose()) {
		t.Errorf("InverseTranspose = %v", got)
	}
}

func TestMat3FromCols(t *testing.T) {
	m := Mat3FromCols(Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 9})
	if got := m.MulVec(Vec3{1, 0, 0}); got != (Vec3{1, 2, 3}) {
		t.Errorf("first column = %v", got)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Mat4FromTRS(Vec3{1, 2, 3}, QuatAxisAngle(Vec3{0, 1, 0}, 0.7), Vec3{2, 2, 2})
	if got := m.Mul(m.Inverse()); !eq4(got, Mat4Identity()) {
		t.Errorf("m * m^-1 = %v", got)
	}
}

func TestMat4TRS(t *testing.T) {
	q := QuatAxisAngle(Vec3{0, 0, 1}, math32.Pi/2)
	m := Mat4FromTRS(Vec3{10, 0, 0}, q, Vec3{2, 1, 1})
	got := m.MulVec(Vec4{1, 0, 0, 1})
	// scale x by 2, rotate onto y, translate by 10 in x
	want := Vec4{10, 2, 0, 1}
	if !near(got.X, want.X) || !near(got.Y, want.Y) || !near(got.Z, want.Z) || got.W != 1 {
		t.Errorf("TRS * (1,0,0,1) = %v want %v", got, want)
	}
	if !eq3(m.Mat3().Mul(Mat3Identity()), m.Mat3()) {
		t.Errorf("Mat3 block broken")
	}
}

func TestMat4Combine(t *testing.T) {
	id := Mat4Identity()
	got := Mat4Combine([4]Mat4{id, id, id, id}, Vec4{0.25, 0.25, 0.25, 0.25})
	if !eq4(got, id) {
		t.Errorf("Combine of identities = %v", got)
	}
	got3 := Mat3Combine([4]Mat3{Mat3Identity(), {}, {}, {}}, Vec4{1, 0, 0, 0})
	if !eq3(got3, Mat3Identity()) {
		t.Errorf("Mat3Combine = %v", got3)
	}
}

func TestSlerp(t *testing.T) {
	a := Quat{W: 1}
	b := QuatAxisAngle(Vec3{0, 0, 1}, math32.Pi/2)
	if got := Slerp(a, b, 0); !near(got.Dot(a), 1) {
		t.Errorf("Slerp(a,b,0) = %v", got)
	}
	if got := Slerp(a, b, 1); !near(got.Dot(b), 1) {
		t.Errorf("Slerp(a,b,1) = %v", got)
	}
	half := QuatAxisAngle(Vec3{0, 0, 1}, math32.Pi/4)
	if got := Slerp(a, b, 0.5); !near(math32.Abs(got.Dot(half)), 1) {
		t.Errorf("Slerp(a,b,0.5) = %v want %v", got, half)
	}
	if got := (Quat{}).Normalize(); got != (Quat{W: 1}) {
		t.Errorf("zero quaternion normalized to %v", got)
	}
}
