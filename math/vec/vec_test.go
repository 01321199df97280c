package vec

import (
	"testing"

	"github.com/chewxy/math32"
)

var (
	NULL = Vec3{}
)

const e = 1e-5

func near(a, b float32) bool {
	return math32.Abs(a-b) < e
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	for _, v := range []Vec3{{2, 2, 1}, {2, 1, 2}, {1, 2, 2}} {
		if v.Length() != 3 {
			t.Errorf("%v Length is not 3", v)
		}
	}
	if l := (Vec2{3, 4}).Length(); l != 5 {
		t.Errorf("Vec2 length = %v want 5", l)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{0, 3, 4}
	n := v.Normalize()
	if !near(n.Length(), 1) {
		t.Errorf("%v normalized has length %v", v, n.Length())
	}
	if n := NULL.Normalize(); n != NULL {
		t.Errorf("Null vector normalized to %v", n)
	}
}

func TestCross(t *testing.T) {
	x, y, z := Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}
	if got := Cross(x, y); got != z {
		t.Errorf("x cross y = %v", got)
	}
	if Dot(Cross(x, y), x) != 0 {
		t.Errorf("cross product not orthogonal")
	}
}

func TestEdge(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{4, 0}
	if Edge(a, b, Vec2{1, 1}) <= 0 {
		t.Errorf("point above edge is not on the left")
	}
	if Edge(a, b, Vec2{1, -1}) >= 0 {
		t.Errorf("point below edge is not on the right")
	}
	if Edge(a, b, Vec2{2, 0}) != 0 {
		t.Errorf("point on edge has area")
	}
}

func TestSaturateModulate(t *testing.T) {
	got := Vec3{-1, 0.5, 2}.Saturate()
	if got != (Vec3{0, 0.5, 1}) {
		t.Errorf("Saturate = %v", got)
	}
	if got := Modulate(Vec3{1, 2, 3}, Vec3{2, 2, 2}); got != (Vec3{2, 4, 6}) {
		t.Errorf("Modulate = %v", got)
	}
	if got := (Vec4{0, 0, 0, 0}).Lerp(Vec4{2, 4, 6, 8}, 0.5); got != (Vec4{1, 2, 3, 4}) {
		t.Errorf("Vec4 Lerp = %v", got)
	}
}

func TestEqual(t *testing.T) {
	v1 := Vec3{2, 3, 4}
	v2 := Vec3{4, 3, 2}
	if v1 == v2 {
		t.Errorf("Vectors %v and %v are considered equal", v1, v2)
	}
	mn, mx := MinMax(v1, v2)
	if mn != (Vec3{2, 3, 2}) || mx != (Vec3{4, 3, 4}) {
		t.Errorf("MinMax = %v %v", mn, mx)
	}
}
