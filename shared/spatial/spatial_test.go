package spatial

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestYawRotatesForwardVector(t *testing.T) {
	forward := Vec3{Z: -1}

	cases := []struct {
		angle float64
		want  Vec3
	}{
		{0, Vec3{Z: -1}},
		{math.Pi / 2, Vec3{X: -1}},
		{math.Pi, Vec3{Z: 1}},
		{3 * math.Pi / 2, Vec3{X: 1}},
	}
	for _, c := range cases {
		got := Yaw(c.angle).Rotate(forward)
		if !vecNear(got, c.want) {
			t.Fatalf("yaw %f: got %+v, want %+v", c.angle, got, c.want)
		}
	}
}

func TestYawPreservesUpAxis(t *testing.T) {
	up := Vec3{Y: 1}
	if got := Yaw(1.234).Rotate(up); !vecNear(got, up) {
		t.Fatalf("yaw must not move the up axis, got %+v", got)
	}
}

func TestYawIsUnitForAnyAngle(t *testing.T) {
	for _, angle := range []float64{0, 0.5, -3, 1e6, -1e6, 12345.678} {
		if n := Yaw(angle).Norm(); math.Abs(n-1) > eps {
			t.Fatalf("yaw(%f) norm %f, want 1", angle, n)
		}
	}
}

func TestMulComposesYaws(t *testing.T) {
	a, b := 0.7, -1.9
	composed := Yaw(a).Mul(Yaw(b))
	direct := Yaw(a + b)
	v := Vec3{X: 1, Z: -2}
	if !vecNear(composed.Rotate(v), direct.Rotate(v)) {
		t.Fatalf("yaw(a)*yaw(b) should equal yaw(a+b): %+v vs %+v",
			composed.Rotate(v), direct.Rotate(v))
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec3{X: 3, Y: -2, Z: 5}
	got := AxisAngle(Vec3{X: 0, Y: 1, Z: 0}, 2.2).Rotate(v)
	if math.Abs(got.Length()-v.Length()) > eps {
		t.Fatalf("rotation changed length: %f vs %f", got.Length(), v.Length())
	}
}

func TestHorizontalZeroesY(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	if got := v.Horizontal(); got.Y != 0 || got.X != 1 || got.Z != 3 {
		t.Fatalf("unexpected horizontal projection: %+v", got)
	}
}

func TestNormalizedZeroVector(t *testing.T) {
	if got := (Vec3{}).Normalized(); !got.IsZero() {
		t.Fatalf("normalizing zero should stay zero, got %+v", got)
	}
}

func TestCrossRightHanded(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if got := x.Cross(y); !vecNear(got, Vec3{Z: 1}) {
		t.Fatalf("x cross y should be z, got %+v", got)
	}
}
