package netcomponents

import (
	"math"
	"testing"
)

func TestLerpNetKartMidpoint(t *testing.T) {
	from := NetKartData{X: 0, Y: 1, Z: -4, Heading: 0, DriftLean: -1, Name: "old"}
	to := NetKartData{X: 2, Y: 1, Z: 0, Heading: 1, DriftLean: 1, Name: "new"}

	got := LerpNetKart(from, to, 0.5)
	if got.X != 1 || got.Y != 1 || got.Z != -2 {
		t.Fatalf("unexpected midpoint position %+v", got)
	}
	if got.Heading != 0.5 || got.DriftLean != 0 {
		t.Fatalf("unexpected midpoint angles %+v", got)
	}
	if got.Name != "new" {
		t.Fatalf("name should come from the target state, got %q", got.Name)
	}
}

func TestLerpNetKartEndpoints(t *testing.T) {
	from := NetKartData{X: 3, Heading: -2}
	to := NetKartData{X: 7, Heading: 4}

	if got := LerpNetKart(from, to, 0); got.X != 3 || got.Heading != -2 {
		t.Fatalf("t=0 should return the start, got %+v", got)
	}
	if got := LerpNetKart(from, to, 1); got.X != 7 || got.Heading != 4 {
		t.Fatalf("t=1 should return the target, got %+v", got)
	}
}

func TestLerpNetKartUnboundedHeading(t *testing.T) {
	// The heading is an unbounded accumulator, never wrapped. A kart that
	// lapped a circuit twice interpolates straight through, no shortest-arc
	// snap back near the 2*pi seam.
	from := NetKartData{Heading: 4 * math.Pi}
	to := NetKartData{Heading: 4*math.Pi + 0.2}

	got := LerpNetKart(from, to, 0.5)
	if math.Abs(got.Heading-(4*math.Pi+0.1)) > 1e-12 {
		t.Fatalf("unexpected heading %f", got.Heading)
	}
}
