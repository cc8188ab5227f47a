package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.DistanceTo(want); d > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func assertNearF(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); d > epsilon {
		t.Fatalf("got %g, expected %g", got, want)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.DistanceTo(p2) <= 1e-9
})

var cmpRect = cmp.Comparer(func(r1, r2 Rect) bool {
	return math.Abs(r1.Left-r2.Left) <= 1e-9 &&
		math.Abs(r1.Top-r2.Top) <= 1e-9 &&
		math.Abs(r1.Right-r2.Right) <= 1e-9 &&
		math.Abs(r1.Bottom-r2.Bottom) <= 1e-9
})
