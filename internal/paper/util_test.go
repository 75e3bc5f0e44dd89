package paper

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const eps = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares facet lists with a floating point tolerance. States are
// converted to []Facet first, because cmp prefers State.Equal over options.
func approx(t *testing.T, want, got State) {
	t.Helper()
	diff(t, []Facet(want), []Facet(got), cmpopts.EquateApprox(0, eps))
}

func near(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func facet(front bool, pts ...Point) Facet {
	return Facet{Front: front, Points: pts}
}

func fp(mx, my, dx, dy float64) Point {
	return Point{Material: Vec(mx, my), Displayed: Vec(dx, dy)}
}
