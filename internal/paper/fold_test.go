package paper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldDiagonal(t *testing.T) {
	got, err := Fold(InitialState(), Vec(0, 0), Vec(1, 1))
	require.NoError(t, err)

	want := State{
		facet(true, Pt(1, 0), Pt(1, 1), Pt(0, 1)),
		facet(false, fp(0, 0, 1, 1), fp(1, 0, 1, 0), fp(0, 1, 0, 1)),
	}
	approx(t, want, got)
	for _, f := range got {
		assert.Len(t, f.Points, 3)
	}
	assert.InDelta(t, 1.0, got.Area(), eps)
}

func TestFoldThroughFirstVertex(t *testing.T) {
	got, err := Fold(InitialState(), Vec(1, 0), Vec(0, 1))
	require.NoError(t, err)

	want := State{
		facet(true, Pt(0, 0), Pt(1, 0), Pt(1, 1)),
		facet(false, fp(0, 0, 0, 0), fp(1, 1, 1, 1), fp(0, 1, 1, 0)),
	}
	approx(t, want, got)
}

func TestFoldBelowSheet(t *testing.T) {
	s, err := Fold(InitialState(), Vec(0.5, 1.2), Vec(0.5, -1.4))
	require.NoError(t, err)
	require.Len(t, s, 1)
	lo, hi := s.Bounds()
	assert.InDelta(t, -1.2, lo.Y, eps)
	assert.InDelta(t, -0.2, hi.Y, eps)

	s, err = Fold(s, Vec(0.2, -0.9), Vec(0.4, -0.5))
	require.NoError(t, err)
	require.Len(t, s, 2)
	lo, hi = s.Bounds()
	assert.InDelta(t, -0.28, lo.X, 1e-9)
	assert.InDelta(t, -1.56, lo.Y, 1e-9)
	assert.InDelta(t, 1, hi.X, 1e-9)
	assert.InDelta(t, -0.55, hi.Y, 1e-9)
}

func TestFoldMissesPaper(t *testing.T) {
	s := InitialState()
	got, err := Fold(s, Vec(3, 0.5), Vec(2, 0.5))
	require.NoError(t, err)
	assert.True(t, s.Equal(got))
}

func TestFoldTwice(t *testing.T) {
	// right half onto the left half, then the top onto the bottom
	s, err := Fold(InitialState(), Vec(1, 0.5), Vec(0, 0.5))
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.True(t, s[0].Front)
	assert.False(t, s[1].Front)

	s, err = Fold(s, Vec(0.25, 1), Vec(0.25, 0))
	require.NoError(t, err)
	require.Len(t, s, 4)

	var fronts []bool
	for _, f := range s {
		fronts = append(fronts, f.Front)
		for _, p := range f.Points {
			assert.InDelta(t, 0.25, p.Displayed.X, 0.25+eps)
			assert.InDelta(t, 0.25, p.Displayed.Y, 0.25+eps)
		}
		assert.InDelta(t, 0.25, math.Abs(f.Area()), eps)
		assert.InDelta(t, 0.25, math.Abs(f.MaterialArea()), eps)
	}
	diff(t, []bool{true, false, true, false}, fronts)
}

func TestFoldDegenerate(t *testing.T) {
	_, err := Fold(InitialState(), Vec(0.3, 0.3), Vec(0.3, 0.3))
	assert.ErrorIs(t, err, ErrDegenerateGesture)
}

func TestFoldAlongReportsFacet(t *testing.T) {
	s := State{
		facet(true, Pt(5, 5), Pt(6, 5), Pt(6, 6)),
		unitSquare(),
	}
	_, err := FoldAlong(s, Line{P0: Vec(2, 0), P1: Vec(0, 2)})
	var te *TopologyError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 1, te.Facet)
	assert.Equal(t, 1, te.Cuts)
	assert.ErrorIs(t, err, ErrTopologyAnomaly)
}

// randomFolds applies n random folds, skipping gestures that trip the
// topology check.
func randomFolds(t *testing.T, seed int64, n int, check func(before, after State)) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	s := InitialState()
	for i := 0; i < n; i++ {
		cp0 := Vec(rng.Float64()*1.4-0.2, rng.Float64()*1.4-0.2)
		cp1 := Vec(rng.Float64()*1.4-0.2, rng.Float64()*1.4-0.2)
		next, err := Fold(s, cp0, cp1)
		if err != nil {
			require.ErrorIs(t, err, ErrTopologyAnomaly)
			continue
		}
		check(s, next)
		s = next
	}
}

func TestFoldConservesArea(t *testing.T) {
	randomFolds(t, 11, 8, func(before, after State) {
		assert.InDelta(t, before.Area(), after.Area(), 1e-6)
		var material float64
		for _, f := range after {
			material += math.Abs(f.MaterialArea())
		}
		assert.InDelta(t, 1.0, material, 1e-6)
	})
}

func TestFoldKeepsMaterial(t *testing.T) {
	randomFolds(t, 5, 8, func(before, after State) {
		old := make(map[Vec2]bool)
		var edges [][2]Vec2
		for _, f := range before {
			for i, p := range f.Points {
				old[p.Material] = true
				edges = append(edges, [2]Vec2{p.Material, f.Points[(i+1)%len(f.Points)].Material})
			}
		}
		for _, f := range after {
			for _, p := range f.Points {
				if old[p.Material] {
					continue
				}
				assert.True(t, onEdge(edges, p.Material), "cut point %v is not on an old material edge", p)
			}
		}
	})
}

func onEdge(edges [][2]Vec2, m Vec2) bool {
	for _, e := range edges {
		d := e[1].Sub(e[0])
		if d.Hypot() == 0 {
			continue
		}
		rel := m.Sub(e[0])
		if math.Abs(d.Cross(rel)) > 1e-9 {
			continue
		}
		param := (d.X*rel.X + d.Y*rel.Y) / (d.X*d.X + d.Y*d.Y)
		if param >= -1e-9 && param <= 1+1e-9 {
			return true
		}
	}
	return false
}
