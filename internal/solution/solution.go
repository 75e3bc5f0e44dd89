// Package solution writes a folded sheet in the contest solution format:
// the source points on the unit square, the facets as lists of source point
// indices, and the destination of every source point.
package solution

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"paperfold/internal/paper"
)

// keyScale is the grid used to merge source points that differ only by
// rounding noise; facets sharing an edge cut it independently.
const keyScale = 1e9

// minArea is the material area below which a facet is a sliver left by a cut
// through a vertex. Its points are collinear, which the format rejects.
const minArea = 1e-12

type key struct{ x, y int64 }

func keyOf(v paper.Vec2) key {
	return key{int64(math.Round(v.X * keyScale)), int64(math.Round(v.Y * keyScale))}
}

// Solution is a sheet reduced to shared vertices.
type Solution struct {
	Source      []paper.Vec2
	Destination []paper.Vec2
	Facets      [][]int
}

// FromState collects the vertices of s, merging points with the same material
// position. The first displayed position seen for a vertex wins. Slivers are
// dropped before their vertices are collected.
func FromState(s paper.State) *Solution {
	sol := &Solution{}
	index := make(map[key]int)
	for _, f := range s {
		if math.Abs(f.MaterialArea()) < minArea {
			continue
		}
		ids := make([]int, 0, len(f.Points))
		for _, p := range f.Points {
			k := keyOf(p.Material)
			id, ok := index[k]
			if !ok {
				id = len(sol.Source)
				index[k] = id
				sol.Source = append(sol.Source, p.Material)
				sol.Destination = append(sol.Destination, p.Displayed)
			}
			if len(ids) > 0 && ids[len(ids)-1] == id {
				continue
			}
			ids = append(ids, id)
		}
		if len(ids) > 1 && ids[0] == ids[len(ids)-1] {
			ids = ids[:len(ids)-1]
		}
		if len(ids) >= 3 {
			sol.Facets = append(sol.Facets, ids)
		}
	}
	return sol
}

// Encode writes sol to w.
func (sol *Solution) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(sol.Source))
	for _, v := range sol.Source {
		fmt.Fprintln(bw, coord(v))
	}
	fmt.Fprintln(bw, len(sol.Facets))
	for _, f := range sol.Facets {
		parts := make([]string, 0, len(f)+1)
		parts = append(parts, fmt.Sprint(len(f)))
		for _, id := range f {
			parts = append(parts, fmt.Sprint(id))
		}
		fmt.Fprintln(bw, strings.Join(parts, " "))
	}
	for _, v := range sol.Destination {
		fmt.Fprintln(bw, coord(v))
	}
	return bw.Flush()
}

// String returns the encoded solution.
func (sol *Solution) String() string {
	var sb strings.Builder
	_ = sol.Encode(&sb)
	return sb.String()
}

// Size returns the number of non-whitespace characters of the encoding, the
// measure the contest limits solutions by.
func (sol *Solution) Size() int {
	n := 0
	for _, r := range sol.String() {
		if r != ' ' && r != '\n' {
			n++
		}
	}
	return n
}

func coord(v paper.Vec2) string {
	return rat(v.X) + "," + rat(v.Y)
}

// maxDenominator bounds the fractions tried before falling back to the exact
// binary value of the float.
const maxDenominator = 1 << 20

// rat formats f as the simplest fraction within rounding distance of it.
func rat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	if r, ok := simplest(f); ok {
		return r.RatString()
	}
	r := new(big.Rat)
	r.SetFloat64(f)
	return r.RatString()
}

// simplest walks the continued fraction expansion of f.
func simplest(f float64) (*big.Rat, bool) {
	var (
		h0, h1 = big.NewInt(0), big.NewInt(1)
		k0, k1 = big.NewInt(1), big.NewInt(0)
		x      = f
	)
	for i := 0; i < 64; i++ {
		a := math.Floor(x)
		ai := big.NewInt(int64(a))
		h2 := new(big.Int).Add(new(big.Int).Mul(ai, h1), h0)
		k2 := new(big.Int).Add(new(big.Int).Mul(ai, k1), k0)
		if k2.Cmp(big.NewInt(maxDenominator)) > 0 {
			return nil, false
		}
		r := new(big.Rat).SetFrac(h2, k2)
		if v, _ := r.Float64(); math.Abs(v-f) <= 1e-12*math.Max(1, math.Abs(f)) {
			return r, true
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		frac := x - a
		if frac == 0 {
			return r, true
		}
		x = 1 / frac
	}
	return nil, false
}
