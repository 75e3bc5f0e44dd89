package paper

import "math"

// Point is a vertex of a facet. Material is where the vertex sits on the
// unfolded sheet and never changes; Displayed is where it currently appears.
type Point struct {
	Material  Vec2
	Displayed Vec2
}

// Pt returns a point whose material and displayed positions coincide.
func Pt(x, y float64) Point {
	v := Vec(x, y)
	return Point{Material: v, Displayed: v}
}

// Facet is a flat polygonal piece of paper. Points form a cycle in displayed
// space. Front is true when the piece shows the original front face, that is
// after an even number of reflections.
type Facet struct {
	Front  bool
	Points []Point
}

// Area returns the signed shoelace area of the facet in displayed space.
func (f Facet) Area() float64 {
	return signedArea(f.Points, func(p Point) Vec2 { return p.Displayed })
}

// MaterialArea returns the signed area of the facet on the unfolded sheet.
func (f Facet) MaterialArea() float64 {
	return signedArea(f.Points, func(p Point) Vec2 { return p.Material })
}

func signedArea(pts []Point, at func(Point) Vec2) float64 {
	var sum float64
	for i := range pts {
		a := at(pts[i])
		b := at(pts[(i+1)%len(pts)])
		sum += a.Cross(b)
	}
	return sum / 2
}

// Contains reports whether v lies inside the displayed polygon, using the
// even-odd rule.
func (f Facet) Contains(v Vec2) bool {
	return evenOdd(len(f.Points), func(i int) Vec2 { return f.Points[i].Displayed }, v)
}

// ContainsMaterial is Contains for the material polygon.
func (f Facet) ContainsMaterial(v Vec2) bool {
	return evenOdd(len(f.Points), func(i int) Vec2 { return f.Points[i].Material }, v)
}

// PolygonContains reports whether v lies inside poly, using the even-odd rule.
func PolygonContains(poly []Vec2, v Vec2) bool {
	return evenOdd(len(poly), func(i int) Vec2 { return poly[i] }, v)
}

// PolygonArea returns the signed area of poly; it is positive for
// counter-clockwise polygons.
func PolygonArea(poly []Vec2) float64 {
	var sum float64
	for i := range poly {
		sum += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return sum / 2
}

func evenOdd(n int, at func(int) Vec2, v Vec2) bool {
	in := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := at(i), at(j)
		if (a.Y > v.Y) != (b.Y > v.Y) &&
			v.X < (b.X-a.X)*(v.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// normalize drops every point equal in both coordinates to its cyclic
// predecessor.
func normalize(pts []Point) []Point {
	if len(pts) < 2 {
		return append([]Point(nil), pts...)
	}
	out := make([]Point, 0, len(pts))
	for i, p := range pts {
		if p == pts[(i+len(pts)-1)%len(pts)] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// State is a snapshot of the folded sheet. Facets later in the list lie on
// top of earlier ones.
type State []Facet

// InitialState returns the unfolded unit square, front side up.
func InitialState() State {
	return State{{
		Front:  true,
		Points: []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
	}}
}

// Area returns the total unsigned displayed area of all facets.
func (s State) Area() float64 {
	var sum float64
	for _, f := range s {
		sum += math.Abs(f.Area())
	}
	return sum
}

// Mirror returns the sheet turned over: the facet order is reversed, every
// facet changes face and every displayed position is mirrored across x = 0.5.
func (s State) Mirror() State {
	out := make(State, len(s))
	for i, f := range s {
		pts := make([]Point, len(f.Points))
		for j, p := range f.Points {
			pts[j] = Point{Material: p.Material, Displayed: p.Displayed.MirrorH()}
		}
		out[len(s)-1-i] = Facet{Front: !f.Front, Points: pts}
	}
	return out
}

// Equal reports whether s and o hold the same facets in the same order with
// identical coordinates.
func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i].Front != o[i].Front || len(s[i].Points) != len(o[i].Points) {
			return false
		}
		for j := range s[i].Points {
			if s[i].Points[j] != o[i].Points[j] {
				return false
			}
		}
	}
	return true
}

// Bounds returns the displayed bounding box of the state.
func (s State) Bounds() (min, max Vec2) {
	min = Vec(math.Inf(1), math.Inf(1))
	max = Vec(math.Inf(-1), math.Inf(-1))
	for _, f := range s {
		for _, p := range f.Points {
			min.X = math.Min(min.X, p.Displayed.X)
			min.Y = math.Min(min.Y, p.Displayed.Y)
			max.X = math.Max(max.X, p.Displayed.X)
			max.Y = math.Max(max.Y, p.Displayed.Y)
		}
	}
	return min, max
}
