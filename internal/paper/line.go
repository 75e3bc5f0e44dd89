package paper

// Line is an oriented fold line through P0 and P1. Points on the right of the
// line, or on it, belong to the part of the sheet that gets folded over.
type Line struct {
	P0 Vec2
	P1 Vec2
}

// ResolveFoldLine turns a drag from cp0 to cp1 into the crease that folds cp0
// onto cp1: the perpendicular bisector of the segment. The endpoints are
// swapped when Im(conj(p0−cp0)·(cp1−cp0)) ≥ 0. For drags whose midpoint lies
// inside the unit square this puts cp0 on the right; further out the
// orientation can flip, and the other half of the sheet is folded.
func ResolveFoldLine(cp0, cp1 Vec2) (Line, error) {
	v := cp1.Sub(cp0)
	m := cp0.Add(cp1).Scale(0.5)
	// bisector: v.X*x + v.Y*y = c
	c := v.X*m.X + v.Y*m.Y

	var l Line
	switch {
	case v.X != 0:
		l = Line{P0: Vec(c/v.X, 0), P1: Vec((c-v.Y)/v.X, 1)}
	case v.Y != 0:
		l = Line{P0: Vec(0, c/v.Y), P1: Vec(1, c/v.Y)}
	default:
		return Line{}, ErrDegenerateGesture
	}

	if l.P0.Sub(cp0).Cross(v) >= 0 {
		l.P0, l.P1 = l.P1, l.P0
	}
	return l, nil
}

// Dir returns the direction vector P1−P0.
func (l Line) Dir() Vec2 {
	return l.P1.Sub(l.P0)
}

// Side returns Im((P1−P0)·conj(v−P0)). It is positive on the right of the
// line, negative on the left and zero on it.
func (l Line) Side(v Vec2) float64 {
	return v.Sub(l.P0).Cross(l.Dir())
}

// Right reports whether v belongs to the folded side. Points exactly on the
// line count as right.
func (l Line) Right(v Vec2) bool {
	return l.Side(v) >= 0
}

// Reflect mirrors v across the line.
func (l Line) Reflect(v Vec2) (Vec2, error) {
	r, err := l.reflector()
	if err != nil {
		return Vec2{}, err
	}
	return r.apply(v), nil
}

type reflector struct {
	p0 Vec2
	r  Vec2 // unit complex u/conj(u)
}

func (l Line) reflector() (reflector, error) {
	u := l.Dir()
	r, err := u.Div(u.Conj())
	if err != nil {
		return reflector{}, err
	}
	return reflector{p0: l.P0, r: r}, nil
}

func (r reflector) apply(v Vec2) Vec2 {
	return v.Sub(r.p0).Conj().RotateScale(r.r).Add(r.p0)
}
