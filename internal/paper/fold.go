package paper

import (
	"errors"
	"fmt"
)

// Fold folds s along the crease defined by a drag from cp0 to cp1. The part of
// the sheet right of the resolved crease is turned over onto the other side;
// see ResolveFoldLine for which side that is.
func Fold(s State, cp0, cp1 Vec2) (State, error) {
	l, err := ResolveFoldLine(cp0, cp1)
	if err != nil {
		return nil, err
	}
	return FoldAlong(s, l)
}

// FoldAlong folds s along l. Facets left of the line keep their relative
// order at the bottom of the stack; reflected pieces are stacked on top in
// reverse order, since folding turns the upper layers over last.
func FoldAlong(s State, l Line) (State, error) {
	r, err := l.reflector()
	if err != nil {
		return nil, fmt.Errorf("fold: %w", err)
	}

	var left, right []Facet
	for i := len(s) - 1; i >= 0; i-- {
		sp, err := SplitFacet(s[i], l)
		if err != nil {
			var te *TopologyError
			if errors.As(err, &te) {
				te.Facet = i
			}
			return nil, err
		}
		if sp.Left != nil {
			left = append(left, *sp.Left)
		}
		if sp.Right != nil {
			right = append(right, r.turnOver(*sp.Right))
		}
	}

	out := make(State, 0, len(left)+len(right))
	for i := len(left) - 1; i >= 0; i-- {
		out = append(out, left[i])
	}
	return append(out, right...), nil
}

func (r reflector) turnOver(f Facet) Facet {
	pts := make([]Point, len(f.Points))
	for i, p := range f.Points {
		pts[i] = Point{Material: p.Material, Displayed: r.apply(p.Displayed)}
	}
	return Facet{Front: !f.Front, Points: pts}
}
