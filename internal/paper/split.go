package paper

// Split is the result of cutting a facet with a fold line. A facet that does
// not cross the line ends up whole on one side and the other side is nil.
type Split struct {
	Left  *Facet
	Right *Facet
}

// SplitFacet cuts f along l. Cut points are interpolated with the same
// parameter in displayed and material space, so every new vertex stays on the
// edge it was cut from in both coordinate systems.
//
// A facet crossing the line other than zero or two times cannot come out of a
// correct sequence of folds; it is reported as a *TopologyError.
func SplitFacet(f Facet, l Line) (Split, error) {
	n := len(f.Points)
	if n == 0 {
		return Split{Left: &f}, nil
	}

	u := l.Dir()
	var (
		bounds [2][]Point
		active int
		cuts   int
	)
	for i, p := range f.Points {
		bounds[active] = append(bounds[active], p)

		q := f.Points[(i+1)%n]
		d := q.Displayed.Sub(p.Displayed)
		den := d.Cross(u)
		if den == 0 {
			continue
		}
		t := p.Displayed.Sub(l.P0).Cross(u) / -den
		if t < 0 || t >= 1 {
			continue
		}
		c := Point{
			Material:  p.Material.Lerp(q.Material, t),
			Displayed: p.Displayed.Add(d.Scale(t)),
		}
		bounds[active] = append(bounds[active], c)
		active ^= 1
		bounds[active] = append(bounds[active], c)
		cuts++
	}

	switch cuts {
	case 0:
		if l.Right(f.Points[0].Displayed) {
			return Split{Right: &f}, nil
		}
		return Split{Left: &f}, nil
	case 2:
	default:
		return Split{}, &TopologyError{Facet: -1, Cuts: cuts}
	}

	// bounds[0] holds the facet's first vertex and takes its side, even when
	// that vertex lies on the line; bounds[1] gets the other side.
	first := Facet{Front: f.Front, Points: normalize(bounds[0])}
	second := Facet{Front: f.Front, Points: normalize(bounds[1])}
	if l.Right(f.Points[0].Displayed) {
		return Split{Left: &second, Right: &first}, nil
	}
	return Split{Left: &first, Right: &second}, nil
}
