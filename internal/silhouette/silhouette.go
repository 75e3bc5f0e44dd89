// Package silhouette reads target shapes in the contest problem format and
// keeps a small catalog of them.
//
// A problem lists polygons, one vertex per line as "x,y" with rational
// coordinates ("1/2,3/8"), followed by the skeleton segments as
// "x1,y1 x2,y2". Counter-clockwise polygons are outlines, clockwise ones are
// holes.
package silhouette

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"path"
	"sort"
	"strconv"
	"strings"

	"paperfold/internal/paper"
)

// Silhouette is the shape a folded sheet should cover.
type Silhouette struct {
	Name     string
	Polygons [][]paper.Vec2
	Holes    [][]paper.Vec2
	Segments [][2]paper.Vec2
}

// Contains reports whether v is inside an outline and outside every hole.
func (s *Silhouette) Contains(v paper.Vec2) bool {
	in := false
	for _, p := range s.Polygons {
		if paper.PolygonContains(p, v) {
			in = true
			break
		}
	}
	if !in {
		return false
	}
	for _, h := range s.Holes {
		if paper.PolygonContains(h, v) {
			return false
		}
	}
	return true
}

// Area returns the area covered by the silhouette.
func (s *Silhouette) Area() float64 {
	var sum float64
	for _, p := range s.Polygons {
		sum += paper.PolygonArea(p)
	}
	for _, h := range s.Holes {
		sum += paper.PolygonArea(h)
	}
	return sum
}

// ParseError reports a malformed problem.
type ParseError struct {
	Name string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("silhouette %s: line %d: %v", e.Name, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type lineReader struct {
	sc   *bufio.Scanner
	name string
	line int
}

func (r *lineReader) next() (string, error) {
	for r.sc.Scan() {
		r.line++
		if s := strings.TrimSpace(r.sc.Text()); s != "" {
			return s, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return "", r.errorf("%v", err)
	}
	return "", r.errorf("unexpected end of input")
}

func (r *lineReader) count() (int, error) {
	s, err := r.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, r.errorf("bad count %q", s)
	}
	return n, nil
}

func (r *lineReader) errorf(format string, args ...any) error {
	return &ParseError{Name: r.name, Line: r.line, Err: fmt.Errorf(format, args...)}
}

// Parse reads one problem from rd.
func Parse(name string, rd io.Reader) (*Silhouette, error) {
	r := &lineReader{sc: bufio.NewScanner(rd), name: name}
	s := &Silhouette{Name: name}

	npoly, err := r.count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < npoly; i++ {
		nvert, err := r.count()
		if err != nil {
			return nil, err
		}
		poly := make([]paper.Vec2, nvert)
		for j := range poly {
			line, err := r.next()
			if err != nil {
				return nil, err
			}
			if poly[j], err = parseCoord(line); err != nil {
				return nil, r.errorf("%v", err)
			}
		}
		if paper.PolygonArea(poly) > 0 {
			s.Polygons = append(s.Polygons, poly)
		} else {
			s.Holes = append(s.Holes, poly)
		}
	}

	nseg, err := r.count()
	if err != nil {
		return nil, err
	}
	s.Segments = make([][2]paper.Vec2, nseg)
	for i := range s.Segments {
		line, err := r.next()
		if err != nil {
			return nil, err
		}
		ends := strings.Fields(line)
		if len(ends) != 2 {
			return nil, r.errorf("segment needs two endpoints, got %q", line)
		}
		for k, e := range ends {
			if s.Segments[i][k], err = parseCoord(e); err != nil {
				return nil, r.errorf("%v", err)
			}
		}
	}
	return s, nil
}

func parseCoord(s string) (paper.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return paper.Vec2{}, fmt.Errorf("bad coordinate %q", s)
	}
	x, err := parseRat(xs)
	if err != nil {
		return paper.Vec2{}, err
	}
	y, err := parseRat(ys)
	if err != nil {
		return paper.Vec2{}, err
	}
	return paper.Vec(x, y), nil
}

func parseRat(s string) (float64, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return 0, fmt.Errorf("bad number %q", s)
	}
	f, _ := r.Float64()
	return f, nil
}

//go:embed problems/*.txt
var problems embed.FS

// Catalog returns the built-in silhouettes sorted by name.
func Catalog() ([]*Silhouette, error) {
	files, err := fs.Glob(problems, "problems/*.txt")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	out := make([]*Silhouette, 0, len(files))
	for _, file := range files {
		f, err := problems.Open(file)
		if err != nil {
			return nil, err
		}
		s, err := Parse(strings.TrimSuffix(path.Base(file), ".txt"), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Lookup returns the built-in silhouette with the given name.
func Lookup(name string) (*Silhouette, error) {
	all, err := Catalog()
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("silhouette %q not found", name)
}
