package main

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperfold/internal/paper"
	"paperfold/internal/silhouette"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func diagonalFold(t *testing.T) paper.State {
	t.Helper()
	s, err := paper.Fold(paper.InitialState(), paper.Vec(0, 0), paper.Vec(1, 1))
	require.NoError(t, err)
	return s
}

func cellAt(t *testing.T, grid [][]cell, vp viewport, v paper.Vec2) cell {
	t.Helper()
	col, row := vp.toCell(v)
	require.True(t, vp.contains(col, row), "%v is off screen", v)
	return grid[row][col]
}

func TestViewportRoundTrip(t *testing.T) {
	for _, vp := range []viewport{
		foldedViewport(80, 40, 0, 0),
		foldedViewport(57, 13, -3, 7),
		materialViewport(30, 20),
	} {
		for r := 0; r < vp.rows; r++ {
			for c := 0; c < vp.cols; c++ {
				col, row := vp.toCell(vp.toPlane(c, r))
				require.Equal(t, [2]int{c, r}, [2]int{col, row})
			}
		}
	}
}

func TestViewportOrientation(t *testing.T) {
	vp := foldedViewport(80, 40, 0, 0)
	_, top := vp.toCell(paper.Vec(0.5, 1))
	_, bottom := vp.toCell(paper.Vec(0.5, 0))
	assert.Less(t, top, bottom, "y grows upwards")

	left, _ := vp.toCell(paper.Vec(0, 0.5))
	right, _ := vp.toCell(paper.Vec(1, 0.5))
	assert.Less(t, left, right)

	panned := foldedViewport(80, 40, 5, 0)
	c0, _ := vp.toCell(paper.Vec(0.51, 0.5))
	c1, _ := panned.toCell(paper.Vec(0.51, 0.5))
	assert.Equal(t, c0-5, c1)
}

func TestMaterialViewportFitsSheet(t *testing.T) {
	for _, size := range [][2]int{{30, 20}, {60, 30}, {10, 40}} {
		vp := materialViewport(size[0], size[1])
		for _, v := range []paper.Vec2{paper.Vec(0, 0), paper.Vec(1, 1), paper.Vec(0, 1), paper.Vec(1, 0)} {
			col, row := vp.toCell(v)
			assert.True(t, vp.contains(col, row), "%v not visible in %dx%d", v, size[0], size[1])
		}
	}
}

func TestFoldedGrid(t *testing.T) {
	vp := foldedViewport(80, 40, 0, 0)

	grid := foldedGrid(vp, paper.InitialState(), nil)
	assert.Equal(t, cellFront, cellAt(t, grid, vp, paper.Vec(0.5, 0.5)).kind)
	assert.Equal(t, cellBlank, cellAt(t, grid, vp, paper.Vec(1.3, 0.5)).kind)

	s := diagonalFold(t)
	grid = foldedGrid(vp, s, nil)
	assert.Equal(t, cell{'▒', cellBack}, cellAt(t, grid, vp, paper.Vec(0.8, 0.8)))
	assert.Equal(t, cellBlank, cellAt(t, grid, vp, paper.Vec(0.2, 0.2)).kind)

	square, err := silhouette.Lookup("sample")
	require.NoError(t, err)
	grid = foldedGrid(vp, s, square)
	assert.Equal(t, cell{'░', cellTarget}, cellAt(t, grid, vp, paper.Vec(0.2, 0.2)))
	assert.Equal(t, cellBack, cellAt(t, grid, vp, paper.Vec(0.8, 0.8)).kind)

	var creases int
	for _, row := range grid {
		for _, c := range row {
			if c.kind == cellCrease {
				creases++
			}
		}
	}
	assert.Positive(t, creases)
}

func TestMaterialGrid(t *testing.T) {
	vp := materialViewport(60, 30)
	grid := materialGrid(vp, diagonalFold(t))
	assert.Equal(t, cellBack, cellAt(t, grid, vp, paper.Vec(0.2, 0.2)).kind)
	assert.Equal(t, cellFront, cellAt(t, grid, vp, paper.Vec(0.8, 0.8)).kind)
	assert.Equal(t, cellBlank, cellAt(t, grid, vp, paper.Vec(-0.05, 0.5)).kind)
}

func TestMarkOffScreen(t *testing.T) {
	vp := foldedViewport(10, 5, 0, 0)
	grid := foldedGrid(vp, paper.InitialState(), nil)
	mark(grid, vp, paper.Vec(100, 100), '●', cellMarker)
	mark(grid, vp, paper.Vec(0.5, 0.5), '●', cellMarker)
	assert.Equal(t, cell{'●', cellMarker}, cellAt(t, grid, vp, paper.Vec(0.5, 0.5)))
}

func TestRenderGrid(t *testing.T) {
	grid := [][]cell{
		{{' ', cellBlank}, {'█', cellFront}, {'█', cellFront}, {'▒', cellBack}},
		{{'░', cellTarget}, {'●', cellMarker}, {' ', cellBlank}, {' ', cellBlank}},
	}
	lines := renderGrid(grid)
	require.Len(t, lines, 2)
	assert.Equal(t, " ██▒", stripANSI(lines[0]))
	assert.Equal(t, "░●  ", stripANSI(lines[1]))

	joined := joinPanes([]string{"ab", "cd"}, []string{"x"})
	assert.Equal(t, []string{"ab│x", "cd│"}, joined)
}
