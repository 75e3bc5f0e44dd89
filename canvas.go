package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"paperfold/internal/paper"
	"paperfold/internal/silhouette"
)

// viewport maps terminal cells to plane coordinates. Row 0 is the top row and
// y grows upwards, as on the original sheet.
type viewport struct {
	cols    int
	rows    int
	originX float64 // plane position of the top-left corner
	originY float64
	cellW   float64
	cellH   float64
}

// foldedViewport shows viewSpan units of display space vertically, centered
// on the sheet, shifted by whole cells of pan.
func foldedViewport(cols, rows, panX, panY int) viewport {
	cols, rows = max(cols, 1), max(rows, 1)
	cellH := viewSpan / float64(rows)
	cellW := cellH / cellAspect
	return viewport{
		cols:    cols,
		rows:    rows,
		originX: 0.5 - float64(cols)/2*cellW + float64(panX)*cellW,
		originY: viewTop - float64(panY)*cellH,
		cellW:   cellW,
		cellH:   cellH,
	}
}

// materialViewport fits the unit square plus a margin into the pane.
func materialViewport(cols, rows int) viewport {
	cols, rows = max(cols, 1), max(rows, 1)
	span := 1 + 2*materialMargin
	cellH := span / float64(rows)
	cellW := cellH / cellAspect
	if float64(cols)*cellW < span {
		cellW = span / float64(cols)
		cellH = cellW * cellAspect
	}
	return viewport{
		cols:    cols,
		rows:    rows,
		originX: 0.5 - float64(cols)/2*cellW,
		originY: 0.5 + float64(rows)/2*cellH,
		cellW:   cellW,
		cellH:   cellH,
	}
}

// toPlane returns the plane position of the center of a cell.
func (vp viewport) toPlane(col, row int) paper.Vec2 {
	return paper.Vec(
		vp.originX+(float64(col)+0.5)*vp.cellW,
		vp.originY-(float64(row)+0.5)*vp.cellH,
	)
}

// toCell returns the cell containing v. The result may lie outside the pane.
func (vp viewport) toCell(v paper.Vec2) (int, int) {
	col := int(math.Floor((v.X - vp.originX) / vp.cellW))
	row := int(math.Floor((vp.originY - v.Y) / vp.cellH))
	return col, row
}

func (vp viewport) contains(col, row int) bool {
	return col >= 0 && col < vp.cols && row >= 0 && row < vp.rows
}

type cellKind int

const (
	cellBlank cellKind = iota
	cellTarget
	cellFront
	cellBack
	cellCrease
	cellMarker
	cellCursor
)

type cell struct {
	ch   rune
	kind cellKind
}

var cellStyles = map[cellKind]lipgloss.Style{
	cellTarget: lipgloss.NewStyle().Foreground(lipgloss.Color("217")),
	cellFront:  lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	cellBack:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	cellCrease: lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	cellMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	cellCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
}

// topFacet returns the index of the uppermost facet covering v, or -1.
func topFacet(s paper.State, v paper.Vec2) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Contains(v) {
			return i
		}
	}
	return -1
}

func materialFacet(s paper.State, v paper.Vec2) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].ContainsMaterial(v) {
			return i
		}
	}
	return -1
}

// rasterize fills a grid from the facet index found at every cell. A cell
// whose right or lower neighbour shows a different facet is a crease.
func rasterize(vp viewport, s paper.State, find func(paper.State, paper.Vec2) int, target func(paper.Vec2) bool) [][]cell {
	idx := make([][]int, vp.rows)
	for r := range idx {
		idx[r] = make([]int, vp.cols)
		for c := range idx[r] {
			idx[r][c] = find(s, vp.toPlane(c, r))
		}
	}

	grid := make([][]cell, vp.rows)
	for r := range grid {
		grid[r] = make([]cell, vp.cols)
		for c := range grid[r] {
			i := idx[r][c]
			switch {
			case i < 0 && target != nil && target(vp.toPlane(c, r)):
				grid[r][c] = cell{'░', cellTarget}
			case i < 0:
				grid[r][c] = cell{' ', cellBlank}
			case (c+1 < vp.cols && idx[r][c+1] != i) || (r+1 < vp.rows && idx[r+1][c] != i):
				grid[r][c] = cell{'▓', cellCrease}
			case s[i].Front:
				grid[r][c] = cell{'█', cellFront}
			default:
				grid[r][c] = cell{'▒', cellBack}
			}
		}
	}
	return grid
}

// foldedGrid draws the sheet as it lies on the table, with the target
// silhouette showing wherever the paper does not cover it.
func foldedGrid(vp viewport, s paper.State, sil *silhouette.Silhouette) [][]cell {
	var target func(paper.Vec2) bool
	if sil != nil {
		target = sil.Contains
	}
	return rasterize(vp, s, topFacet, target)
}

// materialGrid draws the unfolded sheet with every region shaded by the face
// it currently shows, which makes the crease pattern visible.
func materialGrid(vp viewport, s paper.State) [][]cell {
	return rasterize(vp, s, materialFacet, nil)
}

// mark puts ch at the cell containing v, if that cell is visible.
func mark(grid [][]cell, vp viewport, v paper.Vec2, ch rune, kind cellKind) {
	col, row := vp.toCell(v)
	if vp.contains(col, row) {
		grid[row][col] = cell{ch, kind}
	}
}

// renderGrid turns a grid into styled lines, one style call per run of cells
// of the same kind.
func renderGrid(grid [][]cell) []string {
	lines := make([]string, len(grid))
	for r, row := range grid {
		var sb strings.Builder
		for c := 0; c < len(row); {
			kind := row[c].kind
			var run []rune
			for ; c < len(row) && row[c].kind == kind; c++ {
				run = append(run, row[c].ch)
			}
			if style, ok := cellStyles[kind]; ok {
				sb.WriteString(style.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
		}
		lines[r] = sb.String()
	}
	return lines
}

// joinPanes puts two equally tall panes side by side.
func joinPanes(left, right []string) []string {
	out := make([]string, len(left))
	for i := range left {
		out[i] = left[i] + "│"
		if i < len(right) {
			out[i] += right[i]
		}
	}
	return out
}
