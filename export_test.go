package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperfold/internal/paper"
	"paperfold/internal/silhouette"
	"paperfold/internal/solution"
)

func TestExportPNG(t *testing.T) {
	sil, err := silhouette.Lookup("donut")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, exportPNG(path, diagonalFold(t), sil, 120))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestRenderImagePanels(t *testing.T) {
	img, err := renderImage(paper.InitialState(), nil, 100)
	require.NoError(t, err)

	// The sheet panel maps the unit square to 105..195 across, so its
	// middle is the middle of the front face.
	r, g, b, _ := img.At(150, 50).RGBA()
	assert.InDelta(t, 245, int(r>>8), 2)
	assert.InDelta(t, 222, int(g>>8), 2)
	assert.InDelta(t, 178, int(b>>8), 2)

	r, g, b, _ = img.At(99, 98).RGBA()
	assert.Equal(t, [3]uint32{255, 255, 255}, [3]uint32{r >> 8, g >> 8, b >> 8})

	_, err = renderImage(paper.InitialState(), nil, 4)
	assert.Error(t, err)
}

func TestWriteSolution(t *testing.T) {
	s := diagonalFold(t)
	path := filepath.Join(t.TempDir(), "sheet.txt")
	require.NoError(t, writeSolution(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, solution.FromState(s).String(), string(data))

	assert.Error(t, writeSolution(filepath.Join(t.TempDir(), "missing", "x.txt"), s))
}
