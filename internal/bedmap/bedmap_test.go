package bedmap

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid2x3 = [][]string{
	{"Ana", "VAC", "Lui"},
	{"VAC", "Mar", "Jos"},
}

func TestDraw_Size(t *testing.T) {
	img, err := Draw(grid2x3, "VAC")
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, Margin+3*(CellSize+Margin), b.Dx())
	assert.Equal(t, Margin+2*(CellSize+Margin), b.Dy())
}

func TestDraw_CellColors(t *testing.T) {
	img, err := Draw(grid2x3, "VAC")
	require.NoError(t, err)

	// Top-left pixel of each tile is never covered by its label.
	corner := func(i, j int) (int, int) {
		return Margin + j*(CellSize+Margin), Margin + i*(CellSize+Margin)
	}

	x, y := corner(0, 0)
	assert.Equal(t, occupied, img.RGBAAt(x, y))
	x, y = corner(0, 1)
	assert.Equal(t, vacant, img.RGBAAt(x, y))
	x, y = corner(1, 0)
	assert.Equal(t, vacant, img.RGBAAt(x, y))
	assert.Equal(t, background, img.RGBAAt(0, 0))
}

func TestDraw_LabelIsDrawn(t *testing.T) {
	img, err := Draw([][]string{{"Ana"}}, "VAC")
	require.NoError(t, err)

	inked := 0
	for y := Margin; y < Margin+CellSize; y++ {
		for x := Margin; x < Margin+CellSize; x++ {
			if img.RGBAAt(x, y) == ink {
				inked++
			}
		}
	}
	assert.Positive(t, inked)
}

func TestDraw_Errors(t *testing.T) {
	_, err := Draw(nil, "VAC")
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = Draw([][]string{{"A", "B"}, {"C"}}, "VAC")
	assert.Error(t, err)
}

func TestRender_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, grid2x3, "VAC"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Margin+3*(CellSize+Margin), img.Bounds().Dx())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "camas.png")
	require.NoError(t, WriteFile(path, grid2x3, "VAC"))
	assert.FileExists(t, path)
}

func TestWriteFile_FailedRenderLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camas.png")
	err := WriteFile(path, [][]string{{"Ana", "VAC"}, {"Luis"}}, "VAC")
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
