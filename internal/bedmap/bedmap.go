// Package bedmap renders the bed grid as a PNG image, one tile per bed.
package bedmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// CellSize is the side of a bed tile in pixels.
	CellSize = 64
	// Margin separates tiles and frames the image.
	Margin = 8

	textScale      = 2
	baseTextHeight = 13
)

// ErrEmptyGrid is returned when there is nothing to draw.
var ErrEmptyGrid = errors.New("bed grid is empty")

var (
	background = color.RGBA{0x1e, 0x1e, 0x2e, 0xff}
	occupied   = color.RGBA{0x5a, 0x56, 0xe0, 0xff}
	vacant     = color.RGBA{0x45, 0x47, 0x5a, 0xff}
	ink        = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Draw paints grid, as produced by the query engine, into an RGBA image.
// Cells holding vacantToken get the vacant color.
func Draw(grid [][]string, vacantToken string) (*image.RGBA, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(grid), len(grid[0])

	img := image.NewRGBA(image.Rect(0, 0,
		Margin+cols*(CellSize+Margin),
		Margin+rows*(CellSize+Margin)))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), cols)
		}
		for j, tok := range row {
			cell := image.Rect(0, 0, CellSize, CellSize).Add(image.Pt(
				Margin+j*(CellSize+Margin),
				Margin+i*(CellSize+Margin)))

			fill := occupied
			if tok == vacantToken {
				fill = vacant
			}
			draw.Draw(img, cell, image.NewUniform(fill), image.Point{}, draw.Src)
			drawLabel(img, cell, tok)
		}
	}
	return img, nil
}

// drawLabel renders text with the 7x13 face, scales it up and centers it
// in cell.
func drawLabel(dst *image.RGBA, cell image.Rectangle, text string) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	if w == 0 {
		return
	}

	textImg := image.NewRGBA(image.Rect(0, 0, w, baseTextHeight))
	d := &font.Drawer{
		Dst:  textImg,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.Point26_6{Y: fixed.I(face.Ascent)},
	}
	d.DrawString(text)

	scaled := image.Rect(0, 0, w*textScale, baseTextHeight*textScale)
	if scaled.Dx() > cell.Dx() {
		scaled.Max.X = cell.Dx()
	}
	at := scaled.Add(image.Pt(
		cell.Min.X+(cell.Dx()-scaled.Dx())/2,
		cell.Min.Y+(cell.Dy()-scaled.Dy())/2))

	draw.NearestNeighbor.Scale(dst, at, textImg, textImg.Bounds(), draw.Over, nil)
}

// Render encodes the grid image as PNG to w.
func Render(w io.Writer, grid [][]string, vacantToken string) error {
	img, err := Draw(grid, vacantToken)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteFile renders the grid to a PNG file at path, creating parent
// directories as needed. A failed render removes the partial file.
func WriteFile(path string, grid [][]string, vacantToken string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
			return
		}
		log.Info().Str("path", path).Msg("bed map written")
	}()

	return Render(f, grid, vacantToken)
}
