package imaging

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrEmptyGrid is returned when composing a grid that has no rows.
var ErrEmptyGrid = errors.New("grid has no rows")

// Grid collects finished row images and stacks them into the final collage.
//
// Rows narrower than the widest row are right-padded with the grid's pad
// colour so that every strip spans the full collage width.
type Grid struct {
	rows  []image.Image
	width int
	pad   color.Color
}

// NewGrid returns an empty grid that pads short rows with pad.
// A nil pad means fully transparent black, which encodes as black in JPEG.
func NewGrid(pad color.Color) *Grid {
	if pad == nil {
		pad = color.NRGBA{}
	}
	return &Grid{pad: pad}
}

// Append adds a finished row below the rows already in the grid.
func (g *Grid) Append(row image.Image) {
	g.rows = append(g.rows, row)
	g.width = max(g.width, row.Bounds().Dx())
}

// Len returns the number of rows in the grid.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Width returns the width of the widest row appended so far.
func (g *Grid) Width() int {
	return g.width
}

// Compose pads every row to the grid width and joins the rows top to bottom.
// Like Row.Finalize, it consumes the grid.
func (g *Grid) Compose() (*image.NRGBA, error) {
	if len(g.rows) == 0 {
		return nil, ErrEmptyGrid
	}
	defer func() { g.rows, g.width = nil, 0 }()

	height := 0
	padded := make([]image.Image, len(g.rows))
	for i, row := range g.rows {
		padded[i] = PadRight(row, g.width, g.pad)
		height += padded[i].Bounds().Dy()
	}

	dst := imaging.New(g.width, height, color.NRGBA{})
	y := 0
	for _, row := range padded {
		dst = imaging.Paste(dst, row, image.Pt(0, y))
		y += row.Bounds().Dy()
	}
	return dst, nil
}

// PadRight widens img to width by appending a pad-coloured strip on the right.
//
// The row keeps its height. An image that is already at least width pixels
// wide is returned as is, so padding an already uniform row is a no-op.
func PadRight(img image.Image, width int, pad color.Color) image.Image {
	b := img.Bounds()
	if b.Dx() >= width {
		return img
	}
	dst := imaging.New(width, b.Dy(), pad)
	return imaging.Paste(dst, img, image.Pt(0, 0))
}
