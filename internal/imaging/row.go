package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// ErrEmptyRow is returned when finalizing a row that has no images.
var ErrEmptyRow = errors.New("row has no images")

// Row accumulates images destined for one horizontal strip of a collage.
//
// A Row is built fresh for every strip: create it with NewRow, Add images in
// display order, then call Finalize once. The row height is the tallest
// member seen so far and is maintained as images arrive.
type Row struct {
	tiles  []image.Image
	height int
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{}
}

// Add appends img to the right end of the row.
func (r *Row) Add(img image.Image) {
	r.tiles = append(r.tiles, img)
	r.height = max(r.height, img.Bounds().Dy())
}

// Len returns the number of images in the row.
func (r *Row) Len() int {
	return len(r.tiles)
}

// Height returns the target height of the row.
func (r *Row) Height() int {
	return r.height
}

// Finalize scales every member to the row height and joins them left to right.
//
// Aspect ratio is preserved per image: an image of size w×h becomes
// round(w·H/h)×H where H is the row height. Images already H pixels tall are
// pasted unchanged. The row is emptied, so a second call returns ErrEmptyRow.
func (r *Row) Finalize() (*image.NRGBA, error) {
	if len(r.tiles) == 0 {
		return nil, ErrEmptyRow
	}
	defer func() { r.tiles, r.height = nil, 0 }()

	scaled := make([]image.Image, len(r.tiles))
	width := 0
	for i, tile := range r.tiles {
		scaled[i] = ScaleToHeight(tile, r.height)
		width += scaled[i].Bounds().Dx()
	}

	return HConcat(scaled, width, r.height), nil
}

// ScaledWidth returns the width of a w×h image scaled uniformly to height.
func ScaledWidth(w, h, height int) int {
	if h == 0 {
		return 0
	}
	return int(math.Round(float64(w) * float64(height) / float64(h)))
}

// ScaleToHeight resizes img to the given height, preserving its aspect ratio.
// The original image is returned when it already has that height.
func ScaleToHeight(img image.Image, height int) image.Image {
	b := img.Bounds()
	if b.Dy() == height {
		return img
	}
	width := max(ScaledWidth(b.Dx(), b.Dy(), height), 1)
	return imaging.Resize(img, width, height, imaging.Linear)
}

// HConcat pastes images side by side onto a new width×height canvas.
func HConcat(images []image.Image, width, height int) *image.NRGBA {
	dst := imaging.New(width, height, color.NRGBA{})
	x := 0
	for _, img := range images {
		dst = imaging.Paste(dst, img, image.Pt(x, 0))
		x += img.Bounds().Dx()
	}
	return dst
}
