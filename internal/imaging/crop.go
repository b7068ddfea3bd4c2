package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var (
	// ErrEmptyRegion is returned when a crop region has no area.
	ErrEmptyRegion = errors.New("crop region is empty")

	// ErrOutOfBounds is returned when a crop region extends past the source image.
	ErrOutOfBounds = errors.New("crop region outside image bounds")
)

// BoundingBox returns the smallest rectangle enclosing every given rectangle.
//
// Unlike image.Rectangle.Union, empty inputs are not ignored: a zero-sized
// rectangle still contributes its position. This keeps the box faithful to
// where each corner marker was found. BoundingBox of no rectangles is the
// zero rectangle.
func BoundingBox(rects ...image.Rectangle) image.Rectangle {
	if len(rects) == 0 {
		return image.Rectangle{}
	}

	box := rects[0]
	for _, r := range rects[1:] {
		box.Min.X = min(box.Min.X, r.Min.X)
		box.Min.Y = min(box.Min.Y, r.Min.Y)
		box.Max.X = max(box.Max.X, r.Max.X)
		box.Max.Y = max(box.Max.Y, r.Max.Y)
	}
	return box
}

// CropRegion extracts region from img as a new image with origin (0,0).
//
// The region is expressed in img's coordinate space. It must have positive
// width and height and lie entirely within img.Bounds(); no clipping is done,
// since a region that needs clipping means the markers were not where the
// caller expected.
func CropRegion(img image.Image, region image.Rectangle) (*image.NRGBA, error) {
	bounds := img.Bounds()

	if region.Dx() <= 0 || region.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %v (%dx%d)", ErrEmptyRegion, region, region.Dx(), region.Dy())
	}
	if !region.In(bounds) {
		return nil, fmt.Errorf("%w: region %v, image %v", ErrOutOfBounds, region, bounds)
	}

	return imaging.Crop(img, region), nil
}
