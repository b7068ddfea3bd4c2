package detection

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// ErrTemplateMissing is returned when a corner template file does not exist.
	ErrTemplateMissing = errors.New("corner template not found")

	// ErrLowConfidence is returned when the best match for a corner scores
	// below the required minimum confidence.
	ErrLowConfidence = errors.New("corner marker match below minimum confidence")
)

// Corner identifies one of the four markers framing a screenshot's content.
type Corner int

// The four corners, in the order they are always located.
const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Corners lists every corner in location order.
var Corners = [...]Corner{TopLeft, TopRight, BottomLeft, BottomRight}

// String returns the short marker name: "tl", "tr", "bl" or "br".
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "tl"
	case TopRight:
		return "tr"
	case BottomLeft:
		return "bl"
	case BottomRight:
		return "br"
	default:
		return fmt.Sprintf("corner(%d)", int(c))
	}
}

// FileName returns the template file name for the corner, e.g. "tl.png".
func (c Corner) FileName() string {
	return c.String() + ".png"
}

// Loader loads a decoded image by path. *imaging.ImageCache satisfies it.
type Loader interface {
	Load(path string) (image.Image, error)
}

// CornerSet holds the four corner marker templates.
//
// Templates are loaded once and are read-only afterwards.
type CornerSet struct {
	templates [len(Corners)]image.Image
}

// NewCornerSet builds a set from already decoded templates.
func NewCornerSet(tl, tr, bl, br image.Image) *CornerSet {
	return &CornerSet{templates: [len(Corners)]image.Image{tl, tr, bl, br}}
}

// LoadCornerSet loads tl.png, tr.png, bl.png and br.png from dir.
//
// Every template must exist and decode; the first failure is returned. A
// missing file is reported as ErrTemplateMissing.
func LoadCornerSet(loader Loader, dir string) (*CornerSet, error) {
	set := &CornerSet{}
	for _, c := range Corners {
		path := filepath.Join(dir, c.FileName())
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, path)
			}
			return nil, fmt.Errorf("failed to stat template %s: %w", path, err)
		}

		img, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s template: %w", c, err)
		}
		set.templates[c] = img
	}
	return set, nil
}

// Template returns the template image for c.
func (s *CornerSet) Template(c Corner) image.Image {
	return s.templates[c]
}

// CornerMatches holds one match per corner, indexed by Corner.
type CornerMatches [len(Corners)]Match

// Rects returns the matched rectangles in corner order.
func (m CornerMatches) Rects() []image.Rectangle {
	rects := make([]image.Rectangle, len(m))
	for i, match := range m {
		rects[i] = match.Rect()
	}
	return rects
}

// Locate finds every corner marker in src, in the order tl, tr, bl, br.
//
// A match scoring below minConfidence stops the search with an error
// wrapping ErrLowConfidence. Pass 0 to accept the best match unconditionally.
// The matches found before a failure are returned alongside the error.
func (s *CornerSet) Locate(m Matcher, src image.Image, minConfidence float64) (CornerMatches, error) {
	var found CornerMatches
	for _, c := range Corners {
		match, err := m.Locate(src, s.templates[c])
		if err != nil {
			return found, fmt.Errorf("corner %s: %w", c, err)
		}
		found[c] = match
		if match.Confidence < minConfidence {
			return found, fmt.Errorf("%w: corner %s scored %.3f at (%d,%d), need %.3f",
				ErrLowConfidence, c, match.Confidence, match.X, match.Y, minConfidence)
		}
	}
	return found, nil
}
