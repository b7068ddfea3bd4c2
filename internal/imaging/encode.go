package imaging

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality matches the quality most image toolkits use when none is given.
const DefaultJPEGQuality = 95

// ErrNotJPEG is returned by SaveJPEG when the destination has another extension.
var ErrNotJPEG = errors.New("output path must end in .jpg or .jpeg")

// SaveJPEG encodes img as a JPEG file at path with the given quality (1-100).
//
// The file is created or truncated. Any directory in path must already exist.
func SaveJPEG(img image.Image, path string, quality int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
	default:
		return fmt.Errorf("%w: %s", ErrNotJPEG, path)
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
