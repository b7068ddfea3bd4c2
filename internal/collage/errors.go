package collage

import (
	"errors"
	"fmt"
)

// ErrNoImages is returned when no input image could be cropped.
var ErrNoImages = errors.New("no image could be processed")

// Kind classifies a pipeline failure.
type Kind int

const (
	// ConfigurationError covers missing templates and unusable output directories.
	ConfigurationError Kind = iota + 1
	// DecodeError means a source image could not be read.
	DecodeError
	// GeometryError means the crop region was empty or outside the image.
	GeometryError
	// LowConfidenceMatch means a corner marker could not be found reliably.
	LowConfidenceMatch
	// EncodeError means the collage could not be assembled or written.
	EncodeError
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration error"
	case DecodeError:
		return "decode error"
	case GeometryError:
		return "geometry error"
	case LowConfidenceMatch:
		return "low confidence match"
	case EncodeError:
		return "encode error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a pipeline failure tagged with its Kind and, for per-image
// failures, the path of the image.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
