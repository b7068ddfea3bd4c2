package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers can use errors.Is to tell them apart.
var (
	// ErrNoOutputDir is returned when no output directory is configured and
	// the pictures directory could not be determined.
	ErrNoOutputDir = errors.New("no output directory: set --output-dir or output_dir")

	// ErrNoTemplateDir is returned when the template directory is empty.
	ErrNoTemplateDir = errors.New("no template directory configured")

	// ErrInvalidQuality is returned when the JPEG quality is outside 1-100.
	ErrInvalidQuality = errors.New("invalid JPEG quality: must be between 1 and 100")

	// ErrInvalidConfidence is returned when the minimum confidence is outside 0-1.
	ErrInvalidConfidence = errors.New("invalid minimum confidence: must be between 0 and 1")

	// ErrInvalidPadColor is returned when the pad colour is not a hex colour.
	ErrInvalidPadColor = errors.New("invalid pad color: must be a hex color such as #000000")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
