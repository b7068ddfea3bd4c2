package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ironsheep/screenshot-tiler/internal/imaging"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "screenshot-tiler"

	// DefaultTemplateDir is resolved relative to the working directory and
	// holds tl.png, tr.png, bl.png and br.png.
	DefaultTemplateDir = "corner_templates"

	// DefaultMinConfidence rejects corners whose best correlation score is
	// below it. Normalized cross-correlation scores stay high even for poor
	// matches on bright screenshots, so the bar sits close to 1.
	DefaultMinConfidence = 0.9

	// OutputPrefix and OutputLayout form the collage file name,
	// e.g. tile-2024-03-01-14-05-09.jpg.
	OutputPrefix = "tile-"
	OutputLayout = "2006-01-02-15-04-05"
	OutputExt    = ".jpg"
)

// Config holds all settings of a collage run.
//
// It is populated from defaults, a config file and CLI flags, then passed to
// the pipeline explicitly rather than read from global state.
type Config struct {
	// TemplateDir is the directory holding the four corner templates.
	TemplateDir string `yaml:"template_dir"`

	// OutputDir is where the collage is written. Defaults to the user's
	// XDG pictures directory. Created if it does not exist.
	OutputDir string `yaml:"output_dir"`

	// Quality is the JPEG quality of the collage, 1-100.
	Quality int `yaml:"quality"`

	// MinConfidence is the lowest acceptable match score for a corner marker.
	// Zero accepts every best match, however poor.
	MinConfidence float64 `yaml:"min_confidence"`

	// PadColor fills the unused right-hand side of short rows.
	PadColor string `yaml:"pad_color"`

	// Strict aborts the run on the first image that fails. When false, failed
	// images are skipped with a warning and the collage is built from the rest.
	Strict bool `yaml:"strict"`

	// Open launches the default viewer on the collage once it is written.
	Open bool `yaml:"open"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// Now supplies the timestamp used in the output file name.
	Now func() time.Time `yaml:"-"`
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	return &Config{
		TemplateDir:   DefaultTemplateDir,
		OutputDir:     xdg.UserDirs.Pictures,
		Quality:       imaging.DefaultJPEGQuality,
		MinConfidence: DefaultMinConfidence,
		PadColor:      imaging.DefaultPadColor,
		Open:          true,
		Now:           time.Now,
	}
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.TemplateDir == "" {
		return ErrNoTemplateDir
	}
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	if c.Quality < 1 || c.Quality > 100 {
		return ErrInvalidQuality
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return ErrInvalidConfidence
	}
	if _, err := imaging.ParseColor(c.PadColor); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPadColor, err)
	}
	return nil
}

// OutputPath returns the collage path for a run started at t.
func (c *Config) OutputPath(t time.Time) string {
	return filepath.Join(c.OutputDir, OutputPrefix+t.Format(OutputLayout)+OutputExt)
}

// Timestamp returns the current time from the configured clock.
func (c *Config) Timestamp() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
