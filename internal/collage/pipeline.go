package collage

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/ironsheep/screenshot-tiler/internal/config"
	"github.com/ironsheep/screenshot-tiler/internal/detection"
	"github.com/ironsheep/screenshot-tiler/internal/imaging"
)

// Tiler crops marker-framed screenshots and tiles them into one collage.
//
// A Tiler is single-use per run and not safe for concurrent use. Images are
// processed strictly in the order given.
type Tiler struct {
	cfg     *config.Config
	logger  *slog.Logger
	cache   *imaging.ImageCache
	corners *detection.CornerSet
	matcher detection.Matcher
	pad     color.NRGBA
}

// Option customizes a Tiler.
type Option func(*Tiler)

// WithMatcher replaces the default template matcher.
func WithMatcher(m detection.Matcher) Option {
	return func(t *Tiler) {
		t.matcher = m
	}
}

// New validates cfg, loads the corner templates and prepares the output
// directory. Every failure here is a ConfigurationError and happens before
// any source image is read.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Tiler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Kind: ConfigurationError, Err: err}
	}
	pad, err := imaging.ParseColor(cfg.PadColor)
	if err != nil {
		return nil, &Error{Kind: ConfigurationError, Err: err}
	}

	cache := imaging.NewImageCache()
	corners, err := detection.LoadCornerSet(cache, cfg.TemplateDir)
	if err != nil {
		return nil, &Error{Kind: ConfigurationError, Path: cfg.TemplateDir, Err: err}
	}

	if err := prepareOutputDir(cfg.OutputDir); err != nil {
		return nil, &Error{Kind: ConfigurationError, Path: cfg.OutputDir, Err: err}
	}

	t := &Tiler{
		cfg:     cfg,
		logger:  logger,
		cache:   cache,
		corners: corners,
		matcher: detection.NewMatcher(),
		pad:     pad,
	}
	for _, opt := range opts {
		opt(t)
	}

	logger.Debug("templates loaded", "dir", cfg.TemplateDir, "matcher", detection.Backend)
	return t, nil
}

// prepareOutputDir creates dir if needed and checks that files can be created in it.
func prepareOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	probe, err := os.CreateTemp(dir, ".tile-probe-*")
	if err != nil {
		return fmt.Errorf("output directory is not writable: %w", err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

// Result is the outcome of processing one input image.
type Result struct {
	// Index is the position of the image in the input list.
	Index int

	// Path is the image path as given.
	Path string

	// Corners holds the marker matches found before success or failure.
	Corners detection.CornerMatches

	// Region is the bounding box of the four matches.
	Region image.Rectangle

	// Crop is the extracted content region; nil on failure.
	Crop image.Image

	// Err is non-nil when the image could not be cropped.
	Err error
}

// OK reports whether the image was cropped successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Process decodes one image, locates its four corner markers and crops it.
//
// Failures are reported in Result.Err as an *Error carrying DecodeError,
// LowConfidenceMatch or GeometryError; Process itself never aborts a run.
func (t *Tiler) Process(index int, path string) Result {
	res := Result{Index: index, Path: path}

	src, err := t.cache.Load(path)
	if err != nil {
		res.Err = &Error{Kind: DecodeError, Path: path, Err: err}
		return res
	}
	defer t.cache.Evict(path)

	matches, err := t.corners.Locate(t.matcher, src, t.cfg.MinConfidence)
	res.Corners = matches
	if err != nil {
		kind := GeometryError
		if errors.Is(err, detection.ErrLowConfidence) {
			kind = LowConfidenceMatch
		}
		res.Err = &Error{Kind: kind, Path: path, Err: err}
		return res
	}

	res.Region = imaging.BoundingBox(matches.Rects()...)
	crop, err := imaging.CropRegion(src, res.Region)
	if err != nil {
		res.Err = &Error{Kind: GeometryError, Path: path, Err: err}
		return res
	}
	res.Crop = crop

	t.logger.Debug("image cropped",
		"index", index,
		"path", path,
		"region", res.Region.String(),
		"confidence", minConfidence(matches),
	)
	return res
}

// minConfidence returns the weakest corner score.
func minConfidence(m detection.CornerMatches) float64 {
	lowest := 1.0
	for _, match := range m {
		lowest = min(lowest, match.Confidence)
	}
	return lowest
}

// Output describes a finished run.
type Output struct {
	// Path is the written collage file; empty if the run failed.
	Path string

	// Width and Height are the collage dimensions in pixels.
	Width  int
	Height int

	// Columns and Rows describe the grid layout.
	Columns int
	Rows    int

	// Results has one entry per processed input, in input order.
	Results []Result
}

// Failed returns the results of images that were skipped.
func (o *Output) Failed() []Result {
	var failed []Result
	for _, r := range o.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Run processes every path, tiles the successful crops and writes the collage.
//
// Without Strict, images that fail are logged and left out; the run only
// fails if none succeeds, with ErrNoImages joined to every per-image error.
// With Strict, the first failure ends the run. The returned Output is
// non-nil even on error and holds the results gathered so far.
func (t *Tiler) Run(paths []string) (*Output, error) {
	out := &Output{Results: make([]Result, 0, len(paths))}

	var crops []image.Image
	var failures []error
	for i, path := range paths {
		res := t.Process(i, path)
		out.Results = append(out.Results, res)

		if !res.OK() {
			if t.cfg.Strict {
				return out, res.Err
			}
			t.logger.Warn("skipping image", "path", path, "error", res.Err)
			failures = append(failures, res.Err)
			continue
		}
		crops = append(crops, res.Crop)
	}

	if len(crops) == 0 {
		return out, errors.Join(append([]error{ErrNoImages}, failures...)...)
	}

	out.Columns = Columns(len(crops))
	out.Rows = (len(crops) + out.Columns - 1) / out.Columns

	collage, err := Tile(crops, t.pad)
	if err != nil {
		return out, &Error{Kind: EncodeError, Err: err}
	}

	path := t.cfg.OutputPath(t.cfg.Timestamp())
	if err := imaging.SaveJPEG(collage, path, t.cfg.Quality); err != nil {
		return out, &Error{Kind: EncodeError, Path: path, Err: err}
	}

	out.Path = path
	out.Width = collage.Bounds().Dx()
	out.Height = collage.Bounds().Dy()

	t.logger.Info("collage written",
		"path", path,
		"images", len(crops),
		"skipped", len(failures),
		"columns", out.Columns,
		"rows", out.Rows,
		"size", fmt.Sprintf("%dx%d", out.Width, out.Height),
	)
	return out, nil
}

// Tile arranges images into rows of Columns(len(images)) and stacks the rows.
//
// Each row is scaled to its tallest member and rows narrower than the widest
// are right-padded with pad. Images keep their order: left to right, then top
// to bottom.
func Tile(images []image.Image, pad color.Color) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	columns := Columns(len(images))
	grid := imaging.NewGrid(pad)
	row := imaging.NewRow()

	for i, img := range images {
		row.Add(img)
		if row.Len() < columns && i < len(images)-1 {
			continue
		}

		strip, err := row.Finalize()
		if err != nil {
			return nil, fmt.Errorf("failed to finalize row %d: %w", grid.Len(), err)
		}
		grid.Append(strip)
		row = imaging.NewRow()
	}

	return grid.Compose()
}
