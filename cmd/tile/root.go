package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironsheep/screenshot-tiler/internal/collage"
	"github.com/ironsheep/screenshot-tiler/internal/config"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// openFile launches the platform's default viewer. Tests replace it.
var openFile = browser.OpenFile

// NewRootCmd creates the tile command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tile [flags] <image> [image...]",
		Short: "Crop marker-framed screenshots and tile them into one collage",
		Long: `tile finds the four corner markers (tl, tr, bl, br) framing each screenshot,
crops every image to the region they enclose, and joins the crops into a
single grid collage written as tile-<timestamp>.jpg to your pictures directory.

The column count depends on the number of images: 4 images make 2 columns,
5 or 6 make 3, 7 make 4, and any other count uses 6. Each row is scaled to its
tallest image and short rows are padded on the right.

Corner templates are read from ./corner_templates (tl.png, tr.png, bl.png,
br.png) unless --templates points elsewhere.

Examples:
  # Tile four screenshots into a 2x2 collage
  tile a.png b.png c.png d.png

  # Write somewhere else and do not open a viewer
  tile --output-dir /tmp/collages --no-open shots/*.png

  # Abort on the first screenshot whose markers cannot be found
  tile --strict shots/*.png`,
		Version:       getVersion(),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE:          runTile,
	}
	cmd.SetVersionTemplate(versionTemplate())

	cmd.Flags().StringP("config", "c", "",
		"Configuration file (default $XDG_CONFIG_HOME/"+config.DefaultConfigFile+")")
	cmd.Flags().StringP("templates", "t", config.DefaultTemplateDir,
		"Directory containing tl.png, tr.png, bl.png and br.png")
	cmd.Flags().StringP("output-dir", "o", "",
		"Directory to write the collage to (default: pictures directory)")
	cmd.Flags().IntP("quality", "q", 0,
		"JPEG quality 1-100 (default 95)")
	cmd.Flags().Float64("min-confidence", config.DefaultMinConfidence,
		"Minimum corner match score 0-1; 0 accepts any match")
	cmd.Flags().String("pad-color", "",
		"Hex color used to pad short rows (default #000000)")
	cmd.Flags().Bool("strict", false,
		"Abort on the first image that cannot be cropped")
	cmd.Flags().Bool("no-open", false,
		"Do not open the collage in the default viewer")
	cmd.Flags().BoolP("verbose", "v", false,
		"Enable verbose logging")

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func runTile(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; errors no longer warrant usage text.
	cmd.SilenceUsage = true

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	tiler, err := collage.New(cfg, logger)
	if err != nil {
		return err
	}

	out, err := tiler.Run(args)
	if err != nil {
		return err
	}

	for _, r := range out.Failed() {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %v\n", r.Path, r.Err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Path)

	if cfg.Open {
		if err := openFile(out.Path); err != nil {
			logger.Warn("failed to open viewer", "path", out.Path, "error", err)
		}
	}
	return nil
}

// buildConfig loads defaults and the config file, then applies the flags the
// user set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if flags.Changed("templates") {
		cfg.TemplateDir, _ = flags.GetString("templates")
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("quality") {
		cfg.Quality, _ = flags.GetInt("quality")
	}
	if flags.Changed("min-confidence") {
		cfg.MinConfidence, _ = flags.GetFloat64("min-confidence")
	}
	if flags.Changed("pad-color") {
		cfg.PadColor, _ = flags.GetString("pad-color")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if noOpen, _ := flags.GetBool("no-open"); noOpen {
		cfg.Open = false
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.Verbose = true
	}

	return cfg, nil
}

// setupLogger creates a text logger on w.
// Only warnings and errors are shown unless verbose is set.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
