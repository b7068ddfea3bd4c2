// Package config holds the settings of a collage run.
//
// A Config is built from defaults, optionally overlaid by a YAML file, and
// finally by command-line flags. It also carries the process-wide inputs
// that would otherwise be read from global state (the output directory and
// the clock), so the pipeline stays deterministic under test.
//
// # Configuration File
//
// The file is looked up at the path given with --config, or else at
// $XDG_CONFIG_HOME/screenshot-tiler/config.yaml:
//
//	template_dir: corner_templates
//	output_dir: /home/me/Pictures/collages
//	quality: 90
//	min_confidence: 0.95
//	pad_color: "#202020"
//	strict: false
//	open: true
//
// Every key is optional.
package config
