package config

// This file binds CLI flags onto Config. Negated flags (--no-resize-images,
// --no-compress-images, --no-color) are captured separately and applied
// after parse so Config defaults hold unless the user passes the flag.

import (
	"errors"

	"github.com/spf13/pflag"
)

var errNeedPaths = errors.New("need exactly input_dir and output_dir")

// NegatedFlags holds boolean flags that invert a Config default. They are
// applied by [ApplyNegatedFlags] once the flag set has been parsed.
type NegatedFlags struct {
	NoResizeImages   bool
	NoCompressImages bool
	ForceColor       bool
	NoColor          bool
}

// BindFlags registers all flags on fs, writing directly into cfg except
// for the negated flags, which land in the returned NegatedFlags.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *NegatedFlags {
	n := &NegatedFlags{}

	// Codec levels.
	fs.IntVar(&cfg.BrotliLevel, "brotli-level", cfg.BrotliLevel, "Brotli quality level (1-11)")
	fs.IntVar(&cfg.GzipLevel, "gzip-level", cfg.GzipLevel, "Gzip compression level (1-9)")
	fs.IntVar(&cfg.DeflateLevel, "deflate-level", cfg.DeflateLevel, "Raw deflate compression level (1-9)")
	fs.IntVar(&cfg.ZstdLevel, "zstd-level", cfg.ZstdLevel, "Zstandard compression level (1-22)")

	// Image handling.
	fs.BoolVar(&cfg.WebPLossless, "webp-lossless", cfg.WebPLossless, "Encode WebP losslessly (quality is ignored)")
	fs.Float64Var(&cfg.WebPQuality, "webp-quality", cfg.WebPQuality, "WebP quality for lossy encodes (0-100)")
	fs.BoolVar(&n.NoResizeImages, "no-resize-images", false, "Do not derive resized image tiers")
	fs.BoolVar(&n.NoCompressImages, "no-compress-images", false, "Copy images verbatim instead of transcoding")

	// Execution.
	fs.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Number of parallel workers")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview planned artifacts; write nothing")

	// Display and logging.
	fs.BoolVar(&n.ForceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.NoColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append structured logs to file")

	// Utility.
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
	fs.StringVar(&cfg.ConfigFile, "config", "", "TOML configuration file path")

	return n
}

// ApplyNegatedFlags copies negated flag values into cfg
// (e.g. NoResizeImages -> ResizeImages=false).
func ApplyNegatedFlags(cfg *Config, n *NegatedFlags) {
	if n.NoResizeImages {
		cfg.ResizeImages = false
	}
	if n.NoCompressImages {
		cfg.CompressImages = false
	}
	if n.NoColor {
		cfg.ColorMode = ColorNever
	} else if n.ForceColor {
		cfg.ColorMode = ColorAlways
	}
}

// ParsePositionalArgs sets InputDir and OutputDir from the two positional
// args when not in CheckOnly mode.
func ParsePositionalArgs(args []string, cfg *Config) error {
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 2 {
		return errNeedPaths
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	cfg.OutputDir = NormalizeDirArg(args[1])
	return nil
}
