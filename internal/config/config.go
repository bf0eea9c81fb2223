// Package config holds runtime configuration: defaults, CLI flag parsing,
// optional TOML config file merging, and validation. Codec levels are
// validated against each codec's legal range; out-of-range values are a
// fatal startup error, never clamped.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/backmassage/assetpress/internal/codec"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Tier is a named maximum size bound for a resized image variant. A tier's
// output keeps the source aspect ratio with its longest side at most MaxDim.
type Tier struct {
	Label  string `toml:"label"`
	MaxDim int    `toml:"max_dimension"`
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid with a TOML config file, then mutated by the CLI
// flags before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (set from positional args).
	InputDir  string
	OutputDir string

	// Byte-stream codec levels.
	BrotliLevel  int // Default: 5. Range 1-11.
	GzipLevel    int // Default: 6. Range 1-9.
	DeflateLevel int // Default: 6 (follows gzip). Range 1-9.
	ZstdLevel    int // Default: 7. Range 1-22.

	// Image handling.
	WebPLossless   bool    // Default: false (lossy at WebPQuality).
	WebPQuality    float64 // Default: 80. Range 0-100; lossy mode only.
	ResizeImages   bool    // Default: true. Cleared by --no-resize-images.
	CompressImages bool    // Default: true. Cleared by --no-compress-images.
	Tiers          []Tier  // Default: small/256, medium/512, large/1024.

	// Execution.
	Jobs   int  // Default: runtime.NumCPU(). Worker pool size.
	DryRun bool // Log planned artifacts, write nothing.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional structured log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Config file path (--config). Loaded before flags take precedence.
	ConfigFile string
}

// DefaultConfig returns a Config with the stock defaults: brotli 5,
// gzip/deflate 6, zstd 7, lossy WebP at quality 80, resizing on, and one
// worker per CPU.
func DefaultConfig() Config {
	return Config{
		BrotliLevel:    5,
		GzipLevel:      6,
		DeflateLevel:   6,
		ZstdLevel:      7,
		WebPLossless:   false,
		WebPQuality:    80,
		ResizeImages:   true,
		CompressImages: true,
		Tiers: []Tier{
			{Label: "small", MaxDim: 256},
			{Label: "medium", MaxDim: 512},
			{Label: "large", MaxDim: 1024},
		},
		Jobs:      runtime.NumCPU(),
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks codec levels, WebP quality, tiers, and job count.
// When not in CheckOnly mode, it also requires that both input and output
// directory paths are non-empty. It runs before any file is processed.
func (c *Config) Validate() error {
	if err := levelInRange("brotli level", c.BrotliLevel, codec.BrotliMinLevel, codec.BrotliMaxLevel); err != nil {
		return err
	}
	if err := levelInRange("gzip level", c.GzipLevel, codec.GzipMinLevel, codec.GzipMaxLevel); err != nil {
		return err
	}
	if err := levelInRange("deflate level", c.DeflateLevel, codec.DeflateMinLevel, codec.DeflateMaxLevel); err != nil {
		return err
	}
	if err := levelInRange("zstd level", c.ZstdLevel, codec.ZstdMinLevel, codec.ZstdMaxLevel); err != nil {
		return err
	}

	if c.WebPQuality < 0 || c.WebPQuality > 100 {
		return fmt.Errorf("webp quality must be between 0 and 100, inclusive (got %g)", c.WebPQuality)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1 (got %d)", c.Jobs)
	}

	if err := validateTiers(c.Tiers); err != nil {
		return err
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need exactly input_dir and output_dir")
	}
	return nil
}

// levelInRange rejects codec levels outside [min, max]. Levels are never
// clamped; a bad value stops the run before any file is touched.
func levelInRange(name string, level, min, max int) error {
	if level < min || level > max {
		return fmt.Errorf("%s must be between %d and %d, inclusive (got %d)", name, min, max, level)
	}
	return nil
}

// validateTiers requires non-empty unique labels and strictly ascending
// positive dimensions so tier filenames and sizes stay distinct.
func validateTiers(tiers []Tier) error {
	seen := make(map[string]bool, len(tiers))
	prev := 0
	for _, t := range tiers {
		if t.Label == "" {
			return errors.New("resize tier label must not be empty")
		}
		if seen[t.Label] {
			return fmt.Errorf("duplicate resize tier label %q", t.Label)
		}
		seen[t.Label] = true
		if t.MaxDim <= prev {
			return fmt.Errorf("resize tier dimensions must be positive and ascending (tier %q: %d)", t.Label, t.MaxDim)
		}
		prev = t.MaxDim
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or
// equal to) the resolved input directory. This prevents the pipeline from
// recursively discovering its own output files. Both arguments must be
// absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
