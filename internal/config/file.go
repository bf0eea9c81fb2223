package config

// Optional TOML config file support. File values sit between defaults and
// CLI flags: a field set in the file wins over the default, but any flag
// the user actually passed wins over the file.

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML schema. Scalar fields are pointers so that
// "absent" and "zero" are distinguishable when merging.
type fileConfig struct {
	Compression struct {
		BrotliLevel  *int `toml:"brotli_level"`
		GzipLevel    *int `toml:"gzip_level"`
		DeflateLevel *int `toml:"deflate_level"`
		ZstdLevel    *int `toml:"zstd_level"`
	} `toml:"compression"`

	Images struct {
		WebPLossless *bool    `toml:"webp_lossless"`
		WebPQuality  *float64 `toml:"webp_quality"`
		Resize       *bool    `toml:"resize"`
		Compress     *bool    `toml:"compress"`
		Tiers        []Tier   `toml:"tiers"`
	} `toml:"images"`

	Run struct {
		Jobs *int    `toml:"jobs"`
		Log  *string `toml:"log"`
	} `toml:"run"`
}

// LoadFile merges the TOML file at path into cfg. flagChanged reports
// whether the named CLI flag was passed explicitly; such fields are left
// alone so flags keep precedence over the file.
func LoadFile(path string, cfg *Config, flagChanged func(name string) bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	mergeInt := func(flag string, dst *int, src *int) {
		if src != nil && !flagChanged(flag) {
			*dst = *src
		}
	}

	mergeInt("brotli-level", &cfg.BrotliLevel, fc.Compression.BrotliLevel)
	mergeInt("gzip-level", &cfg.GzipLevel, fc.Compression.GzipLevel)
	mergeInt("deflate-level", &cfg.DeflateLevel, fc.Compression.DeflateLevel)
	mergeInt("zstd-level", &cfg.ZstdLevel, fc.Compression.ZstdLevel)
	mergeInt("jobs", &cfg.Jobs, fc.Run.Jobs)

	if fc.Images.WebPLossless != nil && !flagChanged("webp-lossless") {
		cfg.WebPLossless = *fc.Images.WebPLossless
	}
	if fc.Images.WebPQuality != nil && !flagChanged("webp-quality") {
		cfg.WebPQuality = *fc.Images.WebPQuality
	}
	if fc.Images.Resize != nil && !flagChanged("no-resize-images") {
		cfg.ResizeImages = *fc.Images.Resize
	}
	if fc.Images.Compress != nil && !flagChanged("no-compress-images") {
		cfg.CompressImages = *fc.Images.Compress
	}
	if len(fc.Images.Tiers) > 0 {
		cfg.Tiers = fc.Images.Tiers
	}
	if fc.Run.Log != nil && !flagChanged("log") {
		cfg.LogFile = *fc.Run.Log
	}
	return nil
}
