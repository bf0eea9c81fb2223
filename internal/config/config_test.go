package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/srv/assets", "/srv/assets"},
		{"single trailing slash", "/srv/assets/", "/srv/assets"},
		{"multiple trailing slashes", "/srv/assets///", "/srv/assets"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_CodecLevels(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"brotli 5 accepted", func(c *Config) { c.BrotliLevel = 5 }, false},
		{"brotli 11 accepted", func(c *Config) { c.BrotliLevel = 11 }, false},
		{"brotli 12 rejected", func(c *Config) { c.BrotliLevel = 12 }, true},
		{"brotli 0 rejected", func(c *Config) { c.BrotliLevel = 0 }, true},
		{"gzip 9 accepted", func(c *Config) { c.GzipLevel = 9 }, false},
		{"gzip 10 rejected", func(c *Config) { c.GzipLevel = 10 }, true},
		{"deflate 0 rejected", func(c *Config) { c.DeflateLevel = 0 }, true},
		{"zstd 22 accepted", func(c *Config) { c.ZstdLevel = 22 }, false},
		{"zstd 23 rejected", func(c *Config) { c.ZstdLevel = 23 }, true},
		{"zstd negative rejected", func(c *Config) { c.ZstdLevel = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip path requirement
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_WebPQuality(t *testing.T) {
	tests := []struct {
		name    string
		quality float64
		wantErr bool
	}{
		{"zero is valid", 0, false},
		{"hundred is valid", 100, false},
		{"eighty is valid", 80, false},
		{"negative is invalid", -0.5, true},
		{"above hundred is invalid", 100.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.WebPQuality = tt.quality
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Tiers(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []Tier
		wantErr bool
	}{
		{"default tiers valid", DefaultConfig().Tiers, false},
		{"empty tiers valid", nil, false},
		{"empty label", []Tier{{Label: "", MaxDim: 256}}, true},
		{"duplicate label", []Tier{{Label: "a", MaxDim: 10}, {Label: "a", MaxDim: 20}}, true},
		{"non-ascending", []Tier{{Label: "a", MaxDim: 512}, {Label: "b", MaxDim: 256}}, true},
		{"zero dimension", []Tier{{Label: "a", MaxDim: 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.Tiers = tt.tiers
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = ""
	cfg.OutputDir = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when paths are empty and CheckOnly is false")
	}

	cfg.InputDir = "/in"
	cfg.OutputDir = "/out"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		wantErr bool
	}{
		{"separate directories", "/srv/in", "/srv/out", false},
		{"output equals input", "/srv/assets", "/srv/assets", true},
		{"output inside input", "/srv/assets", "/srv/assets/out", true},
		{"output is parent of input", "/srv/assets/sub", "/srv/assets", false},
		{"similar prefix not nested", "/srv/assets", "/srv/assets2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.input, tt.output)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.input, tt.output, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BrotliLevel != 5 {
		t.Errorf("default BrotliLevel = %d, want 5", cfg.BrotliLevel)
	}
	if cfg.GzipLevel != 6 || cfg.DeflateLevel != 6 {
		t.Errorf("default gzip/deflate = %d/%d, want 6/6", cfg.GzipLevel, cfg.DeflateLevel)
	}
	if cfg.ZstdLevel != 7 {
		t.Errorf("default ZstdLevel = %d, want 7", cfg.ZstdLevel)
	}
	if cfg.WebPLossless {
		t.Error("default WebPLossless should be false")
	}
	if cfg.WebPQuality != 80 {
		t.Errorf("default WebPQuality = %g, want 80", cfg.WebPQuality)
	}
	if !cfg.ResizeImages || !cfg.CompressImages {
		t.Error("resize and image compression should default to enabled")
	}
	if len(cfg.Tiers) != 3 || cfg.Tiers[0].Label != "small" || cfg.Tiers[2].MaxDim != 1024 {
		t.Errorf("unexpected default tiers: %+v", cfg.Tiers)
	}
	if cfg.Jobs < 1 {
		t.Errorf("default Jobs = %d, want >= 1", cfg.Jobs)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
}
