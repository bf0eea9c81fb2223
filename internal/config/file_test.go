package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assetpress.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func noFlags(string) bool { return false }

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[compression]
brotli_level = 9
zstd_level = 19

[images]
webp_lossless = true
resize = false

[run]
jobs = 3
log = "/var/log/assetpress.jsonl"
`)

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg, noFlags); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.BrotliLevel != 9 {
		t.Errorf("BrotliLevel = %d, want 9", cfg.BrotliLevel)
	}
	if cfg.ZstdLevel != 19 {
		t.Errorf("ZstdLevel = %d, want 19", cfg.ZstdLevel)
	}
	// Fields absent from the file keep their defaults.
	if cfg.GzipLevel != 6 || cfg.DeflateLevel != 6 {
		t.Errorf("gzip/deflate = %d/%d, want defaults 6/6", cfg.GzipLevel, cfg.DeflateLevel)
	}
	if !cfg.WebPLossless {
		t.Error("WebPLossless not taken from file")
	}
	if cfg.ResizeImages {
		t.Error("ResizeImages not taken from file")
	}
	if cfg.Jobs != 3 {
		t.Errorf("Jobs = %d, want 3", cfg.Jobs)
	}
	if cfg.LogFile != "/var/log/assetpress.jsonl" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadFile_FlagsKeepPrecedence(t *testing.T) {
	path := writeConfigFile(t, `
[compression]
brotli_level = 9
gzip_level = 2
`)

	cfg := DefaultConfig()
	cfg.BrotliLevel = 11 // as if --brotli-level=11 was passed
	passed := func(name string) bool { return name == "brotli-level" }

	if err := LoadFile(path, &cfg, passed); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.BrotliLevel != 11 {
		t.Errorf("BrotliLevel = %d, want 11 (flag wins over file)", cfg.BrotliLevel)
	}
	if cfg.GzipLevel != 2 {
		t.Errorf("GzipLevel = %d, want 2 (file wins over default)", cfg.GzipLevel)
	}
}

func TestLoadFile_Tiers(t *testing.T) {
	path := writeConfigFile(t, `
[[images.tiers]]
label = "thumb"
max_dimension = 128

[[images.tiers]]
label = "full"
max_dimension = 2048
`)

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg, noFlags); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cfg.Tiers) != 2 {
		t.Fatalf("Tiers = %d entries, want 2 (file replaces defaults)", len(cfg.Tiers))
	}
	if cfg.Tiers[0].Label != "thumb" || cfg.Tiers[0].MaxDim != 128 {
		t.Errorf("Tiers[0] = %+v", cfg.Tiers[0])
	}
	if cfg.Tiers[1].Label != "full" || cfg.Tiers[1].MaxDim != 2048 {
		t.Errorf("Tiers[1] = %+v", cfg.Tiers[1])
	}
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg, noFlags); err == nil {
		t.Error("LoadFile should fail on a missing file")
	}

	bad := writeConfigFile(t, "[compression\nbroken")
	if err := LoadFile(bad, &cfg, noFlags); err == nil {
		t.Error("LoadFile should fail on malformed TOML")
	}
}

func TestParsePositionalArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		checkOnly bool
		wantErr   bool
		wantIn    string
		wantOut   string
	}{
		{"two args", []string{"/in/", "/out"}, false, false, "/in", "/out"},
		{"no args", nil, false, true, "", ""},
		{"one arg", []string{"/in"}, false, true, "", ""},
		{"three args", []string{"a", "b", "c"}, false, true, "", ""},
		{"check mode needs none", nil, true, false, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = tt.checkOnly
			err := ParsePositionalArgs(tt.args, &cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (cfg.InputDir != tt.wantIn || cfg.OutputDir != tt.wantOut) {
				t.Errorf("dirs = %q/%q, want %q/%q", cfg.InputDir, cfg.OutputDir, tt.wantIn, tt.wantOut)
			}
		})
	}
}

func TestApplyNegatedFlags(t *testing.T) {
	cfg := DefaultConfig()
	ApplyNegatedFlags(&cfg, &NegatedFlags{NoResizeImages: true, NoColor: true})
	if cfg.ResizeImages {
		t.Error("NoResizeImages did not clear ResizeImages")
	}
	if !cfg.CompressImages {
		t.Error("CompressImages should be untouched")
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}

	cfg = DefaultConfig()
	ApplyNegatedFlags(&cfg, &NegatedFlags{ForceColor: true})
	if cfg.ColorMode != ColorAlways {
		t.Errorf("ColorMode = %q, want always", cfg.ColorMode)
	}
}
