package planner

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Category
	}{
		{"png image", "assets/logo.png", CategoryImage},
		{"jpg image", "photo.jpg", CategoryImage},
		{"jpeg image", "photo.jpeg", CategoryImage},
		{"bmp image", "scan.bmp", CategoryImage},
		{"avif image", "hero.avif", CategoryImage},
		{"webp image", "hero.webp", CategoryImage},
		{"uppercase extension is generic", "photo.PNG", CategoryGeneric},
		{"mixed case is generic", "photo.Jpg", CategoryGeneric},
		{"brotli artifact", "bundle.js.br", CategoryPrecompressed},
		{"gzip artifact", "bundle.js.gz", CategoryPrecompressed},
		{"zstd artifact", "bundle.js.zst", CategoryPrecompressed},
		{"deflate artifact", "bundle.js.zz", CategoryPrecompressed},
		{"javascript is generic", "app/main.js", CategoryGeneric},
		{"css is generic", "style.css", CategoryGeneric},
		{"double extension uses last", "archive.tar.xz", CategoryGeneric},
		{"image-named dir does not matter", "icons.png/readme.txt", CategoryGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.path)
			if err != nil {
				t.Fatalf("Classify(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassify_NoExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"bare name", "assets/archive"},
		{"dotfile", ".bashrc"},
		{"dotfile in subdir", "home/.gitignore"},
		{"trailing dot", "weird."},
		{"just a dot", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.path)
			if !errors.Is(err, ErrNoExtension) {
				t.Errorf("Classify(%q) error = %v, want ErrNoExtension", tt.path, err)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryGeneric, "generic"},
		{CategoryImage, "image"},
		{CategoryPrecompressed, "precompressed"},
		{Category(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
