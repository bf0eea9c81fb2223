package planner

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNoExtension is returned for files whose name carries no extension;
// such files cannot be classified and count as a per-file failure.
var ErrNoExtension = errors.New("file has no extension")

// Extension sets are matched exactly, case-sensitive: "photo.PNG" is not
// an image. This mirrors long-standing behavior and is deliberate; do not
// normalize case here.
var (
	imageExtensions = map[string]bool{
		"png": true, "jpg": true, "jpeg": true,
		"bmp": true, "avif": true, "webp": true,
	}
	precompressedExtensions = map[string]bool{
		"br": true, "gz": true, "zst": true, "zz": true,
	}
)

// Classify maps a file path to its Category based on the extension alone.
// It never touches the filesystem.
func Classify(path string) (Category, error) {
	ext, ok := extension(filepath.Base(path))
	if !ok {
		return CategoryGeneric, ErrNoExtension
	}
	switch {
	case imageExtensions[ext]:
		return CategoryImage, nil
	case precompressedExtensions[ext]:
		return CategoryPrecompressed, nil
	default:
		return CategoryGeneric, nil
	}
}

// extension returns the portion after the last dot. Dotfiles (".bashrc"),
// names without a dot, and names ending in a dot have no extension.
func extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}
