package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Relative returns path relative to inputDir. It fails when path does not
// live under inputDir (e.g. a walk entry outside the expected root).
func Relative(inputDir, path string) (string, error) {
	rel, err := filepath.Rel(inputDir, path)
	if err != nil {
		return "", fmt.Errorf("relative path of %s under %s: %w", path, inputDir, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside input root %s", path, inputDir)
	}
	return rel, nil
}

// OutputPath mirrors relPath under outputDir.
func OutputPath(outputDir, relPath string) string {
	return filepath.Join(outputDir, relPath)
}

// AppendExtension adds ext after the full filename, keeping the original
// extension: photo.tar + "br" -> photo.tar.br.
func AppendExtension(path, ext string) string {
	return path + "." + ext
}

// WithExtension replaces the filename's extension: photo.png + "webp" ->
// photo.webp. A file without an extension just gains one.
func WithExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

// WithTierSuffix splices a tier label between the stem and the extension:
// photo.png + "small" -> photo-small.png.
func WithTierSuffix(path, tier string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + tier + ext
}
