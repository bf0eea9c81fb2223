// Package naming derives output artifact paths from input paths.
//
// The input-relative path of each source file is mirrored under the output
// root; codec artifacts append their extension after the full filename
// (photo.tar -> photo.tar.br), image format outputs replace the extension
// (photo.png -> photo.webp), and resize tiers splice a suffix between the
// stem and extension (photo.png -> photo-small.png).
//
// For a single source file all extension/suffix combinations are pairwise
// distinct by construction, so a fail-if-exists collision can only come
// from a previous run's output, never from a same-run race.
package naming
