// Package pipeline orchestrates file discovery, per-file transcoding, and
// batch summary reporting.
//
// Run fans the per-file work across a bounded worker pool. Each file is
// handled end-to-end by one worker: classify -> plan -> execute. Failures
// are isolated at the file boundary: they are logged with the file path
// and elapsed time, folded into the aggregate counters, and never affect
// other in-flight or queued files. Partial output from a failed file is
// left in place; there is no rollback.
//
// Generic files produce four compressed siblings (.br/.gz/.zst/.zz) plus a
// verbatim copy; image files produce webp/avif/jpeg/png renditions per
// size instance. All artifact destinations are created fail-if-exists, so
// re-running over a non-empty output tree surfaces per-file errors rather
// than silently overwriting (the image fallback copy is the one tolerant
// exception).
package pipeline
