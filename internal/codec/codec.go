package codec

import "io"

// Legal level ranges per codec. Config validation rejects out-of-range
// levels at startup; they are never clamped.
const (
	BrotliMinLevel = 1
	BrotliMaxLevel = 11

	GzipMinLevel = 1
	GzipMaxLevel = 9

	DeflateMinLevel = 1
	DeflateMaxLevel = 9

	// Classic zstd CLI range; klauspost maps these onto its presets.
	ZstdMinLevel = 1
	ZstdMaxLevel = 22
)

// brotliWindowBits is fixed; only the quality level is user-tunable.
const brotliWindowBits = 20

// Compressor produces one compressed artifact kind from a byte stream.
// NewWriter wraps the destination; Close on the returned writer flushes
// the encoder (it does not close the underlying destination).
type Compressor interface {
	// Name is the human-readable codec name (e.g. "brotli").
	Name() string
	// Extension is the artifact suffix without the dot (e.g. "br").
	Extension() string
	// NewWriter returns an encoding writer on top of w.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Compressors returns the four byte-stream compressors at the given
// levels, in the order the generic pipeline applies them:
// brotli, gzip, zstd, deflate. Levels must already be validated.
func Compressors(brotliLevel, gzipLevel, zstdLevel, deflateLevel int) []Compressor {
	return []Compressor{
		brotliCompressor{level: brotliLevel},
		gzipCompressor{level: gzipLevel},
		zstdCompressor{level: zstdLevel},
		deflateCompressor{level: deflateLevel},
	}
}
