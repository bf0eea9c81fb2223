package codec

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type brotliCompressor struct{ level int }

func (brotliCompressor) Name() string      { return "brotli" }
func (brotliCompressor) Extension() string { return "br" }

func (c brotliCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return brotli.NewWriterOptions(w, brotli.WriterOptions{
		Quality: c.level,
		LGWin:   brotliWindowBits,
	}), nil
}

type gzipCompressor struct{ level int }

func (gzipCompressor) Name() string      { return "gzip" }
func (gzipCompressor) Extension() string { return "gz" }

func (c gzipCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(w, c.level)
	if err != nil {
		return nil, fmt.Errorf("gzip writer: %w", err)
	}
	return zw, nil
}

type zstdCompressor struct{ level int }

func (zstdCompressor) Name() string      { return "zstd" }
func (zstdCompressor) Extension() string { return "zst" }

func (c zstdCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(c.level)))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	return zw, nil
}

type deflateCompressor struct{ level int }

func (deflateCompressor) Name() string      { return "deflate" }
func (deflateCompressor) Extension() string { return "zz" }

func (c deflateCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := flate.NewWriter(w, c.level)
	if err != nil {
		return nil, fmt.Errorf("deflate writer: %w", err)
	}
	return zw, nil
}
