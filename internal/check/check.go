// Package check provides system diagnostics (--check mode): worker count,
// output-tree writability, an in-memory round-trip of every byte codec at
// the configured levels, and a self-test of the four image encoders.
package check

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/backmassage/assetpress/internal/codec"
	"github.com/backmassage/assetpress/internal/config"
)

// ErrRoundTripMismatch is returned when a codec decodes back to different
// bytes than were fed in.
var ErrRoundTripMismatch = errors.New("codec round-trip produced different bytes")

// Logger is the minimal logging interface needed by RunCheck. Defined
// here (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow and reports whether every
// check passed. It is informational: it runs all checks even after one
// fails.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	ok := true

	log.Info("Parallel workers: %d (CPUs: %d)", cfg.Jobs, runtime.NumCPU())

	if !checkWritable(cfg, log) {
		ok = false
	}
	if !checkCompressors(cfg, log) {
		ok = false
	}
	if !checkImageEncoders(cfg, log) {
		ok = false
	}

	if ok {
		log.Success("All checks passed")
	} else {
		log.Error("One or more checks failed")
	}
	return ok
}

// checkWritable probes that the output directory (or the temp dir when no
// paths were given) accepts new files.
func checkWritable(cfg *config.Config, log Logger) bool {
	dir := cfg.OutputDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("Output directory: cannot create %s: %v", dir, err)
		return false
	}
	f, err := os.CreateTemp(dir, ".assetpress-check-*")
	if err != nil {
		log.Error("Output directory: not writable: %v", err)
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	log.Success("Output directory writable: %s", filepath.Clean(dir))
	return true
}

// checkCompressors round-trips a small sample through each byte codec at
// the configured level.
func checkCompressors(cfg *config.Config, log Logger) bool {
	sample := bytes.Repeat([]byte("assetpress self test\n"), 64)
	ok := true
	for _, c := range codec.Compressors(cfg.BrotliLevel, cfg.GzipLevel, cfg.ZstdLevel, cfg.DeflateLevel) {
		if err := roundTrip(c, sample); err != nil {
			log.Error("%s: %v", c.Name(), err)
			ok = false
			continue
		}
		log.Success("%s round-trip ok (.%s)", c.Name(), c.Extension())
	}
	return ok
}

func roundTrip(c codec.Compressor, sample []byte) error {
	var buf bytes.Buffer
	enc, err := c.NewWriter(&buf)
	if err != nil {
		return err
	}
	if _, err := enc.Write(sample); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	decoded, err := decompress(c.Extension(), buf.Bytes())
	if err != nil {
		return err
	}
	if !bytes.Equal(decoded, sample) {
		return ErrRoundTripMismatch
	}
	return nil
}

func decompress(ext string, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)
	switch ext {
	case "br":
		return io.ReadAll(brotli.NewReader(r))
	case "gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case "zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case "zz":
		zr := flate.NewReader(r)
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return nil, errors.New("unknown codec extension " + ext)
	}
}

// checkImageEncoders encodes a tiny synthetic gradient through each image
// encoder. Catches missing native bits (cgo libwebp, wasm runtime) before
// a long batch does.
func checkImageEncoders(cfg *config.Config, log Logger) bool {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 32), G: uint8(y * 32), B: 128, A: 255})
		}
	}

	ok := true
	for _, enc := range codec.ImageEncoders(cfg.WebPLossless, float32(cfg.WebPQuality)) {
		var buf bytes.Buffer
		if err := enc.Encode(&buf, img); err != nil {
			log.Error("%s encoder: %v", enc.Format(), err)
			ok = false
			continue
		}
		log.Success("%s encoder ok (%d bytes)", enc.Format(), buf.Len())
	}
	return ok
}
