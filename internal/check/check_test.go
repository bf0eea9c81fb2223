package check

import (
	"fmt"
	"strings"
	"testing"

	"github.com/backmassage/assetpress/internal/config"
)

// recordingLogger captures log lines per level for assertions.
type recordingLogger struct {
	errors    []string
	successes []string
}

func (r *recordingLogger) Info(format string, args ...interface{}) {}
func (r *recordingLogger) Warn(format string, args ...interface{}) {}
func (r *recordingLogger) Debug(bool, string, ...interface{})      {}
func (r *recordingLogger) Error(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Success(format string, args ...interface{}) {
	r.successes = append(r.successes, fmt.Sprintf(format, args...))
}

func TestRunCheck_AllPass(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CheckOnly = true
	cfg.OutputDir = t.TempDir()

	log := &recordingLogger{}
	if !RunCheck(&cfg, log) {
		t.Fatalf("RunCheck failed; errors: %v", log.errors)
	}

	joined := strings.Join(log.successes, "\n")
	for _, want := range []string{"brotli", "gzip", "zstd", "deflate", "webp", "avif", "jpeg", "png"} {
		if !strings.Contains(joined, want) {
			t.Errorf("success output missing %q", want)
		}
	}
}

func TestRunCheck_UnwritableOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CheckOnly = true
	cfg.OutputDir = "/proc/assetpress-cannot-write-here"

	log := &recordingLogger{}
	if RunCheck(&cfg, log) {
		t.Fatal("RunCheck passed with an unwritable output directory")
	}
	if len(log.errors) == 0 {
		t.Error("no error logged for unwritable output directory")
	}
}

func TestRoundTrip_EveryCodec(t *testing.T) {
	cfg := config.DefaultConfig()
	log := &recordingLogger{}
	if !checkCompressors(&cfg, log) {
		t.Errorf("compressor round-trips failed: %v", log.errors)
	}
}
