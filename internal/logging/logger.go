// Package logging provides the leveled, optionally colored console logger
// used across the pipeline, with an optional structured (JSON) log file
// sink behind it. Console lines are for humans; the file sink is zap so
// log files stay machine-readable.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/assetpress/internal/config"
	"github.com/backmassage/assetpress/internal/term"
)

// Logger provides leveled, optionally colored logging. All methods are
// safe for concurrent use by parallel workers.
type Logger struct {
	mu      sync.Mutex
	file    *zap.Logger // optional structured sink; nil when no log file
	closeFn func() error
}

// NewLogger configures terminal colors from cfg and, when cfg.LogFile is
// set, opens a zap JSON sink appending to it. Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}

		level := zapcore.InfoLevel
		if cfg.Verbose {
			level = zapcore.DebugLevel
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(f),
			level,
		)
		l.file = zap.New(core)
		l.closeFn = f.Close
	}
	return l, nil
}

// NewWithZap returns a Logger writing its structured copy to zl. Used by
// tests (e.g. with zaptest) to capture output without a real file.
func NewWithZap(zl *zap.Logger) *Logger {
	return &Logger{file: zl}
}

// Close flushes and closes the log file sink if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Sync()
	}
	if l.closeFn != nil {
		err := l.closeFn()
		l.closeFn = nil
		return err
	}
	return nil
}

func (l *Logger) line(level zapcore.Level, label, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	out := os.Stdout
	if level >= zapcore.ErrorLevel {
		out = os.Stderr
	}

	l.mu.Lock()
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+label+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, ts+" ["+label+"] "+text+"\n")
	}
	l.mu.Unlock()

	if l.file != nil {
		if ce := l.file.Check(level, text); ce != nil {
			ce.Write(zap.String("label", label))
		}
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(zapcore.InfoLevel, "INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green). The file sink records it at
// info level with the SUCCESS label attached.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line(zapcore.InfoLevel, "SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(zapcore.WarnLevel, "WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(zapcore.ErrorLevel, "ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line(zapcore.DebugLevel, "DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
