// Command assetpress is the CLI entrypoint for the assetpress batch asset
// transcoder.
//
// It parses flags (plus an optional TOML config file), validates
// configuration and paths, and either runs system diagnostics (--check)
// or the transcoding pipeline over the input tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/assetpress/internal/check"
	"github.com/backmassage/assetpress/internal/config"
	"github.com/backmassage/assetpress/internal/display"
	"github.com/backmassage/assetpress/internal/logging"
	"github.com/backmassage/assetpress/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()

	code := 0
	root := newRootCommand(&cfg, &code)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "assetpress: %v\n", err)
		return 1
	}
	return code
}

func newRootCommand(cfg *config.Config, exitCode *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "assetpress [flags] <input_dir> <output_dir>",
		Short:         "Batch asset transcoder: compressed and re-encoded variants for a directory tree",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	negated := config.BindFlags(root.Flags(), cfg)

	root.RunE = func(cmd *cobra.Command, args []string) error {
		// Phase 1: Bootstrap - the logger doesn't exist yet, so errors
		// surface through cobra to stderr. Precedence: flags > config
		// file > defaults; LoadFile skips any flag the user passed.
		config.ApplyNegatedFlags(cfg, negated)
		if cfg.ConfigFile != "" {
			if err := config.LoadFile(cfg.ConfigFile, cfg, cmd.Flags().Changed); err != nil {
				return err
			}
		}
		if err := config.ParsePositionalArgs(args, cfg); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		*exitCode = realMain(cfg)
		return nil
	}
	return root
}

func realMain(cfg *config.Config) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assetpress: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available - all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return 1
		}
		return 0
	}

	// Resolve and validate paths: input must exist, output is created if
	// needed, and output must not be inside input (prevents the pipeline
	// from discovering its own artifacts).
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputDir)
		return 1
	}
	// A dry run writes nothing, not even the output root; it may not
	// exist yet, so resolve it lexically instead of via the filesystem.
	var outputAbs string
	if cfg.DryRun {
		outputAbs, err = filepath.Abs(cfg.OutputDir)
	} else {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Error("Cannot create output directory: %s", cfg.OutputDir)
			return 1
		}
		outputAbs, err = absPath(cfg.OutputDir)
	}
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputDir)
		return 1
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose an output path outside: %s", cfg.InputDir)
		return 1
	}

	log.Info("=== assetpress v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	log.Info("")

	// Phase 3: Signal handling - cancel context on SIGINT/SIGTERM so the
	// pipeline stops submitting new files; in-flight files finish.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing in-flight files")
		cancel()
	}()

	// Phase 4: Run pipeline (discover -> classify -> plan -> execute).
	stats := pipeline.Run(ctx, cfg, log)

	if stats.Failed.Load() > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
