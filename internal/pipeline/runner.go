package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/assetpress/internal/config"
	"github.com/backmassage/assetpress/internal/display"
	"github.com/backmassage/assetpress/internal/logging"
	"github.com/backmassage/assetpress/internal/naming"
	"github.com/backmassage/assetpress/internal/planner"
)

// Run is the top-level batch entry point. It discovers files, fans the
// per-file pipeline across cfg.Jobs workers, and returns aggregate stats.
// Cancellation is checked between file submissions only: in-flight files
// always run to completion, queued files are dropped.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) *RunStats {
	stats := &RunStats{}

	files := Discover(cfg.InputDir, log)
	stats.Total = len(files)

	logBatchHeader(cfg, log, stats)

	var g errgroup.Group
	g.SetLimit(cfg.Jobs)

	for _, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted; skipping remaining files")
			break
		}
		path := path
		g.Go(func() error {
			processFile(cfg, log, path, stats)
			return nil
		})
	}
	_ = g.Wait()

	logSummary(cfg, log, stats)
	return stats
}

// processFile handles one file end-to-end: classify -> plan -> execute.
// Every failure is caught here, logged with the path and elapsed time,
// and folded into stats; nothing propagates to other workers.
func processFile(cfg *config.Config, log *logging.Logger, path string, stats *RunStats) {
	log.Info("compressing %s", path)
	start := time.Now()

	fail := func(err error) {
		log.Error("error processing %s after %.2fs: %v", path, time.Since(start).Seconds(), err)
		stats.Failed.Add(1)
	}

	rel, err := naming.Relative(cfg.InputDir, path)
	if err != nil {
		fail(err)
		return
	}

	plan, err := planner.BuildPlan(cfg, planner.SourceFile{Path: path, RelPath: rel}, cfg.OutputDir)
	if err != nil {
		fail(err)
		return
	}

	if plan.Category == planner.CategoryPrecompressed {
		log.Debug(cfg.Verbose, "%s is already compressed, leaving as-is", path)
		stats.Skipped.Add(1)
		return
	}

	if cfg.DryRun {
		for _, a := range plan.Artifacts() {
			log.Debug(cfg.Verbose, "  would write %s", a.Path)
		}
		log.Success("[DRY] %s: %d artifacts planned", path, plan.ArtifactCount())
		stats.Succeeded.Add(1)
		return
	}

	switch plan.Category {
	case planner.CategoryGeneric:
		err = runGeneric(cfg, plan)
	case planner.CategoryImage:
		err = runImage(cfg, plan)
	}
	if err != nil {
		fail(err)
		return
	}

	recordSizes(plan, stats)
	stats.Succeeded.Add(1)
	log.Success("compressed %s in %.2fs (%d artifacts)",
		path, time.Since(start).Seconds(), plan.ArtifactCount())
}

// recordSizes accumulates source and artifact byte totals after a
// successful run. Artifacts that were skipped (image fallback copy over
// an existing file) still stat fine and are counted once.
func recordSizes(plan *planner.FilePlan, stats *RunStats) {
	if fi, err := os.Stat(plan.Source.Path); err == nil {
		stats.InputBytes.Add(fi.Size())
	}
	for _, a := range plan.Artifacts() {
		if fi, err := os.Stat(a.Path); err == nil {
			stats.OutputBytes.Add(fi.Size())
			stats.Artifacts.Add(1)
		}
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d files", stats.Total)
	log.Info("Workers: %d", cfg.Jobs)
	log.Info("Codecs: brotli %d | gzip %d | zstd %d | deflate %d",
		cfg.BrotliLevel, cfg.GzipLevel, cfg.ZstdLevel, cfg.DeflateLevel)

	if !cfg.CompressImages {
		log.Info("Images: copied verbatim (transcoding disabled)")
	} else {
		if cfg.WebPLossless {
			log.Info("WebP: lossless")
		} else {
			log.Info("WebP: lossy, quality %g", cfg.WebPQuality)
		}
		if cfg.ResizeImages {
			labels := make([]string, 0, len(cfg.Tiers))
			for _, t := range cfg.Tiers {
				labels = append(labels, fmt.Sprintf("%s<=%dpx", t.Label, t.MaxDim))
			}
			log.Info("Tiers: %s", strings.Join(labels, ", "))
		} else {
			log.Info("Tiers: disabled (original size only)")
		}
	}

	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be written")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	fmt.Println()
	fmt.Println(display.RenderSummary(display.Summary{
		Total:       stats.Total,
		Succeeded:   stats.Succeeded.Load(),
		Skipped:     stats.Skipped.Load(),
		Failed:      stats.Failed.Load(),
		Artifacts:   stats.Artifacts.Load(),
		InputBytes:  stats.InputBytes.Load(),
		OutputBytes: stats.OutputBytes.Load(),
	}))

	if cfg.DryRun {
		log.Info("Dry run: nothing was written")
		return
	}
	if stats.Failed.Load() > 0 {
		log.Warn("Done with failures: %d ok, %d skipped, %d failed",
			stats.Succeeded.Load(), stats.Skipped.Load(), stats.Failed.Load())
		return
	}
	log.Success("Done: %d ok, %d skipped", stats.Succeeded.Load(), stats.Skipped.Load())
}
