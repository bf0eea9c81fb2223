package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/backmassage/assetpress/internal/codec"
	"github.com/backmassage/assetpress/internal/config"
	"github.com/backmassage/assetpress/internal/planner"
)

// runGeneric produces the four compressed siblings plus the verbatim
// mirror copy for one generic file. Codecs run sequentially against a
// single rewindable source handle; do not parallelize these steps without
// giving each codec its own handle.
func runGeneric(cfg *config.Config, plan *planner.FilePlan) error {
	src, err := os.Open(plan.Source.Path)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	if err := ensureParentDir(plan.CopyPath); err != nil {
		return err
	}

	compressors := codec.Compressors(cfg.BrotliLevel, cfg.GzipLevel, cfg.ZstdLevel, cfg.DeflateLevel)
	for i, c := range compressors {
		if err := compressInto(c, src, plan.Compress[i].Path); err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewind source: %w", err)
		}
	}

	return copyVerbatim(src, plan.CopyPath)
}

// compressInto streams src through c into a newly created dst.
func compressInto(c codec.Compressor, src io.Reader, dst string) error {
	out, err := createNew(dst)
	if err != nil {
		return err
	}
	enc, err := c.NewWriter(out)
	if err != nil {
		out.Close()
		return err
	}
	if _, err := io.CopyBuffer(enc, src, make([]byte, copyBufferSize)); err != nil {
		enc.Close()
		out.Close()
		return fmt.Errorf("compress: %w", err)
	}
	if err := enc.Close(); err != nil {
		out.Close()
		return fmt.Errorf("flush: %w", err)
	}
	return out.Close()
}
