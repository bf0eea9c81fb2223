package pipeline

import (
	"fmt"
	"image"

	"github.com/backmassage/assetpress/internal/codec"
	"github.com/backmassage/assetpress/internal/config"
	"github.com/backmassage/assetpress/internal/planner"
)

// runImage decodes the source once and renders each planned size variant
// into the four target formats. Encoders run in a fixed sequence; the
// first failure terminates the file's pipeline (a write conflict here is
// a re-run over existing output, not something to paper over).
//
// When image compression is disabled the plan carries only CopyPath, and
// the verbatim copy tolerates an existing destination. That asymmetry
// with the strict generic copy is deliberate; see the package doc.
func runImage(cfg *config.Config, plan *planner.FilePlan) error {
	if len(plan.Variants) == 0 {
		return copyFileIfMissing(plan.Source.Path, plan.CopyPath)
	}

	img, err := codec.DecodeImage(plan.Source.Path)
	if err != nil {
		return err
	}

	if err := ensureParentDir(plan.Variants[0].Outputs[0].Path); err != nil {
		return err
	}

	encoders := codec.ImageEncoders(cfg.WebPLossless, float32(cfg.WebPQuality))
	for _, v := range plan.Variants {
		var instance image.Image = img
		if v.MaxDim > 0 {
			instance = codec.FitWithin(img, v.MaxDim)
		}
		for i, enc := range encoders {
			if err := encodeInto(enc, instance, v.Outputs[i].Path); err != nil {
				if v.Tier != "" {
					return fmt.Errorf("tier %s: %w", v.Tier, err)
				}
				return err
			}
		}
	}
	return nil
}

// encodeInto renders img through enc into a newly created dst.
func encodeInto(enc codec.ImageEncoder, img image.Image, dst string) error {
	out, err := createNew(dst)
	if err != nil {
		return err
	}
	if err := enc.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
