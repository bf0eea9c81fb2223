package planner

import (
	"github.com/backmassage/assetpress/internal/config"
	"github.com/backmassage/assetpress/internal/naming"
)

// Codec and image format orders match the execution order of the
// pipelines; keep them in sync with the codec package constructors.
var (
	codecKinds  = []Kind{"br", "gz", "zst", "zz"}
	formatKinds = []Kind{"webp", "avif", "jpeg", "png"}
)

// BuildPlan classifies src and lays out every destination path its
// pipeline run will produce. Returns ErrNoExtension (wrapped category
// errors aside) for unclassifiable files.
func BuildPlan(cfg *config.Config, src SourceFile, outputDir string) (*FilePlan, error) {
	category, err := Classify(src.Path)
	if err != nil {
		return nil, err
	}

	plan := &FilePlan{Source: src, Category: category}
	base := naming.OutputPath(outputDir, src.RelPath)

	switch category {
	case CategoryPrecompressed:
		// Already an artifact; nothing to produce.

	case CategoryGeneric:
		for _, k := range codecKinds {
			plan.Compress = append(plan.Compress, Artifact{
				Path: naming.AppendExtension(base, string(k)),
				Kind: k,
			})
		}
		plan.CopyPath = base

	case CategoryImage:
		if !cfg.CompressImages {
			// Opting out of touching images entirely: only the verbatim
			// fallback copy, which tolerates an existing destination.
			plan.CopyPath = base
			break
		}
		plan.Variants = append(plan.Variants, imageVariant(base, "", 0))
		if cfg.ResizeImages {
			for _, t := range cfg.Tiers {
				plan.Variants = append(plan.Variants, imageVariant(base, t.Label, t.MaxDim))
			}
		}
	}
	return plan, nil
}

// imageVariant lays out the four format outputs for one size instance.
func imageVariant(base, tier string, maxDim int) ImageVariant {
	name := base
	if tier != "" {
		name = naming.WithTierSuffix(base, tier)
	}
	v := ImageVariant{Tier: tier, MaxDim: maxDim}
	for _, k := range formatKinds {
		v.Outputs = append(v.Outputs, Artifact{
			Path: naming.WithExtension(name, string(k)),
			Kind: k,
			Tier: tier,
		})
	}
	return v
}
