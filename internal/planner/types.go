package planner

// Category is a source file's classification, derived solely from its
// extension.
type Category int

const (
	// CategoryGeneric files go through the byte-stream compressors plus a
	// verbatim copy.
	CategoryGeneric Category = iota
	// CategoryImage files are decoded and re-encoded into the target
	// image formats (optionally across resize tiers).
	CategoryImage
	// CategoryPrecompressed files are already a compressed artifact
	// (.br/.gz/.zst/.zz) and are left alone.
	CategoryPrecompressed
)

// String returns the category name for logs.
func (c Category) String() string {
	switch c {
	case CategoryGeneric:
		return "generic"
	case CategoryImage:
		return "image"
	case CategoryPrecompressed:
		return "precompressed"
	default:
		return "unknown"
	}
}

// SourceFile identifies one discovered regular file. RelPath is the join
// key between the input and output trees.
type SourceFile struct {
	Path    string // absolute (or walk-rooted) input path
	RelPath string // path relative to the input root
}

// Kind tags what produced an artifact: a byte codec extension ("br",
// "gz", "zst", "zz"), an image format ("webp", "avif", "jpeg", "png"),
// or "copy" for the verbatim mirror.
type Kind string

const (
	KindCopy Kind = "copy"
)

// Artifact is one planned output file.
type Artifact struct {
	Path string
	Kind Kind
	Tier string // tier label for resized image variants, empty otherwise
}

// ImageVariant is one size instance of an image source: the original
// (Tier == "", MaxDim == 0) or a resize tier. Each variant renders the
// same four format outputs.
type ImageVariant struct {
	Tier    string
	MaxDim  int
	Outputs []Artifact
}

// FilePlan is everything the pipeline will do for one source file.
// Exactly one of the three sections is populated, matching Category:
// Compress+CopyPath for generic files, Variants (or CopyPath when image
// compression is disabled) for images, nothing for precompressed files.
type FilePlan struct {
	Source   SourceFile
	Category Category

	Compress []Artifact     // generic codec outputs, in application order
	Variants []ImageVariant // image size instances, original first
	CopyPath string         // verbatim copy destination, "" when none
}

// Artifacts returns every planned output in execution order, the verbatim
// copy last.
func (p *FilePlan) Artifacts() []Artifact {
	out := append([]Artifact(nil), p.Compress...)
	for _, v := range p.Variants {
		out = append(out, v.Outputs...)
	}
	if p.CopyPath != "" {
		out = append(out, Artifact{Path: p.CopyPath, Kind: KindCopy})
	}
	return out
}

// ArtifactCount returns the number of output files this plan produces.
func (p *FilePlan) ArtifactCount() int {
	n := len(p.Compress)
	for _, v := range p.Variants {
		n += len(v.Outputs)
	}
	if p.CopyPath != "" {
		n++
	}
	return n
}
