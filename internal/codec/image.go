package codec

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/avif"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	// Decoders for source formats stdlib image does not cover.
	// gen2brain/avif registers its decoder on import as well.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// losslessEffort is the fixed effort dial (0-9) for the lossless WebP
// path; the user-facing quality setting only applies to lossy encodes.
const losslessEffort = 6

// DecodeImage reads the image at path fully into memory. A decode failure
// is fatal for the file it belongs to; the caller reports it and moves on.
func DecodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// FitWithin scales img down so its longest side is at most maxDim,
// preserving aspect ratio. Images already within bounds are returned as an
// unscaled copy; there is no upscaling.
func FitWithin(img image.Image, maxDim int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return imaging.Clone(img)
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}

// ImageEncoder renders a decoded pixel buffer into one target format.
type ImageEncoder interface {
	// Format is the output extension without the dot (e.g. "webp").
	Format() string
	Encode(w io.Writer, img image.Image) error
}

// ImageEncoders returns the four format encoders in render order:
// webp, avif, jpeg, png. The WebP mode (lossless vs lossy at quality)
// comes from validated config.
func ImageEncoders(webpLossless bool, webpQuality float32) []ImageEncoder {
	return []ImageEncoder{
		webpEncoder{lossless: webpLossless, quality: webpQuality},
		avifEncoder{},
		jpegEncoder{},
		pngEncoder{},
	}
}

type webpEncoder struct {
	lossless bool
	quality  float32
}

func (webpEncoder) Format() string { return "webp" }

func (e webpEncoder) Encode(w io.Writer, img image.Image) error {
	var (
		opts *encoder.Options
		err  error
	)
	if e.lossless {
		opts, err = encoder.NewLosslessEncoderOptions(encoder.PresetDefault, losslessEffort)
	} else {
		opts, err = encoder.NewLossyEncoderOptions(encoder.PresetDefault, e.quality)
	}
	if err != nil {
		return fmt.Errorf("webp options: %w", err)
	}
	if err := webp.Encode(w, img, opts); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}

type avifEncoder struct{}

func (avifEncoder) Format() string { return "avif" }

func (avifEncoder) Encode(w io.Writer, img image.Image) error {
	if err := avif.Encode(w, img); err != nil {
		return fmt.Errorf("avif encode: %w", err)
	}
	return nil
}

type jpegEncoder struct{}

func (jpegEncoder) Format() string { return "jpeg" }

func (jpegEncoder) Encode(w io.Writer, img image.Image) error {
	if err := jpeg.Encode(w, dropAlpha(img), &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return fmt.Errorf("jpeg encode: %w", err)
	}
	return nil
}

type pngEncoder struct{}

func (pngEncoder) Format() string { return "png" }

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// dropAlpha discards the alpha channel, keeping color values as-is.
// JPEG cannot represent alpha; the channel is removed, not composited
// over a background color.
func dropAlpha(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
