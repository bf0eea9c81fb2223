// Package codec wraps the compression and image-encoding algorithms the
// pipeline applies to source files behind two small interfaces.
//
// Byte-stream side:
//   - Compressor (Name, Extension, NewWriter) with four implementations:
//     brotli, gzip, zstd, raw deflate. [Compressors] returns them in the
//     order the generic pipeline applies them.
//   - Level range constants used by config validation. Levels outside a
//     codec's legal range are rejected at startup, never clamped.
//
// Image side:
//   - DecodeImage / FitWithin for decode and bounding-box downscale.
//   - ImageEncoder (Format, Encode) with four implementations: WebP
//     (lossless or lossy per config), AVIF (encoder defaults), JPEG
//     (alpha discarded), PNG (alpha preserved). [ImageEncoders] returns
//     them in render order.
package codec
