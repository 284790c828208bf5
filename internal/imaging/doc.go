// Package imaging provides the image I/O boundary for the stacking tool:
// probing dimensions from file headers, decoding inputs, classifying decoded
// pixel formats, and encoding the merged result.
//
// # Supported Formats
//
// Inputs may arrive in any container with a registered decoder (PNG, JPEG,
// GIF, BMP, TIFF, WebP), but only two decoded pixel layouts are accepted:
//   - 3-channel 8-bit color (JPEG's YCbCr, opaque truecolor PNG/BMP/TIFF),
//     folded as-is
//   - 4-channel 8-bit color with straight alpha (*image.NRGBA,
//     *image.NYCbCrA), folded after the alpha channel is discarded
//
// Grayscale, 16-bit, indexed, and CMYK images are rejected with
// ErrUnsupportedFormat. The output encoder is chosen from the output path's
// extension; see Encode.
//
// # Validation Before Decoding
//
// Probe and ValidateDimensions read only file headers via image.DecodeConfig,
// so an entire batch is dimension-checked before the first pixel of the
// second image is decoded. Full decoding happens one image at a time during
// the fold.
//
// # Error Handling
//
// Functions return errors for:
//   - Input files that are missing or not regular files (ErrInputMissing)
//   - Headers that cannot be parsed during dimension probing
//   - Batches whose images disagree on dimensions (DimensionMismatchError)
//   - Decoded images in an unsupported pixel format (ErrUnsupportedFormat)
//   - Output paths whose extension has no registered encoder
//
// Sentinel errors are wrapped with the offending path; test with errors.Is
// and errors.As.
package imaging
