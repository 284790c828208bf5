package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
)

// ErrInputMissing indicates an input path that does not point at a regular
// file. It is always wrapped with the offending path; test with errors.Is.
var ErrInputMissing = errors.New("file does not exist or is not a regular file")

// Dimensions holds the pixel width and height of an image file.
type Dimensions struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int
}

// DimensionMismatchError reports an input whose dimensions differ from the
// first image of the batch.
type DimensionMismatchError struct {
	// Path is the input file whose dimensions disagree.
	Path string

	// Expected is the dimensions of the first image of the batch.
	Expected Dimensions

	// Actual is the dimensions found at Path.
	Actual Dimensions
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("input image %s has mismatched dimensions: expected %dx%d but got %dx%d",
		e.Path, e.Expected.Width, e.Expected.Height, e.Actual.Width, e.Actual.Height)
}

// Probe returns the dimensions of the image at path by parsing only its
// header; no pixel data is decoded.
//
// Returns an error if the file cannot be opened or its header is not a
// registered image format.
func Probe(path string) (Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("failed to read image header: %w", err)
	}

	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

// ValidateDimensions confirms that every path in the batch carries the same
// pixel dimensions as the first one and returns those dimensions.
//
// The batch is scanned in order and validation stops at the first failure:
//   - An empty batch is an error.
//   - A first image whose dimensions cannot be read is an error; its
//     existence is not checked separately.
//   - Every remaining path must be a regular file (ErrInputMissing
//     otherwise) with a readable header.
//   - A dimension disagreement yields a *DimensionMismatchError naming the
//     offending path.
//
// Only file headers are read; no image is fully decoded.
func ValidateDimensions(paths []string) (Dimensions, error) {
	if len(paths) == 0 {
		return Dimensions{}, errors.New("no input images provided")
	}

	want, err := Probe(paths[0])
	if err != nil {
		return Dimensions{}, fmt.Errorf("querying initial image dimensions: %w", err)
	}

	for _, path := range paths[1:] {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return Dimensions{}, fmt.Errorf("input file %s: %w", path, ErrInputMissing)
		}

		got, err := Probe(path)
		if err != nil {
			return Dimensions{}, fmt.Errorf("querying dimensions of %s: %w", path, err)
		}
		if got != want {
			return Dimensions{}, &DimensionMismatchError{Path: path, Expected: want, Actual: got}
		}
	}

	return want, nil
}
