package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// Decode reads and decodes the image at path.
//
// The decoder's native pixel representation is preserved so the result can
// be classified afterwards; see Classify for the accepted layouts.
func Decode(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Encode writes img to path, choosing the encoder from the file extension
// (.png, .jpg, .jpeg, .gif, .tif, .tiff, .bmp).
//
// Returns an error if the extension has no registered encoder or the file
// cannot be written.
func Encode(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving output file %s: %w", path, err)
	}
	return nil
}
