package imaging

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat indicates a decoded image whose pixel layout the
// stacker cannot consume: anything other than 3-channel or 4-channel
// 8-bit color.
var ErrUnsupportedFormat = errors.New("unsupported pixel format")

// PixelFormat identifies the channel layout of a decoded image.
type PixelFormat int

const (
	// FormatUnsupported marks pixel layouts the stacker rejects:
	// grayscale, 16-bit channels, indexed palettes, and CMYK.
	FormatUnsupported PixelFormat = iota

	// FormatRGB marks 3-channel 8-bit color, accepted unchanged.
	FormatRGB

	// FormatRGBA marks 4-channel 8-bit color with straight alpha; the
	// alpha channel is discarded with a warning.
	FormatRGBA
)

// String returns a short human-readable name for the format.
func (f PixelFormat) String() string {
	switch f {
	case FormatRGB:
		return "rgb8"
	case FormatRGBA:
		return "rgba8"
	default:
		return "unsupported"
	}
}

// RGBImage is a tightly packed 3-channel 8-bit pixel buffer in row-major
// order: Pix[(y*Width+x)*3] is the red sample of the pixel at (x, y),
// followed by green and blue. It is the only representation the
// accumulation engine folds over.
type RGBImage struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Pix holds the samples; its length is Width*Height*3.
	Pix []uint8
}

// Classify reports the channel layout of a decoded image based on its
// concrete type.
//
// Decoders produce *image.RGBA and *image.YCbCr for sources that carry no
// alpha channel (the alpha bytes of *image.RGBA are synthesized opaque
// padding), so both classify as 3-channel. *image.NRGBA and *image.NYCbCrA
// are produced only when the source really has an alpha channel, so they
// classify as 4-channel. Everything else is unsupported.
func Classify(img image.Image) PixelFormat {
	switch img.(type) {
	case *image.RGBA, *image.YCbCr:
		return FormatRGB
	case *image.NRGBA, *image.NYCbCrA:
		return FormatRGBA
	default:
		return FormatUnsupported
	}
}

// Normalize converts a decoded image into the packed RGB form the
// accumulation engine folds over.
//
// Returns:
//   - *RGBImage: The packed 3-channel pixel buffer.
//   - bool: Whether an alpha channel was discarded; callers surface this
//     as a warning.
//   - error: ErrUnsupportedFormat if Classify rejects the image.
func Normalize(img image.Image) (*RGBImage, bool, error) {
	format := Classify(img)
	if format == FormatUnsupported {
		return nil, false, ErrUnsupportedFormat
	}

	// Clone yields straight (non-premultiplied) 8-bit RGBA for any source
	// representation, so dropping its alpha bytes loses nothing but alpha.
	src := imaging.Clone(img)

	width := src.Rect.Dx()
	height := src.Rect.Dy()
	rgb := &RGBImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}

	di := 0
	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]
		for x := 0; x < width*4; x += 4 {
			rgb.Pix[di] = row[x]
			rgb.Pix[di+1] = row[x+1]
			rgb.Pix[di+2] = row[x+2]
			di += 3
		}
	}

	return rgb, format == FormatRGBA, nil
}
