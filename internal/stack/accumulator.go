package stack

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/imgstack/imgstack/internal/imaging"
)

// accumulator is the evolving output buffer that receives each input's
// contribution. Fold is called once per input in batch order, Finalize once
// after the last fold, and Image converts the buffer to an encodable form.
type accumulator interface {
	Fold(img *imaging.RGBImage)
	Finalize(inputCount int)
	Image() *image.NRGBA
}

// newAccumulator allocates the zero-valued buffer for mode at width x height.
// seedMinFromFirst switches ModeMin from the zero-seeded buffer to copying
// the first folded image; it has no effect on other modes.
func newAccumulator(mode Mode, width, height int, seedMinFromFirst bool) (accumulator, error) {
	switch mode {
	case ModeSum:
		return newByteAccumulator(width, height, addSaturating, false), nil
	case ModeSumOverflow:
		return newByteAccumulator(width, height, addWrapping, false), nil
	case ModeMin:
		return newByteAccumulator(width, height, minChannel, seedMinFromFirst), nil
	case ModeMax:
		return newByteAccumulator(width, height, maxChannel, false), nil
	case ModeAverage:
		return newMeanAccumulator(width, height), nil
	default:
		return nil, fmt.Errorf("unknown mode %s", mode)
	}
}

// combineFunc is the per-channel binary operation a byte mode folds with.
type combineFunc func(acc, sample uint8) uint8

func addSaturating(acc, sample uint8) uint8 {
	sum := uint16(acc) + uint16(sample)
	if sum > 0xFF {
		return 0xFF
	}
	return uint8(sum)
}

// addWrapping relies on native uint8 overflow: the sum wraps modulo 256.
func addWrapping(acc, sample uint8) uint8 { return acc + sample }

func minChannel(acc, sample uint8) uint8 { return min(acc, sample) }

func maxChannel(acc, sample uint8) uint8 { return max(acc, sample) }

// byteAccumulator folds 8-bit samples in place; channels never leave the
// [0, 255] domain, so no finalization is needed.
type byteAccumulator struct {
	width, height int
	pix           []uint8 // 3 bytes per pixel, row-major
	combine       combineFunc
	seedFromFirst bool
	seeded        bool
}

func newByteAccumulator(width, height int, combine combineFunc, seedFromFirst bool) *byteAccumulator {
	return &byteAccumulator{
		width:         width,
		height:        height,
		pix:           make([]uint8, width*height*3),
		combine:       combine,
		seedFromFirst: seedFromFirst,
	}
}

func (a *byteAccumulator) Fold(img *imaging.RGBImage) {
	if a.seedFromFirst && !a.seeded {
		copy(a.pix, img.Pix)
		a.seeded = true
		return
	}

	// Stop at the shorter buffer, like zipping two sample streams.
	n := min(len(a.pix), len(img.Pix))
	for i := 0; i < n; i++ {
		a.pix[i] = a.combine(a.pix[i], img.Pix[i])
	}
}

func (a *byteAccumulator) Finalize(int) {}

func (a *byteAccumulator) Image() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, a.width, a.height))
	si := 0
	for di := 0; di < len(out.Pix); di += 4 {
		out.Pix[di] = a.pix[si]
		out.Pix[di+1] = a.pix[si+1]
		out.Pix[di+2] = a.pix[si+2]
		out.Pix[di+3] = 0xFF
		si += 3
	}
	return out
}

// meanAccumulator keeps a running sum of normalized samples (value/255) per
// channel and divides by the input count in Finalize, leaving each channel
// in [0, 1] for the final 8-bit conversion.
type meanAccumulator struct {
	width, height int
	sum           []float32 // 3 values per pixel, row-major
}

func newMeanAccumulator(width, height int) *meanAccumulator {
	return &meanAccumulator{
		width:  width,
		height: height,
		sum:    make([]float32, width*height*3),
	}
}

func (a *meanAccumulator) Fold(img *imaging.RGBImage) {
	n := min(len(a.sum), len(img.Pix))
	for i := 0; i < n; i++ {
		a.sum[i] += float32(img.Pix[i]) / 255.0
	}
}

func (a *meanAccumulator) Finalize(inputCount int) {
	if inputCount == 0 {
		return
	}
	divisor := float32(inputCount)
	for i := range a.sum {
		a.sum[i] /= divisor
	}
}

func (a *meanAccumulator) Image() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, a.width, a.height))
	si := 0
	for di := 0; di < len(out.Pix); di += 4 {
		c := colorful.Color{
			R: float64(a.sum[si]),
			G: float64(a.sum[si+1]),
			B: float64(a.sum[si+2]),
		}
		r, g, b := c.Clamped().RGB255()
		out.Pix[di] = r
		out.Pix[di+1] = g
		out.Pix[di+2] = b
		out.Pix[di+3] = 0xFF
		si += 3
	}
	return out
}
