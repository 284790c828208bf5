package stack

import (
	"fmt"
	"os"

	"github.com/imgstack/imgstack/internal/imaging"
)

// Logger receives the progress and warning lines the engine emits while
// folding inputs. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// nopLogger discards all output. It is the default when Options.Logger is nil.
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Options configures a single merge run.
type Options struct {
	// Output is the destination image path. Its extension selects the
	// encoder.
	Output string

	// Inputs are the images to fold, in order. At least one is required.
	Inputs []string

	// Mode selects the per-pixel accumulation policy.
	Mode Mode

	// Overwrite permits replacing an existing output file.
	Overwrite bool

	// SeedMinFromFirst switches ModeMin from the zero-seeded buffer
	// (which yields an all-black image) to seeding from the first input.
	SeedMinFromFirst bool

	// Logger receives per-input progress lines and warnings. nil
	// disables diagnostics.
	Logger Logger
}

// Result summarizes a completed merge run.
type Result struct {
	// Output is the path the merged image was written to.
	Output string

	// Width and Height are the shared dimensions of the batch.
	Width  int
	Height int

	// Inputs is the number of images folded.
	Inputs int

	// Warnings lists non-fatal conditions encountered while folding,
	// such as discarded alpha channels. Each entry is also sent to
	// Logger as it occurs.
	Warnings []string
}

// Run merges the input batch into a single image and writes it to
// opts.Output.
//
// The run proceeds in three phases:
//  1. The output path is checked (ErrOutputIsDirectory, ErrOutputExists)
//     and every input's dimensions are validated from file headers alone.
//  2. Each input is decoded, normalized to packed RGB, and folded into the
//     accumulator, one image in memory at a time.
//  3. The finalized accumulator is encoded to opts.Output.
//
// Nothing is written unless every input folds successfully.
func Run(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	if info, err := os.Stat(opts.Output); err == nil {
		if info.IsDir() {
			return nil, fmt.Errorf("%s: %w", opts.Output, ErrOutputIsDirectory)
		}
		if !opts.Overwrite {
			return nil, fmt.Errorf("%s: %w", opts.Output, ErrOutputExists)
		}
	}

	dims, err := imaging.ValidateDimensions(opts.Inputs)
	if err != nil {
		return nil, err
	}

	acc, err := newAccumulator(opts.Mode, dims.Width, dims.Height, opts.SeedMinFromFirst)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Output: opts.Output,
		Width:  dims.Width,
		Height: dims.Height,
		Inputs: len(opts.Inputs),
	}

	for _, path := range opts.Inputs {
		logger.Printf("Stacking %s", path)

		img, err := imaging.Decode(path)
		if err != nil {
			return nil, err
		}

		rgb, alphaDiscarded, err := imaging.Normalize(img)
		if err != nil {
			return nil, fmt.Errorf("image %s: %w", path, err)
		}
		if alphaDiscarded {
			warning := fmt.Sprintf("alpha channel in %s will be discarded", path)
			result.Warnings = append(result.Warnings, warning)
			logger.Printf("Warning: %s", warning)
		}

		acc.Fold(rgb)
	}

	acc.Finalize(len(opts.Inputs))

	if err := imaging.Encode(acc.Image(), opts.Output); err != nil {
		return nil, err
	}

	return result, nil
}
