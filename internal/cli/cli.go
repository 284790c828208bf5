package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/imgstack/imgstack/internal/stack"
)

// ErrHelp is returned by Parse when usage was requested and has already
// been printed.
var ErrHelp = pflag.ErrHelp

// Options holds the parsed command line.
type Options struct {
	// Output is the destination image path.
	Output string

	// Inputs are the positional input image paths, in command line order.
	Inputs []string

	// Mode is the parsed accumulation mode.
	Mode stack.Mode

	// Overwrite permits replacing an existing output file.
	Overwrite bool

	// SeedMinFromFirst seeds min mode from the first input instead of a
	// zero buffer.
	SeedMinFromFirst bool

	// ShowVersion is set by --version; all other fields are then zero
	// and unvalidated.
	ShowVersion bool
}

// Parse interprets args (everything after the program name) as flags and
// positional input paths, which may be interleaved.
//
// Returns ErrHelp after printing usage when help was requested. Any other
// error means the command line is invalid: unknown flags, an unknown mode,
// a missing output path, or no inputs.
func Parse(args []string) (*Options, error) {
	fs := pflag.NewFlagSet("imgstack", pflag.ContinueOnError)
	fs.SortFlags = false

	output := fs.StringP("output", "o", "", "output image path (required)")
	mode := fs.StringP("mode", "m", "sum", "pixel merge mode: sum, sum-overflow, min, max, or average")
	overwrite := fs.BoolP("overwrite", "y", false, "replace the output file if it already exists")
	seedMinFromFirst := fs.Bool("min-seed-first", false, "seed min mode from the first input instead of a zero buffer")
	version := fs.BoolP("version", "V", false, "print version information and exit")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: imgstack -o OUTPUT [flags] INPUT...")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Merge a batch of equally sized images into one output image.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		fmt.Fprint(os.Stderr, fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *version {
		return &Options{ShowVersion: true}, nil
	}

	parsedMode, err := stack.ParseMode(*mode)
	if err != nil {
		return nil, err
	}
	if *output == "" {
		return nil, errors.New("an output path is required (-o, --output)")
	}
	inputs := fs.Args()
	if len(inputs) == 0 {
		return nil, errors.New("at least one input image is required")
	}

	return &Options{
		Output:           *output,
		Inputs:           inputs,
		Mode:             parsedMode,
		Overwrite:        *overwrite,
		SeedMinFromFirst: *seedMinFromFirst,
	}, nil
}
