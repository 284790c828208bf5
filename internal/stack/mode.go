package stack

import "fmt"

// Mode selects how corresponding pixel channels from the input batch are
// combined. The mode decides the accumulator's numeric domain (8-bit
// integers for the first four modes, 32-bit floats for ModeAverage), the
// per-channel combine operation, and whether a finalization pass runs after
// the last input.
type Mode int

const (
	// ModeSum adds samples with saturation: channels clamp at 255.
	ModeSum Mode = iota

	// ModeSumOverflow adds samples with wraparound: channels wrap
	// modulo 256.
	ModeSumOverflow

	// ModeMin keeps the smaller sample per channel. See the package
	// documentation for the zero-seed pitfall.
	ModeMin

	// ModeMax keeps the larger sample per channel.
	ModeMax

	// ModeAverage accumulates normalized samples and divides by the
	// input count once all inputs are folded.
	ModeAverage
)

// ParseMode maps a command line mode name to its Mode. Recognized names
// are "sum", "sum-overflow", "min", "max", and "average" (alias "avg").
// Matching is case sensitive.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sum":
		return ModeSum, nil
	case "sum-overflow":
		return ModeSumOverflow, nil
	case "min":
		return ModeMin, nil
	case "max":
		return ModeMax, nil
	case "average", "avg":
		return ModeAverage, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (expected sum, sum-overflow, min, max, or average)", s)
	}
}

// String returns the canonical command line name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSum:
		return "sum"
	case ModeSumOverflow:
		return "sum-overflow"
	case ModeMin:
		return "min"
	case ModeMax:
		return "max"
	case ModeAverage:
		return "average"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
