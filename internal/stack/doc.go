// Package stack implements the pixel accumulation engine that merges a
// batch of equally sized images into one output image.
//
// # Merge Modes
//
// Corresponding pixels from every input are combined per channel under one
// of five modes:
//   - sum: saturating addition, channels clamp at 255
//   - sum-overflow: wrapping addition, channels wrap modulo 256
//   - min: per-channel minimum
//   - max: per-channel maximum
//   - average: arithmetic mean over all inputs
//
// The integer modes fold 8-bit samples in place; average accumulates
// normalized 32-bit floating point sums and converts back to 8 bits after
// the final division.
//
// # Memory Model
//
// Run holds one accumulator buffer plus a single decoded input at a time.
// Inputs are decoded lazily in batch order, so peak memory stays flat no
// matter how many images the batch contains.
//
// # The min Mode Pitfall
//
// Every accumulator starts from an all-zero buffer. Addition and maximum
// treat zero as their identity, but minimum does not: min(0, x) is always
// 0, so plain min mode reproduces the historical behavior of emitting an
// all-black image. Options.SeedMinFromFirst opts in to seeding the buffer
// from the first input instead, which makes min a true per-channel minimum
// across the batch.
package stack
