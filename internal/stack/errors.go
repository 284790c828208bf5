package stack

import "errors"

// Errors reported by Run while checking the output path, before any input
// is read. Both are wrapped with the path; test with errors.Is.
var (
	// ErrOutputIsDirectory indicates an output path that names an
	// existing directory.
	ErrOutputIsDirectory = errors.New("output file is a directory")

	// ErrOutputExists indicates an existing output file when overwriting
	// was not requested.
	ErrOutputExists = errors.New("output file exists, refusing to overwrite")
)
