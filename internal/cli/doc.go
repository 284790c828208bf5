// Package cli parses the imgstack command line into engine options.
package cli
