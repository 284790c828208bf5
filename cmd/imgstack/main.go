package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/imgstack/imgstack/internal/cli"
	"github.com/imgstack/imgstack/internal/stack"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Diagnostics go to stderr; stdout stays clean for version output.
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return
		}
		log.Fatalf("Error: %v", err)
	}

	if opts.ShowVersion {
		fmt.Printf("imgstack %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	if os.Getenv("IMGSTACK_LOG_LEVEL") == "debug" {
		log.Printf("imgstack v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("merging %d inputs into %s (mode=%s overwrite=%t)",
			len(opts.Inputs), opts.Output, opts.Mode, opts.Overwrite)
	}

	if _, err := stack.Run(stack.Options{
		Output:           opts.Output,
		Inputs:           opts.Inputs,
		Mode:             opts.Mode,
		Overwrite:        opts.Overwrite,
		SeedMinFromFirst: opts.SeedMinFromFirst,
		Logger:           log.New(os.Stderr, "", 0),
	}); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
