package main

import (
	"fmt"
	"os"

	"hoist/internal/model"
	"hoist/internal/resolve"

	"github.com/spf13/pflag"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hoist [options]\n\n")
		fmt.Fprintf(os.Stderr, "hoist %s recovers a Rust project from dependency-related build failures.\n", model.Version)
		fmt.Fprintf(os.Stderr, "It parses cargo's error output, fetches candidate versions from crates.io,\n")
		fmt.Fprintf(os.Stderr, "and retries the build across version combinations until one succeeds.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hoist                   # Fix the project in the current directory\n")
		fmt.Fprintf(os.Stderr, "  hoist --dir ~/code/app  # Fix a specific project\n")
	}

	dirFlag := pflag.StringP("dir", "d", "", "Path to the Rust project (default: current directory)")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	dir := *dirFlag
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving working directory: %v\n", err)
			os.Exit(1)
		}
		dir = wd
	}

	fmt.Printf("🛠️  Running hoist in directory: %s\n", dir)

	// Terminal outcomes (clean build, fixed, unparseable, exhausted) all exit
	// zero; they are reported on stdout as the run progresses. Only hard
	// failures reach stderr with a non-zero exit.
	if _, err := resolve.New(dir).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
