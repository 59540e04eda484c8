package main

import (
	"fmt"
	"os"

	"github.com/lookbusy1344/mips-assembler/assembler"
	"github.com/lookbusy1344/mips-assembler/config"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src := cfg.Assembler.DefaultSource
	dest := cfg.Assembler.DefaultOutput

	// Two accepted invocations: no arguments (configured defaults), or
	// "<input> -o <output>". Anything else is a usage error.
	switch {
	case len(os.Args) == 1:
	case len(os.Args) == 4 && os.Args[2] == "-o":
		src = os.Args[1]
		dest = os.Args[3]
	default:
		printUsage()
		os.Exit(1)
	}

	offset, err := cfg.SegmentOffset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	asm := assembler.New()
	asm.CodeSegmentOffset = offset
	if cfg.Trace.Enabled {
		asm.Trace = os.Stderr
	}

	words, err := asm.AssembleFile(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := assembler.WriteHexFile(dest, words); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [<input_file> -o <output_file>]\n", os.Args[0])
}
