// Package assembler drives the parse, encode, emit pipeline: assembly
// source in, one 8-digit lowercase hex word per line out.
package assembler

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lookbusy1344/mips-assembler/encoder"
	"github.com/lookbusy1344/mips-assembler/parser"
)

// Assembler assembles MIPS source files into machine words.
type Assembler struct {
	// CodeSegmentOffset overrides the base text segment address.
	// Zero means the default (0x00400000).
	CodeSegmentOffset uint32
	// Trace receives assembly progress lines when non-nil.
	Trace io.Writer
}

// New creates an assembler with default settings.
func New() *Assembler {
	return &Assembler{}
}

// AssembleFile assembles the source file at path and returns the encoded
// words in program order.
func (a *Assembler) AssembleFile(path string) ([]uint32, error) {
	program, err := parser.ParseFileWithOptions(path, parser.Options{
		CodeSegmentOffset: a.CodeSegmentOffset,
		Trace:             a.Trace,
	})
	if err != nil {
		return nil, err
	}
	return a.encode(program)
}

// Assemble assembles in-memory source attributed to filename.
func (a *Assembler) Assemble(source, filename string) ([]uint32, error) {
	program, err := parser.NewParserWithOptions(source, filename, parser.Options{
		CodeSegmentOffset: a.CodeSegmentOffset,
		Trace:             a.Trace,
	}).Parse()
	if err != nil {
		return nil, err
	}
	return a.encode(program)
}

func (a *Assembler) encode(program *parser.Program) ([]uint32, error) {
	instructions, err := encoder.NewEncoder().EncodeProgram(program)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(instructions))
	for i, inst := range instructions {
		words[i] = inst.Word()
	}
	return words, nil
}

// WriteHex writes each word as 8 zero-padded lowercase hex digits followed
// by a newline, in order.
func WriteHex(w io.Writer, words []uint32) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintf(bw, "%08x\n", word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteHexFile writes the words to the file at path. It is called only
// after the whole program has been encoded, so a failed assembly never
// leaves a partial output file behind.
func WriteHexFile(path string, words []uint32) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output file path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteHex(f, words); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
