package parser

import (
	"os"
	"path/filepath"
)

// ParseFile reads and parses an assembly file. The file is read once into
// memory; both assembly passes iterate the in-memory line list.
//
// A path that cannot be opened reports ErrorFileNotFound.
func ParseFile(path string) (*Program, error) {
	return ParseFileWithOptions(path, Options{})
}

// ParseFileWithOptions reads and parses an assembly file with explicit
// options.
func ParseFileWithOptions(path string, opts Options) (*Program, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, NewError(Position{Filename: path}, ErrorFileNotFound, path,
			"file was not found")
	}
	return NewParserWithOptions(string(content), filepath.Base(path), opts).Parse()
}
