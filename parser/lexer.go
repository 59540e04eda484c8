package parser

import (
	"strings"
)

// LineKind classifies a source line.
type LineKind int

const (
	LineBlank       LineKind = iota // empty or comment-only
	LineLabel                       // "name:"
	LineEnd                         // ".end name"
	LineInstruction                 // anything else
)

// Line is a classified source line. Only LineInstruction lines, and LineLabel
// lines carrying a trailing instruction, consume an instruction index.
type Line struct {
	Kind  LineKind
	Pos   Position
	Text  string // comment-stripped text
	Label string // label name, set for LineLabel
	Rest  string // instruction text after the label, if any
}

// Lexer splits source lines into tokens and classifies them.
type Lexer struct {
	filename string
}

// NewLexer creates a lexer for source attributed to filename.
func NewLexer(filename string) *Lexer {
	return &Lexer{filename: filename}
}

// StripComment truncates a line at the first '#'. Comments run to end of line.
func StripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// isDelimiter reports whether r separates tokens. Runs of delimiters collapse.
func isDelimiter(r rune) bool {
	return r == '\t' || r == ' ' || r == ',' || r == ';'
}

// SplitTokens splits a comment-stripped line into its non-empty tokens.
func SplitTokens(line string) []string {
	return strings.FieldsFunc(StripComment(line), isDelimiter)
}

// isLabelChar reports whether b may appear in a label or function name.
func isLabelChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// validLabelName checks a name against [A-Za-z0-9_]+.
func validLabelName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isLabelChar(name[i]) {
			return false
		}
	}
	return true
}

// Classify determines what kind of statement a source line holds.
// Label syntax errors are reported here; everything else is left for the
// symbol-table and parser passes.
func (l *Lexer) Classify(text string, number int) (Line, *Error) {
	pos := Position{Filename: l.filename, Line: number}
	stripped := StripComment(text)
	trimmed := strings.TrimSpace(stripped)

	if trimmed == "" {
		return Line{Kind: LineBlank, Pos: pos, Text: stripped}, nil
	}

	if i := strings.IndexByte(stripped, ':'); i >= 0 {
		name := strings.TrimLeft(stripped[:i], " \t")
		if !validLabelName(name) {
			return Line{}, NewError(pos, ErrorUnexpectedSymbol, name,
				"label name can only contain alphanumeric characters and underscore")
		}
		rest := strings.TrimSpace(stripped[i+1:])
		return Line{Kind: LineLabel, Pos: pos, Text: stripped, Label: name, Rest: rest}, nil
	}

	if trimmed == ".end" || strings.HasPrefix(trimmed, ".end ") || strings.HasPrefix(trimmed, ".end\t") {
		return Line{Kind: LineEnd, Pos: pos, Text: stripped}, nil
	}

	return Line{Kind: LineInstruction, Pos: pos, Text: stripped}, nil
}
