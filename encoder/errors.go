package encoder

import (
	"fmt"

	"github.com/lookbusy1344/mips-assembler/parser"
)

// EncodingError reports a failure while turning a validated instruction
// record into a machine word. The parser checks operand syntax before
// hand-off, so an EncodingError indicates either a registry inconsistency or
// a numeric operand the encoder cannot parse: a negative jump target, or a
// number too large for the 64-bit immediate or 32-bit target conversion.
type EncodingError struct {
	Pos     parser.Position
	Message string
	Wrapped error // may be nil
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	location := ""
	if e.Pos.Line > 0 || e.Pos.Filename != "" {
		location = fmt.Sprintf("%s: ", e.Pos)
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%sencoding error: %s: %v", location, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%sencoding error: %s", location, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *EncodingError) Unwrap() error {
	return e.Wrapped
}

// NewEncodingError creates an EncodingError at the given source position.
func NewEncodingError(pos parser.Position, message string) *EncodingError {
	return &EncodingError{Pos: pos, Message: message}
}
