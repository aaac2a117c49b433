// Package gqlerrors defines the error reported for malformed query text.
package gqlerrors

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/gqlfront/language/source"
)

// SyntaxError is returned for every lexical, grammatical and contextual
// violation. It is self-describing: the source and offset are enough to
// recover the line and column without any other parse state.
type SyntaxError struct {
	Source  *source.Source
	Offset  int
	Message string

	// Line and Column are resolved from Offset when the error is built.
	Line   int
	Column int
}

// NewSyntaxError builds a SyntaxError located at offset within src.
func NewSyntaxError(src *source.Source, offset int, message string) *SyntaxError {
	if src == nil {
		src = source.New("", "")
	}
	loc := src.Position(offset)
	return &SyntaxError{
		Source:  src,
		Offset:  offset,
		Message: message,
		Line:    loc.Line,
		Column:  loc.Column,
	}
}

// Error renders "Syntax Error <name> (<line>:<column>) <message>".
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error %s (%d:%d) %s", e.Source.Name, e.Line, e.Column, e.Message)
}

// Highlight returns an excerpt of the lines around the error with a caret
// under the offending column, e.g.
//
//	1: { ...MissingOn }
//	2: fragment MissingOn Type
//	                      ^
func (e *SyntaxError) Highlight() string {
	lines := e.Source.Lines()
	width := len(fmt.Sprintf("%d", e.Line+1))

	var b strings.Builder
	writeLine := func(n int) {
		if n < 1 || n > len(lines) {
			return
		}
		fmt.Fprintf(&b, "%*d: %s\n", width, n, lines[n-1])
	}

	if e.Line >= 2 {
		writeLine(e.Line - 1)
	}
	writeLine(e.Line)
	b.WriteString(strings.Repeat(" ", width+1+e.Column))
	b.WriteString("^\n")
	if e.Line < len(lines) {
		writeLine(e.Line + 1)
	}
	return b.String()
}
