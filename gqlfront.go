// Package gqlfront formats and validates GraphQL query documents.
//
// It wraps the language packages for callers that only have text in
// hand. Use language/parser directly for options or the syntax tree.
package gqlfront

import (
	"github.com/gnoswap-labs/gqlfront/language/parser"
	"github.com/gnoswap-labs/gqlfront/language/printer"
	"github.com/gnoswap-labs/gqlfront/language/source"
)

// Format parses body and returns it in canonical form. An empty name
// falls back to source.DefaultName in error messages.
func Format(body, name string) (string, error) {
	doc, err := parser.Parse(source.New(body, name), parser.Options{})
	if err != nil {
		return "", err
	}
	return printer.Print(doc), nil
}

// Validate returns the first syntax error in body, or nil. A non-nil
// result is always a *gqlerrors.SyntaxError.
func Validate(body, name string) error {
	_, err := parser.Parse(source.New(body, name), parser.Options{NoLocation: true})
	return err
}
