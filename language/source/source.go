// Package source holds the named text buffer that every parse reads from,
// along with the offset-to-position resolver used by error reporting.
package source

import "strings"

// DefaultName is the name given to a Source built without one.
const DefaultName = "GraphQL"

// Source is an immutable named body of query text.
//
// A single *Source is shared by every ast.Loc produced from one parse.
// Two sources are equal when both their body and name are equal, so trees
// parsed from equal text compare equal even across separate parses.
type Source struct {
	Body string
	Name string
}

// New returns a Source for body. An empty name falls back to DefaultName.
func New(body, name string) *Source {
	if name == "" {
		name = DefaultName
	}
	return &Source{
		Body: body,
		Name: name,
	}
}

// Equal reports whether s and o hold the same body under the same name.
// A nil Source only equals another nil Source.
func (s *Source) Equal(o *Source) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Body == o.Body && s.Name == o.Name
}

// Len returns the body length in bytes.
func (s *Source) Len() int { return len(s.Body) }

// Lines splits the body on '\n', the same separator Position counts.
func (s *Source) Lines() []string {
	return strings.Split(s.Body, "\n")
}
