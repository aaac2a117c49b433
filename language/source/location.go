package source

import "strings"

// Location is a 1-indexed line and column pair.
type Location struct {
	Line   int
	Column int
}

// Position resolves a byte offset within s to its line and column.
//
// The line is one more than the number of '\n' bytes strictly before the
// offset; the column counts bytes from the last such newline. Offsets past
// the end of the body are clamped to its length.
func (s *Source) Position(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.Body) {
		offset = len(s.Body)
	}
	prefix := s.Body[:offset]
	line := 1 + strings.Count(prefix, "\n")
	column := offset + 1
	if last := strings.LastIndexByte(prefix, '\n'); last >= 0 {
		column = offset - last
	}
	return Location{Line: line, Column: column}
}
