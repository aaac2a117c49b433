package ast

import "github.com/google/go-cmp/cmp"

// Equal reports whether two trees are structurally equal, locations
// included. Sources are compared by body and name, not by identity.
func Equal(a, b Node) bool {
	return cmp.Equal(a, b)
}

// Diff returns a human-readable report of the differences between two
// trees, or "" when they are equal.
func Diff(a, b Node) string {
	return cmp.Diff(a, b)
}
