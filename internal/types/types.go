package types

import "go/token"

// RuleSyntaxError is the rule reported for malformed documents.
const RuleSyntaxError = "syntax-error"

// Issue represents a problem found in a query document.
type Issue struct {
	Rule     string         `json:"rule"`
	Category string         `json:"category"`
	Filename string         `json:"filename"`
	Message  string         `json:"message"`
	Note     string         `json:"note,omitempty"`
	Start    token.Position `json:"start"`
	End      token.Position `json:"end"`
}

// String renders the issue as "file:line:col: message".
func (i Issue) String() string {
	return i.Start.String() + ": " + i.Message
}
