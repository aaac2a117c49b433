package formatter

import (
	"go/token"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tt "github.com/gnoswap-labs/gqlfront/internal/types"
)

func init() {
	color.NoColor = true
}

func TestGenerateFormattedIssue(t *testing.T) {
	t.Parallel()

	lines := []string{
		"{ ...MissingOn }",
		"fragment MissingOn Type",
		"",
	}
	issues := []tt.Issue{
		{
			Rule:     "syntax-error",
			Filename: "q.graphql",
			Message:  `Expected "on", found Name "Type"`,
			Start:    token.Position{Line: 2, Column: 20},
			End:      token.Position{Line: 2, Column: 20},
		},
	}

	expected := `error: syntax-error
 --> q.graphql:2:20
  |
1 | { ...MissingOn }
2 | fragment MissingOn Type
  |                    ^
  = Expected "on", found Name "Type"

`
	assert.Equal(t, expected, GenerateFormattedIssue(issues, lines))
}

func TestGenerateFormattedIssueFirstLine(t *testing.T) {
	t.Parallel()

	issues := []tt.Issue{
		{
			Rule:     "syntax-error",
			Filename: "MyQuery.graphql",
			Message:  "Expected Name, found EOF",
			Start:    token.Position{Line: 1, Column: 6},
		},
	}

	expected := `error: syntax-error
 --> MyQuery.graphql:1:6
  |
1 | query
  |      ^
  = Expected Name, found EOF

`
	assert.Equal(t, expected, GenerateFormattedIssue(issues, []string{"query"}))
}

func TestGenerateFormattedIssueWideLineNumbers(t *testing.T) {
	t.Parallel()

	lines := make([]string, 10)
	lines[8] = "{"
	lines[9] = "\tfield("
	issues := []tt.Issue{
		{
			Rule:     "syntax-error",
			Filename: "wide.graphql",
			Message:  "Expected Name, found EOF",
			Start:    token.Position{Line: 10, Column: 8},
		},
	}

	expected := "error: syntax-error\n" +
		"  --> wide.graphql:10:8\n" +
		"   |\n" +
		" 9 | {\n" +
		"10 |         field(\n" +
		"   |               ^\n" +
		"   = Expected Name, found EOF\n" +
		"\n"
	assert.Equal(t, expected, GenerateFormattedIssue(issues, lines))
}

func TestCalculateVisualColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line   string
		column int
		want   int
	}{
		{"abc", 1, 0},
		{"abc", 3, 2},
		{"abc", 4, 3},
		{"\tabc", 2, 8},
		{"a\tb", 3, 8},
		{"", 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calculateVisualColumn(tt.line, tt.column), "%q col %d", tt.line, tt.column)
	}
}
