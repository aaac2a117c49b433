package gqlerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/gqlfront/language/source"
)

func TestSyntaxErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     *source.Source
		offset  int
		message string
		want    string
	}{
		{
			name:    "default name",
			src:     source.New("{ ...", ""),
			offset:  2,
			message: "Unexpected ...",
			want:    "Syntax Error GraphQL (1:3) Unexpected ...",
		},
		{
			name:    "named source",
			src:     source.New("query", "MyQuery.graphql"),
			offset:  5,
			message: "Expected Name, found EOF",
			want:    "Syntax Error MyQuery.graphql (1:6) Expected Name, found EOF",
		},
		{
			name:    "second line",
			src:     source.New("{ ...MissingOn }\nfragment MissingOn Type\n", ""),
			offset:  36,
			message: `Expected "on", found Name "Type"`,
			want:    `Syntax Error GraphQL (2:20) Expected "on", found Name "Type"`,
		},
		{
			name:    "nil source",
			src:     nil,
			offset:  0,
			message: "Unexpected EOF",
			want:    "Syntax Error GraphQL (1:1) Unexpected EOF",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewSyntaxError(tt.src, tt.offset, tt.message)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestSyntaxErrorAs(t *testing.T) {
	t.Parallel()

	var err error = NewSyntaxError(source.New("{", "a.graphql"), 1, "Expected Name, found EOF")
	wrapped := fmt.Errorf("checking a.graphql: %w", err)

	var se *SyntaxError
	require.True(t, errors.As(wrapped, &se))
	assert.Equal(t, 1, se.Line)
	assert.Equal(t, 2, se.Column)
	assert.Equal(t, "a.graphql", se.Source.Name)
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	t.Run("middle line", func(t *testing.T) {
		t.Parallel()
		src := source.New("{ ...MissingOn }\nfragment MissingOn Type\n", "")
		err := NewSyntaxError(src, 36, `Expected "on", found Name "Type"`)

		want := "1: { ...MissingOn }\n" +
			"2: fragment MissingOn Type\n" +
			"                      ^\n" +
			"3: \n"
		assert.Equal(t, want, err.Highlight())
	})

	t.Run("first line", func(t *testing.T) {
		t.Parallel()
		src := source.New("query", "")
		err := NewSyntaxError(src, 5, "Expected Name, found EOF")

		want := "1: query\n" +
			"        ^\n"
		assert.Equal(t, want, err.Highlight())
	})
}
