package gqlfront

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/gqlfront/gqlerrors"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr string
	}{
		{
			name: "shorthand query",
			body: "query { a b }",
			want: "{\n  a\n  b\n}\n",
		},
		{
			name: "named operation",
			body: "query Q($v: Int = 1) { f(v: $v) }",
			want: "query Q($v: Int = 1) {\n  f(v: $v)\n}\n",
		},
		{
			name:    "syntax error",
			body:    "{ f(v: ) }",
			wantErr: "Syntax Error q.graphql (1:8) Unexpected )",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(tt.body, "q.graphql")
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate("{ a }", ""))

	err := Validate("fragment F on T", "")
	require.Error(t, err)

	var syntaxErr *gqlerrors.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "GraphQL", syntaxErr.Source.Name)
	assert.Equal(t, "Expected {, found EOF", syntaxErr.Message)
	assert.Equal(t, 1, syntaxErr.Line)
	assert.Equal(t, 16, syntaxErr.Column)
}
