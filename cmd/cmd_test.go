package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/gqlfront/check"
	tt "github.com/gnoswap-labs/gqlfront/internal/types"
)

func init() {
	color.NoColor = true
}

const (
	validDoc   = "query{a,b{c}}"
	invalidDoc = "{ a"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the command line in args with a configuration path inside
// dir, so no configuration file from the working directory is picked up.
func run(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--config", filepath.Join(dir, ".gqlfront.yaml")}, args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.graphql", validDoc)
	invalid := writeFile(t, dir, "invalid.graphql", invalidDoc)

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantOutput []string
	}{
		{
			name: "valid file",
			args: []string{"check", valid},
		},
		{
			name:    "invalid file",
			args:    []string{"check", invalid},
			wantErr: ErrIssuesFound,
			wantOutput: []string{
				"error: syntax-error",
				invalid + ":1:4",
				"1 | { a",
				"= Expected Name, found EOF",
			},
		},
		{
			name:       "directory",
			args:       []string{"check", dir},
			wantErr:    ErrIssuesFound,
			wantOutput: []string{invalid + ":1:4"},
		},
		{
			name:       "root command behaves like check",
			args:       []string{invalid},
			wantErr:    ErrIssuesFound,
			wantOutput: []string{"= Expected Name, found EOF"},
		},
		{
			name: "ignored path",
			args: []string{"check", "--ignore-paths", "invalid.graphql", dir},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := run(t, dir, "", tc.args...)
			if tc.wantErr != nil {
				assert.ErrorIs(t, res.err, tc.wantErr)
			} else {
				assert.NoError(t, res.err)
				assert.Empty(t, res.stdout)
			}
			for _, want := range tc.wantOutput {
				assert.Contains(t, res.stdout, want)
			}
		})
	}
}

func TestCheckCommandMissingPath(t *testing.T) {
	dir := t.TempDir()
	res := run(t, dir, "", "check", filepath.Join(dir, "missing.graphql"))
	require.Error(t, res.err)
	assert.NotErrorIs(t, res.err, ErrIssuesFound)
}

func TestCheckCommandJSON(t *testing.T) {
	dir := t.TempDir()
	invalid := writeFile(t, dir, "invalid.graphql", invalidDoc)

	decode := func(t *testing.T, data []byte) map[string][]tt.Issue {
		t.Helper()
		var got map[string][]tt.Issue
		require.NoError(t, json.Unmarshal(data, &got))
		return got
	}

	t.Run("stdout", func(t *testing.T) {
		res := run(t, dir, "", "check", "--json", invalid)
		assert.ErrorIs(t, res.err, ErrIssuesFound)

		got := decode(t, []byte(res.stdout))
		require.Len(t, got[invalid], 1)
		issue := got[invalid][0]
		assert.Equal(t, tt.RuleSyntaxError, issue.Rule)
		assert.Equal(t, "Expected Name, found EOF", issue.Message)
		assert.Equal(t, 1, issue.Start.Line)
		assert.Equal(t, 4, issue.Start.Column)
	})

	t.Run("output file", func(t *testing.T) {
		out := filepath.Join(dir, "issues.json")
		res := run(t, dir, "", "check", "--json", "-o", out, invalid)
		assert.ErrorIs(t, res.err, ErrIssuesFound)
		assert.Empty(t, res.stdout)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Len(t, decode(t, data)[invalid], 1)
	})
}

func TestFmtCommand(t *testing.T) {
	const canonical = "{\n  a\n  b {\n    c\n  }\n}\n"

	t.Run("file to stdout", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "q.graphql", validDoc)

		res := run(t, dir, "", "fmt", path)
		require.NoError(t, res.err)
		assert.Equal(t, canonical, res.stdout)

		body, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, validDoc, string(body))
	})

	t.Run("stdin", func(t *testing.T) {
		dir := t.TempDir()
		res := run(t, dir, validDoc, "fmt")
		require.NoError(t, res.err)
		assert.Equal(t, canonical, res.stdout)
	})

	t.Run("write", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "q.graphql", validDoc)

		res := run(t, dir, "", "fmt", "--write", path)
		require.NoError(t, res.err)
		assert.Empty(t, res.stdout)

		body, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, canonical, string(body))
	})

	t.Run("write needs files", func(t *testing.T) {
		dir := t.TempDir()
		res := run(t, dir, validDoc, "fmt", "-w")
		assert.EqualError(t, res.err, "--write requires file arguments")
	})

	t.Run("syntax error", func(t *testing.T) {
		dir := t.TempDir()
		res := run(t, dir, invalidDoc, "fmt")
		assert.ErrorIs(t, res.err, ErrIssuesFound)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, "<stdin>:1:4")
		assert.Contains(t, res.stderr, "= Expected Name, found EOF")
	})
}

func TestASTCommand(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		res := run(t, dir, "{ a }", "ast")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "kind: Document\n")
		assert.Contains(t, res.stdout, "operation: query\n")
		assert.Contains(t, res.stdout, "value: a\n")
	})

	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "q.graphql", "{ a }")

		res := run(t, dir, "", "ast", "--json", path)
		require.NoError(t, res.err)

		var tree map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &tree))
		assert.Equal(t, "Document", tree["kind"])
	})

	t.Run("syntax error", func(t *testing.T) {
		dir := t.TempDir()
		res := run(t, dir, invalidDoc, "ast")
		assert.ErrorIs(t, res.err, ErrIssuesFound)
		assert.Contains(t, res.stderr, "= Expected Name, found EOF")
	})
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gqlfront.yaml")

	res := run(t, dir, "", "init")
	require.NoError(t, res.err)
	assert.Equal(t, "Configuration file created/updated: "+path+"\n", res.stdout)

	config, err := check.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, check.DefaultConfig().Extensions, config.Extensions)

	res = run(t, dir, "", "init")
	assert.ErrorContains(t, res.err, "already exists")

	res = run(t, dir, "", "init", "--force")
	assert.NoError(t, res.err)
}

func TestWatchCommandStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "q.graphql", validDoc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newRootCmd()
	root.SetArgs([]string{"--config", filepath.Join(dir, ".gqlfront.yaml"), "watch", dir})
	root.SetOut(&bytes.Buffer{})
	assert.NoError(t, root.ExecuteContext(ctx))
}
