// Package formatter renders issues as colored, compiler-style reports.
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	tt "github.com/gnoswap-labs/gqlfront/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

const issueTemplate = `{{header .Rule .MaxLineNumWidth .Filename .Line .Column}}
{{snippet .Lines .Line .MaxLineNumWidth .Padding -}}
{{caret .Lines .Line .Column .Padding -}}
{{message .Message .Padding}}
`

var issueTmpl = template.Must(template.New("issue").Funcs(template.FuncMap{
	"header":  header,
	"snippet": codeSnippet,
	"caret":   caret,
	"message": message,
}).Parse(issueTemplate))

type issueData struct {
	Rule            string
	Filename        string
	Line            int
	Column          int
	Message         string
	MaxLineNumWidth int
	Padding         string
	Lines           []string
}

// GenerateFormattedIssue formats issues found in one file, whose content
// is given as lines, into a human-readable report.
func GenerateFormattedIssue(issues []tt.Issue, lines []string) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(buildIssue(issue, lines))
	}
	return builder.String()
}

func buildIssue(issue tt.Issue, lines []string) string {
	width := len(fmt.Sprintf("%d", issue.Start.Line))
	data := issueData{
		Rule:            issue.Rule,
		Filename:        issue.Filename,
		Line:            issue.Start.Line,
		Column:          issue.Start.Column,
		Message:         issue.Message,
		MaxLineNumWidth: width,
		Padding:         strings.Repeat(" ", width+1),
		Lines:           lines,
	}

	var buf bytes.Buffer
	if err := issueTmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting issue: %v", err)
	}
	return buf.String()
}

func header(rule string, maxLineNumWidth int, filename string, line, column int) string {
	var b strings.Builder
	b.WriteString(errorStyle.Sprint("error: "))
	b.WriteString(ruleStyle.Sprintf("%s\n", rule))
	b.WriteString(lineStyle.Sprintf("%s--> ", strings.Repeat(" ", maxLineNumWidth)))
	b.WriteString(fileStyle.Sprintf("%s:%d:%d", filename, line, column))
	return b.String()
}

// codeSnippet prints the offending line and the one before it.
func codeSnippet(lines []string, line, maxLineNumWidth int, padding string) string {
	var b strings.Builder
	b.WriteString(lineStyle.Sprintf("%s|\n", padding))
	for i := line - 1; i <= line; i++ {
		if i < 1 || i > len(lines) {
			continue
		}
		b.WriteString(lineStyle.Sprintf("%*d | ", maxLineNumWidth, i))
		b.WriteString(expandTabs(lines[i-1]) + "\n")
	}
	return b.String()
}

func caret(lines []string, line, column int, padding string) string {
	if line < 1 || line > len(lines) {
		return ""
	}
	visual := calculateVisualColumn(lines[line-1], column)
	return lineStyle.Sprintf("%s| ", padding) + strings.Repeat(" ", visual) + messageStyle.Sprint("^") + "\n"
}

func message(msg, padding string) string {
	return lineStyle.Sprintf("%s= ", padding) + messageStyle.Sprintf("%s\n", msg)
}

func expandTabs(line string) string {
	var expanded strings.Builder
	visual := 0
	for _, ch := range line {
		if ch == '\t' {
			n := tabWidth - (visual % tabWidth)
			expanded.WriteString(strings.Repeat(" ", n))
			visual += n
			continue
		}
		expanded.WriteRune(ch)
		visual++
	}
	return expanded.String()
}

// calculateVisualColumn converts a 1-based byte column into the number of
// cells before it once tabs are expanded.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	if column-1 > len(line) {
		visualColumn += column - 1 - len(line)
	}
	return visualColumn
}
