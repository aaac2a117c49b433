// Package printer renders AST nodes back to query text.
//
// Output is canonical: two-space indentation, one selection per line,
// arguments and list items joined by ", ", and insignificant tokens
// (commas, comments, extra whitespace) dropped. Printing a parsed
// document and parsing the result again yields the same tree shape.
package printer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gnoswap-labs/gqlfront/language/ast"
)

const indentUnit = "  "

// Print renders node as query text. A Document ends with a newline; any
// other node is rendered without one. A nil node prints as "".
func Print(node ast.Node) string {
	if node == nil {
		return ""
	}
	p := &printer{}
	p.node(node)
	return p.b.String()
}

type printer struct {
	b     strings.Builder
	depth int
}

func (p *printer) write(s string) { p.b.WriteString(s) }

func (p *printer) newline() {
	p.b.WriteByte('\n')
	p.write(strings.Repeat(indentUnit, p.depth))
}

func (p *printer) node(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		for i, def := range n.Definitions {
			if i > 0 {
				p.write("\n\n")
			}
			p.node(def)
		}
		if len(n.Definitions) > 0 {
			p.write("\n")
		}
	case *ast.OperationDefinition:
		p.operation(n)
	case *ast.FragmentDefinition:
		p.write("fragment ")
		p.node(n.Name)
		p.write(" on ")
		p.node(n.TypeCondition)
		p.directives(n.Directives)
		p.write(" ")
		p.node(n.SelectionSet)
	case *ast.VariableDefinition:
		p.node(n.Variable)
		p.write(": ")
		p.node(n.Type)
		if n.DefaultValue != nil {
			p.write(" = ")
			p.node(n.DefaultValue)
		}
	case *ast.SelectionSet:
		p.selectionSet(n)
	case *ast.Field:
		if n.Alias != nil {
			p.node(n.Alias)
			p.write(": ")
		}
		p.node(n.Name)
		p.arguments(n.Arguments)
		p.directives(n.Directives)
		if n.SelectionSet != nil {
			p.write(" ")
			p.node(n.SelectionSet)
		}
	case *ast.FragmentSpread:
		p.write("...")
		p.node(n.Name)
		p.directives(n.Directives)
	case *ast.InlineFragment:
		p.write("... on ")
		p.node(n.TypeCondition)
		p.directives(n.Directives)
		p.write(" ")
		p.node(n.SelectionSet)
	case *ast.Argument:
		p.node(n.Name)
		p.write(": ")
		p.node(n.Value)
	case *ast.Directive:
		p.write("@")
		p.node(n.Name)
		p.arguments(n.Arguments)
	case *ast.Name:
		p.write(n.Value)
	case *ast.NamedType:
		p.node(n.Name)
	case *ast.ListType:
		p.write("[")
		p.node(n.Type)
		p.write("]")
	case *ast.NonNullType:
		p.node(n.Type)
		p.write("!")
	case *ast.Variable:
		p.write("$")
		p.node(n.Name)
	case *ast.IntValue:
		p.write(n.Value)
	case *ast.FloatValue:
		p.write(n.Value)
	case *ast.StringValue:
		p.write(Quote(n.Value))
	case *ast.BooleanValue:
		fmt.Fprintf(&p.b, "%t", n.Value)
	case *ast.NullValue:
		p.write("null")
	case *ast.EnumValue:
		p.write(n.Value)
	case *ast.ListValue:
		p.write("[")
		for i, v := range n.Values {
			if i > 0 {
				p.write(", ")
			}
			p.node(v)
		}
		p.write("]")
	case *ast.ObjectValue:
		p.write("{")
		for i, f := range n.Fields {
			if i > 0 {
				p.write(", ")
			}
			p.node(f)
		}
		p.write("}")
	case *ast.ObjectField:
		p.node(n.Name)
		p.write(": ")
		p.node(n.Value)
	}
}

// operation prints the shorthand `{ ... }` form for an anonymous query
// without variables or directives.
func (p *printer) operation(op *ast.OperationDefinition) {
	shorthand := op.Operation == ast.OperationQuery &&
		op.Name == nil &&
		len(op.VariableDefinitions) == 0 &&
		len(op.Directives) == 0
	if shorthand {
		p.node(op.SelectionSet)
		return
	}

	p.write(op.Operation)
	if op.Name != nil {
		p.write(" ")
		p.node(op.Name)
	}
	if len(op.VariableDefinitions) > 0 {
		p.write("(")
		for i, vd := range op.VariableDefinitions {
			if i > 0 {
				p.write(", ")
			}
			p.node(vd)
		}
		p.write(")")
	}
	p.directives(op.Directives)
	p.write(" ")
	p.node(op.SelectionSet)
}

func (p *printer) selectionSet(ss *ast.SelectionSet) {
	if ss == nil || len(ss.Selections) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.depth++
	for _, sel := range ss.Selections {
		p.newline()
		p.node(sel)
	}
	p.depth--
	p.newline()
	p.write("}")
}

func (p *printer) arguments(args []*ast.Argument) {
	if len(args) == 0 {
		return
	}
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.node(arg)
	}
	p.write(")")
}

func (p *printer) directives(dirs []*ast.Directive) {
	for _, d := range dirs {
		p.write(" ")
		p.node(d)
	}
}

// Quote renders s as a string literal the lexer reads back to s. Bytes
// that are not valid UTF-8 are copied through unchanged.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		i += size

		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
