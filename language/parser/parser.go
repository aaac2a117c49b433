// Package parser builds an AST from query text.
//
// Parsing is a single recursive-descent pass with one token of lookahead.
// Tokens are pulled from the lexer on demand and the first syntax error
// aborts the parse; no partial document is ever returned.
package parser

import (
	"fmt"

	"github.com/gnoswap-labs/gqlfront/gqlerrors"
	"github.com/gnoswap-labs/gqlfront/language/ast"
	"github.com/gnoswap-labs/gqlfront/language/lexer"
	"github.com/gnoswap-labs/gqlfront/language/source"
)

// Parser holds the state of one parse. It is not safe for concurrent use,
// but separate parsers share nothing and may run in parallel.
type Parser struct {
	lexer   *lexer.Lexer
	source  *source.Source
	options Options

	tok     lexer.Token // current lookahead
	prevEnd int         // end offset of the last consumed token
	depth   int
}

// Parse parses src into a Document.
func Parse(src *source.Source, opts Options) (*ast.Document, error) {
	p, err := newParser(src, opts)
	if err != nil {
		return nil, err
	}
	return p.parseDocument()
}

// ParseString parses body as a Source with the default name.
func ParseString(body string, opts Options) (*ast.Document, error) {
	return Parse(source.New(body, ""), opts)
}

// ParseValue parses a single value literal spanning the whole of src.
// Variables are permitted.
func ParseValue(src *source.Source, opts Options) (ast.Value, error) {
	p, err := newParser(src, opts)
	if err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenEOF); err != nil {
		return nil, err
	}
	return value, nil
}

func newParser(src *source.Source, opts Options) (*Parser, error) {
	if src == nil {
		src = source.New("", "")
	}
	p := &Parser{
		lexer:   lexer.New(src),
		source:  src,
		options: opts.withDefaults(),
	}
	tok, err := p.lexer.ReadToken(0)
	if err != nil {
		return nil, err
	}
	p.tok = tok
	return p, nil
}

/* Document */

func (p *Parser) parseDocument() (*ast.Document, error) {
	start := p.tok.Start
	var definitions []ast.Definition
	for {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, def)

		done, err := p.skip(lexer.TokenEOF)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}
	return &ast.Document{
		Loc:         p.loc(start),
		Definitions: definitions,
	}, nil
}

func (p *Parser) parseDefinition() (ast.Definition, error) {
	if p.peek(lexer.TokenBraceL) {
		return p.parseOperationDefinition()
	}
	if p.peek(lexer.TokenName) {
		switch p.tok.Value {
		case ast.OperationQuery, ast.OperationMutation, ast.OperationSubscription:
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		}
	}
	return nil, p.unexpected()
}

/* Operations */

func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.tok.Start
	if p.peek(lexer.TokenBraceL) {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Loc:          p.loc(start),
			Operation:    ast.OperationQuery,
			SelectionSet: selectionSet,
		}, nil
	}

	operationToken, err := p.expect(lexer.TokenName)
	if err != nil {
		return nil, err
	}

	// The name may only be left out when the operation continues directly
	// with its variables, directives or selection set.
	var name *ast.Name
	switch {
	case p.peek(lexer.TokenName):
		if name, err = p.parseName(); err != nil {
			return nil, err
		}
	case p.peek(lexer.TokenParenL), p.peek(lexer.TokenAt), p.peek(lexer.TokenBraceL):
	default:
		_, err := p.expect(lexer.TokenName)
		return nil, err
	}

	variableDefinitions, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.OperationDefinition{
		Loc:                 p.loc(start),
		Operation:           operationToken.Value,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
	}, nil
}

func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if !p.peek(lexer.TokenParenL) {
		return nil, nil
	}
	return many(p, lexer.TokenParenL, p.parseVariableDefinition, lexer.TokenParenR)
}

func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.tok.Start
	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	hasDefault, err := p.skip(lexer.TokenEquals)
	if err != nil {
		return nil, err
	}
	if hasDefault {
		if defaultValue, err = p.parseValueLiteral(true); err != nil {
			return nil, err
		}
	}
	return &ast.VariableDefinition{
		Loc:          p.loc(start),
		Variable:     variable,
		Type:         typ,
		DefaultValue: defaultValue,
	}, nil
}

func (p *Parser) parseVariable() (*ast.Variable, error) {
	start := p.tok.Start
	if _, err := p.expect(lexer.TokenDollar); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{
		Loc:  p.loc(start),
		Name: name,
	}, nil
}

/* Selections */

func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	start := p.tok.Start
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	selections, err := many(p, lexer.TokenBraceL, p.parseSelection, lexer.TokenBraceR)
	if err != nil {
		return nil, err
	}
	return &ast.SelectionSet{
		Loc:        p.loc(start),
		Selections: selections,
	}, nil
}

func (p *Parser) parseSelection() (ast.Selection, error) {
	if p.peek(lexer.TokenSpread) {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *Parser) parseField() (*ast.Field, error) {
	start := p.tok.Start
	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias, name *ast.Name
	hasAlias, err := p.skip(lexer.TokenColon)
	if err != nil {
		return nil, err
	}
	if hasAlias {
		alias = nameOrAlias
		if name, err = p.parseName(); err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	arguments, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	var selectionSet *ast.SelectionSet
	if p.peek(lexer.TokenBraceL) {
		if selectionSet, err = p.parseSelectionSet(); err != nil {
			return nil, err
		}
	}
	return &ast.Field{
		Loc:          p.loc(start),
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
	}, nil
}

func (p *Parser) parseArguments() ([]*ast.Argument, error) {
	if !p.peek(lexer.TokenParenL) {
		return nil, nil
	}
	return many(p, lexer.TokenParenL, p.parseArgument, lexer.TokenParenR)
}

func (p *Parser) parseArgument() (*ast.Argument, error) {
	start := p.tok.Start
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(false)
	if err != nil {
		return nil, err
	}
	return &ast.Argument{
		Loc:   p.loc(start),
		Name:  name,
		Value: value,
	}, nil
}

/* Fragments */

// parseFragment handles both forms that start with a spread:
//
//	...FragmentName @dirs
//	... on Type @dirs { ... }
func (p *Parser) parseFragment() (ast.Selection, error) {
	start := p.tok.Start
	if _, err := p.expect(lexer.TokenSpread); err != nil {
		return nil, err
	}

	if p.peek(lexer.TokenName) && p.tok.Value == "on" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typeCondition, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{
			Loc:           p.loc(start),
			TypeCondition: typeCondition,
			Directives:    directives,
			SelectionSet:  selectionSet,
		}, nil
	}

	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentSpread{
		Loc:        p.loc(start),
		Name:       name,
		Directives: directives,
	}, nil
}

func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.tok.Start
	if _, err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}
	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentDefinition{
		Loc:           p.loc(start),
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}, nil
}

// parseFragmentName is parseName, except that "on" is reserved.
func (p *Parser) parseFragmentName() (*ast.Name, error) {
	if p.peek(lexer.TokenName) && p.tok.Value == "on" {
		return nil, p.unexpected()
	}
	return p.parseName()
}

/* Directives */

func (p *Parser) parseDirectives() ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.peek(lexer.TokenAt) {
		directive, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		directives = append(directives, directive)
	}
	return directives, nil
}

func (p *Parser) parseDirective() (*ast.Directive, error) {
	start := p.tok.Start
	if _, err := p.expect(lexer.TokenAt); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arguments, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return &ast.Directive{
		Loc:       p.loc(start),
		Name:      name,
		Arguments: arguments,
	}, nil
}

/* Types */

// parseType reads a type reference:
//
//	NamedType | [Type] | NamedType! | [Type]!
func (p *Parser) parseType() (ast.Type, error) {
	start := p.tok.Start

	var typ ast.Type
	var err error
	if p.peek(lexer.TokenBracketL) {
		if err := p.enter(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			p.leave()
			return nil, err
		}
		inner, err := p.parseType()
		p.leave()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenBracketR); err != nil {
			return nil, err
		}
		typ = &ast.ListType{
			Loc:  p.loc(start),
			Type: inner,
		}
	} else {
		if typ, err = p.parseNamedType(); err != nil {
			return nil, err
		}
	}

	nonNull, err := p.skip(lexer.TokenBang)
	if err != nil {
		return nil, err
	}
	if nonNull {
		return &ast.NonNullType{
			Loc:  p.loc(start),
			Type: typ,
		}, nil
	}
	return typ, nil
}

func (p *Parser) parseNamedType() (*ast.NamedType, error) {
	start := p.tok.Start
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{
		Loc:  p.loc(start),
		Name: name,
	}, nil
}

func (p *Parser) parseName() (*ast.Name, error) {
	token, err := p.expect(lexer.TokenName)
	if err != nil {
		return nil, err
	}
	return &ast.Name{
		Loc:   p.loc(token.Start),
		Value: token.Value,
	}, nil
}

/* Core parsing utilities */

// loc returns the location spanning from start to the end of the last
// consumed token, trimmed according to the parse options.
func (p *Parser) loc(start int) ast.Location {
	switch {
	case p.options.NoLocation:
		return ast.Location{}
	case p.options.NoSource:
		return ast.Location{Start: start, End: p.prevEnd}
	}
	return ast.Location{
		Start:  start,
		End:    p.prevEnd,
		Source: p.source,
	}
}

// advance consumes the current token and reads the next one.
func (p *Parser) advance() error {
	p.prevEnd = p.tok.End
	tok, err := p.lexer.ReadToken(p.prevEnd)
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) peek(t lexer.TokenType) bool {
	return p.tok.Type == t
}

// skip consumes the current token if it has type t.
func (p *Parser) skip(t lexer.TokenType) (bool, error) {
	if p.tok.Type != t {
		return false, nil
	}
	return true, p.advance()
}

// expect consumes and returns the current token if it has type t, and
// fails with "Expected <t>, found <token>" otherwise.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	token := p.tok
	if token.Type == t {
		return token, p.advance()
	}
	return token, p.errorf(token.Start, "Expected %s, found %s", t, lexer.TokenDescription(token))
}

// expectKeyword is expect for a Name token with a specific value.
func (p *Parser) expectKeyword(value string) (lexer.Token, error) {
	token := p.tok
	if token.Type == lexer.TokenName && token.Value == value {
		return token, p.advance()
	}
	return token, p.errorf(token.Start, "Expected %q, found %s", value, lexer.TokenDescription(token))
}

// unexpected reports the current token as out of place.
func (p *Parser) unexpected() error {
	return p.errorf(p.tok.Start, "Unexpected %s", lexer.TokenDescription(p.tok))
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.options.MaxDepth {
		return p.errorf(p.tok.Start, "Exceeded maximum nesting depth of %d.", p.options.MaxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

func (p *Parser) errorf(offset int, format string, args ...interface{}) error {
	return gqlerrors.NewSyntaxError(p.source, offset, fmt.Sprintf(format, args...))
}

// many parses a non-empty list of items between open and close tokens.
func many[T any](p *Parser, open lexer.TokenType, parseFn func() (T, error), close lexer.TokenType) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	var nodes []T
	for {
		node, err := parseFn()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)

		done, err := p.skip(close)
		if err != nil {
			return nil, err
		}
		if done {
			return nodes, nil
		}
	}
}

// list parses a possibly empty list of items between open and close tokens.
func list[T any](p *Parser, open lexer.TokenType, parseFn func() (T, error), close lexer.TokenType) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	var nodes []T
	for {
		done, err := p.skip(close)
		if err != nil {
			return nil, err
		}
		if done {
			return nodes, nil
		}
		node, err := parseFn()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}
