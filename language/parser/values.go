package parser

import (
	"github.com/gnoswap-labs/gqlfront/language/ast"
	"github.com/gnoswap-labs/gqlfront/language/lexer"
)

// parseValueLiteral parses a value. When isConst is set the value is in a
// constant context (a variable's default value) and may not contain
// variables at any depth.
func (p *Parser) parseValueLiteral(isConst bool) (ast.Value, error) {
	token := p.tok
	switch token.Type {
	case lexer.TokenBracketL:
		return p.parseList(isConst)
	case lexer.TokenBraceL:
		return p.parseObject(isConst)
	case lexer.TokenInt:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntValue{
			Loc:   p.loc(token.Start),
			Value: token.Value,
		}, nil
	case lexer.TokenFloat:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.FloatValue{
			Loc:   p.loc(token.Start),
			Value: token.Value,
		}, nil
	case lexer.TokenString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringValue{
			Loc:   p.loc(token.Start),
			Value: token.Value,
		}, nil
	case lexer.TokenName:
		switch token.Value {
		case "true", "false":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.BooleanValue{
				Loc:   p.loc(token.Start),
				Value: token.Value == "true",
			}, nil
		case "null":
			if !p.options.AllowNullValue {
				return nil, p.unexpected()
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.NullValue{Loc: p.loc(token.Start)}, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.EnumValue{
			Loc:   p.loc(token.Start),
			Value: token.Value,
		}, nil
	case lexer.TokenDollar:
		if !isConst {
			return p.parseVariable()
		}
	}
	return nil, p.unexpected()
}

func (p *Parser) parseList(isConst bool) (*ast.ListValue, error) {
	start := p.tok.Start
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	values, err := list(p, lexer.TokenBracketL, func() (ast.Value, error) {
		return p.parseValueLiteral(isConst)
	}, lexer.TokenBracketR)
	if err != nil {
		return nil, err
	}
	return &ast.ListValue{
		Loc:    p.loc(start),
		Values: values,
	}, nil
}

// parseObject parses an object literal. Field names are tracked per
// literal: a repeated name fails, while nested objects start afresh.
func (p *Parser) parseObject(isConst bool) (*ast.ObjectValue, error) {
	start := p.tok.Start
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	seen := make(map[string]struct{})
	fields, err := list(p, lexer.TokenBraceL, func() (*ast.ObjectField, error) {
		return p.parseObjectField(isConst, seen)
	}, lexer.TokenBraceR)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectValue{
		Loc:    p.loc(start),
		Fields: fields,
	}, nil
}

func (p *Parser) parseObjectField(isConst bool, seen map[string]struct{}) (*ast.ObjectField, error) {
	start := p.tok.Start
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, dup := seen[name.Value]; dup {
		return nil, p.errorf(start, "Duplicate input object field %s.", name.Value)
	}
	seen[name.Value] = struct{}{}

	if _, err := p.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectField{
		Loc:   p.loc(start),
		Name:  name,
		Value: value,
	}, nil
}
