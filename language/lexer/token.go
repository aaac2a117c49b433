package lexer

import "fmt"

// TokenType defines the kinds of tokens the lexer can produce.
type TokenType int

const (
	TokenEOF      TokenType = iota // end of input
	TokenBang                      // '!'
	TokenDollar                    // '$'
	TokenParenL                    // '('
	TokenParenR                    // ')'
	TokenSpread                    // '...'
	TokenColon                     // ':'
	TokenEquals                    // '='
	TokenAt                        // '@'
	TokenBracketL                  // '['
	TokenBracketR                  // ']'
	TokenBraceL                    // '{'
	TokenPipe                      // '|'
	TokenBraceR                    // '}'
	TokenName                      // [_A-Za-z][_0-9A-Za-z]*
	TokenInt                       // integer literal
	TokenFloat                     // float literal
	TokenString                    // double-quoted string literal
)

var tokenDescriptions = [...]string{
	TokenEOF:      "EOF",
	TokenBang:     "!",
	TokenDollar:   "$",
	TokenParenL:   "(",
	TokenParenR:   ")",
	TokenSpread:   "...",
	TokenColon:    ":",
	TokenEquals:   "=",
	TokenAt:       "@",
	TokenBracketL: "[",
	TokenBracketR: "]",
	TokenBraceL:   "{",
	TokenPipe:     "|",
	TokenBraceR:   "}",
	TokenName:     "Name",
	TokenInt:      "Int",
	TokenFloat:    "Float",
	TokenString:   "String",
}

// String returns the description used in syntax error messages.
func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenDescriptions) {
		return "Unknown"
	}
	return tokenDescriptions[t]
}

// Token is a single lexical unit. Start is inclusive and End exclusive,
// both byte offsets into the source body. Value is only set for Name, Int,
// Float and String tokens; for strings it holds the unescaped text.
type Token struct {
	Type  TokenType
	Start int
	End   int
	Value string
}

// TokenDescription renders a token for error messages: the kind, followed
// by the quoted value when the token carries one (Name "foo", Int "4").
func TokenDescription(tok Token) string {
	if tok.Value != "" {
		return fmt.Sprintf("%s \"%s\"", tok.Type, tok.Value)
	}
	return tok.Type.String()
}
