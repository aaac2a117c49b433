// Package lexer scans query text into tokens on demand.
//
// The lexer keeps no cursor of its own: every call to ReadToken is told
// where to start, and the caller (the parser) threads the offset of the
// previous token's end back in. Nothing beyond the requested token is
// ever scanned.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gnoswap-labs/gqlfront/gqlerrors"
	"github.com/gnoswap-labs/gqlfront/language/source"
)

const (
	eof = -1
	bom = "\uFEFF"
)

// Lexer produces tokens from a single Source.
type Lexer struct {
	source *source.Source
	body   string
}

// New returns a Lexer reading from src.
func New(src *source.Source) *Lexer {
	return &Lexer{
		source: src,
		body:   src.Body,
	}
}

// Source returns the source the lexer reads from.
func (l *Lexer) Source() *source.Source { return l.source }

// ReadToken skips ignored characters starting at from and returns the
// next token. At end of input it returns a TokenEOF whose Start and End
// are both the body length. A negative from reads from the start.
func (l *Lexer) ReadToken(from int) (Token, error) {
	if from < 0 {
		from = 0
	}
	pos := l.skipIgnored(from)
	if pos >= len(l.body) {
		return Token{Type: TokenEOF, Start: len(l.body), End: len(l.body)}, nil
	}

	c := l.body[pos]
	if t, ok := punctuators[c]; ok {
		return Token{Type: t, Start: pos, End: pos + 1}, nil
	}

	switch {
	case c == '.':
		if l.peek(pos+1) == '.' && l.peek(pos+2) == '.' {
			return Token{Type: TokenSpread, Start: pos, End: pos + 3}, nil
		}
	case c == '"':
		return l.readString(pos)
	case isNameStart(c):
		return l.readName(pos), nil
	case c == '-' || isDigit(c):
		return l.readNumber(pos)
	case c < 0x20 && c != '\t' && c != '\n' && c != '\r':
		return Token{}, l.errorf(pos, "Invalid character %s.", l.describeChar(pos))
	}

	return Token{}, l.errorf(pos, "Unexpected character %s.", l.describeChar(pos))
}

var punctuators = map[byte]TokenType{
	'!': TokenBang,
	'$': TokenDollar,
	'(': TokenParenL,
	')': TokenParenR,
	':': TokenColon,
	'=': TokenEquals,
	'@': TokenAt,
	'[': TokenBracketL,
	']': TokenBracketR,
	'{': TokenBraceL,
	'|': TokenPipe,
	'}': TokenBraceR,
}

// skipIgnored advances past whitespace, commas, line terminators, the
// byte order mark and '#' comments.
func (l *Lexer) skipIgnored(pos int) int {
	for pos < len(l.body) {
		switch c := l.body[pos]; c {
		case ' ', '\t', ',', '\n', '\r':
			pos++
		case '#':
			for pos < len(l.body) && l.body[pos] != '\n' && l.body[pos] != '\r' {
				pos++
			}
		default:
			if strings.HasPrefix(l.body[pos:], bom) {
				pos += len(bom)
				continue
			}
			return pos
		}
	}
	return pos
}

func (l *Lexer) readName(start int) Token {
	pos := start + 1
	for pos < len(l.body) && isNameContinue(l.body[pos]) {
		pos++
	}
	return Token{
		Type:  TokenName,
		Start: start,
		End:   pos,
		Value: l.body[start:pos],
	}
}

// readNumber scans an Int or Float:
//
//	Int:   -? (0 | [1-9][0-9]*)
//	Float: Int ( .[0-9]+ )? ( [eE][+-]?[0-9]+ )?   (at least one part)
func (l *Lexer) readNumber(start int) (Token, error) {
	pos := start
	isFloat := false

	if l.peek(pos) == '-' {
		pos++
	}

	if l.peek(pos) == '0' {
		pos++
		if c := l.peek(pos); c != eof && isDigit(byte(c)) {
			return Token{}, l.errorf(pos, "Invalid number, unexpected digit after 0: %s.", l.describeChar(pos))
		}
	} else {
		var err error
		if pos, err = l.readDigits(pos); err != nil {
			return Token{}, err
		}
	}

	if l.peek(pos) == '.' {
		isFloat = true
		var err error
		if pos, err = l.readDigits(pos + 1); err != nil {
			return Token{}, err
		}
	}

	if c := l.peek(pos); c == 'e' || c == 'E' {
		isFloat = true
		pos++
		if c := l.peek(pos); c == '+' || c == '-' {
			pos++
		}
		var err error
		if pos, err = l.readDigits(pos); err != nil {
			return Token{}, err
		}
	}

	typ := TokenInt
	if isFloat {
		typ = TokenFloat
	}
	return Token{
		Type:  typ,
		Start: start,
		End:   pos,
		Value: l.body[start:pos],
	}, nil
}

// readDigits requires at least one digit at pos and returns the offset
// just past the run of digits.
func (l *Lexer) readDigits(pos int) (int, error) {
	c := l.peek(pos)
	if c == eof || !isDigit(byte(c)) {
		return pos, l.errorf(pos, "Invalid number, expected digit but got: %s.", l.describeChar(pos))
	}
	for pos < len(l.body) && isDigit(l.body[pos]) {
		pos++
	}
	return pos, nil
}

func (l *Lexer) readString(start int) (Token, error) {
	var value strings.Builder
	pos := start + 1
	chunkStart := pos

	for pos < len(l.body) {
		c := l.body[pos]
		if c == '"' || c == '\n' || c == '\r' {
			break
		}
		if c < 0x20 && c != '\t' {
			return Token{}, l.errorf(pos, "Invalid character within String: %s.", l.describeChar(pos))
		}
		if c != '\\' {
			_, size := utf8.DecodeRuneInString(l.body[pos:])
			pos += size
			continue
		}

		value.WriteString(l.body[chunkStart:pos])
		pos++
		switch l.peek(pos) {
		case '"':
			value.WriteByte('"')
		case '\\':
			value.WriteByte('\\')
		case '/':
			value.WriteByte('/')
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')
		case 'u':
			r, ok := l.readHex4(pos + 1)
			if !ok {
				return Token{}, l.errorf(pos, "Invalid character escape sequence: \\u%s.", l.slice(pos+1, pos+5))
			}
			value.WriteRune(r)
			pos += 4
		case eof:
			return Token{}, l.errorf(pos, "Unterminated string.")
		default:
			_, size := utf8.DecodeRuneInString(l.body[pos:])
			return Token{}, l.errorf(pos, "Invalid character escape sequence: \\%s.", l.body[pos:pos+size])
		}
		pos++
		chunkStart = pos
	}

	if pos >= len(l.body) || l.body[pos] != '"' {
		return Token{}, l.errorf(pos, "Unterminated string.")
	}

	value.WriteString(l.body[chunkStart:pos])
	return Token{
		Type:  TokenString,
		Start: start,
		End:   pos + 1,
		Value: value.String(),
	}, nil
}

// readHex4 decodes the four hex digits of a \u escape starting at pos.
func (l *Lexer) readHex4(pos int) (rune, bool) {
	if pos+4 > len(l.body) {
		return 0, false
	}
	var r rune
	for i := pos; i < pos+4; i++ {
		d := hexTable[l.body[i]]
		if d < 0 {
			return 0, false
		}
		r = r<<4 | rune(d)
	}
	return r, true
}

// peek returns the byte at pos, or eof past the end of the body.
func (l *Lexer) peek(pos int) int {
	if pos < 0 || pos >= len(l.body) {
		return eof
	}
	return int(l.body[pos])
}

func (l *Lexer) slice(from, to int) string {
	if to > len(l.body) {
		to = len(l.body)
	}
	if from > to {
		return ""
	}
	return l.body[from:to]
}

// describeChar quotes the character at pos for error messages. Printable
// ASCII is shown as is; anything else as a \uXXXX escape.
func (l *Lexer) describeChar(pos int) string {
	if pos >= len(l.body) {
		return "EOF"
	}
	r, _ := utf8.DecodeRuneInString(l.body[pos:])
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf(`"%c"`, r)
	}
	return fmt.Sprintf(`"\u%04X"`, r)
}

func (l *Lexer) errorf(pos int, format string, args ...interface{}) error {
	return gqlerrors.NewSyntaxError(l.source, pos, fmt.Sprintf(format, args...))
}

var nameStartTable, nameContinueTable [256]bool

var hexTable [256]int8

func init() {
	for c := 0; c < 256; c++ {
		hexTable[c] = -1
	}
	for c := '0'; c <= '9'; c++ {
		nameContinueTable[c] = true
		hexTable[c] = int8(c - '0')
	}
	for c := 'a'; c <= 'z'; c++ {
		nameStartTable[c] = true
		nameContinueTable[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		nameStartTable[c] = true
		nameContinueTable[c] = true
	}
	for c := 'a'; c <= 'f'; c++ {
		hexTable[c] = int8(c - 'a' + 10)
		hexTable[c-'a'+'A'] = int8(c - 'a' + 10)
	}
	nameStartTable['_'] = true
	nameContinueTable['_'] = true
}

func isNameStart(c byte) bool    { return nameStartTable[c] }
func isNameContinue(c byte) bool { return nameContinueTable[c] }
func isDigit(c byte) bool        { return c >= '0' && c <= '9' }
