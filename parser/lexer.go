package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokIdent
	tokInt
	tokString

	tokLBrace   // {
	tokRBrace   // }
	tokLParen   // (
	tokRParen   // )
	tokLBracket // [
	tokRBracket // ]
	tokLAngle   // <
	tokRAngle   // >
	tokColon    // :
	tokSemi     // ;
	tokComma    // ,
	tokHash     // #

	tokStruct
	tokEnum
)

var keywords = map[string]tokenType{
	"struct": tokStruct,
	"enum":   tokEnum,
}

type token struct {
	Type   tokenType
	Lexeme string
	Line   int
	Col    int
}

// lexer scans schema source into tokens, tracking line and column for error
// reporting. Comments and whitespace never become tokens.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) peekRune() (rune, int) {
	if l.pos >= len(l.src) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.src[l.pos:])
}

func (l *lexer) advance() rune {
	r, w := l.peekRune()
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// skipTrivia consumes whitespace and line/block comments. It returns an error
// only for an unterminated block comment.
func (l *lexer) skipTrivia() *SyntaxError {
	for l.pos < len(l.src) {
		r, _ := l.peekRune()
		switch {
		case unicode.IsSpace(r):
			l.advance()
		case r == '/' && strings.HasPrefix(l.src[l.pos:], "//"):
			for l.pos < len(l.src) {
				if c := l.advance(); c == '\n' {
					break
				}
			}
		case r == '/' && strings.HasPrefix(l.src[l.pos:], "/*"):
			startLine, startCol := l.line, l.col
			l.advance()
			l.advance()
			closed := false
			for l.pos < len(l.src) {
				if strings.HasPrefix(l.src[l.pos:], "*/") {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return errAt(startLine, startCol, "unterminated block comment")
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) next() (token, *SyntaxError) {
	if err := l.skipTrivia(); err != nil {
		return token{}, err
	}
	line, col := l.line, l.col
	if l.pos >= len(l.src) {
		return token{Type: tokEOF, Line: line, Col: col}, nil
	}

	r, _ := l.peekRune()
	switch {
	case isIdentStart(r):
		start := l.pos
		for l.pos < len(l.src) {
			c, _ := l.peekRune()
			if !isIdentPart(c) {
				break
			}
			l.advance()
		}
		lexeme := l.src[start:l.pos]
		if kw, ok := keywords[lexeme]; ok {
			return token{Type: kw, Lexeme: lexeme, Line: line, Col: col}, nil
		}
		return token{Type: tokIdent, Lexeme: lexeme, Line: line, Col: col}, nil

	case unicode.IsDigit(r):
		start := l.pos
		for l.pos < len(l.src) {
			c, _ := l.peekRune()
			if !unicode.IsDigit(c) && c != '_' {
				break
			}
			l.advance()
		}
		// an identifier may not start with a digit
		if l.pos < len(l.src) {
			if c, _ := l.peekRune(); isIdentStart(c) {
				return token{}, errAt(line, col, "identifier may not start with a digit")
			}
		}
		return token{Type: tokInt, Lexeme: l.src[start:l.pos], Line: line, Col: col}, nil

	case r == '"':
		l.advance()
		var b strings.Builder
		for {
			if l.pos >= len(l.src) {
				return token{}, errAt(line, col, "unterminated string literal")
			}
			c := l.advance()
			if c == '"' {
				break
			}
			if c == '\n' {
				return token{}, errAt(line, col, "unterminated string literal")
			}
			b.WriteRune(c)
		}
		return token{Type: tokString, Lexeme: b.String(), Line: line, Col: col}, nil
	}

	l.advance()
	var tt tokenType
	switch r {
	case '{':
		tt = tokLBrace
	case '}':
		tt = tokRBrace
	case '(':
		tt = tokLParen
	case ')':
		tt = tokRParen
	case '[':
		tt = tokLBracket
	case ']':
		tt = tokRBracket
	case '<':
		tt = tokLAngle
	case '>':
		tt = tokRAngle
	case ':':
		tt = tokColon
	case ';':
		tt = tokSemi
	case ',':
		tt = tokComma
	case '#':
		tt = tokHash
	default:
		return token{}, errAt(line, col, "unexpected character %q", r)
	}
	return token{Type: tt, Lexeme: string(r), Line: line, Col: col}, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
