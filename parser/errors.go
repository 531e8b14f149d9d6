package parser

import "fmt"

// SyntaxError reports malformed schema grammar with the offending source
// position. Line and Column are 1-indexed.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func errAt(line, column int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

func errExpected(tok token, expected string) *SyntaxError {
	found := tok.Lexeme
	if tok.Type == tokEOF {
		found = "end of file"
	} else {
		found = "'" + found + "'"
	}
	return errAt(tok.Line, tok.Col, "expected %s, found %s", expected, found)
}
