package html

import (
	"fmt"
	"strings"
)

// ParseError is the error returned by Parse. It carries the failure
// message together with the byte offset where parsing stopped, already
// resolved to a 1-based line and column.
type ParseError struct {
	msg    string
	offset int
	line   int
	col    int
}

func newParseError(msg, source string, offset int) *ParseError {
	before := source[:offset]
	return &ParseError{
		msg:    msg,
		offset: offset,
		line:   1 + strings.Count(before, "\n"),
		col:    offset - strings.LastIndexByte(before, '\n'),
	}
}

func (e *ParseError) Message() string {
	return e.msg
}

// Offset returns the byte offset into the source at which the parse failed.
func (e *ParseError) Offset() int {
	return e.offset
}

func (e *ParseError) LineAndColumn() (line, col int) {
	return e.line, e.col
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.line, e.col, e.msg)
}
