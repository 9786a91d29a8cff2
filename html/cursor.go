package html

import (
	"fmt"
	"strings"
)

// cursor is the scanning state shared by all productions: the full source
// text and the byte offset of the next unconsumed character. The offset
// only ever moves forward.
type cursor struct {
	source string
	pos    int
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.source)
}

func (c *cursor) current() byte {
	if c.atEnd() {
		return 0
	}
	return c.source[c.pos]
}

func (c *cursor) peek(n int) byte {
	if c.pos+n >= len(c.source) {
		return 0
	}
	return c.source[c.pos+n]
}

func (c *cursor) advance() {
	c.pos++
}

func (c *cursor) advanceBy(n int) {
	c.pos += n
}

func (c *cursor) nextMatch(literal string) bool {
	return strings.HasPrefix(c.source[c.pos:], literal)
}

// currentString renders the current character for error messages.
func (c *cursor) currentString() string {
	if c.atEnd() {
		return "[document end]"
	}
	ch := c.current()
	if isControlChar(ch) {
		return fmt.Sprintf("[control character %#x]", ch)
	}
	return string(rune(ch))
}

func (c *cursor) errorf(format string, args ...any) error {
	return newParseError(fmt.Sprintf(format, args...), c.source, c.pos)
}

func (c *cursor) expect(what string, ch byte) error {
	if c.current() == ch {
		return nil
	}
	return c.errorf("expected %s '%c', found '%s'", what, ch, c.currentString())
}

func (c *cursor) ignoreWhitespace() {
	for isSpaceChar(c.current()) {
		c.advance()
	}
}

func (c *cursor) consumeAlphanumeric() (string, error) {
	if !isAlphanumeric(c.current()) {
		return "", c.errorf("expected alphanumeric, found '%s'", c.currentString())
	}
	start := c.pos
	for isAlphanumeric(c.current()) {
		c.advance()
	}
	return c.source[start:c.pos], nil
}

func isAlphanumeric(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isSpaceChar(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t' || ch == '\x0C'
}

// isControlChar reports whether ch is a C0 control byte other than the
// whitespace characters, or DEL.
func isControlChar(ch byte) bool {
	return ch <= '\x08' || ch == '\x0B' || (ch >= '\x0E' && ch <= '\x1F') || ch == '\x7F'
}
