package html

import (
	"errors"
	"strings"
)

// Void elements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"command": true, "embed": true, "hr": true, "img": true,
	"input": true, "keygen": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Foreign elements capture their body verbatim instead of parsing it as
// HTML.
var foreignElements = map[string]bool{
	"script": true, "style": true, "title": true,
	"textarea": true, "svg": true, "math": true,
}

// IsVoidElement reports whether name refers to a void element. The
// check is case-insensitive, matching how the parser treats tag names.
func IsVoidElement(name string) bool {
	return voidElements[strings.ToLower(name)]
}

// IsForeignElement reports whether name refers to a foreign element.
func IsForeignElement(name string) bool {
	return foreignElements[strings.ToLower(name)]
}

// errNotDoctype signals that the text after "<!" is not a DOCTYPE
// declaration. parseStrictNode converts it into the combined
// doctype-or-comment error.
var errNotDoctype = errors.New("not a doctype declaration")

type parser struct {
	cursor
}

// Parse converts HTML source text into a Document. It returns the first
// error encountered, if any, as a *ParseError; no partial document is
// returned on failure.
func Parse(source string) (*Document, error) {
	p := &parser{cursor: cursor{source: source}}
	return p.parseDocument()
}

func (p *parser) parseDocument() (*Document, error) {
	var nodes []*Node
	for !p.atEnd() {
		node, err := p.parseStrictNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return &Document{nodes: nodes}, nil
}

// parseStrictNode parses any node valid at the top level: a doctype, a
// comment, or an element. Text is not a strict node.
func (p *parser) parseStrictNode() (*Node, error) {
	p.ignoreWhitespace()

	if err := p.expect("start of a node", '<'); err != nil {
		return nil, err
	}

	if p.pos+1 >= len(p.source) {
		return nil, p.errorf("expected something after start of node")
	}

	if p.peek(1) == '!' {
		if p.peek(2) == '-' {
			return p.parseComment()
		}
		node, err := p.parseDoctype()
		if errors.Is(err, errNotDoctype) {
			return nil, p.errorf("expected doctype declaration or comment")
		}
		return node, err
	}

	return p.parseElement()
}

// parseNode parses any node valid inside an element, including text.
func (p *parser) parseNode() (*Node, error) {
	if p.current() != '<' {
		if !p.atEnd() && isControlChar(p.current()) {
			return nil, p.errorf("unexpected control character %s", p.currentString())
		}
		return p.parseText(), nil
	}
	return p.parseStrictNode()
}

func (p *parser) parseElement() (*Node, error) {
	// consume <
	p.advance()
	name, err := p.consumeAlphanumeric()
	if err != nil {
		return nil, err
	}

	p.ignoreWhitespace()

	var attributes []Attribute
	for p.current() != '>' && p.current() != '/' {
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}

		for _, a := range attributes {
			if a.Name == attr.Name {
				return nil, p.errorf("element has two attributes with the same name")
			}
		}

		attributes = append(attributes, attr)
		p.ignoreWhitespace()
	}

	if IsVoidElement(name) {
		// Void element, the tag closer may optionally have a /.
		if p.current() == '/' {
			p.advance()
		}
		if err := p.expect("end of opening tag", '>'); err != nil {
			return nil, err
		}
		p.advance()

		return &Node{Kind: KindElement, Name: name, Attributes: attributes}, nil
	}

	if err := p.expect("end of opening tag", '>'); err != nil {
		return nil, err
	}
	p.advance()

	var children []*Node
	if IsForeignElement(name) {
		child, err := p.parseForeignText(name)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	} else {
		for !p.nextMatch("</") {
			if p.pos+1 >= len(p.source) {
				return nil, p.errorf("expected matching closing tag for %s", name)
			}
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	}

	// consume </
	p.advanceBy(2)

	closingName, err := p.consumeAlphanumeric()
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(closingName, name) {
		return nil, p.errorf("mismatched closing tag: expected '%s', found '%s'", name, closingName)
	}
	p.ignoreWhitespace()
	if err := p.expect("end of opening tag", '>'); err != nil {
		return nil, err
	}
	p.advance()

	return &Node{Kind: KindElement, Name: name, Attributes: attributes, Children: children}, nil
}

func (p *parser) parseAttribute() (Attribute, error) {
	nameStart := p.pos
	for !p.atEnd() && !isAttributeNameEnd(p.current()) {
		p.advance()
	}
	if p.pos == nameStart {
		return Attribute{}, p.errorf("expected attribute name")
	}
	name := p.source[nameStart:p.pos]

	if !p.atEnd() && isControlChar(p.current()) {
		return Attribute{}, p.errorf("unexpected control character %s", p.currentString())
	}

	p.ignoreWhitespace()
	if p.atEnd() {
		return Attribute{}, p.errorf("expected something after attribute name")
	}

	value := ""
	if p.current() == '=' {
		// consume =
		p.advance()
		switch {
		case p.atEnd():
			return Attribute{}, p.errorf("expected attribute value after =")
		case p.current() == '\'' || p.current() == '"':
			quote := p.current()
			p.advance()
			valueStart := p.pos
			for !p.atEnd() && !isControlChar(p.current()) && p.current() != quote {
				p.advance()
			}
			if err := p.expect("value-ending quote", quote); err != nil {
				return Attribute{}, err
			}
			value = p.source[valueStart:p.pos]
			// consume closing quote
			p.advance()
		default:
			valueStart := p.pos
			for !p.atEnd() && !isUnquotedValueEnd(p.current()) {
				p.advance()
			}
			value = p.source[valueStart:p.pos]
		}
	}

	return Attribute{Name: name, Value: value}, nil
}

// parseText scans a maximal run of text. It cannot fail: parseNode only
// calls it when the current character starts a text run.
func (p *parser) parseText() *Node {
	start := p.pos
	for !p.atEnd() && p.current() != '<' && !isControlChar(p.current()) {
		p.advance()
	}
	return &Node{Kind: KindText, Text: p.source[start:p.pos]}
}

// parseForeignText captures everything up to the closing tag for name,
// leaving the "</" unconsumed for parseElement's closing-tag logic. The
// closer check is a case-insensitive prefix match against name.
func (p *parser) parseForeignText(name string) (*Node, error) {
	start := p.pos

	for !p.atEnd() {
		if p.nextMatch("</") {
			from := p.pos + 2
			to := from + len(name)
			if to <= len(p.source) && strings.EqualFold(p.source[from:to], name) {
				break
			}
		}
		p.advance()
	}
	if p.atEnd() {
		return nil, p.errorf("expected closing tag </%s>", name)
	}

	return &Node{Kind: KindForeign, Text: p.source[start:p.pos]}, nil
}

func (p *parser) parseComment() (*Node, error) {
	// consume <!-
	p.advanceBy(3)
	if err := p.expect("second - in comment declaration", '-'); err != nil {
		return nil, err
	}
	p.advance()

	if p.current() == '-' || p.current() == '>' {
		return nil, p.errorf("comments may not start with '>' or '->'")
	}

	start := p.pos
	for !p.atEnd() {
		// A -- run is only valid as part of the --> closer.
		if p.nextMatch("--") {
			if p.peek(2) == '>' {
				break
			}
			return nil, p.errorf("comments may not contain '--'")
		}
		p.advance()
	}
	if p.atEnd() {
		return nil, p.errorf("expected comment tag closer '-->'")
	}
	text := p.source[start:p.pos]
	// consume -->
	p.advanceBy(3)

	return &Node{Kind: KindComment, Text: text}, nil
}

func (p *parser) parseDoctype() (*Node, error) {
	if p.pos+9 > len(p.source) || !strings.EqualFold(p.source[p.pos+2:p.pos+9], "DOCTYPE") {
		return nil, errNotDoctype
	}
	// consume <!DOCTYPE
	p.advanceBy(9)
	p.ignoreWhitespace()

	// The content of the declaration is captured verbatim, not parsed.
	start := p.pos
	for !p.atEnd() && p.current() != '>' {
		p.advance()
	}
	if p.atEnd() {
		return nil, p.errorf("expected DOCTYPE tag closer '>'")
	}
	text := p.source[start:p.pos]
	// consume >
	p.advance()

	return &Node{Kind: KindDoctype, Text: text}, nil
}

func isAttributeNameEnd(ch byte) bool {
	return isSpaceChar(ch) || isControlChar(ch) ||
		ch == '"' || ch == '\'' || ch == '>' || ch == '/' || ch == '='
}

func isUnquotedValueEnd(ch byte) bool {
	return isSpaceChar(ch) || isControlChar(ch) ||
		ch == '"' || ch == '\'' || ch == '=' || ch == '>' || ch == '<' || ch == '`'
}
