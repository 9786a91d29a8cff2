package format

import (
	"bytes"
	"io"
	"strings"

	"github.com/dhamidi/hast/html"
)

// HTMLEncoder renders a Document back into HTML source text.
//
// By default the output is compact: nodes are rendered with no added
// whitespace, and parsing the output yields a structurally equal
// Document. With an indent string set, elements containing only markup
// are broken onto separate lines; elements with text content stay on
// one line, byte for byte.
type HTMLEncoder struct {
	w      io.Writer
	doc    *html.Document
	indent string
}

func NewHTMLEncoder(w io.Writer) *HTMLEncoder {
	return &HTMLEncoder{w: w}
}

// NewIndentHTMLEncoder returns an encoder that re-indents structural
// markup using indent per nesting level.
func NewIndentHTMLEncoder(w io.Writer, indent string) *HTMLEncoder {
	return &HTMLEncoder{w: w, indent: indent}
}

func (e *HTMLEncoder) Encode(doc *html.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *HTMLEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for i, node := range e.doc.Nodes() {
		if e.indent != "" && i > 0 {
			buf.WriteByte('\n')
		}
		e.writeNode(&buf, node, 0)
	}
	return buf.Bytes(), nil
}

func (e *HTMLEncoder) writeNode(buf *bytes.Buffer, node *html.Node, depth int) {
	switch node.Kind {
	case html.KindDoctype:
		if node.Text == "" {
			buf.WriteString("<!DOCTYPE>")
			return
		}
		buf.WriteString("<!DOCTYPE ")
		buf.WriteString(node.Text)
		buf.WriteByte('>')
	case html.KindComment:
		buf.WriteString("<!--")
		buf.WriteString(node.Text)
		buf.WriteString("-->")
	case html.KindText, html.KindForeign:
		buf.WriteString(node.Text)
	case html.KindElement:
		e.writeElement(buf, node, depth)
	}
}

func (e *HTMLEncoder) writeElement(buf *bytes.Buffer, node *html.Node, depth int) {
	e.writeOpeningTag(buf, node)
	if html.IsVoidElement(node.Name) {
		return
	}
	if e.indent != "" && hasOnlyMarkupChildren(node) {
		for _, child := range node.Children {
			if isBlankText(child) {
				continue
			}
			buf.WriteByte('\n')
			e.writeIndent(buf, depth+1)
			e.writeNode(buf, child, depth+1)
		}
		buf.WriteByte('\n')
		e.writeIndent(buf, depth)
	} else {
		for _, child := range node.Children {
			e.writeNode(buf, child, depth)
		}
	}
	buf.WriteString("</")
	buf.WriteString(node.Name)
	buf.WriteByte('>')
}

func (e *HTMLEncoder) writeOpeningTag(buf *bytes.Buffer, node *html.Node) {
	buf.WriteByte('<')
	buf.WriteString(node.Name)
	for _, attr := range node.Attributes {
		buf.WriteByte(' ')
		buf.WriteString(attr.Name)
		if attr.Value == "" {
			continue
		}
		quote := byte('"')
		if strings.ContainsRune(attr.Value, '"') {
			quote = '\''
		}
		buf.WriteByte('=')
		buf.WriteByte(quote)
		buf.WriteString(attr.Value)
		buf.WriteByte(quote)
	}
	buf.WriteByte('>')
}

func (e *HTMLEncoder) writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(e.indent)
	}
}

// hasOnlyMarkupChildren reports whether node can be split across lines
// without changing its text content: at least one child must be markup,
// and any text children must be blank.
func hasOnlyMarkupChildren(node *html.Node) bool {
	if html.IsForeignElement(node.Name) {
		return false
	}
	markup := false
	for _, child := range node.Children {
		switch child.Kind {
		case html.KindText:
			if !isBlankText(child) {
				return false
			}
		default:
			markup = true
		}
	}
	return markup
}

func isBlankText(node *html.Node) bool {
	return node.Kind == html.KindText && strings.TrimSpace(node.Text) == ""
}

// PrettyPrintHTML parses source and renders it back with two-space
// indentation. Text inside elements is preserved byte for byte.
func PrettyPrintHTML(source []byte) ([]byte, error) {
	doc, err := html.Parse(string(source))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := NewIndentHTMLEncoder(&buf, "  ").Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
