package html

import "strconv"

type NodeKind int

const (
	KindDoctype NodeKind = iota
	KindComment
	KindText
	KindForeign
	KindElement
)

var nodeKindNames = map[NodeKind]string{
	KindDoctype: "Doctype",
	KindComment: "Comment",
	KindText:    "Text",
	KindForeign: "Foreign",
	KindElement: "Element",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Attribute is a single name/value pair on an element. Value is empty
// for boolean-style attributes written without an = sign.
type Attribute struct {
	Name  string
	Value string
}

// Node is one node of the parsed tree. Text holds the content of
// doctype, comment, text and foreign nodes; Name, Attributes and
// Children are set for elements only. All strings are views into the
// source text passed to Parse.
type Node struct {
	Kind       NodeKind
	Text       string
	Name       string
	Attributes []Attribute
	Children   []*Node
}

// Attr returns the value of the named attribute. The lookup is
// case-sensitive, matching the duplicate-attribute rule.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

func (n *Node) String() string {
	return n.stringIndent(0)
}

func (n *Node) stringIndent(indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + n.Kind.String()
	if n.Kind == KindElement {
		result += " " + n.Name
		for _, attr := range n.Attributes {
			result += " " + attr.Name
			if attr.Value != "" {
				result += "=" + strconv.Quote(attr.Value)
			}
		}
	} else {
		result += " " + strconv.Quote(n.Text)
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent + 1)
	}
	return result
}

// Document is the result of a successful parse: the ordered top-level
// nodes of the source. An empty document is valid.
type Document struct {
	nodes []*Node
}

func (d *Document) Nodes() []*Node {
	return d.nodes
}

func (d *Document) String() string {
	result := ""
	for _, n := range d.nodes {
		result += n.String()
	}
	return result
}
