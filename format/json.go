package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/hast/html"
)

type JSONEncoder struct {
	w   io.Writer
	doc *html.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *html.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	nodes := make([]*jsonNode, 0, len(e.doc.Nodes()))
	for _, node := range e.doc.Nodes() {
		nodes = append(nodes, nodeToJSON(node))
	}
	return json.MarshalIndent(nodes, "", "  ")
}

type jsonNode struct {
	Kind       string          `json:"kind"`
	Name       string          `json:"name,omitempty"`
	Text       string          `json:"text,omitempty"`
	Attributes []jsonAttribute `json:"attributes,omitempty"`
	Children   []*jsonNode     `json:"children,omitempty"`
}

type jsonAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func nodeToJSON(node *html.Node) *jsonNode {
	jn := &jsonNode{
		Kind: node.Kind.String(),
		Name: node.Name,
		Text: node.Text,
	}
	for _, attr := range node.Attributes {
		jn.Attributes = append(jn.Attributes, jsonAttribute{Name: attr.Name, Value: attr.Value})
	}
	for _, child := range node.Children {
		jn.Children = append(jn.Children, nodeToJSON(child))
	}
	return jn
}
