package format

import (
	"encoding"

	"github.com/dhamidi/hast/html"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *html.Document) error
}
