package html

import "testing"

func TestNodeString(t *testing.T) {
	doc, err := Parse(`<div id="main">Hi<br></div>`)
	if err != nil {
		t.Fatal(err)
	}

	want := "Element div id=\"main\"\n" +
		"  Text \"Hi\"\n" +
		"  Element br\n"
	if got := doc.Nodes()[0].String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDocumentString(t *testing.T) {
	doc, err := Parse("<!DOCTYPE html><p>x</p><input disabled>")
	if err != nil {
		t.Fatal(err)
	}

	want := "Doctype \"html\"\n" +
		"Element p\n" +
		"  Text \"x\"\n" +
		"Element input disabled\n"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeAttr(t *testing.T) {
	doc, err := Parse(`<a href="1" HREF="2">x</a>`)
	if err != nil {
		t.Fatal(err)
	}
	node := doc.Nodes()[0]

	if v, ok := node.Attr("href"); !ok || v != "1" {
		t.Errorf(`Attr("href") = (%q, %v), want ("1", true)`, v, ok)
	}
	if v, ok := node.Attr("HREF"); !ok || v != "2" {
		t.Errorf(`Attr("HREF") = (%q, %v), want ("2", true)`, v, ok)
	}
	if _, ok := node.Attr("Href"); ok {
		t.Error(`Attr("Href") found a value, want none`)
	}
}

func TestNodeKindString(t *testing.T) {
	if got := KindForeign.String(); got != "Foreign" {
		t.Errorf("got %q, want %q", got, "Foreign")
	}
	if got := NodeKind(99).String(); got != "Unknown" {
		t.Errorf("got %q, want %q", got, "Unknown")
	}
}
