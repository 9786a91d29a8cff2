// Package html provides a strict, single-pass parser for HTML documents.
//
// # Overview
//
// The parser scans raw HTML source byte by byte and produces an immutable
// tree of nodes: elements, text runs, comments, doctype declarations, and
// opaque foreign content (the bodies of script, style, title, textarea,
// svg and math elements). It fails fast: the first malformed construct
// aborts the parse with an error carrying the line and column of the
// failure. There is no error recovery, no quirks mode, and no tag
// auto-closing.
//
// # Grammar
//
// The implemented grammar, with terminals in quotes:
//
//	document       -> strictNode*
//	strictNode     -> doctype | comment | element
//	node           -> strictNode | text
//
//	doctype        -> "<!DOCTYPE" TEXT ">"
//	comment        -> "<!--" TEXT "-->"
//
//	element        -> voidElement | foreignElement | normalElement
//	voidElement    -> "<" VOID_NAME attribute* "/"? ">"
//	foreignElement -> "<" FOREIGN_NAME attribute* ">" FOREIGN_TEXT "</" FOREIGN_NAME ">"
//	normalElement  -> "<" NAME attribute* ">" node* "</" NAME ">"
//
//	attribute      -> NAME ("=" (QUOTED_VALUE | UNQUOTED_VALUE))?
//
// Only strict nodes may appear at the top level; text is allowed between
// the children of an element. Tag names are ASCII alphanumeric and
// matched case-insensitively, so <DIV> is closed by </div>. Void elements
// (br, img, hr, ...) take no children and no closing tag; an optional /
// before the closing > is accepted on void elements only. Foreign
// elements capture everything up to their case-insensitive closing tag
// as a single opaque Foreign node, so <script>a < b</script> parses.
//
// # Zero-copy AST
//
// Every text span in the resulting tree (tag names, attribute names and
// values, text, comment and doctype content, foreign bodies) is a
// substring of the input sharing its backing storage. Parsing allocates
// nodes, never content.
//
// # Errors
//
// Parse returns a *ParseError describing the first failure. The error
// renders as "[line:col] message" with a 1-based line and column derived
// from the byte offset at the failure site:
//
//	doc, err := html.Parse("<p>\n<q></p>")
//	fmt.Println(err) // [2:7] mismatched closing tag: expected 'q', found 'p'
//
// Control characters (the C0 range except whitespace, plus DEL) are
// rejected wherever they appear outside foreign content.
package html
