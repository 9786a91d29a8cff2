package html

import "testing"

func TestIsSpaceChar(t *testing.T) {
	for _, ch := range []byte{' ', '\n', '\r', '\t', '\x0C'} {
		if !isSpaceChar(ch) {
			t.Errorf("isSpaceChar(%q) = false, want true", ch)
		}
	}
	for _, ch := range []byte{0, 'a', '<', '\x0B'} {
		if isSpaceChar(ch) {
			t.Errorf("isSpaceChar(%q) = true, want false", ch)
		}
	}
}

func TestIsControlChar(t *testing.T) {
	for _, ch := range []byte{0, '\x01', '\x08', '\x0B', '\x0E', '\x1F', '\x7F'} {
		if !isControlChar(ch) {
			t.Errorf("isControlChar(%#x) = false, want true", ch)
		}
	}
	for _, ch := range []byte{'\t', '\n', '\r', '\x0C', ' ', 'a', '~'} {
		if isControlChar(ch) {
			t.Errorf("isControlChar(%#x) = true, want false", ch)
		}
	}
}

func TestIsAlphanumeric(t *testing.T) {
	for _, ch := range []byte{'0', '9', 'A', 'Z', 'a', 'z'} {
		if !isAlphanumeric(ch) {
			t.Errorf("isAlphanumeric(%q) = false, want true", ch)
		}
	}
	for _, ch := range []byte{'-', '_', ' ', '<', 0} {
		if isAlphanumeric(ch) {
			t.Errorf("isAlphanumeric(%q) = true, want false", ch)
		}
	}
}

func TestCurrentString(t *testing.T) {
	tests := []struct {
		source string
		pos    int
		want   string
	}{
		{"abc", 0, "a"},
		{"abc", 3, "[document end]"},
		{"a\x01", 1, "[control character 0x1]"},
		{"a\x7f", 1, "[control character 0x7f]"},
	}

	for _, tt := range tests {
		c := &cursor{source: tt.source, pos: tt.pos}
		if got := c.currentString(); got != tt.want {
			t.Errorf("currentString() at %d in %q = %q, want %q", tt.pos, tt.source, got, tt.want)
		}
	}
}

func TestNextMatch(t *testing.T) {
	c := &cursor{source: "<p></p>", pos: 3}
	if !c.nextMatch("</") {
		t.Error("nextMatch(\"</\") = false, want true")
	}
	if c.nextMatch("<p") {
		t.Error("nextMatch(\"<p\") = true, want false")
	}
	c.pos = len(c.source)
	if c.nextMatch("</") {
		t.Error("nextMatch at end = true, want false")
	}
}
