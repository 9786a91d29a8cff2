package html

import (
	"errors"
	"testing"
)

func TestParseErrorReporting(t *testing.T) {
	_, err := Parse("<p>\n<q></p>")
	if err == nil {
		t.Fatal("expected an error")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}

	if got, want := perr.Message(), "mismatched closing tag: expected 'q', found 'p'"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
	if got, want := perr.Offset(), 10; got != want {
		t.Errorf("Offset() = %d, want %d", got, want)
	}
	line, col := perr.LineAndColumn()
	if line != 2 || col != 7 {
		t.Errorf("LineAndColumn() = (%d, %d), want (2, 7)", line, col)
	}
	if got, want := perr.Error(), "[2:7] mismatched closing tag: expected 'q', found 'p'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewParseErrorDerivesPosition(t *testing.T) {
	source := "ab\ncd\n\nef"
	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
	}

	for _, tt := range tests {
		err := newParseError("boom", source, tt.offset)
		line, col := err.LineAndColumn()
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("offset %d: got (%d, %d), want (%d, %d)", tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestParseErrorPositions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantCol  int
	}{
		{"start of input", "x", 1, 1},
		{"end of first line", "<!--x", 1, 6},
		{"start of second line", "<p></p>\nx", 2, 1},
		{"error on later line", "<!--c-->\n<br>\n<div>\n</span>", 4, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			line, col := perr.LineAndColumn()
			if line != tt.wantLine || col != tt.wantCol {
				t.Errorf("got (%d, %d), want (%d, %d)", line, col, tt.wantLine, tt.wantCol)
			}
		})
	}
}
