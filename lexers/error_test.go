package lexers

import (
	"strings"
	"testing"
)

func TestPosAt(t *testing.T) {
	source := NewSource("test", "ab\ncde\nf")
	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
	}
	for _, test := range tests {
		pos := source.PosAt(test.offset)
		if pos.Line != test.line || pos.Column != test.column {
			t.Fatalf("offset %d: got %d:%d, want %d:%d",
				test.offset, pos.Line, pos.Column, test.line, test.column)
		}
	}
}

func TestLexErrorRendering(t *testing.T) {
	source := NewSource("calc.sea", "1 +\n2 @ 3")
	lexer, err := New(source, calcMatchers())
	if err != nil {
		t.Fatal(err)
	}
	_, err = lexer.Collect()
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "calc.sea:2:3") {
		t.Fatalf("no position in %q", msg)
	}
	if !strings.Contains(msg, "2 @ 3") {
		t.Fatalf("no source line in %q", msg)
	}
	// caret under column 3
	if !strings.Contains(msg, "\n  ^") {
		t.Fatalf("no caret in %q", msg)
	}
}

func TestLexErrorWithoutSource(t *testing.T) {
	err := &LexError{
		Err:    ErrUnrecognized,
		Offset: 7,
	}
	msg := err.Error()
	if !strings.Contains(msg, "offset 7") {
		t.Fatalf("got %q", msg)
	}
}
