package lexer

import "testing"

func TestLexerLineAndColumnTracking(t *testing.T) {
	toks, diags := lexAll(t, "foo\nbar")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}

	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Errorf("'foo': got line %d col %d, want 1:1", toks[0].Pos.Line, toks[0].Pos.Column)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 1 {
		t.Errorf("'bar': got line %d col %d, want 2:1", toks[1].Pos.Line, toks[1].Pos.Column)
	}
}

func TestLexerEOFPosition(t *testing.T) {
	toks, _ := lexAll(t, "x")
	eof := toks[len(toks)-1]
	if eof.Kind.String() != "EOF" {
		t.Fatalf("expected last token to be EOF, got %s", eof.Kind)
	}
	if eof.Pos.Line != 1 {
		t.Errorf("expected EOF on line 1, got %d", eof.Pos.Line)
	}
}
