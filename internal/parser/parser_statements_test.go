package parser

import (
	"testing"

	"github.com/huz-sh/ether/internal/ast"
)

func parseFuncBody(t *testing.T, body string) []ast.Statement {
	t.Helper()
	src := `[defn int:f [void] ` + body + `]`
	prog, diags := parseSource(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
	return prog.Decls[0].(*ast.FuncDecl).Body
}

func TestParseIfElifElse(t *testing.T) {
	body := parseFuncBody(t, `
		[if [< 1 2]
			[return 1]]
		[elif [< 2 3]
			[return 2]]
		[else
			[return 3]]
	`)
	if len(body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(body))
	}
	ifStmt, ok := body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", body[0])
	}
	if len(ifStmt.ElifBranches) != 1 || ifStmt.ElseBranch == nil {
		t.Fatalf("got %+v", ifStmt)
	}
}

func TestParseForLoop(t *testing.T) {
	body := parseFuncBody(t, `[for i to 10 [return i]]`)
	forStmt, ok := body[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected *ast.ForStmt, got %T", body[0])
	}
	if forStmt.Counter.Identifier.Lexeme != "i" || len(forStmt.Body) != 1 {
		t.Fatalf("got %+v", forStmt)
	}
}

func TestParseWhileLoop(t *testing.T) {
	body := parseFuncBody(t, `[while [< 1 2] [return 1]]`)
	whileStmt, ok := body[0].(*ast.WhileStmt)
	if !ok || len(whileStmt.Body) != 1 {
		t.Fatalf("got %+v", body[0])
	}
}

func TestParseElifWithoutIfIsError(t *testing.T) {
	_, diags := parseSource(t, `[defn int:f [void] [elif 1 [return 1]]]`)
	if !diags.HasErrors() {
		t.Fatal("expected an error for 'elif' without a preceding 'if'")
	}
}

func TestParseUnclosedBodyReportsEOFError(t *testing.T) {
	_, diags := parseSource(t, `[defn int:f [void] [return 1]`)
	if !diags.HasErrors() {
		t.Fatal("expected an end-of-file error for an unclosed function body")
	}
}
