package parser

import (
	"testing"

	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/internal/lexer"
)

func parseSource(t *testing.T, src string) (*ast.Program, *errors.Bag) {
	t.Helper()
	diags := errors.NewBag()
	toks := lexer.New("<test>", src, intern.New(), diags).Run()
	prog := New(toks, diags).ParseProgram()
	return prog, diags
}

func TestParseStructDecl(t *testing.T) {
	prog, diags := parseSource(t, `[struct Point [let int:x] [let int:y]]`)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	s, ok := prog.Decls[0].(*ast.StructDecl)
	if !ok {
		t.Fatalf("expected *ast.StructDecl, got %T", prog.Decls[0])
	}
	if s.Identifier.Lexeme != "Point" || len(s.Fields) != 2 {
		t.Fatalf("got %+v", s)
	}
}

func TestParseTopLevelVarDecl(t *testing.T) {
	prog, diags := parseSource(t, `[let int:count 0]`)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
	v, ok := prog.Decls[0].(*ast.VarDecl)
	if !ok || !v.IsGlobal || v.Initializer == nil {
		t.Fatalf("got %+v", prog.Decls[0])
	}
}

func TestParseFuncDefinitionAndDeclaration(t *testing.T) {
	prog, diags := parseSource(t, `
		[decl int:add [int:a int:b]]
		[defn pub int:main [void] [return 0]]
	`)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
	if len(prog.Decls) != 2 {
		t.Fatalf("expected 2 decls, got %d", len(prog.Decls))
	}

	decl := prog.Decls[0].(*ast.FuncDecl)
	if decl.IsDefinition || len(decl.Params) != 2 {
		t.Fatalf("got %+v", decl)
	}

	def := prog.Decls[1].(*ast.FuncDecl)
	if !def.IsDefinition || !def.Public || !def.IsVoidParams || len(def.Body) != 1 {
		t.Fatalf("got %+v", def)
	}
}

func TestParseLoadDirective(t *testing.T) {
	prog, diags := parseSource(t, `[load "util.eth"]`)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
	ld, ok := prog.Decls[0].(*ast.LoadDecl)
	if !ok || ld.Path.Lexeme != "util.eth" {
		t.Fatalf("got %+v", prog.Decls[0])
	}
}

func TestParseEmptyParamListWarnsWithoutVoid(t *testing.T) {
	_, diags := parseSource(t, `[defn int:f [] [return 0]]`)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Severity == errors.SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a warning for an empty '[]' parameter list")
	}
}
