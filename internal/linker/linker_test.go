package linker

import (
	"testing"

	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/internal/lexer"
	"github.com/huz-sh/ether/internal/parser"
)

func linkSource(t *testing.T, src string) (*Program, *errors.Bag) {
	t.Helper()
	diags := errors.NewBag()
	toks := lexer.New("<test>", src, intern.New(), diags).Run()
	prog := parser.New(toks, diags).ParseProgram()
	if diags.HasErrors() {
		t.Fatalf("unexpected parse errors: %s", diags.Render(false))
	}
	return Link(prog, diags, "<test>"), diags
}

func TestLinkMinimalProgram(t *testing.T) {
	_, diags := linkSource(t, `[defn pub int:main [void] [return 0]]`)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
}

func TestLinkMissingMainIsError(t *testing.T) {
	_, diags := linkSource(t, `[let int:x 0]`)
	if !diags.HasErrors() {
		t.Fatal("expected an error when no 'main' function is present")
	}
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Message == "'main' symbol not found" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"'main' symbol not found\", got: %s", diags.Render(false))
	}
}

func TestLinkRedefinitionOfStructIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[struct Point [let int:x]]
		[struct Point [let int:y]]
		[defn pub int:main [void] [return 0]]
	`)
	if !diags.HasErrors() {
		t.Fatal("expected a redefinition error")
	}
	wantAny(t, diags, "redefinition of struct 'Point'")
}

func TestLinkRedeclarationOfGlobalIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[let int:count 0]
		[let int:count 1]
		[defn pub int:main [void] [return 0]]
	`)
	wantAny(t, diags, "redeclaration of global variable 'count'")
}

func TestLinkFunctionDeclarationThenDefinitionMerges(t *testing.T) {
	prog, diags := linkSource(t, `
		[decl int:add [int:a int:b]]
		[defn int:add [int:a int:b] [return a]]
		[defn pub int:main [void] [return 0]]
	`)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
	fn, ok := prog.Funcs["add"]
	if !ok || !fn.IsDefinition {
		t.Fatalf("expected 'add' to resolve to its definition, got %+v", fn)
	}
}

func TestLinkConflictingDeclarationIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[decl int:add [int:a int:b]]
		[decl char:add [int:a]]
		[defn pub int:main [void] [return 0]]
	`)
	wantAny(t, diags, "conflicting declaration of function 'add'")
}

func TestLinkRedefinitionOfFunctionIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[defn int:add [int:a int:b] [return a]]
		[defn int:add [int:a int:b] [return a]]
		[defn pub int:main [void] [return 0]]
	`)
	wantAny(t, diags, "redefinition of function 'add'")
}

func TestLinkUnknownTypeIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[let Bogus:x 0]
		[defn pub int:main [void] [return 0]]
	`)
	wantAny(t, diags, "unknown type 'Bogus'")
}

func TestLinkVoidGlobalIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[let void:x 0]
		[defn pub int:main [void] [return 0]]
	`)
	wantAny(t, diags, "'void' is not a valid type here")
}

func TestLinkUndeclaredVariableIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[defn pub int:main [void]
			[return y]]
	`)
	wantAny(t, diags, "undeclared variable 'y'")
}

func TestLinkShadowingIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[defn pub int:main [void]
			[let int:x 0]
			[let int:x 1]
			[return x]]
	`)
	wantAny(t, diags, "declaration of 'x' shadows an enclosing declaration")
}

func TestLinkParamShadowingIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[defn int:f [int:a]
			[let int:a 1]
			[return a]]
		[defn pub int:main [void] [return 0]]
	`)
	wantAny(t, diags, "declaration of 'a' shadows an enclosing declaration")
}

func TestLinkImplicitDeclarationOfFunctionIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[defn pub int:main [void]
			[return [undefined_fn 1]]]
	`)
	wantAny(t, diags, "implicit declaration of function 'undefined_fn'")
}

func TestLinkTooFewArgumentsIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[defn int:add [int:a int:b] [return a]]
		[defn pub int:main [void] [return [add 1]]]
	`)
	wantAny(t, diags, "conflicting argument-length in function call; expected 2 argument(s), but got 1 argument(s);")
	wantNote(t, diags, "conflicting argument-length in function call; expected 2 argument(s), but got 1 argument(s);", "callee 'add' defined here")
}

func TestLinkTooManyArgumentsIsError(t *testing.T) {
	_, diags := linkSource(t, `
		[defn int:add [int:a int:b] [return a]]
		[defn pub int:main [void] [return [add 1 2 3]]]
	`)
	wantAny(t, diags, "conflicting argument-length in function call; expected 2 argument(s), but got 3 argument(s);")
	wantNote(t, diags, "conflicting argument-length in function call; expected 2 argument(s), but got 3 argument(s);", "callee 'add' defined here")
}

func TestLinkComparisonOperatorArity(t *testing.T) {
	_, diags := linkSource(t, `
		[defn pub int:main [void]
			[if [< 1 2 3] [return 0]]
			[return 1]]
	`)
	wantAny(t, diags, "operator '<' requires exactly 2 arguments")
}

func TestLinkArithmeticOperatorArity(t *testing.T) {
	_, diags := linkSource(t, `
		[defn pub int:main [void]
			[return [+ 1]]]
	`)
	wantAny(t, diags, "operator '+' requires at least 2 arguments")
}

func TestLinkSetRequiresExactlyTwoArguments(t *testing.T) {
	_, diags := linkSource(t, `
		[defn pub int:main [void]
			[let int:x 0]
			[set x]
			[return 0]]
	`)
	wantAny(t, diags, "'set' requires exactly 2 arguments")
}

func TestLinkDerefRequiresExactlyOneArgument(t *testing.T) {
	_, diags := linkSource(t, `
		[defn pub int:main [void]
			[let int*:p null]
			[return [deref p p]]]
	`)
	wantAny(t, diags, "'deref' requires exactly 1 argument")
}

func TestLinkResolvesGlobalReferenceFromFunctionBody(t *testing.T) {
	prog, diags := linkSource(t, `
		[let int:counter 0]
		[defn pub int:main [void] [return counter]]
	`)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
	if _, ok := prog.Globals["counter"]; !ok {
		t.Fatal("expected 'counter' to be registered as a global")
	}
}

// wantNote asserts that the diagnostic whose message equals msg carries a
// chained note whose message equals noteMsg.
func wantNote(t *testing.T, diags *errors.Bag, msg, noteMsg string) {
	t.Helper()
	for _, d := range diags.Diagnostics() {
		if d.Message != msg {
			continue
		}
		for _, n := range d.Notes {
			if n.Message == noteMsg {
				return
			}
		}
		t.Fatalf("diagnostic %q has no note %q", msg, noteMsg)
	}
	t.Fatalf("no diagnostic with message %q found", msg)
}

func wantAny(t *testing.T, diags *errors.Bag, substr string) {
	t.Helper()
	for _, d := range diags.Diagnostics() {
		if d.Message == substr {
			return
		}
	}
	var got []string
	for _, d := range diags.Diagnostics() {
		got = append(got, d.Message)
	}
	t.Fatalf("expected a diagnostic %q, got: %v", substr, got)
}
