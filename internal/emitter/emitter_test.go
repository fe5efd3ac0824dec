package emitter

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/internal/lexer"
	"github.com/huz-sh/ether/internal/linker"
	"github.com/huz-sh/ether/internal/parser"
	"github.com/huz-sh/ether/internal/resolver"
)

func emitSource(t *testing.T, src string) string {
	t.Helper()
	diags := errors.NewBag()
	toks := lexer.New("<test>", src, intern.New(), diags).Run()
	prog := parser.New(toks, diags).ParseProgram()
	if diags.HasErrors() {
		t.Fatalf("unexpected parse errors: %s", diags.Render(false))
	}
	linked := linker.Link(prog, diags, "<test>")
	if diags.HasErrors() {
		t.Fatalf("unexpected link errors: %s", diags.Render(false))
	}
	if resolver.Resolve(linked, diags) || diags.HasErrors() {
		t.Fatalf("unexpected resolve errors: %s", diags.Render(false))
	}
	out, err := Emit(linked)
	if err != nil {
		t.Fatalf("Emit returned an error: %s", err)
	}
	return string(out)
}

func TestEmitPreludeAndTypedefs(t *testing.T) {
	out := emitSource(t, `[defn pub int:main [void] [return 0]]`)
	snaps.MatchSnapshot(t, "prelude_and_main", out)
}

func TestEmitStructLayout(t *testing.T) {
	out := emitSource(t, `
		[struct Point [let int:x] [let int:y]]
		[defn pub int:main [void]
			[let Point:p]
			[return p.x]]
	`)
	snaps.MatchSnapshot(t, "struct_layout", out)
}

func TestEmitNestedStructField(t *testing.T) {
	out := emitSource(t, `
		[struct Point [let int:x] [let int:y]]
		[struct Line [let Point:start] [let Point:end]]
		[defn pub int:main [void]
			[let Line:l]
			[return l.start.x]]
	`)
	snaps.MatchSnapshot(t, "nested_struct_field", out)
}

func TestEmitIfElifElse(t *testing.T) {
	out := emitSource(t, `
		[defn int:classify [int:n]
			[if [< n 0] [return 0]]
			[elif [= n 0] [return 1]]
			[else [return 2]]]
		[defn pub int:main [void] [return [classify 5]]]
	`)
	snaps.MatchSnapshot(t, "if_elif_else", out)
}

func TestEmitForLoop(t *testing.T) {
	out := emitSource(t, `
		[defn pub int:main [void]
			[let int:total 0]
			[for i to 10 [set total [+ total i]]]
			[return total]]
	`)
	snaps.MatchSnapshot(t, "for_loop", out)
}

func TestEmitPointerOperators(t *testing.T) {
	out := emitSource(t, `
		[defn pub int:main [void]
			[let int:x 5]
			[let int*:p [addr x]]
			[set [deref p] 10]
			[return [deref p]]]
	`)
	snaps.MatchSnapshot(t, "pointer_operators", out)
}

func TestEmitArithmeticChain(t *testing.T) {
	out := emitSource(t, `
		[defn pub int:main [void]
			[return [+ 1 2 3 4]]]
	`)
	snaps.MatchSnapshot(t, "arithmetic_chain", out)
}

func TestEmitFunctionPrototypesPrecedeDefinitions(t *testing.T) {
	out := emitSource(t, `
		[decl int:helper [int:n]]
		[defn pub int:main [void] [return [helper 1]]]
		[defn int:helper [int:n] [return n]]
	`)
	snaps.MatchSnapshot(t, "prototype_then_definition", out)
}

func TestEmitZeroParamFunctionUsesEmptyParens(t *testing.T) {
	out := emitSource(t, `[defn pub int:main [void] [return 0]]`)
	if !strings.Contains(out, "main()") {
		t.Fatalf("expected an empty '()' parameter list, got:\n%s", out)
	}
}
