package resolver

import (
	"testing"

	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/internal/lexer"
	"github.com/huz-sh/ether/internal/linker"
	"github.com/huz-sh/ether/internal/parser"
)

func resolveSource(t *testing.T, src string) (*linker.Program, *errors.Bag, bool) {
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
	failed := Resolve(linked, diags)
	return linked, diags, failed
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

func TestResolveWellTypedProgram(t *testing.T) {
	_, diags, failed := resolveSource(t, `
		[defn pub int:main [void]
			[let int:x 1]
			[let int:y [+ x 2]]
			[return y]]
	`)
	if diags.HasErrors() || failed {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
}

func TestResolveInitializerMismatchIsError(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[let bool:b 1]
			[return 0]]
	`)
	wantAny(t, diags, "initializer type 'int' does not match declared type 'bool' for 'b'")
}

func TestResolveIntCharIsImplicitMatchWarning(t *testing.T) {
	_, diags, failed := resolveSource(t, `
		[defn pub int:main [void]
			[let char:c 'x']
			[let int:x c]
			[return x]]
	`)
	if failed {
		t.Fatalf("implicit match should not be a hard failure: %s", diags.Render(false))
	}
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Severity == errors.SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an implicit-conversion warning for int/char initializer")
	}
}

func TestResolveIfConditionMustBeBool(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[if 1 [return 1]]
			[return 0]]
	`)
	wantAny(t, diags, "'if' condition must type-match 'bool'")
}

func TestResolveWhileConditionMustBeBool(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[while 1 [return 1]]
			[return 0]]
	`)
	wantAny(t, diags, "'while' condition must type-match 'bool'")
}

func TestResolveReturnTypeMismatchIsError(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn bool:flag [void] [return 1]]
		[defn pub int:main [void] [return [flag]]]
	`)
	wantAny(t, diags, "return type 'int' does not match function 'flag' return type 'bool'")
}

func TestResolveNonVoidFunctionMustReturnValue(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn int:f [void] [return]]
		[defn pub int:main [void] [return [f]]]
	`)
	wantAny(t, diags, "non-void function 'f' must return a value")
}

func TestResolveArgumentTypeMismatchIsError(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn int:add [int:a int:b] [return a]]
		[defn pub int:main [void] [return [add 1 true]]]
	`)
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Severity == errors.SeverityError {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a type mismatch error, got: %s", diags.Render(false))
	}
}

func TestResolveArithmeticOperandMustBeInt(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[return [+ true 1]]]
	`)
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Severity == errors.SeverityError {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an error for a non-int arithmetic operand")
	}
}

func TestResolveComparisonTypeMismatchIsError(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[if [< true 1] [return 1]]
			[return 0]]
	`)
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Severity == errors.SeverityError {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a comparison type mismatch error")
	}
}

func TestResolveDerefRejectsNonPointer(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[let int:x 0]
			[return [deref x]]]
	`)
	wantAny(t, diags, "cannot 'deref' a non-pointer type 'int'")
}

func TestResolveDerefRejectsVoidPointer(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[let void*:p null]
			[return [deref p]]]
	`)
	wantAny(t, diags, "cannot 'deref' a 'void*'")
}

func TestResolveAddrIncrementsPointerCount(t *testing.T) {
	_, diags, failed := resolveSource(t, `
		[defn pub int:main [void]
			[let int:x 0]
			[let int*:p [addr x]]
			[return [deref p]]]
	`)
	if diags.HasErrors() || failed {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
}

func TestResolveDotAccessOnNonStructIsError(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[let int:x 0]
			[return x.y]]
	`)
	wantAny(t, diags, "left operand of '.' is not a struct (or struct pointer); use 'deref' operator instead")
}

func TestResolveDotAccessUnknownFieldIsError(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[struct Point [let int:x] [let int:y]]
		[defn pub int:main [void]
			[let Point:p]
			[return p.z]]
	`)
	wantAny(t, diags, "struct 'Point' has no field named 'z'")
}

func TestResolveDotAccessKnownField(t *testing.T) {
	_, diags, failed := resolveSource(t, `
		[struct Point [let int:x] [let int:y]]
		[defn pub int:main [void]
			[let Point:p]
			[return p.x]]
	`)
	if diags.HasErrors() || failed {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
}

func TestResolveForCounterIsTypedInt(t *testing.T) {
	_, diags, failed := resolveSource(t, `
		[defn pub int:main [void]
			[for i to 10 [let int:doubled [+ i i]]]
			[return 0]]
	`)
	if diags.HasErrors() || failed {
		t.Fatalf("unexpected errors: %s", diags.Render(false))
	}
}

func TestResolveSetRequiresAssignableRHS(t *testing.T) {
	_, diags, _ := resolveSource(t, `
		[defn pub int:main [void]
			[let int:x 0]
			[set x true]
			[return x]]
	`)
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Severity == errors.SeverityError {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an error for 'set' with a non-assignable right-hand side")
	}
}
