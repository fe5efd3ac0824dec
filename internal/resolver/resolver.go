// Package resolver implements ether's type checker: it computes a type for
// every expression, propagates types through statements, and reports
// mismatches, tracking both a per-statement error reset and a
// whole-compilation latch.
package resolver

import (
	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/linker"
)

// resolver holds the two-tier error state: errorOccurred resets at each
// statement boundary and records whether the current statement reported an
// error; persistentErrorOccurred latches for the whole compilation.
// Skipping checks on a subtree whose prerequisites failed is driven by
// resolveExpr returning a nil type, not by errorOccurred.
type resolver struct {
	diags *errors.Bag
	prog  *linker.Program

	errorOccurred           bool
	persistentErrorOccurred bool
}

// Resolve type-checks every function body in prog. It reports diagnostics
// into diags and returns whether any error-severity diagnostic was newly
// recorded during resolution.
func Resolve(prog *linker.Program, diags *errors.Bag) bool {
	r := &resolver{diags: diags, prog: prog}

	for _, d := range prog.Globals {
		r.beginStatement()
		if d.Initializer != nil {
			r.resolveExpr(d.Initializer)
		}
	}

	for _, fn := range prog.Funcs {
		if !fn.IsDefinition {
			continue
		}
		r.resolveStmts(fn.Body, fn)
	}

	return r.persistentErrorOccurred
}

// beginStatement resets the per-statement error flag, per the state-machine
// note: each statement starts with a clean slate for "did this subtree's
// prerequisites fail".
func (r *resolver) beginStatement() {
	r.errorOccurred = false
}

func (r *resolver) fail(pos ast.Node, format string, args ...any) {
	r.diags.Errorf(pos.Pos(), format, args...)
	r.errorOccurred = true
	r.persistentErrorOccurred = true
}

func (r *resolver) warn(pos ast.Node, format string, args ...any) {
	r.diags.Warningf(pos.Pos(), format, args...)
}
