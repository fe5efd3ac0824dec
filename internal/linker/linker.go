// Package linker implements ether's two-pass name and scope resolution: a
// declaration-collection pass that populates global struct/function/
// variable tables, followed by a use-resolution pass that binds every
// reference back to its declaration.
package linker

import (
	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/pkg/token"
)

// Program is the AST plus the global tables the linker populates, handed
// off to internal/resolver and internal/emitter.
type Program struct {
	AST     *ast.Program
	Structs map[string]*ast.StructDecl
	Funcs   map[string]*ast.FuncDecl
	Globals map[string]*ast.VarDecl
}

// linker holds the mutable state shared by both passes.
type linker struct {
	diags     *errors.Bag
	prog      *Program
	entryFile string
}

// Link runs both passes over the parsed program and returns the populated
// Program. entryFile is used only to anchor the file-level "main not found"
// diagnostic when no declaration in the program carries a better position.
func Link(parsed *ast.Program, diags *errors.Bag, entryFile string) *Program {
	l := &linker{
		diags:     diags,
		entryFile: entryFile,
		prog: &Program{
			AST:     parsed,
			Structs: make(map[string]*ast.StructDecl),
			Funcs:   make(map[string]*ast.FuncDecl),
			Globals: make(map[string]*ast.VarDecl),
		},
	}

	l.collectDeclarations()
	l.resolveUses()

	return l.prog
}

// filePos is the position used for diagnostics that are not anchored to a
// specific token, e.g. the missing-'main' error.
func (l *linker) filePos() token.Position {
	if len(l.prog.AST.Decls) > 0 {
		return l.prog.AST.Decls[0].Pos()
	}
	return token.Position{File: l.entryFile, Line: 1, Column: 1}
}
