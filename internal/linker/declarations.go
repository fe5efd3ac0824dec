package linker

import "github.com/huz-sh/ether/internal/ast"

// collectDeclarations is Pass 1: populate the global struct, function, and
// variable tables without resolving any reference, walking the merged
// program's declarations once and registering each name.
func (l *linker) collectDeclarations() {
	for _, decl := range l.prog.AST.Decls {
		switch d := decl.(type) {
		case *ast.StructDecl:
			l.registerStruct(d)
		case *ast.FuncDecl:
			l.registerFunc(d)
		case *ast.VarDecl:
			l.registerGlobal(d)
		case *ast.LoadDecl:
			// merged into l.prog.AST.Decls by internal/driver before Link runs
		}
	}

	if _, ok := l.prog.Funcs["main"]; !ok {
		l.diags.Errorf(l.filePos(), "'main' symbol not found")
	}
}

func (l *linker) registerStruct(d *ast.StructDecl) {
	name := d.Identifier.Lexeme
	if existing, ok := l.prog.Structs[name]; ok {
		l.diags.Errorf(d.Pos(), "redefinition of struct '%s'", name).
			Note(existing.Pos(), "previous definition of '%s' was here", name)
		return
	}
	l.prog.Structs[name] = d
}

func (l *linker) registerGlobal(d *ast.VarDecl) {
	name := d.Identifier.Lexeme
	if existing, ok := l.prog.Globals[name]; ok {
		l.diags.Errorf(d.Pos(), "redeclaration of global variable '%s'", name).
			Note(existing.Pos(), "previous declaration of '%s' was here", name)
		return
	}
	l.prog.Globals[name] = d
}

// registerFunc enforces the declaration/definition merge rules: a
// second definition is an error; a declaration following a declaration or
// definition must match signatures exactly, else a cascading error with a
// note at the prior form.
func (l *linker) registerFunc(d *ast.FuncDecl) {
	name := d.Identifier.Lexeme
	existing, ok := l.prog.Funcs[name]
	if !ok {
		l.prog.Funcs[name] = d
		return
	}

	if existing.IsDefinition && d.IsDefinition {
		l.diags.Errorf(d.Pos(), "redefinition of function '%s'", name).
			Note(existing.Pos(), "previous definition of '%s' was here", name)
		return
	}

	if !signaturesMatch(existing, d) {
		l.diags.Errorf(d.Pos(), "conflicting declaration of function '%s'", name).
			Note(existing.Pos(), "previous declaration of '%s' was here", name)
		return
	}

	if d.IsDefinition && !existing.IsDefinition {
		l.prog.Funcs[name] = d
	}
}

// signaturesMatch reports whether a and b agree on return type, parameter
// count, each parameter's type (including pointer count), and each
// parameter's name.
func signaturesMatch(a, b *ast.FuncDecl) bool {
	if !a.ReturnType.SameAs(b.ReturnType) {
		return false
	}
	if a.IsVoidParams != b.IsVoidParams {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i, ap := range a.Params {
		bp := b.Params[i]
		if !ap.Type.SameAs(bp.Type) || ap.Identifier.Lexeme != bp.Identifier.Lexeme {
			return false
		}
	}
	return true
}
