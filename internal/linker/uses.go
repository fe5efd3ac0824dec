package linker

import (
	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/pkg/token"
)

// scope is one lexical level of variable bindings; vars is checked before
// walking up to parent.
type scope struct {
	vars   map[string]*ast.VarDecl
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]*ast.VarDecl), parent: parent}
}

// lookup finds the declaring VarDecl for name by walking up the chain.
func (s *scope) lookup(name string) *ast.VarDecl {
	for cur := s; cur != nil; cur = cur.parent {
		if decl, ok := cur.vars[name]; ok {
			return decl
		}
	}
	return nil
}

// declare inserts decl into s, reporting a shadowing error (with a note at
// the prior declaration) if name is already bound anywhere in the chain.
func (s *scope) declare(l *linker, decl *ast.VarDecl) {
	name := decl.Identifier.Lexeme
	if prior := s.lookup(name); prior != nil {
		l.diags.Errorf(decl.Pos(), "declaration of '%s' shadows an enclosing declaration", name).
			Note(prior.Pos(), "previous declaration of '%s' was here", name)
	}
	s.vars[name] = decl
}

// resolveUses is Pass 2: bind every type reference, variable use, and call
// to its declaration, inside a fresh scope stack per function body.
func (l *linker) resolveUses() {
	for _, d := range l.prog.Structs {
		for _, f := range d.Fields {
			l.bindDataType(f.Type, false)
			if f.Type != nil && f.Type.ResolvedStruct != nil {
				f.ResolvedStruct = f.Type.ResolvedStruct
			}
		}
	}

	for _, d := range l.prog.Globals {
		l.bindDataType(d.Type, false)
		if d.Initializer != nil {
			l.resolveExpr(d.Initializer, nil)
		}
	}

	for _, d := range l.prog.Funcs {
		l.bindDataType(d.ReturnType, true)
		for _, p := range d.Params {
			l.bindDataType(p.Type, false)
		}
		if !d.IsDefinition {
			continue
		}

		fnScope := newScope(nil)
		for _, p := range d.Params {
			fnScope.declare(l, p)
		}
		l.resolveStmts(d.Body, fnScope)
	}
}

// bindDataType binds dt's main token to a struct when it names one, and
// rejects a bare `void` (pointer_count 0) unless isReturnType. `[void]`
// parameter-list placeholders never reach here as a DataType at all (they
// are tracked via FuncDecl.IsVoidParams), so no further carve-out is needed.
func (l *linker) bindDataType(dt *ast.DataType, isReturnType bool) {
	if dt == nil {
		return
	}
	if structDecl, ok := l.prog.Structs[dt.MainToken.Lexeme]; ok {
		dt.ResolvedStruct = structDecl
	} else if !isKnownPrimitive(dt.MainToken.Lexeme) {
		l.diags.Errorf(dt.MainToken.Pos, "unknown type '%s'", dt.MainToken.Lexeme)
		return
	}

	if dt.IsVoid() && !isReturnType {
		l.diags.Errorf(dt.MainToken.Pos, "'void' is not a valid type here")
	}
}

func isKnownPrimitive(name string) bool {
	switch name {
	case "int", "char", "bool", "void",
		"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64":
		return true
	default:
		return false
	}
}

func (l *linker) resolveStmts(stmts []ast.Statement, parent *scope) {
	for _, stmt := range stmts {
		l.resolveStmt(stmt, parent)
	}
}

func (l *linker) resolveStmt(stmt ast.Statement, sc *scope) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		l.bindDataType(s.Type, false)
		if s.Initializer != nil {
			l.resolveExpr(s.Initializer, sc)
		}
		sc.declare(l, s)
	case *ast.IfStmt:
		l.resolveBranch(s.IfBranch, sc)
		for _, elif := range s.ElifBranches {
			l.resolveBranch(elif, sc)
		}
		if s.ElseBranch != nil {
			l.resolveBranch(*s.ElseBranch, sc)
		}
	case *ast.ForStmt:
		bodyScope := newScope(sc)
		l.resolveExpr(s.To, sc)
		bodyScope.declare(l, s.Counter)
		l.resolveStmts(s.Body, bodyScope)
	case *ast.WhileStmt:
		l.resolveExpr(s.Cond, sc)
		l.resolveStmts(s.Body, newScope(sc))
	case *ast.ReturnStmt:
		if s.Expr != nil {
			l.resolveExpr(s.Expr, sc)
		}
	case *ast.ExprStmt:
		l.resolveExpr(s.Expr, sc)
	}
}

func (l *linker) resolveBranch(b ast.Branch, parent *scope) {
	if b.Cond != nil {
		l.resolveExpr(b.Cond, parent)
	}
	l.resolveStmts(b.Body, newScope(parent))
}

func (l *linker) resolveExpr(expr ast.Expression, sc *scope) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		decl := sc.lookup(e.Identifier.Lexeme)
		if decl == nil {
			decl = l.prog.Globals[e.Identifier.Lexeme]
		}
		if decl == nil {
			l.diags.Errorf(e.Pos(), "undeclared variable '%s'", e.Identifier.Lexeme)
			return
		}
		e.ResolvedDecl = decl
	case *ast.DotAccessExpr:
		l.resolveExpr(e.Left, sc)
	case *ast.FuncCallExpr:
		l.resolveFuncCall(e, sc)
	}
}

func (l *linker) resolveFuncCall(call *ast.FuncCallExpr, sc *scope) {
	for _, arg := range call.Args {
		l.resolveExpr(arg, sc)
	}

	switch {
	case call.IsOperatorKeyword():
		l.checkOperatorKeywordArity(call)
	case call.IsOperator():
		l.checkOperatorTokenArity(call)
	default:
		l.resolveCalleeFunc(call)
	}
}

// checkOperatorTokenArity enforces arities for the operator tokens:
// comparisons (including `=`) take exactly 2 arguments, arithmetic takes a
// variadic chain of at least 2.
func (l *linker) checkOperatorTokenArity(call *ast.FuncCallExpr) {
	switch call.CalleeToken.Kind {
	case token.EQUAL, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		if len(call.Args) != 2 {
			l.diags.Errorf(call.Pos(), "operator '%s' requires exactly 2 arguments", call.CalleeToken.Lexeme)
		}
	default: // + - * / %
		if len(call.Args) < 2 {
			l.diags.Errorf(call.Pos(), "operator '%s' requires at least 2 arguments", call.CalleeToken.Lexeme)
		}
	}
}

// checkOperatorKeywordArity enforces fixed arities for set/deref/addr/at
// (the comparison operators `= < <= > >=` are lexed as
// operator tokens, not operator keywords, and are checked in
// checkOperatorTokenArity alongside the arithmetic operators).
func (l *linker) checkOperatorKeywordArity(call *ast.FuncCallExpr) {
	name := call.CalleeToken.Lexeme
	switch name {
	case "set", "at":
		if len(call.Args) != 2 {
			l.diags.Errorf(call.Pos(), "'%s' requires exactly 2 arguments", name)
		}
	case "deref", "addr":
		if len(call.Args) != 1 {
			l.diags.Errorf(call.Pos(), "'%s' requires exactly 1 argument", name)
		}
	}
}

func (l *linker) resolveCalleeFunc(call *ast.FuncCallExpr) {
	name := call.CalleeToken.Lexeme
	fn, ok := l.prog.Funcs[name]
	if !ok {
		l.diags.Errorf(call.Pos(), "implicit declaration of function '%s'", name)
		return
	}
	call.ResolvedCallee = fn

	want := len(fn.Params)
	got := len(call.Args)
	if got == want {
		return
	}

	var errPos token.Position
	if got > want {
		errPos = call.Args[want].Pos()
	} else {
		errPos = call.Pos()
	}
	l.diags.Errorf(errPos, "conflicting argument-length in function call; expected %d argument(s), but got %d argument(s);", want, got).
		Note(fn.Pos(), "callee '%s' defined here", name)
}
