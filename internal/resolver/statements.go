package resolver

import "github.com/huz-sh/ether/internal/ast"

func (r *resolver) resolveStmts(stmts []ast.Statement, fn *ast.FuncDecl) {
	for _, stmt := range stmts {
		r.beginStatement()
		r.resolveStmt(stmt, fn)
	}
}

func (r *resolver) resolveStmt(stmt ast.Statement, fn *ast.FuncDecl) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		r.resolveVarDecl(s)
	case *ast.IfStmt:
		r.resolveBranch(s.IfBranch, fn)
		for _, elif := range s.ElifBranches {
			r.resolveBranch(elif, fn)
		}
		if s.ElseBranch != nil {
			r.resolveBranch(*s.ElseBranch, fn)
		}
	case *ast.ForStmt:
		s.Counter.Type = intType
		toType := r.resolveExpr(s.To)
		if toType != nil {
			switch compareTypes(toType, intType) {
			case typeNotMatch:
				r.fail(s.To, "'for' bound must type-match 'int'")
			case typeImplicitMatch:
				r.warn(s.To, "implicit conversion from '%s' to 'int' in 'for' bound", toType.String())
			}
		}
		r.resolveStmts(s.Body, fn)
	case *ast.WhileStmt:
		r.checkCondition(s.Cond, "while")
		r.resolveStmts(s.Body, fn)
	case *ast.ReturnStmt:
		r.resolveReturn(s, fn)
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)
	}
}

func (r *resolver) resolveBranch(b ast.Branch, fn *ast.FuncDecl) {
	if b.Cond != nil {
		r.checkCondition(b.Cond, "if")
	}
	r.resolveStmts(b.Body, fn)
}

// checkCondition enforces the rule that if/while conditions must
// type-match bool.
func (r *resolver) checkCondition(cond ast.Expression, construct string) {
	t := r.resolveExpr(cond)
	if t == nil {
		return
	}
	switch compareTypes(t, boolType) {
	case typeNotMatch:
		r.fail(cond, "'%s' condition must type-match 'bool'", construct)
	case typeImplicitMatch:
		r.warn(cond, "implicit conversion from '%s' to 'bool' in '%s' condition", t.String(), construct)
	}
}

func (r *resolver) resolveVarDecl(decl *ast.VarDecl) {
	if decl.Initializer == nil {
		return
	}
	initType := r.resolveExpr(decl.Initializer)
	if initType == nil || decl.Type == nil {
		return
	}
	switch compareTypes(decl.Type, initType) {
	case typeNotMatch:
		r.fail(decl.Initializer, "initializer type '%s' does not match declared type '%s' for '%s'",
			initType.String(), decl.Type.String(), decl.Identifier.Lexeme)
	case typeImplicitMatch:
		r.warn(decl.Initializer, "implicit conversion from '%s' to '%s' initializing '%s'",
			initType.String(), decl.Type.String(), decl.Identifier.Lexeme)
	}
}

func (r *resolver) resolveReturn(stmt *ast.ReturnStmt, fn *ast.FuncDecl) {
	if stmt.Expr == nil {
		if fn != nil && fn.ReturnType != nil && !fn.ReturnType.IsVoid() {
			r.fail(stmt, "non-void function '%s' must return a value", fn.Identifier.Lexeme)
		}
		return
	}
	exprType := r.resolveExpr(stmt.Expr)
	if exprType == nil || fn == nil || fn.ReturnType == nil {
		return
	}
	switch compareTypes(fn.ReturnType, exprType) {
	case typeNotMatch:
		r.fail(stmt.Expr, "return type '%s' does not match function '%s' return type '%s'",
			exprType.String(), fn.Identifier.Lexeme, fn.ReturnType.String())
	case typeImplicitMatch:
		r.warn(stmt.Expr, "implicit conversion from '%s' to '%s' returning from '%s'",
			exprType.String(), fn.ReturnType.String(), fn.Identifier.Lexeme)
	}
}
