package emitter

import "github.com/huz-sh/ether/internal/ast"

func (e *Emitter) emitStmts(stmts []ast.Statement) {
	for _, stmt := range stmts {
		e.emitStmt(stmt)
	}
}

func (e *Emitter) emitStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		if s.Initializer != nil {
			e.writeLine("%s %s = %s;", cType(s.Type), s.Identifier.Lexeme, e.renderExpr(s.Initializer))
		} else {
			e.writeLine("%s %s;", cType(s.Type), s.Identifier.Lexeme)
		}
	case *ast.IfStmt:
		e.emitIf(s)
	case *ast.ForStmt:
		e.emitFor(s)
	case *ast.WhileStmt:
		e.writeLine("while (%s) {", e.renderExpr(s.Cond))
		e.depth++
		e.emitStmts(s.Body)
		e.depth--
		e.writeLine("}")
	case *ast.ReturnStmt:
		if s.Expr != nil {
			e.writeLine("return (%s);", e.renderExpr(s.Expr))
		} else {
			e.writeLine("return;")
		}
	case *ast.ExprStmt:
		e.writeLine("%s;", e.renderExpr(s.Expr))
	}
}

func (e *Emitter) emitIf(s *ast.IfStmt) {
	e.writeLine("if (%s) {", e.renderExpr(s.IfBranch.Cond))
	e.depth++
	e.emitStmts(s.IfBranch.Body)
	e.depth--

	for _, elif := range s.ElifBranches {
		e.writeLine("} else if (%s) {", e.renderExpr(elif.Cond))
		e.depth++
		e.emitStmts(elif.Body)
		e.depth--
	}

	if s.ElseBranch != nil {
		e.writeLine("} else {")
		e.depth++
		e.emitStmts(s.ElseBranch.Body)
		e.depth--
	}

	e.writeLine("}")
}

// emitFor lowers `[for i to N body]` to C's canonical counting loop.
func (e *Emitter) emitFor(s *ast.ForStmt) {
	name := s.Counter.Identifier.Lexeme
	e.writeLine("for (int %s = 0; %s < %s; ++%s) {", name, name, e.renderExpr(s.To), name)
	e.depth++
	e.emitStmts(s.Body)
	e.depth--
	e.writeLine("}")
}
