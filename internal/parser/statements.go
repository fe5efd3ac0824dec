package parser

import (
	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/pkg/token"
)

// parseStmt parses one statement inside a function body. Every statement
// form opens with '[', which parseStmt consumes itself.
func (p *Parser) parseStmt() ast.Statement {
	p.consumeLeftBracket()
	if p.panicking {
		return nil
	}

	switch {
	case p.checkKeyword("let"):
		p.advance()
		return p.parseLocalVarDecl()
	case p.checkKeyword("return"):
		p.advance()
		return p.parseReturn()
	case p.checkKeyword("if"):
		p.advance()
		return p.parseIf()
	case p.checkKeyword("elif") || p.checkKeyword("else"):
		p.error(p.current(), "%q without a preceding 'if'", p.current().Lexeme)
		return nil
	case p.checkKeyword("for"):
		p.advance()
		return p.parseFor()
	case p.checkKeyword("while"):
		p.advance()
		return p.parseWhile()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLocalVarDecl() ast.Statement {
	typ := p.consumeDataType()
	p.consumeColon()
	identifier := p.consumeIdentifier()
	if p.panicking {
		return nil
	}
	decl := &ast.VarDecl{Type: typ, Identifier: identifier, IsVariable: true}
	if !p.check(token.RIGHT_BRACKET) {
		decl.Initializer = p.parseExpr()
	}
	p.consumeRightBracket()
	return decl
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.previous()
	stmt := &ast.ReturnStmt{Tok: tok, EnclosingFunction: p.currentFunction}
	if !p.check(token.RIGHT_BRACKET) {
		stmt.Expr = p.parseExpr()
	}
	p.consumeRightBracket()
	return stmt
}

// parseIf parses `[if cond stmts...]` and then greedily absorbs any
// following `[elif cond stmts...]` / `[else stmts...]` siblings, stopping
// at the first sibling that is neither.
func (p *Parser) parseIf() ast.Statement {
	tok := p.previous()
	stmt := &ast.IfStmt{Tok: tok}
	stmt.IfBranch = p.parseBranch(true)
	if p.panicking {
		return stmt
	}
	p.consumeRightBracket()
	if p.panicking {
		return stmt
	}

	for p.check(token.LEFT_BRACKET) && p.peekIsKeyword(1, "elif") {
		p.consumeLeftBracket()
		p.matchKeyword("elif")
		branch := p.parseBranch(true)
		stmt.ElifBranches = append(stmt.ElifBranches, branch)
		p.consumeRightBracket()
		if p.panicking {
			return stmt
		}
	}

	if p.check(token.LEFT_BRACKET) && p.peekIsKeyword(1, "else") {
		p.consumeLeftBracket()
		p.matchKeyword("else")
		branch := p.parseBranch(false)
		stmt.ElseBranch = &branch
		p.consumeRightBracket()
	}

	return stmt
}

// peekIsKeyword reports whether the token offset positions ahead of the
// cursor is the keyword word, used to decide whether the next bracketed
// form is an elif/else sibling without consuming anything.
func (p *Parser) peekIsKeyword(offset int, word string) bool {
	i := p.idx + offset
	if i >= len(p.tokens) {
		return false
	}
	tok := p.tokens[i]
	return tok.Kind == token.KEYWORD && tok.Lexeme == word
}

func (p *Parser) parseBranch(hasCond bool) ast.Branch {
	var branch ast.Branch
	if hasCond {
		branch.Cond = p.parseExpr()
		if p.panicking {
			return branch
		}
	}
	for !p.check(token.RIGHT_BRACKET) {
		p.checkEOFInBody("if statement")
		if p.panicking {
			return branch
		}
		if s := p.parseStmt(); s != nil {
			branch.Body = append(branch.Body, s)
		}
	}
	return branch
}

func (p *Parser) parseFor() ast.Statement {
	tok := p.previous()
	name := p.consumeIdentifier()
	if p.panicking {
		return nil
	}
	if !p.matchKeyword("to") {
		p.error(p.current(), "expected 'to' in for-loop")
		return nil
	}
	to := p.parseExpr()
	if p.panicking {
		return nil
	}
	counter := &ast.VarDecl{Identifier: name, IsVariable: true} // type fixed to int by the resolver
	stmt := &ast.ForStmt{Tok: tok, Counter: counter, To: to}
	for !p.check(token.RIGHT_BRACKET) {
		p.checkEOFInBody("for loop")
		if p.panicking {
			break
		}
		if s := p.parseStmt(); s != nil {
			stmt.Body = append(stmt.Body, s)
		}
	}
	p.consumeRightBracket()
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.previous()
	cond := p.parseExpr()
	if p.panicking {
		return nil
	}
	stmt := &ast.WhileStmt{Tok: tok, Cond: cond}
	for !p.check(token.RIGHT_BRACKET) {
		p.checkEOFInBody("while loop")
		if p.panicking {
			break
		}
		if s := p.parseStmt(); s != nil {
			stmt.Body = append(stmt.Body, s)
		}
	}
	p.consumeRightBracket()
	return stmt
}

// parseExprStmt parses the "anything else" fallback: `[ <expr> ]`, where
// <expr> is a call whose callee is an identifier, an operator token, or an
// operator keyword (set/deref/addr/at) — the outer brackets were already
// consumed by parseStmt.
func (p *Parser) parseExprStmt() ast.Statement {
	expr := p.parseCallBody()
	if p.panicking {
		return nil
	}
	p.consumeRightBracket()
	return &ast.ExprStmt{Expr: expr}
}
