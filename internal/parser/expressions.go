package parser

import (
	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/pkg/token"
)

// parseExpr is the grammar's entry point: parseExpr -> parseDotAccess.
func (p *Parser) parseExpr() ast.Expression {
	return p.parseDotAccess()
}

// parseDotAccess parses left-associative `.field` chains on top of a
// primary expression.
func (p *Parser) parseDotAccess() ast.Expression {
	left := p.parsePrimary()
	if p.panicking || left == nil {
		return left
	}

	for p.check(token.DOT) {
		p.advance()
		right := p.consumeIdentifier()
		if p.panicking {
			return left
		}
		left = &ast.DotAccessExpr{Left: left, Right: right}
	}
	return left
}

// parsePrimary parses NUMBER | CHAR | STRING | IDENTIFIER | '[' call ']'.
// `null`, `true`, and `false` are not lexical keywords; the parser
// recognizes these three interned identifier lexemes as literal forms
// instead, leaving the lexer's keyword table untouched.
func (p *Parser) parsePrimary() ast.Expression {
	cur := p.current()

	switch cur.Kind {
	case token.NUMBER:
		p.advance()
		return &ast.NumberExpr{Tok: cur}
	case token.CHAR:
		p.advance()
		return &ast.CharExpr{Tok: cur}
	case token.STRING:
		p.advance()
		return &ast.StringExpr{Tok: cur}
	case token.IDENTIFIER:
		p.advance()
		switch cur.Lexeme {
		case "null":
			return &ast.NullExpr{Tok: cur}
		case "true", "false":
			return &ast.BoolExpr{Tok: cur}
		default:
			return &ast.VariableExpr{Identifier: cur}
		}
	case token.LEFT_BRACKET:
		p.advance()
		p.bracketDepth++
		expr := p.parseCallBody()
		if p.panicking {
			return expr
		}
		p.consumeRightBracket()
		return expr
	default:
		p.error(cur, "expected an expression, got %q", cur.Lexeme)
		return nil
	}
}

// parseCallBody parses `callee args*`, where callee is an IDENTIFIER, an
// operator token, or an operator keyword (set/deref/addr/at). The
// surrounding brackets are the caller's responsibility: parsePrimary
// consumes them around a nested call; parseStmt/parseExprStmt consumes
// them around a top-level expression statement.
func (p *Parser) parseCallBody() ast.Expression {
	cur := p.current()

	isValidCallee := cur.Kind == token.IDENTIFIER ||
		cur.Kind.IsOperatorCallee() ||
		(cur.Kind == token.KEYWORD && token.IsOperatorKeyword(cur.Lexeme))
	if !isValidCallee {
		p.error(cur, "expected a function name, operator, or operator keyword, got %q", cur.Lexeme)
		return nil
	}
	p.advance()

	call := &ast.FuncCallExpr{CalleeToken: cur}
	for !p.check(token.RIGHT_BRACKET) && !p.check(token.EOF) {
		arg := p.parseExpr()
		if p.panicking {
			return call
		}
		call.Args = append(call.Args, arg)
	}
	return call
}
