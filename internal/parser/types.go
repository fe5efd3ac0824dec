package parser

import (
	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/pkg/token"
)

// consumeDataType parses `(IDENTIFIER | primitive-keyword) '*'*`.
func (p *Parser) consumeDataType() *ast.DataType {
	cur := p.current()
	isPrimitive := cur.Kind == token.KEYWORD && token.IsPrimitiveType(cur.Lexeme)
	if cur.Kind != token.IDENTIFIER && !isPrimitive {
		p.error(cur, "expected a type name, got %q", cur.Lexeme)
		return nil
	}
	mainTok := p.advance()

	dt := &ast.DataType{MainToken: mainTok}
	for p.check(token.STAR) {
		p.advance()
		dt.PointerCount++
	}
	return dt
}
