// Package parser implements ether's recursive-descent parser over the
// bracketed S-expression grammar: top-level declarations (struct/let/defn/
// decl/load), statements, and expressions, with panic-mode error recovery
// synchronized on bracket depth.
package parser

import (
	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/pkg/token"
)

// Parser consumes a finished token stream (as produced by internal/lexer)
// and produces a Program.
type Parser struct {
	tokens []token.Token
	idx    int
	diags  *errors.Bag

	// bracketDepth counts unmatched '[' consumed since the start of the
	// top-level declaration currently being parsed. error() snapshots it to
	// know how many ']' synchronize() must still eat.
	bracketDepth int
	panicking    bool

	currentFunction *ast.FuncDecl
}

// New creates a Parser over tokens, reporting into diags.
func New(tokens []token.Token, diags *errors.Bag) *Parser {
	return &Parser{tokens: tokens, diags: diags}
}

// ParseProgram parses every top-level declaration up to EOF.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		p.panicking = false
		p.bracketDepth = 0
		if decl := p.parseDecl(); decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
	}
	return prog
}

// parseDecl parses one top-level form: struct/let/defn/decl/load.
func (p *Parser) parseDecl() ast.Statement {
	p.consumeLeftBracket()
	if p.panicking {
		return nil
	}

	switch {
	case p.matchKeyword("struct"):
		return p.parseStruct()
	case p.matchKeyword("let"):
		return p.parseTopLevelVarDecl()
	case p.matchKeyword("defn"):
		return p.parseFunc(true)
	case p.matchKeyword("decl"):
		return p.parseFunc(false)
	case p.matchKeyword("load"):
		return p.parseLoad()
	default:
		p.error(p.current(), "unexpected keyword %q at top level", p.current().Lexeme)
		return nil
	}
}

func (p *Parser) parseLoad() ast.Statement {
	tok := p.previous()
	path := p.expect(token.STRING, "expected string literal naming a file after 'load'")
	if p.panicking {
		return nil
	}
	p.consumeRightBracket()
	if p.panicking {
		return nil
	}
	return &ast.LoadDecl{Tok: tok, Path: path}
}

func (p *Parser) parseStruct() ast.Statement {
	identifier := p.consumeIdentifier()
	if p.panicking {
		return nil
	}
	decl := &ast.StructDecl{Identifier: identifier}

	for !p.check(token.RIGHT_BRACKET) && !p.check(token.EOF) {
		p.consumeLeftBracket()
		if p.panicking {
			return decl
		}
		if !p.matchKeyword("let") {
			p.error(p.current(), "expected 'let' field declaration inside struct")
			return decl
		}
		typ := p.consumeDataType()
		p.consumeColon()
		fieldIdent := p.consumeIdentifier()
		if p.panicking {
			return decl
		}
		decl.Fields = append(decl.Fields, &ast.FieldDecl{Type: typ, Identifier: fieldIdent})
		p.consumeRightBracket()
		if p.panicking {
			return decl
		}
	}

	p.consumeRightBracket()
	return decl
}

func (p *Parser) parseTopLevelVarDecl() ast.Statement {
	typ := p.consumeDataType()
	p.consumeColon()
	identifier := p.consumeIdentifier()
	if p.panicking {
		return nil
	}
	decl := &ast.VarDecl{Type: typ, Identifier: identifier, IsGlobal: true, IsVariable: true}
	if !p.check(token.RIGHT_BRACKET) {
		decl.Initializer = p.parseExpr()
	}
	p.consumeRightBracket()
	return decl
}

// parseFunc parses `[defn [pub]? T:name [params] stmts...]` (isDefinition)
// or `[decl T:name [params]]` (!isDefinition).
func (p *Parser) parseFunc(isDefinition bool) ast.Statement {
	decl := &ast.FuncDecl{IsDefinition: isDefinition}

	if isDefinition && p.matchKeyword("pub") {
		decl.Public = true
	}

	decl.ReturnType = p.consumeDataType()
	p.consumeColon()
	decl.Identifier = p.consumeIdentifier()
	if p.panicking {
		return nil
	}

	p.parseParamList(decl)
	if p.panicking {
		return decl
	}

	if isDefinition {
		prevFunc := p.currentFunction
		p.currentFunction = decl
		for !p.check(token.RIGHT_BRACKET) {
			p.checkEOFInBody("function body")
			if p.panicking {
				break
			}
			if stmt := p.parseStmt(); stmt != nil {
				decl.Body = append(decl.Body, stmt)
			}
		}
		p.currentFunction = prevFunc
	}

	p.consumeRightBracket()
	return decl
}

func (p *Parser) parseParamList(decl *ast.FuncDecl) {
	p.consumeLeftBracket()
	if p.panicking {
		return
	}

	if p.check(token.RIGHT_BRACKET) {
		p.warn(p.current(), "empty parameter list must be written as '[void]'")
		p.consumeRightBracket()
		decl.IsVoidParams = true
		return
	}

	if p.matchKeyword("void") {
		decl.IsVoidParams = true
		p.consumeRightBracket()
		return
	}

	for !p.check(token.RIGHT_BRACKET) && !p.check(token.EOF) {
		typ := p.consumeDataType()
		p.consumeColon()
		ident := p.consumeIdentifier()
		if p.panicking {
			return
		}
		decl.Params = append(decl.Params, &ast.VarDecl{Type: typ, Identifier: ident, IsVariable: true})
	}
	p.consumeRightBracket()
}

// checkEOFInBody reports the "end of file while parsing" diagnostic when
// EOF is reached before a construct's closing ']'.
func (p *Parser) checkEOFInBody(what string) {
	if p.check(token.EOF) {
		p.error(p.current(), "end of file while parsing %s; did you forget a ']'?", what)
	}
}
