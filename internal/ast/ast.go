// Package ast defines the abstract syntax tree produced by the parser and
// annotated in place by the linker and resolver as compilation proceeds.
package ast

import (
	"bytes"
	"strings"

	"github.com/huz-sh/ether/pkg/token"
)

// Node is the common interface of every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value and carries a resolvable
// type once the resolver has run.
type Expression interface {
	Node
	expressionNode()
	GetType() *DataType
	SetType(*DataType)
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the AST: the top-level declarations collected by
// the parser, in source order, across the entry file and every file merged
// in through a `load` directive.
type Program struct {
	Decls []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Decls) > 0 {
		return p.Decls[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Decls {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// DataType is a (possibly pointer) reference to a primitive or struct type.
// MainToken.Lexeme is interned, so two DataTypes name the same primitive or
// struct iff their MainToken.Lexeme strings are `==`.
type DataType struct {
	MainToken    token.Token
	PointerCount uint8

	// ResolvedStruct is set by the linker when MainToken is an IDENTIFIER
	// naming a struct; nil for primitive types.
	ResolvedStruct *StructDecl
}

func (dt *DataType) String() string {
	var out bytes.Buffer
	out.WriteString(dt.MainToken.Lexeme)
	out.WriteString(strings.Repeat("*", int(dt.PointerCount)))
	return out.String()
}

// IsVoid reports whether dt is the bare `void` type (no pointer level),
// which is illegal everywhere except a return type or the `[void]`
// parameter-list placeholder.
func (dt *DataType) IsVoid() bool {
	return dt.PointerCount == 0 && dt.MainToken.Lexeme == "void"
}

// SameAs reports strict identity: equal pointer counts and identical
// (interned) main-token lexemes. This is the resolver's MATCH relation.
func (dt *DataType) SameAs(other *DataType) bool {
	if dt == nil || other == nil {
		return dt == other
	}
	return dt.PointerCount == other.PointerCount && dt.MainToken.Lexeme == other.MainToken.Lexeme
}
