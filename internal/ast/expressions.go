package ast

import (
	"strings"

	"github.com/huz-sh/ether/pkg/token"
)

// NumberExpr is an integer literal.
type NumberExpr struct {
	Tok  token.Token
	Type *DataType
}

func (e *NumberExpr) expressionNode()        {}
func (e *NumberExpr) TokenLiteral() string   { return e.Tok.Lexeme }
func (e *NumberExpr) Pos() token.Position    { return e.Tok.Pos }
func (e *NumberExpr) String() string         { return e.Tok.Lexeme }
func (e *NumberExpr) GetType() *DataType     { return e.Type }
func (e *NumberExpr) SetType(t *DataType)    { e.Type = t }

// CharExpr is a single-byte character literal.
type CharExpr struct {
	Tok  token.Token
	Type *DataType
}

func (e *CharExpr) expressionNode()      {}
func (e *CharExpr) TokenLiteral() string { return e.Tok.Lexeme }
func (e *CharExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *CharExpr) String() string       { return "'" + e.Tok.Lexeme + "'" }
func (e *CharExpr) GetType() *DataType   { return e.Type }
func (e *CharExpr) SetType(t *DataType)  { e.Type = t }

// StringExpr is a string literal.
type StringExpr struct {
	Tok  token.Token
	Type *DataType
}

func (e *StringExpr) expressionNode()      {}
func (e *StringExpr) TokenLiteral() string { return e.Tok.Lexeme }
func (e *StringExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *StringExpr) String() string       { return `"` + e.Tok.Lexeme + `"` }
func (e *StringExpr) GetType() *DataType   { return e.Type }
func (e *StringExpr) SetType(t *DataType)  { e.Type = t }

// NullExpr is the `null` literal; its resolved type is pointer-of-void.
type NullExpr struct {
	Tok  token.Token
	Type *DataType
}

func (e *NullExpr) expressionNode()      {}
func (e *NullExpr) TokenLiteral() string { return e.Tok.Lexeme }
func (e *NullExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *NullExpr) String() string       { return "null" }
func (e *NullExpr) GetType() *DataType   { return e.Type }
func (e *NullExpr) SetType(t *DataType)  { e.Type = t }

// BoolExpr is a `true`/`false` literal.
type BoolExpr struct {
	Tok  token.Token
	Type *DataType
}

func (e *BoolExpr) expressionNode()      {}
func (e *BoolExpr) TokenLiteral() string { return e.Tok.Lexeme }
func (e *BoolExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *BoolExpr) String() string       { return e.Tok.Lexeme }
func (e *BoolExpr) GetType() *DataType   { return e.Type }
func (e *BoolExpr) SetType(t *DataType)  { e.Type = t }

// VariableExpr is a use of an identifier as a value. ResolvedDecl is filled
// in by the linkers use-resolution pass.
type VariableExpr struct {
	Identifier   token.Token
	ResolvedDecl *VarDecl
	Type         *DataType
}

func (e *VariableExpr) expressionNode()      {}
func (e *VariableExpr) TokenLiteral() string { return e.Identifier.Lexeme }
func (e *VariableExpr) Pos() token.Position  { return e.Identifier.Pos }
func (e *VariableExpr) String() string       { return e.Identifier.Lexeme }
func (e *VariableExpr) GetType() *DataType   { return e.Type }
func (e *VariableExpr) SetType(t *DataType)  { e.Type = t }

// FuncCallExpr is `[callee arg...]` where callee is an IDENTIFIER, an
// operator token, or an operator keyword (set/deref/addr/at).
type FuncCallExpr struct {
	CalleeToken    token.Token
	Args           []Expression
	ResolvedCallee *FuncDecl // set only when CalleeToken.Kind == IDENTIFIER
	Type           *DataType
}

func (e *FuncCallExpr) expressionNode()      {}
func (e *FuncCallExpr) TokenLiteral() string { return e.CalleeToken.Lexeme }
func (e *FuncCallExpr) Pos() token.Position  { return e.CalleeToken.Pos }
func (e *FuncCallExpr) String() string {
	if len(e.Args) == 0 {
		return "[" + e.CalleeToken.Lexeme + "]"
	}
	return "[" + e.CalleeToken.Lexeme + " " + exprListString(e.Args) + "]"
}
func (e *FuncCallExpr) GetType() *DataType  { return e.Type }
func (e *FuncCallExpr) SetType(t *DataType) { e.Type = t }

// IsOperator reports whether this call's callee is an operator token
// (+ - * / % = < <= > >=) rather than an identifier.
func (e *FuncCallExpr) IsOperator() bool { return e.CalleeToken.Kind.IsOperatorCallee() }

// IsOperatorKeyword reports whether this call's callee is set/deref/addr/at.
func (e *FuncCallExpr) IsOperatorKeyword() bool {
	return e.CalleeToken.Kind == token.KEYWORD && token.IsOperatorKeyword(e.CalleeToken.Lexeme)
}

// DotAccessExpr is `left.right`, lowered by the emitter to `(left).right`
// or `(left)->right` depending on IsLeftPointer (set by the resolver).
type DotAccessExpr struct {
	Left          Expression
	Right         token.Token
	IsLeftPointer bool
	ResolvedField *FieldDecl
	Type          *DataType
}

func (e *DotAccessExpr) expressionNode()      {}
func (e *DotAccessExpr) TokenLiteral() string { return e.Right.Lexeme }
func (e *DotAccessExpr) Pos() token.Position  { return e.Left.Pos() }
func (e *DotAccessExpr) String() string {
	return e.Left.String() + "." + e.Right.Lexeme
}
func (e *DotAccessExpr) GetType() *DataType  { return e.Type }
func (e *DotAccessExpr) SetType(t *DataType) { e.Type = t }

// exprListString renders a comma-joined expression list; used by tests and
// debug dumps, kept alongside the node definitions next to the struct they
// describe.
func exprListString(args []Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
