package ast

import (
	"bytes"

	"github.com/huz-sh/ether/pkg/token"
)

// FieldDecl is one `[let T:name]` field inside a struct definition.
type FieldDecl struct {
	Type           *DataType
	Identifier     token.Token
	ResolvedStruct *StructDecl // set by the linker when Type.MainToken is an identifier
}

func (f *FieldDecl) String() string {
	return "[let " + f.Type.String() + ":" + f.Identifier.Lexeme + "]"
}

// StructDecl is `[struct Name field...]`.
type StructDecl struct {
	Identifier token.Token
	Fields     []*FieldDecl
}

func (s *StructDecl) statementNode()       {}
func (s *StructDecl) TokenLiteral() string { return s.Identifier.Lexeme }
func (s *StructDecl) Pos() token.Position  { return s.Identifier.Pos }
func (s *StructDecl) String() string {
	var out bytes.Buffer
	out.WriteString("[struct " + s.Identifier.Lexeme)
	for _, f := range s.Fields {
		out.WriteString(" ")
		out.WriteString(f.String())
	}
	out.WriteString("]")
	return out.String()
}

// FieldByName returns the field named name, or nil.
func (s *StructDecl) FieldByName(name string) *FieldDecl {
	for _, f := range s.Fields {
		if f.Identifier.Lexeme == name {
			return f
		}
	}
	return nil
}

// VarDecl is a global, local, parameter, or `for`-counter variable
// declaration. IsVariable is false for `decl`-only externs.
type VarDecl struct {
	Type        *DataType
	Identifier  token.Token
	Initializer Expression
	IsGlobal    bool
	IsVariable  bool
}

func (v *VarDecl) statementNode()       {}
func (v *VarDecl) TokenLiteral() string { return v.Identifier.Lexeme }
func (v *VarDecl) Pos() token.Position  { return v.Identifier.Pos }
func (v *VarDecl) String() string {
	typeStr := "?"
	if v.Type != nil {
		typeStr = v.Type.String()
	}
	out := "[let " + typeStr + ":" + v.Identifier.Lexeme
	if v.Initializer != nil {
		out += " " + v.Initializer.String()
	}
	return out + "]"
}

// FuncDecl is either a `[defn ...]` definition or a `[decl ...]` prototype.
type FuncDecl struct {
	ReturnType   *DataType
	Identifier   token.Token
	Params       []*VarDecl
	Body         []Statement // nil for IsDefinition == false
	IsDefinition bool
	Public       bool
	IsVoidParams bool // true when the param list was written as `[void]`
}

func (f *FuncDecl) statementNode()       {}
func (f *FuncDecl) TokenLiteral() string { return f.Identifier.Lexeme }
func (f *FuncDecl) Pos() token.Position  { return f.Identifier.Pos }
func (f *FuncDecl) String() string {
	head := "defn"
	if !f.IsDefinition {
		head = "decl"
	}
	out := "[" + head + " "
	if f.Public {
		out += "pub "
	}
	out += f.ReturnType.String() + ":" + f.Identifier.Lexeme
	return out + " ...]"
}

// IsMain reports whether this is the program's required entry point.
func (f *FuncDecl) IsMain() bool { return f.Identifier.Lexeme == "main" }

// Branch is one arm of an if/elif/else chain. Cond is nil only for the
// trailing else branch.
type Branch struct {
	Cond Expression
	Body []Statement
}

// IfStmt is `[if cond stmts...] [elif cond stmts...]* [else stmts...]?`.
type IfStmt struct {
	Tok          token.Token // the `if` token
	IfBranch     Branch
	ElifBranches []Branch
	ElseBranch   *Branch
}

func (s *IfStmt) statementNode()       {}
func (s *IfStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *IfStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *IfStmt) String() string       { return "[if " + s.IfBranch.Cond.String() + " ...]" }

// ForStmt is `[for name to expr stmts...]`. Counter is a synthesized
// VarDecl with a nil Type until the resolver fixes it to `int`, so the loop
// body can type-check references to it like any other int variable.
type ForStmt struct {
	Tok     token.Token // the `for` token
	Counter *VarDecl
	To      Expression
	Body    []Statement
}

func (s *ForStmt) statementNode()       {}
func (s *ForStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *ForStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *ForStmt) String() string {
	return "[for " + s.Counter.Identifier.Lexeme + " to " + s.To.String() + " ...]"
}

// WhileStmt is `[while cond stmts...]`.
type WhileStmt struct {
	Tok  token.Token // the `while` token
	Cond Expression
	Body []Statement
}

func (s *WhileStmt) statementNode()       {}
func (s *WhileStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *WhileStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *WhileStmt) String() string       { return "[while " + s.Cond.String() + " ...]" }

// ReturnStmt is `[return expr?]`. EnclosingFunction is set by the parser to
// the function whose body contains the statement.
type ReturnStmt struct {
	Tok               token.Token // the `return` token
	Expr              Expression  // nil for a bare `[return]`
	EnclosingFunction *FuncDecl
}

func (s *ReturnStmt) statementNode()       {}
func (s *ReturnStmt) TokenLiteral() string { return s.Tok.Lexeme }
func (s *ReturnStmt) Pos() token.Position  { return s.Tok.Pos }
func (s *ReturnStmt) String() string {
	if s.Expr == nil {
		return "[return]"
	}
	return "[return " + s.Expr.String() + "]"
}

// ExprStmt wraps an expression used in statement position.
type ExprStmt struct {
	Expr Expression
}

func (s *ExprStmt) statementNode()       {}
func (s *ExprStmt) TokenLiteral() string { return s.Expr.TokenLiteral() }
func (s *ExprStmt) Pos() token.Position  { return s.Expr.Pos() }
func (s *ExprStmt) String() string       { return s.Expr.String() }
