package ast

import "github.com/huz-sh/ether/pkg/token"

// LoadDecl is `[load "relative/path"]`. The parser only records the path;
// internal/driver performs the recursive read-lex-parse-merge before the
// linker ever sees the program.
type LoadDecl struct {
	Tok  token.Token // the `load` keyword token
	Path token.Token // the STRING token naming the path
}

func (l *LoadDecl) statementNode()       {}
func (l *LoadDecl) TokenLiteral() string { return l.Tok.Lexeme }
func (l *LoadDecl) Pos() token.Position  { return l.Tok.Pos }
func (l *LoadDecl) String() string       { return `[load "` + l.Path.Lexeme + `"]` }
