// Package token defines the lexical tokens of the ether language: their
// kinds, source positions, and the fixed keyword set.
package token

import "fmt"

// Position identifies a single location in a source file.
type Position struct {
	File   string // path as given on the command line / load directive
	Line   int    // 1-based
	Column int    // 1-based, counted in bytes from the start of the line
	Offset int    // 0-based byte offset into the file contents
}

// String renders a position as "file:line:col", the prefix used by every
// diagnostic (errors.errors.go formats the rest).
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Kind enumerates every token kind produced by the lexer.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	LEFT_BRACKET
	RIGHT_BRACKET
	COLON
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	COMMA
	DOT

	IDENTIFIER
	KEYWORD
	NUMBER
	CHAR
	STRING
)

var kindNames = map[Kind]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	LEFT_BRACKET:  "[",
	RIGHT_BRACKET: "]",
	COLON:         ":",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	EQUAL:         "=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	COMMA:         ",",
	DOT:           ".",
	IDENTIFIER:    "IDENTIFIER",
	KEYWORD:       "KEYWORD",
	NUMBER:        "NUMBER",
	CHAR:          "CHAR",
	STRING:        "STRING",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOperatorCallee reports whether k is one of the operator tokens that may
// occupy a FuncCall's callee position (`[+ a b]`, `[< a b]`, ...).
func (k Kind) IsOperatorCallee() bool {
	switch k {
	case PLUS, MINUS, STAR, SLASH, PERCENT, EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL:
		return true
	default:
		return false
	}
}

// Token is a single lexical unit. Lexeme is always the interned, canonical
// copy of the source text for IDENTIFIER and KEYWORD tokens, so two tokens
// naming the same symbol share the same Lexeme string header.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%s", t.Kind, t.Lexeme, t.Pos)
}

// Keyword set, looked up by the lexer after interning an identifier's
// text.
var keywords = map[string]bool{
	"struct": true, "defn": true, "decl": true, "pub": true, "load": true,
	"let": true, "if": true, "elif": true, "else": true,
	"for": true, "to": true, "while": true, "return": true,
	"set": true, "deref": true, "addr": true, "at": true,

	"int": true, "char": true, "bool": true, "void": true,
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
}

// IsKeyword reports whether the interned text s names a keyword.
func IsKeyword(s string) bool {
	return keywords[s]
}

// operatorKeywords is the subset of keywords that lower to C operators
// rather than declarations/control flow.
var operatorKeywords = map[string]bool{
	"set": true, "deref": true, "addr": true, "at": true,
}

// IsOperatorKeyword reports whether the interned text s is one of
// set/deref/addr/at.
func IsOperatorKeyword(s string) bool {
	return operatorKeywords[s]
}

// primitiveTypeKeywords is the subset of keywords that may appear as a
// DataType's main token.
var primitiveTypeKeywords = map[string]bool{
	"int": true, "char": true, "bool": true, "void": true,
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
}

// IsPrimitiveType reports whether the interned text s names a primitive
// type keyword.
func IsPrimitiveType(s string) bool {
	return primitiveTypeKeywords[s]
}
