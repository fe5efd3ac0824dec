package resolver

import (
	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/pkg/token"
)

// Primitive types synthesized at startup: int, char, bool, and char* as the
// string type.
var (
	intType  = &ast.DataType{MainToken: token.Token{Kind: token.KEYWORD, Lexeme: "int"}}
	charType = &ast.DataType{MainToken: token.Token{Kind: token.KEYWORD, Lexeme: "char"}}
	boolType = &ast.DataType{MainToken: token.Token{Kind: token.KEYWORD, Lexeme: "bool"}}

	stringType  = &ast.DataType{MainToken: token.Token{Kind: token.KEYWORD, Lexeme: "char"}, PointerCount: 1}
	voidPtrType = &ast.DataType{MainToken: token.Token{Kind: token.KEYWORD, Lexeme: "void"}, PointerCount: 1}
)

// matchKind is the result of comparing two DataTypes.
type matchKind int

const (
	typeMatch matchKind = iota
	typeImplicitMatch
	typeNotMatch
)

// compareTypes computes the type-match relation between a and b.
//
// MATCH: pointer counts equal and main-token lexemes identical.
// IMPLICIT_MATCH: pointer counts equal, main-tokens differ, and either
// (pointer_count == 0 and {a,b} == {int, char}) or (pointer_count > 0 and
// the main-tokens simply differ — "any pointer to any pointer").
// NOT_MATCH: otherwise.
func compareTypes(a, b *ast.DataType) matchKind {
	if a == nil || b == nil {
		return typeNotMatch
	}
	if a.PointerCount != b.PointerCount {
		return typeNotMatch
	}
	if a.MainToken.Lexeme == b.MainToken.Lexeme {
		return typeMatch
	}
	if a.PointerCount == 0 {
		if isIntOrChar(a.MainToken.Lexeme) && isIntOrChar(b.MainToken.Lexeme) {
			return typeImplicitMatch
		}
		return typeNotMatch
	}
	return typeImplicitMatch
}

func isIntOrChar(name string) bool { return name == "int" || name == "char" }

// sizeOf returns a byte size used only to pick the "smaller operand" in an
// implicit-match comparison warning. It is not a real ABI layout.
func sizeOf(dt *ast.DataType) int {
	return sizeOfVisiting(dt, map[*ast.StructDecl]bool{})
}

func sizeOfVisiting(dt *ast.DataType, visiting map[*ast.StructDecl]bool) int {
	if dt == nil {
		return 0
	}
	if dt.PointerCount > 0 {
		return 8 // pointer-size
	}
	switch dt.MainToken.Lexeme {
	case "char", "bool", "i8", "u8":
		return 1
	case "i16", "u16":
		return 2
	case "int", "i32", "u32":
		return 4
	case "i64", "u64":
		return 8
	}
	if dt.ResolvedStruct == nil {
		return 16 // unresolved struct name: fall back to the placeholder size
	}
	if visiting[dt.ResolvedStruct] {
		return 0
	}
	visiting[dt.ResolvedStruct] = true
	total := 0
	for _, f := range dt.ResolvedStruct.Fields {
		total += sizeOfVisiting(f.Type, visiting)
	}
	return total
}
