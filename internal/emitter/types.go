package emitter

import (
	"strings"

	"github.com/huz-sh/ether/internal/ast"
)

// fixedWidthTypedefs maps ether's fixed-width integer keywords to the
// stdint.h names the prelude typedefs them from.
var fixedWidthTypedefs = []struct{ c, ether string }{
	{"int8_t", "i8"}, {"int16_t", "i16"}, {"int32_t", "i32"}, {"int64_t", "i64"},
	{"uint8_t", "u8"}, {"uint16_t", "u16"}, {"uint32_t", "u32"}, {"uint64_t", "u64"},
}

// emitPrelude writes the fixed header every translation unit starts with.
func (e *Emitter) emitPrelude() {
	e.writeLine("#include <stdint.h>")
	e.writeLine("#define null (void*)0")
	e.buf.WriteByte('\n')
	for _, td := range fixedWidthTypedefs {
		e.writeLine("typedef %s %s;", td.c, td.ether)
	}
	e.buf.WriteByte('\n')
}

// emitStructForwardDecls writes `typedef struct Name Name;` for every
// struct, so mutually-referencing pointer fields compile regardless of
// declaration order.
func (e *Emitter) emitStructForwardDecls() {
	for _, name := range e.structOrder {
		e.writeLine("typedef struct %s %s;", name, name)
	}
	if len(e.structOrder) > 0 {
		e.buf.WriteByte('\n')
	}
}

// emitStructDefs writes the full `typedef struct Name { ... } Name;` body
// for every struct. A field whose type names another struct at
// pointer_count 0 is emitted as `struct Name field;`, referring to that
// struct by its tag; it is not inlined as an anonymous struct. Every other
// field is the type token followed by its `*`-repeated pointer markers.
func (e *Emitter) emitStructDefs() {
	for _, name := range e.structOrder {
		decl := e.prog.Structs[name]
		e.writeLine("typedef struct %s {", name)
		e.depth++
		for _, field := range decl.Fields {
			e.emitFieldDecl(field)
		}
		e.depth--
		e.writeLine("} %s;", name)
		e.buf.WriteByte('\n')
	}
}

func (e *Emitter) emitFieldDecl(field *ast.FieldDecl) {
	if field.ResolvedStruct != nil && field.Type.PointerCount == 0 {
		e.writeLine("struct %s %s;", field.ResolvedStruct.Identifier.Lexeme, field.Identifier.Lexeme)
		return
	}
	e.writeLine("%s %s%s;", field.Type.MainToken.Lexeme, strings.Repeat("*", int(field.Type.PointerCount)), field.Identifier.Lexeme)
}

// cType renders dt as a standalone C type spelling, used for globals,
// parameters, and return types (as opposed to emitFieldDecl's
// `struct Name field;` handling, which only applies inside a struct body).
func cType(dt *ast.DataType) string {
	stars := strings.Repeat("*", int(dt.PointerCount))
	if stars == "" {
		return dt.MainToken.Lexeme
	}
	return dt.MainToken.Lexeme + " " + stars
}
