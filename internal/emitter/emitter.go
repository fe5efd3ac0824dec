// Package emitter walks a resolved program once and appends the equivalent
// C translation unit to a byte buffer: no template engine, no intermediate
// representation, just a single pass over the AST appending to an output
// buffer of C source text.
package emitter

import (
	"bytes"
	"fmt"

	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/internal/linker"
)

// tabSize is the number of spaces one indentation level renders as.
const tabSize = 4

// Emitter accumulates emitted C source in buf; depth tracks nesting for
// indentation.
type Emitter struct {
	buf   bytes.Buffer
	depth int
	prog  *linker.Program

	structOrder []string
	globalOrder []string
	funcOrder   []string
}

// Emit renders prog as a complete C translation unit.
func Emit(prog *linker.Program) ([]byte, error) {
	e := &Emitter{prog: prog}
	e.computeOrder()

	e.emitPrelude()
	e.emitStructForwardDecls()
	e.emitStructDefs()
	e.emitGlobals()
	e.emitPrototypes()
	e.emitFunctionBodies()

	return e.buf.Bytes(), nil
}

// computeOrder records each struct/global/function name's first occurrence
// in source order, since prog's tables are plain maps: map iteration order
// is not a property an emitted C file may depend on.
func (e *Emitter) computeOrder() {
	seenStruct := make(map[string]bool)
	seenGlobal := make(map[string]bool)
	seenFunc := make(map[string]bool)

	for _, decl := range e.prog.AST.Decls {
		switch d := decl.(type) {
		case *ast.StructDecl:
			name := d.Identifier.Lexeme
			if !seenStruct[name] {
				seenStruct[name] = true
				e.structOrder = append(e.structOrder, name)
			}
		case *ast.VarDecl:
			name := d.Identifier.Lexeme
			if !seenGlobal[name] {
				seenGlobal[name] = true
				e.globalOrder = append(e.globalOrder, name)
			}
		case *ast.FuncDecl:
			name := d.Identifier.Lexeme
			if !seenFunc[name] {
				seenFunc[name] = true
				e.funcOrder = append(e.funcOrder, name)
			}
		}
	}
}

func (e *Emitter) writeLine(format string, args ...any) {
	e.writeIndent()
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

func (e *Emitter) writeIndent() {
	e.buf.WriteString(spaces(e.depth * tabSize))
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
