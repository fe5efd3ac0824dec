package emitter

import "github.com/huz-sh/ether/internal/ast"

// emitGlobals writes one declaration per global variable, in source order.
func (e *Emitter) emitGlobals() {
	for _, name := range e.globalOrder {
		decl := e.prog.Globals[name]
		if decl.Initializer != nil {
			e.writeLine("%s %s = %s;", cType(decl.Type), name, e.renderExpr(decl.Initializer))
		} else {
			e.writeLine("%s %s;", cType(decl.Type), name)
		}
	}
	if len(e.globalOrder) > 0 {
		e.buf.WriteByte('\n')
	}
}

// emitPrototypes writes a forward C prototype for every function, so call
// order in the source never matters.
func (e *Emitter) emitPrototypes() {
	for _, name := range e.funcOrder {
		fn := e.prog.Funcs[name]
		e.writeLine("%s;", e.functionSignature(fn))
	}
	if len(e.funcOrder) > 0 {
		e.buf.WriteByte('\n')
	}
}

// emitFunctionBodies writes `ret_type name(params) { body }` for every
// function that carries a definition.
func (e *Emitter) emitFunctionBodies() {
	for _, name := range e.funcOrder {
		fn := e.prog.Funcs[name]
		if !fn.IsDefinition {
			continue
		}
		e.writeLine("%s {", e.functionSignature(fn))
		e.depth++
		e.emitStmts(fn.Body)
		e.depth--
		e.writeLine("}")
		e.buf.WriteByte('\n')
	}
}

// functionSignature renders the shared `ret_type name(params)` spelling
// used by both the prototype and the definition. A void-only parameter
// list (the `[void]` placeholder, or any function with zero parameters)
// emits bare empty parens, matching int main() { ... } rather than the
// stricter ANSI-C `(void)` spelling.
func (e *Emitter) functionSignature(fn *ast.FuncDecl) string {
	if len(fn.Params) == 0 {
		return cType(fn.ReturnType) + " " + fn.Identifier.Lexeme + "()"
	}

	params := ""
	for i, p := range fn.Params {
		if i > 0 {
			params += ", "
		}
		params += cType(p.Type) + " " + p.Identifier.Lexeme
	}
	return cType(fn.ReturnType) + " " + fn.Identifier.Lexeme + "(" + params + ")"
}
