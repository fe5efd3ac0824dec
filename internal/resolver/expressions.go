package resolver

import (
	"fmt"

	"github.com/huz-sh/ether/internal/ast"
)

func sprintfLabel(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// resolveExpr computes and records expr's type, following the
// per-expression type rules. It returns nil when a prerequisite already
// failed (e.g. an unresolved variable), which callers use to skip further
// checks on that subtree.
func (r *resolver) resolveExpr(expr ast.Expression) *ast.DataType {
	if expr == nil {
		return nil
	}

	var t *ast.DataType
	switch e := expr.(type) {
	case *ast.NumberExpr:
		t = intType
	case *ast.CharExpr:
		t = charType
	case *ast.StringExpr:
		t = stringType
	case *ast.NullExpr:
		t = voidPtrType
	case *ast.BoolExpr:
		t = boolType
	case *ast.VariableExpr:
		t = r.resolveVariable(e)
	case *ast.DotAccessExpr:
		t = r.resolveDotAccess(e)
	case *ast.FuncCallExpr:
		t = r.resolveCall(e)
	}

	expr.SetType(t)
	return t
}

func (r *resolver) resolveVariable(e *ast.VariableExpr) *ast.DataType {
	if e.ResolvedDecl == nil {
		return nil // already reported by the linker
	}
	return e.ResolvedDecl.Type
}

func (r *resolver) resolveDotAccess(e *ast.DotAccessExpr) *ast.DataType {
	leftType := r.resolveExpr(e.Left)
	if leftType == nil {
		return nil
	}
	if leftType.ResolvedStruct == nil || leftType.PointerCount > 1 {
		r.fail(e, "left operand of '.' is not a struct (or struct pointer); use 'deref' operator instead")
		return nil
	}

	e.IsLeftPointer = leftType.PointerCount == 1
	field := leftType.ResolvedStruct.FieldByName(e.Right.Lexeme)
	if field == nil {
		r.fail(e, "struct '%s' has no field named '%s'", leftType.ResolvedStruct.Identifier.Lexeme, e.Right.Lexeme)
		return nil
	}
	e.ResolvedField = field
	return field.Type
}

func (r *resolver) resolveCall(call *ast.FuncCallExpr) *ast.DataType {
	switch {
	case call.IsOperatorKeyword():
		return r.resolveOperatorKeywordCall(call)
	case call.IsOperator():
		return r.resolveOperatorTokenCall(call)
	default:
		return r.resolveFuncCall(call)
	}
}

func (r *resolver) resolveFuncCall(call *ast.FuncCallExpr) *ast.DataType {
	argTypes := make([]*ast.DataType, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = r.resolveExpr(arg)
	}
	if call.ResolvedCallee == nil {
		return nil // already reported by the linker
	}

	for i, param := range call.ResolvedCallee.Params {
		if i >= len(argTypes) || argTypes[i] == nil {
			continue
		}
		r.checkAssignable(call.Args[i], param.Type, argTypes[i],
			"argument %d to '%s'", i+1, call.CalleeToken.Lexeme)
	}
	return call.ResolvedCallee.ReturnType
}

func (r *resolver) resolveOperatorKeywordCall(call *ast.FuncCallExpr) *ast.DataType {
	args := call.Args
	switch call.CalleeToken.Lexeme {
	case "set":
		if len(args) != 2 {
			return nil
		}
		lhsType, rhsType := r.resolveExpr(args[0]), r.resolveExpr(args[1])
		if lhsType == nil || rhsType == nil {
			return nil
		}
		r.checkAssignable(args[1], lhsType, rhsType, "'set'")
		return lhsType

	case "deref":
		if len(args) != 1 {
			return nil
		}
		pType := r.resolveExpr(args[0])
		if pType == nil {
			return nil
		}
		if pType.PointerCount == 0 {
			r.fail(args[0], "cannot 'deref' a non-pointer type '%s'", pType.String())
			return nil
		}
		if pType.PointerCount == 1 && pType.MainToken.Lexeme == "void" {
			r.fail(args[0], "cannot 'deref' a 'void*'")
			return nil
		}
		return decremented(pType)

	case "addr":
		if len(args) != 1 {
			return nil
		}
		xType := r.resolveExpr(args[0])
		if xType == nil {
			return nil
		}
		return incremented(xType)

	case "at":
		if len(args) != 2 {
			return nil
		}
		pType, iType := r.resolveExpr(args[0]), r.resolveExpr(args[1])
		if pType == nil {
			return nil
		}
		if pType.PointerCount == 0 {
			r.fail(args[0], "cannot 'at'-index a non-pointer type '%s'", pType.String())
			return nil
		}
		if iType != nil {
			r.checkAssignable(args[1], intType, iType, "'at' index")
		}
		return decremented(pType)

	default:
		return nil
	}
}

func decremented(dt *ast.DataType) *ast.DataType {
	return &ast.DataType{MainToken: dt.MainToken, PointerCount: dt.PointerCount - 1, ResolvedStruct: dt.ResolvedStruct}
}

func incremented(dt *ast.DataType) *ast.DataType {
	return &ast.DataType{MainToken: dt.MainToken, PointerCount: dt.PointerCount + 1, ResolvedStruct: dt.ResolvedStruct}
}

// resolveOperatorTokenCall handles the arithmetic operators (each operand
// must type-match int) and the comparison operators (both operands must
// type-match each other).
func (r *resolver) resolveOperatorTokenCall(call *ast.FuncCallExpr) *ast.DataType {
	switch call.CalleeToken.Lexeme {
	case "+", "-", "*", "/", "%":
		for _, arg := range call.Args {
			t := r.resolveExpr(arg)
			if t == nil {
				continue
			}
			r.checkAssignable(arg, intType, t, "operand of '%s'", call.CalleeToken.Lexeme)
		}
		return intType // arithmetic always yields int, even past a mismatched operand

	default: // = < <= > >=
		if len(call.Args) != 2 {
			return boolType
		}
		leftType, rightType := r.resolveExpr(call.Args[0]), r.resolveExpr(call.Args[1])
		if leftType == nil || rightType == nil {
			return boolType
		}
		switch compareTypes(leftType, rightType) {
		case typeNotMatch:
			r.fail(call, "comparison operands '%s' and '%s' do not type-match", leftType.String(), rightType.String())
		case typeImplicitMatch:
			smaller := call.Args[0]
			if sizeOf(rightType) < sizeOf(leftType) {
				smaller = call.Args[1]
			}
			r.warn(smaller, "implicit conversion between '%s' and '%s' in comparison", leftType.String(), rightType.String())
		}
		return boolType
	}
}

// checkAssignable compares want against got and reports a mismatch (error)
// or an implicit-conversion warning anchored at node. It returns false on
// NOT_MATCH.
func (r *resolver) checkAssignable(node ast.Node, want, got *ast.DataType, format string, args ...any) bool {
	switch compareTypes(want, got) {
	case typeNotMatch:
		label := sprintfLabel(format, args...)
		r.fail(node, "%s: type '%s' does not match expected type '%s'", label, got.String(), want.String())
		return false
	case typeImplicitMatch:
		label := sprintfLabel(format, args...)
		r.warn(node, "%s: implicit conversion from '%s' to '%s'", label, got.String(), want.String())
	}
	return true
}
