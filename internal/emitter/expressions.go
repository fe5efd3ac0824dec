package emitter

import (
	"strconv"
	"strings"

	"github.com/huz-sh/ether/internal/ast"
)

// renderExpr lowers expr to its C spelling.
func (e *Emitter) renderExpr(expr ast.Expression) string {
	switch v := expr.(type) {
	case *ast.NumberExpr:
		return v.Tok.Lexeme
	case *ast.CharExpr:
		return "'" + v.Tok.Lexeme + "'"
	case *ast.StringExpr:
		return strconv.Quote(v.Tok.Lexeme)
	case *ast.NullExpr:
		return "null"
	case *ast.BoolExpr:
		return v.Tok.Lexeme
	case *ast.VariableExpr:
		return v.Identifier.Lexeme
	case *ast.DotAccessExpr:
		if v.IsLeftPointer {
			return "((" + e.renderExpr(v.Left) + ")->" + v.Right.Lexeme + ")"
		}
		return "((" + e.renderExpr(v.Left) + ")." + v.Right.Lexeme + ")"
	case *ast.FuncCallExpr:
		return e.renderCall(v)
	default:
		return ""
	}
}

func (e *Emitter) renderCall(call *ast.FuncCallExpr) string {
	switch {
	case call.IsOperatorKeyword():
		return e.renderOperatorKeywordCall(call)
	case call.IsOperator():
		return e.renderOperatorTokenCall(call)
	default:
		return e.renderFuncCall(call)
	}
}

func (e *Emitter) renderFuncCall(call *ast.FuncCallExpr) string {
	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = e.renderExpr(a)
	}
	return call.CalleeToken.Lexeme + "(" + strings.Join(args, ", ") + ")"
}

func (e *Emitter) renderOperatorKeywordCall(call *ast.FuncCallExpr) string {
	args := call.Args
	switch call.CalleeToken.Lexeme {
	case "set":
		return "(" + e.renderExpr(args[0]) + " = " + e.renderExpr(args[1]) + ")"
	case "deref":
		return "(*" + e.renderExpr(args[0]) + ")"
	case "addr":
		return "(&" + e.renderExpr(args[0]) + ")"
	case "at":
		return "((" + e.renderExpr(args[0]) + ")[" + e.renderExpr(args[1]) + "])"
	default:
		return ""
	}
}

// renderOperatorTokenCall lowers arithmetic to a left-to-right infix chain
// and comparisons to a single infix expression, with `=` lowering to `==`.
func (e *Emitter) renderOperatorTokenCall(call *ast.FuncCallExpr) string {
	op := call.CalleeToken.Lexeme
	if op == "=" {
		op = "=="
	}

	parts := make([]string, len(call.Args))
	for i, a := range call.Args {
		parts[i] = e.renderExpr(a)
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}
