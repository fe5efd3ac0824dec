package driver

import (
	"os"
	"path/filepath"

	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/internal/lexer"
	"github.com/huz-sh/ether/internal/parser"
)

// loadRecursive reads, lexes, and parses path, then recursively inlines
// every `[load "..."]` directive it contains in place, merging the loaded
// file's top-level declarations into the result. visiting is the set of
// absolute paths currently being loaded along the current chain; a path
// already in that set is a cycle and is rejected at the offending `load`
// site.
func loadRecursive(path string, interner *intern.Interner, diags *errors.Bag, visiting map[string]bool, opts Options) ([]ast.Statement, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		diags.Notef(entryPosition(path), "cannot resolve path %q: %s", path, err)
		return nil, false
	}

	src, err := os.ReadFile(abs)
	if err != nil {
		diags.Notef(entryPosition(path), "cannot read %q: %s", path, err)
		return nil, false
	}
	diags.SetSource(abs, string(src))
	logVerbose(opts, "loaded %s (%d bytes)", abs, len(src))

	tokens := lexer.New(abs, string(src), interner, diags).Run()
	prog := parser.New(tokens, diags).ParseProgram()

	visiting[abs] = true
	defer delete(visiting, abs)

	dir := filepath.Dir(abs)
	var merged []ast.Statement
	for _, decl := range prog.Decls {
		load, isLoad := decl.(*ast.LoadDecl)
		if !isLoad {
			merged = append(merged, decl)
			continue
		}

		childPath := load.Path.Lexeme
		if !filepath.IsAbs(childPath) {
			childPath = filepath.Join(dir, childPath)
		}
		childAbs, err := filepath.Abs(childPath)
		if err == nil && visiting[childAbs] {
			diags.Errorf(load.Path.Pos, "cyclic 'load' of %q", load.Path.Lexeme)
			continue
		}

		childDecls, ok := loadRecursive(childPath, interner, diags, visiting, opts)
		if !ok {
			continue
		}
		merged = append(merged, childDecls...)
	}

	return merged, true
}
