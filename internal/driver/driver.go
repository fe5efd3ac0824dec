// Package driver owns ether's end-to-end pipeline: read the entry file,
// recursively merge `load`-ed files, then run lexer -> parser -> linker ->
// resolver -> emitter -> external C compiler, short-circuiting at the first
// stage that accumulates an error ("compilation aborted"). Stage-by-stage
// error handling and exit-code propagation live here rather than directly
// in cmd/, so the pipeline is reusable outside the CLI.
package driver

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/huz-sh/ether/internal/ast"
	"github.com/huz-sh/ether/internal/emitter"
	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/internal/linker"
	"github.com/huz-sh/ether/internal/resolver"
	"github.com/huz-sh/ether/pkg/token"
)

// Result is the outcome of one Compile call.
type Result struct {
	Diags      *errors.Bag
	ObjectPath string // set only on a fully successful compile
	Aborted    bool   // true once any stage reported an error
}

// Options configures a Compile run.
type Options struct {
	Verbose bool
	CC      string // C compiler executable; defaults to "gcc"
	CCFlags []string
	SkipCC  bool // debug aid: stop after emission without invoking the C compiler
}

// Compile runs the full pipeline over entryPath and, unless aborted or
// Options.SkipCC, invokes the external C compiler on the emitted source.
func Compile(entryPath string, opts Options) *Result {
	diags := errors.NewBag()
	res := &Result{Diags: diags}

	interner := intern.New()
	visiting := make(map[string]bool)
	decls, ok := loadRecursive(entryPath, interner, diags, visiting, opts)
	if !ok || diags.HasErrors() {
		res.Aborted = true
		return res
	}

	prog := &ast.Program{Decls: decls}
	logVerbose(opts, "parsed %d top-level declarations", len(decls))

	linked := linker.Link(prog, diags, entryPath)
	if diags.HasErrors() {
		logVerbose(opts, "compilation aborted: linker reported errors")
		res.Aborted = true
		return res
	}

	resolver.Resolve(linked, diags)
	if diags.HasErrors() {
		logVerbose(opts, "compilation aborted: resolver reported errors")
		res.Aborted = true
		return res
	}

	out, err := emitter.Emit(linked)
	if err != nil {
		diags.Notef(entryPosition(entryPath), "emission failed: %s", err)
		res.Aborted = true
		return res
	}
	logVerbose(opts, "emitted %d bytes of C", len(out))

	if opts.SkipCC {
		return res
	}

	objectPath := stemOf(entryPath) + ".o"
	if err := invokeCompiler(out, objectPath, opts); err != nil {
		diags.Notef(entryPosition(entryPath), "%s", err)
		res.Aborted = true
		return res
	}

	res.ObjectPath = objectPath
	return res
}

func logVerbose(opts Options, format string, args ...any) {
	if opts.Verbose {
		log.Printf(format, args...)
	}
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func entryPosition(path string) token.Position {
	return token.Position{File: path, Line: 1, Column: 1}
}
