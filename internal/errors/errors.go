// Package errors renders ether's diagnostic taxonomy: errors, warnings, and
// related notes, each as one "path:line:col: level: message" line followed
// by a source-line quote and a caret marker. Every pipeline stage (lexer,
// parser, linker, resolver) reports into a shared *Bag.
package errors

import (
	"fmt"
	"strings"

	"github.com/huz-sh/ether/pkg/token"
)

// Severity is the diagnostic level shown after the position.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reported problem, with zero or more related notes
// (e.g. "previous definition was here").
type Diagnostic struct {
	Severity Severity
	Pos      token.Position
	Message  string
	Notes    []*Diagnostic
}

// Note appends a related SeverityNote diagnostic anchored at pos and
// returns the parent so calls can be chained at the call site, e.g. to
// attach a "previous definition was here" note right where the duplicate
// is detected.
func (d *Diagnostic) Note(pos token.Position, format string, args ...any) *Diagnostic {
	d.Notes = append(d.Notes, &Diagnostic{
		Severity: SeverityNote,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
	return d
}

// Format renders one diagnostic (and its notes) as a header line, a
// source-line quote, and a caret. source is the full contents of
// the file named in d.Pos; pass "" if unavailable (the header still
// prints, just without the quoted line).
func (d *Diagnostic) Format(source string, color bool) string {
	var sb strings.Builder
	writeOne(&sb, d.Severity, d.Pos, d.Message, source, color)
	for _, n := range d.Notes {
		writeOne(&sb, n.Severity, n.Pos, n.Message, source, color)
	}
	return sb.String()
}

func writeOne(sb *strings.Builder, sev Severity, pos token.Position, message, source string, color bool) {
	fmt.Fprintf(sb, "%s: %s: %s\n", pos, sev, message)

	line := sourceLine(source, pos.Line)
	if line == "" {
		return
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	caretCol := pos.Column
	if caretCol < 1 {
		caretCol = 1
	}
	sb.WriteString(strings.Repeat(" ", caretCol-1))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^\n")
	if color {
		sb.WriteString("\033[0m")
	}
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Bag collects diagnostics across every stage of one compilation and knows
// how to fetch the source line for each file it has seen, so a diagnostic
// raised in a `load`-ed file still prints correctly.
type Bag struct {
	diagnostics []*Diagnostic
	sources     map[string]string
	errorCount  int
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{sources: make(map[string]string)}
}

// SetSource records file's contents so later diagnostics anchored in it can
// quote the offending line.
func (b *Bag) SetSource(file, contents string) {
	b.sources[file] = contents
}

// Errorf records an error diagnostic and returns it so the caller can
// attach notes.
func (b *Bag) Errorf(pos token.Position, format string, args ...any) *Diagnostic {
	d := &Diagnostic{Severity: SeverityError, Pos: pos, Message: fmt.Sprintf(format, args...)}
	b.diagnostics = append(b.diagnostics, d)
	b.errorCount++
	return d
}

// Warningf records a warning diagnostic and returns it so the caller can
// attach notes.
func (b *Bag) Warningf(pos token.Position, format string, args ...any) *Diagnostic {
	d := &Diagnostic{Severity: SeverityWarning, Pos: pos, Message: fmt.Sprintf(format, args...)}
	b.diagnostics = append(b.diagnostics, d)
	return d
}

// Notef records a standalone note diagnostic not attached to any parent
// (e.g. the lexer's error-budget-exceeded notice).
func (b *Bag) Notef(pos token.Position, format string, args ...any) *Diagnostic {
	d := &Diagnostic{Severity: SeverityNote, Pos: pos, Message: fmt.Sprintf(format, args...)}
	b.diagnostics = append(b.diagnostics, d)
	return d
}

// HasErrors reports whether any error (as opposed to warning) was recorded.
func (b *Bag) HasErrors() bool { return b.errorCount > 0 }

// ErrorCount returns the number of error-severity diagnostics recorded.
func (b *Bag) ErrorCount() int { return b.errorCount }

// Diagnostics returns every diagnostic recorded so far, in report order.
func (b *Bag) Diagnostics() []*Diagnostic { return b.diagnostics }

// Render formats every diagnostic in report order, each quoting its own
// source line.
func (b *Bag) Render(color bool) string {
	var sb strings.Builder
	for _, d := range b.diagnostics {
		sb.WriteString(d.Format(b.sources[d.Pos.File], color))
	}
	return sb.String()
}
