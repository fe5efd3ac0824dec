// Package intern canonicalizes identifier and keyword text so that two
// equal byte sequences always share one Go string, making lexeme equality
// checks in the linker and resolver a single pointer-free string compare
// against an already-deduplicated value rather than a fresh byte scan.
package intern

// Interner owns one canonical copy of every distinct string it has seen.
// It is not safe for concurrent use; the compiler pipeline is
// single-threaded, so one Interner is created per compilation and threaded
// through the lexer(s) it feeds.
type Interner struct {
	table map[string]string
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{table: make(map[string]string)}
}

// Intern returns the canonical copy of s, recording s itself as canonical
// the first time it is seen.
func (in *Interner) Intern(s string) string {
	if canon, ok := in.table[s]; ok {
		return canon
	}
	in.table[s] = s
	return s
}

// InternRange interns the slice src[start:end], taking two cursor offsets
// into the source buffer instead of a pre-sliced string.
func (in *Interner) InternRange(src string, start, end int) string {
	return in.Intern(src[start:end])
}

// Len reports how many distinct strings have been interned. Exposed for
// tests asserting the "equal bytes => identical handle" invariant without
// reaching into the unexported table.
func (in *Interner) Len() int {
	return len(in.table)
}
