// Package lexer implements ether's scanner. It turns one source file into
// a token stream terminated by EOF, skipping whitespace and `;;` comments,
// interning every identifier and keyword lexeme, and stopping once a fixed
// error budget is exceeded.
package lexer

import (
	"github.com/huz-sh/ether/internal/errors"
	"github.com/huz-sh/ether/internal/intern"
	"github.com/huz-sh/ether/pkg/token"
)

// MaxErrors is the lexer's error budget: once exceeded, the lexer emits a
// note and stops early, returning whatever tokens it has already produced.
const MaxErrors = 10

// Lexer scans one source file into a token stream.
type Lexer struct {
	file     string
	src      string
	interner *intern.Interner
	diags    *errors.Bag

	pos  int // index of the current byte
	line int

	lastNewline       int // index just after the most recent '\n', or 0
	lastToLastNewline int // index just after the previous one, or -1

	errorCount int
	aborted    bool
}

// New creates a Lexer for src, reporting diagnostics into diags and
// interning identifiers/keywords through interner.
func New(file, src string, interner *intern.Interner, diags *errors.Bag) *Lexer {
	diags.SetSource(file, src)
	return &Lexer{
		file:              file,
		src:               src,
		interner:          interner,
		diags:             diags,
		line:              1,
		lastNewline:       0,
		lastToLastNewline: -1,
	}
}

// Run scans the whole file and returns its token stream, always terminated
// by a synthetic EOF token. On error it still returns every token produced
// before the failure; callers check diags.HasErrors().
func (l *Lexer) Run() []token.Token {
	var tokens []token.Token

	for !l.atEnd() {
		start := l.pos
		c := l.src[l.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
			continue
		case c == '\n':
			l.advanceNewline()
			continue
		case c == ';':
			if l.peekAt(1) == ';' {
				l.skipLineComment()
			} else {
				l.errorAt(l.posAt(start), "invalid semicolon; did you mean ';;'?")
				l.pos++
			}
			continue
		}

		var tok token.Token
		var ok bool
		switch {
		case isIdentStart(c):
			tok = l.lexIdentifier(start)
			ok = true
		case c >= '0' && c <= '9':
			tok, ok = l.lexNumber(start)
		case c == '"':
			tok, ok = l.lexString(start)
		case c == '\'':
			tok, ok = l.lexChar(start)
		default:
			tok, ok = l.lexPunctuation(start)
		}

		if ok {
			tokens = append(tokens, tok)
		}

		if l.errorCount > MaxErrors {
			l.diags.Notef(l.posAt(l.pos), "error count (%d) exceeded limit; aborting...", l.errorCount)
			l.aborted = true
			return tokens
		}
	}

	tokens = append(tokens, l.eofToken())
	return tokens
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advanceNewline() {
	l.pos++ // consume '\n'
	l.lastToLastNewline = l.lastNewline
	l.lastNewline = l.pos
	l.line++
}

func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.src[l.pos] != '\n' {
		l.pos++
	}
}

// column returns the 1-based column of byte index pos, counted from the
// start of the current line (lastNewline, which is 0 on line 1).
func (l *Lexer) column(pos int) int {
	return pos - l.lastNewline + 1
}

func (l *Lexer) posAt(pos int) token.Position {
	return token.Position{File: l.file, Line: l.line, Column: l.column(pos), Offset: pos}
}

func (l *Lexer) errorAt(pos token.Position, format string, args ...any) {
	l.diags.Errorf(pos, format, args...)
	l.errorCount++
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (l *Lexer) lexIdentifier(start int) token.Token {
	for !l.atEnd() && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	lexeme := l.interner.InternRange(l.src, start, l.pos)
	kind := token.IDENTIFIER
	if token.IsKeyword(lexeme) {
		kind = token.KEYWORD
	}
	return token.Token{Kind: kind, Lexeme: lexeme, Pos: l.posAt(start)}
}

func (l *Lexer) lexNumber(start int) (token.Token, bool) {
	for !l.atEnd() && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if !l.atEnd() && l.src[l.pos] == '.' {
		dotPos := l.pos
		l.pos++
		digitsAfterDot := 0
		for !l.atEnd() && isDigit(l.src[l.pos]) {
			l.pos++
			digitsAfterDot++
		}
		if digitsAfterDot == 0 {
			l.errorAt(l.posAt(dotPos), "expected digit after '.' in floating-point number")
		}
	}
	lexeme := l.src[start:l.pos]
	return token.Token{Kind: token.NUMBER, Lexeme: lexeme, Pos: l.posAt(start)}, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *Lexer) lexString(start int) (token.Token, bool) {
	l.pos++ // consume opening quote
	contentStart := l.pos
	for !l.atEnd() && l.src[l.pos] != '"' {
		l.pos++
	}
	if l.atEnd() {
		l.errorAt(l.posAt(start), "missing terminating '\"'")
		return token.Token{Kind: token.STRING, Lexeme: l.src[contentStart:l.pos], Pos: l.posAt(start)}, true
	}
	lexeme := l.src[contentStart:l.pos]
	l.pos++ // consume closing quote
	return token.Token{Kind: token.STRING, Lexeme: lexeme, Pos: l.posAt(start)}, true
}

func (l *Lexer) lexChar(start int) (token.Token, bool) {
	l.pos++ // consume opening quote
	if l.atEnd() || l.src[l.pos] == '\'' {
		l.errorAt(l.posAt(start), "missing terminating \"'\"")
		return token.Token{}, false
	}
	contentStart := l.pos
	l.pos++ // the single required byte; escape sequences are a documented TODO
	if l.atEnd() || l.src[l.pos] != '\'' {
		l.errorAt(l.posAt(start), "missing terminating \"'\"")
		return token.Token{}, false
	}
	lexeme := l.src[contentStart:l.pos]
	l.pos++ // consume closing quote
	return token.Token{Kind: token.CHAR, Lexeme: lexeme, Pos: l.posAt(start)}, true
}

var singleCharKinds = map[byte]token.Kind{
	'[': token.LEFT_BRACKET,
	']': token.RIGHT_BRACKET,
	':': token.COLON,
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'/': token.SLASH,
	'%': token.PERCENT,
	'=': token.EQUAL,
	',': token.COMMA,
	'.': token.DOT,
}

func (l *Lexer) lexPunctuation(start int) (token.Token, bool) {
	c := l.src[l.pos]

	switch c {
	case '<':
		l.pos++
		if !l.atEnd() && l.src[l.pos] == '=' {
			l.pos++
			return token.Token{Kind: token.LESS_EQUAL, Lexeme: "<=", Pos: l.posAt(start)}, true
		}
		return token.Token{Kind: token.LESS, Lexeme: "<", Pos: l.posAt(start)}, true
	case '>':
		l.pos++
		if !l.atEnd() && l.src[l.pos] == '=' {
			l.pos++
			return token.Token{Kind: token.GREATER_EQUAL, Lexeme: ">=", Pos: l.posAt(start)}, true
		}
		return token.Token{Kind: token.GREATER, Lexeme: ">", Pos: l.posAt(start)}, true
	}

	if kind, ok := singleCharKinds[c]; ok {
		l.pos++
		return token.Token{Kind: kind, Lexeme: string(c), Pos: l.posAt(start)}, true
	}

	l.errorAt(l.posAt(start), "invalid char literal '%c' (dec: %d)", c, int(c))
	l.pos++
	return token.Token{}, false
}

func (l *Lexer) eofToken() token.Token {
	line := l.line
	var col int
	if l.pos > 0 && l.src[l.pos-1] == '\n' {
		line--
		if l.lastToLastNewline >= 0 {
			col = l.pos - l.lastToLastNewline - 1
		} else {
			col = l.pos - 1
		}
	} else {
		col = l.pos - l.lastNewline
		if line == 1 {
			col++
		}
	}
	return token.Token{Kind: token.EOF, Lexeme: "", Pos: token.Position{File: l.file, Line: line, Column: col, Offset: l.pos}}
}

// Aborted reports whether the lexer stopped early after exceeding
// MaxErrors.
func (l *Lexer) Aborted() bool { return l.aborted }
