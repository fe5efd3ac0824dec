package parser

import "github.com/huz-sh/ether/pkg/token"

// current returns the token at the cursor without consuming it.
func (p *Parser) current() token.Token {
	if p.idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.idx]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token {
	if p.idx == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.idx-1]
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if !p.check(token.EOF) {
		p.idx++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool { return p.current().Kind == kind }

func (p *Parser) checkKeyword(word string) bool {
	cur := p.current()
	return cur.Kind == token.KEYWORD && cur.Lexeme == word
}

// matchKeyword consumes and reports true if the current token is the
// keyword named word.
func (p *Parser) matchKeyword(word string) bool {
	if p.checkKeyword(word) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consumeLeftBracket() {
	if !p.check(token.LEFT_BRACKET) {
		p.error(p.current(), "expected '[', got %q", p.current().Lexeme)
		return
	}
	p.advance()
	p.bracketDepth++
}

func (p *Parser) consumeRightBracket() {
	if !p.check(token.RIGHT_BRACKET) {
		p.error(p.current(), "expected ']', got %q", p.current().Lexeme)
		return
	}
	p.advance()
	p.bracketDepth--
}

func (p *Parser) consumeColon() {
	if !p.check(token.COLON) {
		p.error(p.current(), "expected ':', got %q", p.current().Lexeme)
		return
	}
	p.advance()
}

func (p *Parser) consumeIdentifier() token.Token {
	if !p.check(token.IDENTIFIER) {
		p.error(p.current(), "expected identifier, got %q", p.current().Lexeme)
		return token.Token{}
	}
	return p.advance()
}

// expect consumes and returns the current token if it has kind; otherwise
// it reports message and enters panic mode.
func (p *Parser) expect(kind token.Kind, format string, args ...any) token.Token {
	if !p.check(kind) {
		p.error(p.current(), format, args...)
		return token.Token{}
	}
	return p.advance()
}

// error reports a syntax error at tok, then — unless already panicking —
// synchronizes to the closing ']' of the current top-level declaration so
// parsing resumes at the next top-level form. Recovery does not resume at
// the next statement inside the same declaration. Only one diagnostic is
// produced per synchronized region.
func (p *Parser) error(tok token.Token, format string, args ...any) {
	if p.panicking {
		return
	}
	p.diags.Errorf(tok.Pos, format, args...)
	p.panicking = true
	p.synchronize()
}

// warn reports a non-fatal diagnostic; it never enters panic mode.
func (p *Parser) warn(tok token.Token, format string, args ...any) {
	p.diags.Warningf(tok.Pos, format, args...)
}

// synchronize discards tokens until every '[' still open in the current
// top-level declaration is closed, or EOF is reached. depth starts at
// p.bracketDepth (the number of '[' consumed since the declaration began
// and not yet matched); once it reaches 0, p.bracketDepth is reset to 0.
func (p *Parser) synchronize() {
	depth := p.bracketDepth
	if depth < 1 {
		depth = 1
	}

	for !p.check(token.EOF) {
		switch p.current().Kind {
		case token.LEFT_BRACKET:
			depth++
			p.advance()
		case token.RIGHT_BRACKET:
			depth--
			p.advance()
			if depth <= 0 {
				p.bracketDepth = 0
				return
			}
		default:
			p.advance()
		}
	}
	p.bracketDepth = 0
}
