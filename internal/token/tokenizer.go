package token

import (
	"strings"

	"github.com/pkelchte/scm-core/internal/scmerr"
)

const (
	symStart = "<=>*/#+-"
	symBody  = "<=>*/#?!-"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }

func isSymStart(b byte) bool { return isAlpha(b) || strings.IndexByte(symStart, b) >= 0 }

func isSymBody(b byte) bool { return isAlnum(b) || strings.IndexByte(symBody, b) >= 0 }

// Tokenizer reads characters one at a time with one-character look-ahead
// and lazily materializes the first token on first inspection. Source
// text I/O beyond this reader is a collaborator's concern — the
// tokenizer itself only ever sees the characters of one line.
type Tokenizer struct {
	src         *strings.Reader
	current     Token
	haveToken   bool
	atEnd       bool
	initialized bool
}

// New returns a Tokenizer over source.
func New(source string) *Tokenizer {
	return &Tokenizer{src: strings.NewReader(source)}
}

func (t *Tokenizer) peek() (byte, bool) {
	b, err := t.src.ReadByte()
	if err != nil {
		return 0, false
	}
	_ = t.src.UnreadByte()
	return b, true
}

func (t *Tokenizer) getByte() (byte, bool) {
	b, err := t.src.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func (t *Tokenizer) skipSpace() {
	for {
		b, ok := t.peek()
		if !ok || (b != ' ' && b != '\n') {
			return
		}
		_, _ = t.getByte()
	}
}

// ensure materializes the current token if it hasn't been computed yet.
func (t *Tokenizer) ensure() error {
	if t.initialized {
		return nil
	}
	t.initialized = true
	return t.materialize()
}

func (t *Tokenizer) materialize() error {
	t.skipSpace()
	b, ok := t.getByte()
	if !ok {
		t.atEnd = true
		t.haveToken = false
		return nil
	}
	switch {
	case isDigit(b) || ((b == '+' || b == '-') && t.peekIsDigit()):
		neg := b == '-'
		var val int64
		if isDigit(b) {
			val = int64(b - '0')
		}
		for {
			nb, ok := t.peek()
			if !ok || !isDigit(nb) {
				break
			}
			_, _ = t.getByte()
			if neg {
				val = 10*val - int64(nb-'0')
			} else {
				val = 10*val + int64(nb-'0')
			}
		}
		t.current = Token{Kind: Integer, IntValue: val}
	case b == '(':
		t.current = Token{Kind: OpenParen}
	case b == ')':
		t.current = Token{Kind: CloseParen}
	case b == '\'':
		t.current = Token{Kind: Quote}
	case b == '.':
		t.current = Token{Kind: Dot}
	default:
		if !isSymStart(b) {
			return scmerr.NewSyntax("bad symbolic start")
		}
		var sb strings.Builder
		sb.WriteByte(b)
		for {
			nb, ok := t.peek()
			if !ok || !isSymBody(nb) {
				break
			}
			_, _ = t.getByte()
			sb.WriteByte(nb)
		}
		t.current = Token{Kind: Ident, Text: sb.String()}
	}
	t.haveToken = true
	return nil
}

func (t *Tokenizer) peekIsDigit() bool {
	b, ok := t.peek()
	return ok && isDigit(b)
}

// IsEnd reports whether the stream yields no further token.
func (t *Tokenizer) IsEnd() (bool, error) {
	if err := t.ensure(); err != nil {
		return false, err
	}
	return t.atEnd, nil
}

// Current returns the token most recently materialized. Call IsEnd first
// (or Advance) to ensure one is available; once the stream is exhausted
// materialize leaves t.current unchanged, so Current refuses to return
// it stale rather than let a caller mistake it for a live token.
func (t *Tokenizer) Current() (Token, error) {
	if err := t.ensure(); err != nil {
		return Token{}, err
	}
	if t.atEnd {
		return Token{}, scmerr.NewSyntax("no token: end of stream")
	}
	return t.current, nil
}

// Advance produces the next token, discarding the current one.
func (t *Tokenizer) Advance() error {
	if err := t.ensure(); err != nil {
		return err
	}
	return t.materialize()
}
