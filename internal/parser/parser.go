// Package parser builds the heap-allocated S-expression tree spec.md
// §4.3 describes: recursive-descent over a token package.Tokenizer,
// producing Pairs, Symbols, and Numbers (never evaluating).
package parser

import (
	"github.com/pkelchte/scm-core/internal/heap"
	"github.com/pkelchte/scm-core/internal/scmerr"
	"github.com/pkelchte/scm-core/internal/token"
)

const quoteSymbol = "quote"

// Parser consumes a token.Tokenizer and produces one heap-allocated
// expression per Read call.
type Parser struct {
	h   *heap.Heap
	tok *token.Tokenizer
}

// New returns a Parser that allocates through h and reads from tok.
func New(h *heap.Heap, tok *token.Tokenizer) *Parser {
	return &Parser{h: h, tok: tok}
}

// Read reads exactly one expression and requires the token stream to be
// exhausted afterward; leftover tokens are a syntax error ("extra input").
func (p *Parser) Read() (heap.Value, error) {
	expr, err := p.readExpr()
	if err != nil {
		return nil, err
	}
	end, err := p.tok.IsEnd()
	if err != nil {
		return nil, err
	}
	if !end {
		return nil, scmerr.NewSyntax("extra input")
	}
	return expr, nil
}

func (p *Parser) readExpr() (heap.Value, error) {
	end, err := p.tok.IsEnd()
	if err != nil {
		return nil, err
	}
	if end {
		return nil, scmerr.NewSyntax("unexpected end of input")
	}
	cur, err := p.tok.Current()
	if err != nil {
		return nil, err
	}
	switch cur.Kind {
	case token.CloseParen:
		return nil, scmerr.NewSyntax("unmatched close")
	case token.OpenParen:
		return p.readList()
	case token.Integer:
		if err := p.tok.Advance(); err != nil {
			return nil, err
		}
		return p.h.NewNumber(cur.IntValue), nil
	case token.Ident:
		if err := p.tok.Advance(); err != nil {
			return nil, err
		}
		return p.h.NewSymbol(cur.Text), nil
	case token.Quote:
		if err := p.tok.Advance(); err != nil {
			return nil, err
		}
		inner, err := p.readExpr()
		if err != nil {
			return nil, err
		}
		quoted := p.h.NewPair(inner, nil)
		return p.h.NewPair(p.h.NewSymbol(quoteSymbol), quoted), nil
	default:
		return nil, scmerr.NewSyntax("unrecognized token")
	}
}

// readList consumes the leading "(" and builds the list that follows,
// returning nil for an empty list.
func (p *Parser) readList() (heap.Value, error) {
	if err := p.tok.Advance(); err != nil { // consume "("
		return nil, err
	}

	var head heap.Value
	var tail *heap.Pair

	for {
		end, err := p.tok.IsEnd()
		if err != nil {
			return nil, err
		}
		if end {
			return nil, scmerr.NewSyntax("no matching close")
		}
		cur, err := p.tok.Current()
		if err != nil {
			return nil, err
		}
		switch cur.Kind {
		case token.CloseParen:
			if err := p.tok.Advance(); err != nil {
				return nil, err
			}
			return head, nil
		case token.Dot:
			if tail == nil {
				return nil, scmerr.NewSyntax("dot without preceding element")
			}
			if err := p.tok.Advance(); err != nil {
				return nil, err
			}
			tailExpr, err := p.readExpr()
			if err != nil {
				return nil, err
			}
			end, err := p.tok.IsEnd()
			if err != nil {
				return nil, err
			}
			if end {
				return nil, scmerr.NewSyntax("no matching close")
			}
			closeTok, err := p.tok.Current()
			if err != nil {
				return nil, err
			}
			if closeTok.Kind != token.CloseParen {
				return nil, scmerr.NewSyntax("expected close after dotted tail")
			}
			if err := p.tok.Advance(); err != nil {
				return nil, err
			}
			tail.Cdr = tailExpr
			return head, nil
		default:
			elem, err := p.readExpr()
			if err != nil {
				return nil, err
			}
			cell := p.h.NewPair(elem, nil).(*heap.Pair)
			if tail == nil {
				head = cell
			} else {
				tail.Cdr = cell
			}
			tail = cell
		}
	}
}
