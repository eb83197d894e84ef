package token_test

import (
	"testing"

	"github.com/pkelchte/scm-core/internal/token"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	tz := token.New(src)
	var toks []token.Token
	for {
		end, err := tz.IsEnd()
		require.NoError(t, err)
		if end {
			break
		}
		cur, err := tz.Current()
		require.NoError(t, err)
		toks = append(toks, cur)
		require.NoError(t, tz.Advance())
	}
	return toks
}

func TestTokenizerBasicForms(t *testing.T) {
	toks := collect(t, "(+ 1 -2 3)")
	require.Equal(t, []token.Token{
		{Kind: token.OpenParen},
		{Kind: token.Ident, Text: "+"},
		{Kind: token.Integer, IntValue: 1},
		{Kind: token.Integer, IntValue: -2},
		{Kind: token.Integer, IntValue: 3},
		{Kind: token.CloseParen},
	}, toks)
}

func TestTokenizerPlusMinusAsSymbolStart(t *testing.T) {
	toks := collect(t, "(- +a -b)")
	require.Equal(t, token.Ident, toks[2].Kind)
	require.Equal(t, "+a", toks[2].Text)
	require.Equal(t, token.Ident, toks[3].Kind)
	require.Equal(t, "-b", toks[3].Text)
}

func TestTokenizerQuoteAndDot(t *testing.T) {
	toks := collect(t, "'(1 . 2)")
	require.Equal(t, token.Quote, toks[0].Kind)
	require.Equal(t, token.Dot, toks[3].Kind)
}

func TestTokenizerIdentifierChars(t *testing.T) {
	toks := collect(t, "list-ref? set!")
	require.Len(t, toks, 2)
	require.Equal(t, "list-ref?", toks[0].Text)
	require.Equal(t, "set!", toks[1].Text)
}

func TestTokenizerSkipsWhitespaceAndNewlines(t *testing.T) {
	toks := collect(t, "  (  1\n2 )  ")
	require.Len(t, toks, 4)
}

func TestTokenizerEmptyIsEnd(t *testing.T) {
	tz := token.New("")
	end, err := tz.IsEnd()
	require.NoError(t, err)
	require.True(t, end)
}

func TestTokenizerBadStartChar(t *testing.T) {
	tz := token.New("@")
	_, err := tz.IsEnd()
	require.Error(t, err)
}

// TestTokenizerCurrentPastEndIsError guards against Current returning a
// stale token once the stream is exhausted: materialize leaves
// t.current untouched on EOF, so Current must refuse it rather than let
// a caller mistake an old token for a live one.
func TestTokenizerCurrentPastEndIsError(t *testing.T) {
	tz := token.New("1")
	require.NoError(t, tz.Advance()) // materializes Integer(1), then hits EOF
	end, err := tz.IsEnd()
	require.NoError(t, err)
	require.True(t, end)
	_, err = tz.Current()
	require.Error(t, err)
}
