package scanner_test

import (
	"testing"

	"github.com/aspen-lang/aspen/lang/scanner"
	"github.com/aspen-lang/aspen/lang/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuation(t *testing.T) {
	toks, err := scanner.Scan("(){},.-+;*!= = == < <= > >= / //comment\n")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL, token.LESS, token.LESS_EQUAL,
		token.GREATER, token.GREATER_EQUAL, token.SLASH, token.EOF,
	}, kinds(toks))
}

func TestScanString(t *testing.T) {
	toks, err := scanner.Scan(`"hello world"`)
	require.NoError(t, err)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.True(t, toks[0].Literal.IsSet)
	require.Equal(t, "hello world", toks[0].Literal.Str)
}

func TestScanStringSpansNewlines(t *testing.T) {
	toks, err := scanner.Scan("\"a\nb\" 1")
	require.NoError(t, err)
	require.Equal(t, "a\nb", toks[0].Literal.Str)
	// the NUMBER token after the multi-line string should be on line 2
	require.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.Scan(`"oops`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unterminated string.")
}

func TestScanNumber(t *testing.T) {
	toks, err := scanner.Scan("123 45.67")
	require.NoError(t, err)
	require.Equal(t, float64(123), toks[0].Literal.Number)
	require.Equal(t, float64(45.67), toks[1].Literal.Number)
}

func TestScanNumberNoTrailingDot(t *testing.T) {
	toks, err := scanner.Scan("123.")
	require.NoError(t, err)
	// the trailing '.' is its own DOT token, not part of the number
	require.Equal(t, []token.Kind{token.NUMBER, token.DOT, token.EOF}, kinds(toks))
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, err := scanner.Scan("orchid and or class")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.IDENTIFIER, token.AND, token.OR, token.CLASS, token.EOF}, kinds(toks))
}

func TestScanUnexpectedCharacterContinues(t *testing.T) {
	toks, err := scanner.Scan("1 @ 2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unexpected character.")
	// scanning continues past the bad character
	require.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
}

func TestScanTracksLines(t *testing.T) {
	toks, err := scanner.Scan("1\n2\n3")
	require.NoError(t, err)
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)
	require.Equal(t, 3, toks[2].Line)
}
