package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kallsyms/gasp-sub000/value"
)

func drain(t *testing.T, lx *Lexer) []Token {
	t.Helper()
	var toks []Token
	for {
		tok, err := lx.Next()
		if err == value.ErrNeedMore {
			break
		}
		assert.NoError(t, err)
		if tok.Kind == Eof {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestLexerStructuralTokens(t *testing.T) {
	lx := New()
	lx.Push([]byte(`{}[]:,`))
	toks := drain(t, lx)
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{LBrace, RBrace, LBracket, RBracket, Colon, Comma}, kinds)
}

func TestLexerStringAcrossChunks(t *testing.T) {
	lx := New()
	lx.Push([]byte(`"hel`))
	toks := drain(t, lx)
	assert.Len(t, toks, 1)
	assert.Equal(t, StrChunk, toks[0].Kind)
	assert.Equal(t, "hel", lx.Slice(toks[0].Start, toks[0].End))

	lx.Push([]byte(`lo"`))
	toks = drain(t, lx)
	assert.Len(t, toks, 1)
	assert.Equal(t, StrEnd, toks[0].Kind)
}

func TestLexerNumber(t *testing.T) {
	lx := New()
	lx.Push([]byte(`-12.5e3,`))
	toks := drain(t, lx)
	assert.Equal(t, NumEnd, toks[0].Kind)
	assert.Equal(t, "-12.5e3", lx.Slice(toks[0].Start, toks[0].End))
	assert.Equal(t, Comma, toks[1].Kind)
}

func TestLexerIdent(t *testing.T) {
	lx := New()
	lx.Push([]byte(`true}`))
	toks := drain(t, lx)
	assert.Equal(t, IdentEnd, toks[0].Kind)
	assert.Equal(t, "true", lx.Slice(toks[0].Start, toks[0].End))
	assert.Equal(t, RBrace, toks[1].Kind)
}

func TestLexerLineComment(t *testing.T) {
	lx := New()
	lx.Push([]byte("// a comment\n{"))
	toks := drain(t, lx)
	assert.Len(t, toks, 1)
	assert.Equal(t, LBrace, toks[0].Kind)
}

func TestLexerBlockComment(t *testing.T) {
	lx := New()
	lx.Push([]byte("/* skip */[",
	))
	toks := drain(t, lx)
	assert.Len(t, toks, 1)
	assert.Equal(t, LBracket, toks[0].Kind)
}

func TestLexerSingleQuoteString(t *testing.T) {
	lx := New()
	lx.Push([]byte(`'abc'`))
	toks := drain(t, lx)
	assert.Equal(t, StrEnd, toks[0].Kind)
	assert.Equal(t, "abc", lx.Slice(toks[0].Start, toks[0].End))
}

func TestLexerNeedMoreOnPartialToken(t *testing.T) {
	lx := New()
	lx.Push([]byte(`12`))
	tok, err := lx.Next()
	assert.NoError(t, err)
	assert.Equal(t, NumChunk, tok.Kind)

	_, err = lx.Next()
	assert.Equal(t, value.ErrNeedMore, err)
}

func TestLexerReset(t *testing.T) {
	lx := New()
	lx.Push([]byte(`{`))
	_, _ = lx.Next()
	lx.Reset()
	assert.Empty(t, lx.Buf())
}
