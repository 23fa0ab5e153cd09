// Package sax wraps a lexer.Lexer with a container-depth stack and turns
// its token stream into SaxEvents, dropping the structural punctuation
// (':' and ',') a builder derives from its own stack instead.
package sax

import (
	"github.com/kallsyms/gasp-sub000/lexer"
	"github.com/kallsyms/gasp-sub000/value"
)

// EventKind discriminates a SaxEvent.
type EventKind int

// Event kinds, mirroring spec.md §3's SaxEvent.
const (
	StartObj EventKind = iota
	EndObj
	StartArr
	EndArr
	StrChunk
	StrEnd
	NumberChunk
	NumberEnd
	IdentChunk
	IdentEnd
)

// Event is a structural or scalar event. Text is a borrow into the
// scanner's lexer buffer, valid only until the next Push.
type Event struct {
	Kind EventKind
	Text string
}

type container int

const (
	containerObj container = iota
	containerArr
)

// Scanner is the SAX-style layer over a Lexer. It is stateless apart from
// the container stack and a flag recording whether it's mid-string; all
// value construction is left to an external builder.
type Scanner struct {
	lex      *lexer.Lexer
	stack    []container
	InString bool
}

// New returns a Scanner over a fresh Lexer.
func New() *Scanner {
	return &Scanner{lex: lexer.New()}
}

// Push appends bytes to the underlying lexer buffer.
func (s *Scanner) Push(chunk []byte) {
	s.lex.Push(chunk)
}

// Depth returns the current container nesting depth.
func (s *Scanner) Depth() int { return len(s.stack) }

// Next consumes exactly one meaningful token and turns it into an Event,
// tail-recursing past Colon/Comma. Returns value.ErrNeedMore when the
// lexer has no more tokens to offer right now, or a lexical error.
func (s *Scanner) Next() (Event, error) {
	for {
		tok, err := s.lex.Next()
		if err != nil {
			return Event{}, err
		}

		switch tok.Kind {
		case lexer.Eof:
			return Event{}, value.ErrNeedMore

		case lexer.LBrace:
			s.stack = append(s.stack, containerObj)
			return Event{Kind: StartObj}, nil
		case lexer.RBrace:
			s.popContainer()
			return Event{Kind: EndObj}, nil
		case lexer.LBracket:
			s.stack = append(s.stack, containerArr)
			return Event{Kind: StartArr}, nil
		case lexer.RBracket:
			s.popContainer()
			return Event{Kind: EndArr}, nil

		case lexer.StrChunk:
			s.InString = true
			return Event{Kind: StrChunk, Text: s.lex.Slice(tok.Start, tok.End)}, nil
		case lexer.StrEnd:
			s.InString = false
			return Event{Kind: StrEnd, Text: s.lex.Slice(tok.Start, tok.End)}, nil

		case lexer.NumChunk:
			return Event{Kind: NumberChunk, Text: s.lex.Slice(tok.Start, tok.End)}, nil
		case lexer.NumEnd:
			return Event{Kind: NumberEnd, Text: s.lex.Slice(tok.Start, tok.End)}, nil

		case lexer.IdentChunk:
			return Event{Kind: IdentChunk, Text: s.lex.Slice(tok.Start, tok.End)}, nil
		case lexer.IdentEnd:
			return Event{Kind: IdentEnd, Text: s.lex.Slice(tok.Start, tok.End)}, nil

		case lexer.Colon, lexer.Comma:
			continue // structural punctuation the builder doesn't need
		}
	}
}

func (s *Scanner) popContainer() {
	if len(s.stack) == 0 {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Reset discards all scanner and lexer state for reuse on a fresh run.
func (s *Scanner) Reset() {
	s.lex.Reset()
	s.stack = s.stack[:0]
	s.InString = false
}
