// Package lexer implements the byte-level tokenizer of the incremental
// parsing pipeline: TagRouter payload bytes in, Token fragments out. It
// never copies bytes into tokens — every Token carries a [Start,End) byte
// range into the Lexer's own growing buffer, so the buffer can reallocate
// and grow across pushes without invalidating prior tokens.
package lexer

import (
	"github.com/kallsyms/gasp-sub000/value"
)

// Kind discriminates a Token.
type Kind int

// Token kinds. Chunk variants denote a possibly-incomplete fragment of a
// string/number/identifier run; the matching End variant terminates it.
const (
	LBrace Kind = iota
	RBrace
	LBracket
	RBracket
	Colon
	Comma
	StrChunk
	StrEnd
	NumChunk
	NumEnd
	IdentChunk
	IdentEnd
	Eof
)

func (k Kind) String() string {
	switch k {
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Colon:
		return "Colon"
	case Comma:
		return "Comma"
	case StrChunk:
		return "StrChunk"
	case StrEnd:
		return "StrEnd"
	case NumChunk:
		return "NumChunk"
	case NumEnd:
		return "NumEnd"
	case IdentChunk:
		return "IdentChunk"
	case IdentEnd:
		return "IdentEnd"
	case Eof:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Token is a lexical unit. Start/End are byte offsets into the Lexer's
// buffer at the moment the token was produced; callers that need to keep
// the text must copy it out (via Lexer.Slice) before the next Push.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// mode is the lexer's internal state between calls to Next.
type mode int

const (
	modeStart mode = iota
	modePendingSlash // saw '/', waiting for a second byte to pick line/block comment
	modeInString
	modeInNumber
	modeInIdent
	modeInLineComment
	modeInBlockComment
)

// Lexer is the re-entrant byte tokenizer. It owns the growing buffer that
// all Token offsets are relative to.
type Lexer struct {
	buf []byte
	pos int // absolute cursor, never rewound except by Reset

	md mode

	quote    byte // active string delimiter in modeInString
	seenDot  bool // modeInNumber
	seenExp  bool
	starSeen bool // modeInBlockComment: last byte was '*'

	fragStart int // start offset of the fragment not yet emitted as a Chunk
}

// New returns an empty Lexer.
func New() *Lexer {
	return &Lexer{}
}

// Push appends bytes to the lexer's buffer. It never rewrites earlier
// bytes, so previously issued Token offsets remain valid.
func (l *Lexer) Push(b []byte) {
	l.buf = append(l.buf, b...)
}

// Reset discards all buffered bytes and lexer state, returning the lexer
// to its initial condition for reuse on a fresh logical run.
func (l *Lexer) Reset() {
	l.buf = l.buf[:0]
	l.pos = 0
	l.md = modeStart
	l.fragStart = 0
}

// Buf returns the lexer's internal buffer. Callers must not retain or
// mutate it past the next Push.
func (l *Lexer) Buf() []byte { return l.buf }

// Slice returns a copy of buf[start:end] as a string.
func (l *Lexer) Slice(start, end int) string {
	return string(l.buf[start:end])
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func single(k Kind, at int) Token { return Token{Kind: k, Start: at, End: at + 1} }

// Next returns the next token, value.ErrNeedMore if the buffer was
// exhausted without completing one (more bytes or Finish semantics are
// needed), or a lexical error.
func (l *Lexer) Next() (Token, error) {
	for {
		switch l.md {
		case modeStart:
			if l.pos >= len(l.buf) {
				return Token{Kind: Eof, Start: l.pos, End: l.pos}, nil
			}
			b := l.buf[l.pos]
			switch {
			case b == '{':
				l.pos++
				return single(LBrace, l.pos-1), nil
			case b == '}':
				l.pos++
				return single(RBrace, l.pos-1), nil
			case b == '[':
				l.pos++
				return single(LBracket, l.pos-1), nil
			case b == ']':
				l.pos++
				return single(RBracket, l.pos-1), nil
			case b == ':':
				l.pos++
				return single(Colon, l.pos-1), nil
			case b == ',':
				l.pos++
				return single(Comma, l.pos-1), nil
			case b == '"' || b == '\'':
				l.quote = b
				l.pos++
				l.fragStart = l.pos
				l.md = modeInString
			case isDigit(b) || b == '-' || b == '.':
				l.seenDot = false // scanNumber consumes and records a leading '.'
				l.seenExp = false
				l.fragStart = l.pos
				l.md = modeInNumber
			case isIdentStart(b):
				l.fragStart = l.pos
				l.md = modeInIdent
			case b == '/':
				l.pos++
				l.md = modePendingSlash
			case isWhitespace(b):
				l.pos++
			default:
				return Token{}, &value.UnexpectedCharError{Char: b}
			}

		case modePendingSlash:
			if l.pos >= len(l.buf) {
				return Token{}, value.ErrNeedMore
			}
			switch l.buf[l.pos] {
			case '/':
				l.pos++
				l.md = modeInLineComment
			case '*':
				l.pos++
				l.md = modeInBlockComment
				l.starSeen = false
			default:
				return Token{}, &value.UnexpectedCharError{Char: '/'}
			}

		case modeInLineComment:
			closed := false
			for l.pos < len(l.buf) {
				b := l.buf[l.pos]
				l.pos++
				if b == '\n' {
					closed = true
					break
				}
			}
			if !closed {
				// still inside the comment: stay in this mode so the next
				// Push resumes skipping it, and report Eof for now.
				return Token{Kind: Eof, Start: l.pos, End: l.pos}, nil
			}
			l.md = modeStart

		case modeInBlockComment:
			for l.pos < len(l.buf) {
				b := l.buf[l.pos]
				l.pos++
				if l.starSeen && b == '/' {
					l.starSeen = false
					l.md = modeStart
					break
				}
				l.starSeen = b == '*'
			}
			if l.md == modeInBlockComment {
				return Token{}, value.ErrNeedMore
			}

		case modeInString:
			tok, done, err := l.scanString()
			if err != nil {
				return Token{}, err
			}
			if done {
				l.md = modeStart
			}
			return tok, nil

		case modeInNumber:
			tok, done := l.scanNumber()
			if done {
				l.md = modeStart
			} else if tok.Start == tok.End {
				return Token{}, value.ErrNeedMore
			}
			return tok, nil

		case modeInIdent:
			tok, done := l.scanIdent()
			if done {
				l.md = modeStart
			} else if tok.Start == tok.End {
				return Token{}, value.ErrNeedMore
			}
			return tok, nil
		}
	}
}

// scanString consumes as much of the current string run as is available,
// returning a StrChunk if it runs out of buffer or a StrEnd once the
// closing quote is found. Escaped bytes are skipped over (not
// interpreted) — unescaping is the builder's job once it has the whole
// run assembled.
func (l *Lexer) scanString() (Token, bool, error) {
	start := l.fragStart
	for l.pos < len(l.buf) {
		b := l.buf[l.pos]
		if b == l.quote {
			end := l.pos
			l.pos++
			return Token{Kind: StrEnd, Start: start, End: end}, true, nil
		}
		if b == '\\' {
			l.pos++
			if l.pos >= len(l.buf) {
				// escape byte itself split across a push boundary; back up
				// so the next Push resumes exactly at the backslash.
				end := l.pos - 1
				l.fragStart = end
				l.pos = end
				if end > start {
					return Token{Kind: StrChunk, Start: start, End: end}, false, nil
				}
				return Token{}, false, value.ErrNeedMore
			}
			l.pos++
			continue
		}
		l.pos++
	}
	end := l.pos
	l.fragStart = end
	if end > start {
		return Token{Kind: StrChunk, Start: start, End: end}, false, nil
	}
	return Token{}, false, value.ErrNeedMore
}

// scanNumber consumes digits/./e/E per the grammar
// -?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)? and returns a NumChunk/NumEnd. A
// number never has an explicit terminator; it "ends" when a non-numeric
// byte is seen, so scanNumber treats reaching such a byte as done=true
// while leaving that byte unconsumed for the next Next() call.
func (l *Lexer) scanNumber() (Token, bool) {
	start := l.fragStart
	for l.pos < len(l.buf) {
		b := l.buf[l.pos]
		switch {
		case isDigit(b):
			l.pos++
		case b == '-' && l.pos == start:
			l.pos++
		case b == '.' && !l.seenDot:
			l.seenDot = true
			l.pos++
		case (b == 'e' || b == 'E') && !l.seenExp:
			l.seenExp = true
			l.pos++
			if l.pos < len(l.buf) && (l.buf[l.pos] == '+' || l.buf[l.pos] == '-') {
				l.pos++
			}
		default:
			end := l.pos
			return Token{Kind: NumEnd, Start: start, End: end}, true
		}
	}
	end := l.pos
	l.fragStart = end
	return Token{Kind: NumChunk, Start: start, End: end}, false
}

// scanIdent consumes [A-Za-z0-9_]* and returns an IdentChunk/IdentEnd the
// same way scanNumber does: ends on the first non-identifier byte without
// consuming it.
func (l *Lexer) scanIdent() (Token, bool) {
	start := l.fragStart
	for l.pos < len(l.buf) {
		if !isIdentCont(l.buf[l.pos]) {
			end := l.pos
			return Token{Kind: IdentEnd, Start: start, End: end}, true
		}
		l.pos++
	}
	end := l.pos
	l.fragStart = end
	return Token{Kind: IdentChunk, Start: start, End: end}, false
}
