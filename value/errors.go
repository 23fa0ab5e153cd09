package value

import "fmt"

// Error taxonomy for the pipeline (spec.md §7). Every case is a concrete
// exported type implementing error, never a stringly-typed message, so
// callers can type-switch or errors.As on the specific failure.

// ---- Lexical ----

// UnexpectedCharError is returned when the lexer sees a byte that cannot
// start any recognized token.
type UnexpectedCharError struct{ Char byte }

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}

// UnexpectedEOFError is returned by Builder.Finish in non-streaming mode
// when input ends with a container still open (possibly with a scalar
// inside it).
type UnexpectedEOFError struct{}

func (e *UnexpectedEOFError) Error() string { return "unexpected end of input" }

// InvalidEscapeError is returned for a malformed backslash escape or a
// \uXXXX sequence that isn't exactly four hex digits.
type InvalidEscapeError struct{ Detail string }

func (e *InvalidEscapeError) Error() string { return "invalid escape: " + e.Detail }

// InvalidNumberError is returned when a completed numeric buffer cannot be
// parsed as an integer or float after trailing-punctuation trimming.
type InvalidNumberError struct{ Text string }

func (e *InvalidNumberError) Error() string { return fmt.Sprintf("invalid number %q", e.Text) }

// ---- Structural ----

// InvalidKeyError is returned when a reserved keyword (true/false/null) is
// used as an object key.
type InvalidKeyError struct{ Text string }

func (e *InvalidKeyError) Error() string { return fmt.Sprintf("invalid key %q", e.Text) }

// DuplicateKeyError is informational: the builder always overwrites on a
// duplicate key and never constructs this error itself; it is available to
// callers that want strict-mode reporting.
type DuplicateKeyError struct{ Name string }

func (e *DuplicateKeyError) Error() string { return fmt.Sprintf("duplicate key %q", e.Name) }

// ExpectedCommaError is returned by strict (non-tolerant) call sites; the
// incremental builder itself tolerates missing/trailing commas per spec.md
// §6 dialect rules and never raises this during normal operation.
type ExpectedCommaError struct{}

func (e *ExpectedCommaError) Error() string { return "expected comma" }

// UnexpectedTokenError wraps a free-form description of an out-of-place
// token.
type UnexpectedTokenError struct{ Desc string }

func (e *UnexpectedTokenError) Error() string { return "unexpected token: " + e.Desc }

// ReservedKeywordError is returned when true/false/null appears somewhere
// only a non-keyword identifier is legal.
type ReservedKeywordError struct{ Text string }

func (e *ReservedKeywordError) Error() string {
	return fmt.Sprintf("reserved keyword %q not allowed here", e.Text)
}

// ---- Validation ----

// MissingFieldError reports a required field absent from an object.
type MissingFieldError struct{ Name string }

func (e *MissingFieldError) Error() string { return fmt.Sprintf("missing field %q", e.Name) }

// MissingMetaTypeError reports a record object missing its reserved _type
// field.
type MissingMetaTypeError struct{}

func (e *MissingMetaTypeError) Error() string { return "missing _type field" }

// FieldTypeError wraps a nested validation failure for a specific field.
type FieldTypeError struct {
	Name  string
	Inner error
}

func (e *FieldTypeError) Error() string { return fmt.Sprintf("field %q: %s", e.Name, e.Inner) }
func (e *FieldTypeError) Unwrap() error { return e.Inner }

// ArrayElemError wraps a nested validation failure for an array element.
type ArrayElemError struct {
	Index int
	Inner error
}

func (e *ArrayElemError) Error() string { return fmt.Sprintf("index %d: %s", e.Index, e.Inner) }
func (e *ArrayElemError) Unwrap() error { return e.Inner }

// MemberError is one candidate's failure inside a NotMemberOfUnionError.
type MemberError struct {
	TypeName string
	Inner    error
}

// NotMemberOfUnionError reports that a value matched no union member.
type NotMemberOfUnionError struct {
	Members []MemberError
}

func (e *NotMemberOfUnionError) Error() string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.TypeName
	}
	return fmt.Sprintf("value matches no union member (tried: %v)", names)
}

// ExpectedTypeError reports a scalar/structural type mismatch; Expected is
// one of "String", "Number", "Float", "Boolean", "Null", "Array", "Object",
// or "unknown" for an unrecognised schema Kind.
type ExpectedTypeError struct{ Expected string }

func (e *ExpectedTypeError) Error() string { return "expected " + e.Expected }

// ---- Tagging ----

// TagParserError wraps a malformed tag body from the TagRouter.
type TagParserError struct{ Detail string }

func (e *TagParserError) Error() string { return "tag parser error: " + e.Detail }

// ---- sentinel used by NeedMore-style signaling ----

// ErrNeedMore is a sentinel (not wrapped in a struct since it carries no
// data) signalling that the lexer/scanner made no progress and the caller
// must push more bytes or call Finish. It is returned, never panicked.
var ErrNeedMore = fmt.Errorf("need more input")
