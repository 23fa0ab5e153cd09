// Package builder assembles sax.Events into a value.Value tree, applying
// the LLM-dialect tolerance rules (bareword/keyword identifiers, trailing
// comma tolerance via silent overwrite, array comma-in-string coalescing)
// and emitting incremental value.Snapshots as the tree grows.
package builder

import (
	"strings"

	"github.com/kallsyms/gasp-sub000/sax"
	"github.com/kallsyms/gasp-sub000/value"
)

type frameKind int

const (
	frameObj frameKind = iota
	frameArr
	frameStr
	frameNum
	frameIdent
)

// frame is one element of the builder's stack. Only one Str/Num/Ident
// frame is ever open at a time, always at the stack top, always the child
// of a container frame (or the implicit root).
type frame struct {
	kind frameKind

	// frameObj
	keys    []string
	fields  map[string]value.Value
	lastKey *string

	// frameArr
	elems []value.Value

	// frameStr / frameNum / frameIdent
	buf []byte
}

func newObjFrame() *frame {
	return &frame{kind: frameObj, fields: map[string]value.Value{}}
}

func newArrFrame() *frame {
	return &frame{kind: frameArr}
}

func (f *frame) value() value.Value {
	switch f.kind {
	case frameObj:
		v := value.NewObject()
		for _, k := range f.keys {
			v = v.Set(k, f.fields[k])
		}
		return v
	case frameArr:
		return value.NewArray(f.elems...)
	default:
		return value.Null()
	}
}

func (f *frame) setField(key string, v value.Value) {
	if _, exists := f.fields[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.fields[key] = v
}

// Builder is the incremental tree builder (spec.md §4.3). The zero value
// is ready to use.
type Builder struct {
	stack []*frame
	path  value.Path
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Reset discards all builder state for reuse on a fresh logical run.
func (b *Builder) Reset() {
	b.stack = nil
	b.path = nil
}

func (b *Builder) depth() int { return len(b.stack) }

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// pushPathForScalar records the path segment a freshly-opened scalar frame
// will occupy, based on the current top container.
func (b *Builder) pushPathForScalar() {
	top := b.top()
	if top == nil {
		return
	}
	switch top.kind {
	case frameArr:
		b.path = append(b.path, value.Index(len(top.elems)))
	case frameObj:
		if top.lastKey != nil {
			b.path = append(b.path, value.Key(*top.lastKey))
		}
	}
}

func (b *Builder) startContainer(f *frame) {
	b.pushPathForScalar()
	b.stack = append(b.stack, f)
}

func (b *Builder) finishContainer() value.Value {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f.value()
}

func (b *Builder) ensureStringFrame() {
	if top := b.top(); top != nil && top.kind == frameStr {
		return
	}
	b.pushPathForScalar()
	b.stack = append(b.stack, &frame{kind: frameStr})
}

func (b *Builder) ensureNumFrame() {
	if top := b.top(); top != nil && top.kind == frameNum {
		return
	}
	b.pushPathForScalar()
	b.stack = append(b.stack, &frame{kind: frameNum})
}

func (b *Builder) ensureIdentFrame() {
	if top := b.top(); top != nil && top.kind == frameIdent {
		return
	}
	b.pushPathForScalar()
	b.stack = append(b.stack, &frame{kind: frameIdent})
}

// parentWantsValue reports whether the frame below the current scalar
// frame is ready to receive a value (an Array always is; an Object is only
// once its pending key has been set).
func (b *Builder) parentWantsValue() bool {
	if len(b.stack) < 2 {
		return false
	}
	parent := b.stack[len(b.stack)-2]
	switch parent.kind {
	case frameArr:
		return true
	case frameObj:
		return parent.lastKey != nil
	default:
		return false
	}
}

// parentWantsKey reports whether the top frame is an Object still waiting
// for its next key.
func (b *Builder) parentWantsKey() bool {
	top := b.top()
	return top != nil && top.kind == frameObj && top.lastKey == nil
}

// FeedEvent consumes one sax.Event, returning a Snapshot if this event
// completed one (spec.md §4.3's transition table).
func (b *Builder) FeedEvent(ev sax.Event) (*value.Snapshot, error) {
	switch ev.Kind {
	case sax.StartObj:
		b.startContainer(newObjFrame())
		return nil, nil

	case sax.StartArr:
		b.startContainer(newArrFrame())
		return nil, nil

	case sax.EndObj, sax.EndArr:
		finished := b.finishContainer()
		return b.finishValueAndMaybeSnapshot(finished)

	case sax.StrChunk:
		return b.feedStrChunk(ev.Text)

	case sax.StrEnd:
		return b.feedStrEnd(ev.Text)

	case sax.NumberChunk:
		return b.feedNumberChunk(ev.Text)

	case sax.NumberEnd:
		return b.feedNumberEnd(ev.Text)

	case sax.IdentChunk:
		return b.feedIdentChunk(ev.Text)

	case sax.IdentEnd:
		return b.feedIdentEnd(ev.Text)
	}
	return nil, nil
}

func (b *Builder) feedStrChunk(chunk string) (*value.Snapshot, error) {
	depth := b.depth()
	shouldSnapshot := depth == 2 && b.parentWantsValue()

	b.ensureStringFrame()
	top := b.top()
	top.buf = append(top.buf, chunk...)

	if shouldSnapshot {
		snap := value.NewPartial(b.path, value.NewString(string(top.buf)))
		return &snap, nil
	}
	return nil, nil
}

func (b *Builder) feedStrEnd(chunk string) (*value.Snapshot, error) {
	// 1. in an object still waiting for the key?
	if top := b.top(); top != nil && top.kind == frameObj && top.lastKey == nil {
		key := chunk
		top.lastKey = &key
		return nil, nil
	}

	// 2. were we accumulating StrChunk parts?
	if top := b.top(); top != nil && top.kind == frameStr {
		raw := string(top.buf) + chunk
		b.stack = b.stack[:len(b.stack)-1]
		cooked, err := unescape(raw)
		if err != nil {
			return nil, err
		}

		if parent := b.top(); parent != nil && parent.kind == frameObj && parent.lastKey == nil {
			parent.lastKey = &cooked
			return nil, nil
		}
		return b.finishValueAndMaybeSnapshot(value.NewString(cooked))
	}

	// 3. one-shot value (bare ident or quoted string handed straight to StrEnd)
	cooked, err := unescape(chunk)
	if err != nil {
		return nil, err
	}
	b.pushPathForScalar()
	return b.finishValueAndMaybeSnapshot(value.NewString(cooked))
}

func (b *Builder) feedNumberChunk(chunk string) (*value.Snapshot, error) {
	depth := b.depth()
	shouldSnapshot := depth == 2 && b.parentWantsValue()

	b.ensureNumFrame()
	top := b.top()
	top.buf = append(top.buf, chunk...)

	if shouldSnapshot {
		v, err := parseNumber(string(top.buf))
		if err != nil {
			return nil, err
		}
		snap := value.NewPartial(b.path, v)
		return &snap, nil
	}
	return nil, nil
}

func (b *Builder) feedNumberEnd(tok string) (*value.Snapshot, error) {
	if top := b.top(); top != nil && top.kind == frameNum {
		raw := string(top.buf) + tok
		b.stack = b.stack[:len(b.stack)-1]
		v, err := parseNumber(raw)
		if err != nil {
			return nil, err
		}
		return b.finishValueAndMaybeSnapshot(v)
	}

	v, err := parseNumber(tok)
	if err != nil {
		return nil, err
	}
	b.pushPathForScalar()
	return b.finishValueAndMaybeSnapshot(v)
}

func (b *Builder) feedIdentChunk(chunk string) (*value.Snapshot, error) {
	depth := b.depth()
	shouldSnapshot := depth == 2 && b.parentWantsValue()

	b.ensureIdentFrame()
	top := b.top()
	top.buf = append(top.buf, chunk...)

	if shouldSnapshot {
		v, ok := parseIdent(string(top.buf))
		if !ok {
			v = value.NewString(squashWS(string(top.buf)))
		}
		snap := value.NewPartial(b.path, v)
		return &snap, nil
	}
	return nil, nil
}

func (b *Builder) feedIdentEnd(tok string) (*value.Snapshot, error) {
	// Once an identifier has ended only the complete words are keywords;
	// parseIdent's prefix forms serve mid-word snapshots.
	keyword := func(s string) (value.Value, bool) {
		switch s {
		case "true", "false", "null":
			return parseIdent(s)
		}
		return value.Value{}, false
	}

	// A. continuing an IdentChunk series
	if top := b.top(); top != nil && top.kind == frameIdent {
		text := string(top.buf) + tok
		b.stack = b.stack[:len(b.stack)-1]

		if lit, ok := keyword(text); ok {
			return b.finishValueAndMaybeSnapshot(lit)
		}

		if b.parentWantsKey() {
			// keyword text was handled above; this branch is reached only
			// for non-keyword identifiers.
			if parent := b.top(); parent != nil && parent.kind == frameObj {
				key := text
				parent.lastKey = &key
			}
			return nil, nil
		}

		return b.finishValueAndMaybeSnapshot(value.NewString(squashWS(text)))
	}

	// B. one-shot identifier (no prior chunks)
	if b.parentWantsKey() {
		if _, ok := keyword(tok); ok {
			return nil, &value.InvalidKeyError{Text: tok}
		}
		if parent := b.top(); parent != nil && parent.kind == frameObj {
			key := tok
			parent.lastKey = &key
		}
		return nil, nil
	}

	v, ok := keyword(tok)
	if !ok {
		v = value.NewString(tok)
	}
	b.pushPathForScalar()
	return b.finishValueAndMaybeSnapshot(v)
}

// finishValueAndMaybeSnapshot inserts val into the current parent frame
// (or starts the implicit root array if there is none yet), applying the
// array comma-in-string coalescing rule, then emits a Partial snapshot of
// the whole root container once depth drops to 1. The path segment of the
// completed value is dropped first, so the root snapshot carries the root
// path.
func (b *Builder) finishValueAndMaybeSnapshot(val value.Value) (*value.Snapshot, error) {
	if len(b.path) > 0 {
		b.path = b.path[:len(b.path)-1]
	}

	if parent := b.top(); parent != nil {
		switch parent.kind {
		case frameObj:
			if parent.lastKey == nil {
				return nil, &value.InvalidKeyError{Text: ""}
			}
			parent.setField(*parent.lastKey, val)
			parent.lastKey = nil

		case frameArr:
			if s, ok := val.AsString(); ok {
				trimmed := trimCommaSpace(s)
				if trimmed == "" && strings.Contains(s, ",") {
					return nil, nil // pure comma fragment: swallow silently
				}
				if n := len(parent.elems); n > 0 {
					if prev, ok := parent.elems[n-1].AsString(); ok && endsWithCommaSpace(prev) {
						merged := stripTrailingCommaSpace(prev) + s
						parent.elems[n-1] = value.NewString(merged)
						return nil, nil // glued onto the previous element
					}
				}
			}
			parent.elems = append(parent.elems, val)

		default:
			panic("builder: scalar frame cannot be a container parent")
		}
	} else {
		// no parent at all: wrap in the implicit root array
		b.stack = append(b.stack, &frame{kind: frameArr, elems: []value.Value{val}})
	}

	if b.depth() == 1 {
		snap := value.NewPartial(b.path, b.stack[0].value())
		return &snap, nil
	}
	return nil, nil
}

// trimCommaSpace reports the content of a just-finished array string
// element with surrounding whitespace and commas stripped, used to detect
// a fragment that is purely a split-off ",".
func trimCommaSpace(s string) string {
	return strings.Trim(strings.TrimSpace(s), ",")
}

// endsWithCommaSpace reports whether s ends with "," or ", " — the shape
// left behind when an LLM splits a string value around a comma.
func endsWithCommaSpace(s string) bool {
	trimmed := strings.TrimRight(s, " ")
	return strings.HasSuffix(trimmed, ",")
}

// stripTrailingCommaSpace removes a trailing run of commas and spaces
// before gluing the next fragment on.
func stripTrailingCommaSpace(s string) string {
	return strings.TrimRight(s, ", ")
}

// finishTrim is the narrower trailing-punctuation class Finish applies
// when patching a dangling scalar into its parent object field — unlike
// parseNumber's trailingPunct, it never eats '+'/'-'/'.'/'e'/'E' since
// those are mid-token a streamed string/ident could legitimately still
// contain.
const finishTrim = "}], \t\r\n"

// Finish force-closes the builder at end-of-input (spec.md §4.3's
// finish(streaming)).
//
// Empty stack -> Null. Depth 1 -> unwrap a single-element implicit-root
// array to its sole element, else return the root container/scalar as-is.
// Depth > 1 with streaming=true: patch any open scalar into its parent
// object field (trimming trailing structural bytes), else return the root
// container if it ended up non-empty, else flush the dangling scalar
// itself. Depth > 1 with streaming=false: UnexpectedEof.
func (b *Builder) Finish(streaming bool) (value.Value, error) {
	if len(b.stack) == 0 {
		return value.Null(), nil
	}

	if len(b.stack) == 1 {
		return b.finishRootFrame(b.stack[0])
	}

	if !streaming {
		return value.Value{}, &value.UnexpectedEOFError{}
	}

	// 1. try to patch an open scalar into its parent object field.
	parent := b.stack[len(b.stack)-2]
	child := b.stack[len(b.stack)-1]
	if parent.kind == frameObj && parent.lastKey != nil {
		switch child.kind {
		case frameStr:
			tail := strings.TrimRight(string(child.buf), finishTrim)
			parent.setField(*parent.lastKey, value.NewString(tail))
		case frameIdent:
			tail := strings.TrimRight(string(child.buf), finishTrim)
			if v, ok := parseIdent(tail); ok {
				parent.setField(*parent.lastKey, v)
			} else {
				parent.setField(*parent.lastKey, value.Null())
			}
		case frameNum:
			v, err := parseNumber(string(child.buf))
			if err != nil {
				return value.Value{}, err
			}
			parent.setField(*parent.lastKey, v)
		}
	}

	// 2. if the root container ended up non-empty, return it.
	root := b.stack[0]
	switch root.kind {
	case frameObj:
		if len(root.keys) > 0 {
			return root.value(), nil
		}
	case frameArr:
		if len(root.elems) > 0 {
			return root.value(), nil
		}
	}

	// 3. flush the dangling scalar itself.
	last := b.stack[len(b.stack)-1]
	switch last.kind {
	case frameStr:
		s, err := unescape(string(last.buf))
		if err != nil {
			return value.Value{}, err
		}
		return value.NewString(s), nil
	case frameNum:
		return parseNumber(string(last.buf))
	case frameIdent:
		if v, ok := parseIdent(string(last.buf)); ok {
			return v, nil
		}
		return value.Null(), nil
	default:
		return value.Null(), nil
	}
}

// Peek returns the value currently represented by the builder's root frame,
// applying the same single-element implicit-root-array unwrap Finish does,
// without popping or otherwise mutating the stack. Used to report a
// Complete snapshot the instant the wanted tag region closes, ahead of
// (and independently from) any later call to Finish.
func (b *Builder) Peek() value.Value {
	if len(b.stack) == 0 {
		return value.Null()
	}
	root := b.stack[0]
	if root.kind == frameArr && len(root.elems) == 1 {
		return root.elems[0]
	}
	return root.value()
}

func (b *Builder) finishRootFrame(f *frame) (value.Value, error) {
	switch f.kind {
	case frameArr:
		if len(f.elems) == 1 {
			return f.elems[0], nil
		}
		return f.value(), nil
	case frameObj:
		return f.value(), nil
	case frameStr:
		s, err := unescape(string(f.buf))
		if err != nil {
			return value.Value{}, err
		}
		return value.NewString(s), nil
	case frameNum:
		return parseNumber(string(f.buf))
	case frameIdent:
		if v, ok := parseIdent(string(f.buf)); ok {
			return v, nil
		}
		return value.Null(), nil
	default:
		return value.Null(), nil
	}
}
