// Package tag implements the incremental tag router that locates and
// filters <Tag>…</Tag> regions across a stream of chunks, handing the
// payload bytes of wanted tags on to the JSON pipeline while muting
// content inside ignored tags (spec.md §4.4).
package tag

import (
	"bytes"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Tag describes one opening tag: its lowercase-insensitive name as
// written, its attributes, and its nesting depth at the moment it opened.
type Tag struct {
	Name       string
	Attributes map[string]string
	Depth      int
}

// EventKind discriminates a tag Event.
type EventKind int

// Event kinds, mirroring spec.md §4.4's Open/Bytes/Close.
const (
	Open EventKind = iota
	Bytes
	Close
)

// Event is one structural or payload event the Router emits.
type Event struct {
	Kind  EventKind
	Tag   Tag    // set for Open and Close (Attributes nil on Close)
	Bytes string // set for Bytes
}

// Sink receives Router events in order.
type Sink func(Event) error

// Router is the incremental, case-insensitive tag scanner. The zero
// value is not usable; construct with New.
type Router struct {
	buf []byte

	depth         int
	inside        bool
	insideIgnored bool
	ignoredDepth  int

	wanted  map[string]struct{}
	ignored map[string]struct{}

	log hclog.Logger
}

// Option configures a Router at construction time.
type Option func(*Router)

// WithLogger attaches a caller-supplied logger for trace diagnostics. The
// default is hclog.NewNullLogger — the router never writes to
// stdout/stderr on its own.
func WithLogger(l hclog.Logger) Option {
	return func(r *Router) { r.log = l }
}

// New returns a Router. wanted and ignored name sets are compared
// case-insensitively; an empty wanted set means "everything not ignored
// is wanted".
func New(wanted, ignored []string, opts ...Option) *Router {
	r := &Router{
		wanted:  toLowerSet(wanted),
		ignored: toLowerSet(ignored),
		log:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func toLowerSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return set
}

// Push appends chunk to the router's internal buffer and emits every
// Event the new bytes complete. It retains an unmatched "<…" tail (or, if
// none is pending, up to 200 trailing bytes) so a tag split across chunk
// boundaries is still recognised on the next Push.
func (r *Router) Push(chunk []byte, emit Sink) error {
	r.buf = append(r.buf, chunk...)
	r.log.Trace("push", "chunk_len", len(chunk), "buf_len", len(r.buf))

	for {
		lt := bytes.IndexByte(r.buf, '<')
		if lt < 0 {
			break
		}

		if lt > 0 {
			leading := string(r.buf[:lt])
			if r.inside && !r.insideIgnored && leading != "" {
				if err := emit(Event{Kind: Bytes, Bytes: leading}); err != nil {
					return err
				}
			}
		}

		gtOff := bytes.IndexByte(r.buf[lt:], '>')
		if gtOff < 0 {
			// tag split across chunks: drop handled bytes before it, keep
			// the rest (including the '<') for the next push.
			r.buf = r.buf[lt:]
			return nil
		}
		gt := lt + gtOff

		body := string(r.buf[lt+1 : gt])
		isClose := strings.HasPrefix(body, "/")
		namePart := body
		if isClose {
			namePart = body[1:]
		}

		name, attrPart := splitNameAttrs(namePart)
		nameLower := strings.ToLower(name)
		attrs := parseAttributes(attrPart)

		isIgnored := has(r.ignored, nameLower)
		var isWanted bool
		if len(r.wanted) == 0 {
			isWanted = !isIgnored
		} else {
			isWanted = has(r.wanted, nameLower)
		}

		if err := r.handleTag(name, nameLower, attrs, isClose, isIgnored, isWanted, emit); err != nil {
			return err
		}

		r.buf = r.buf[gt+1:]
	}

	if r.inside && !r.insideIgnored && len(r.buf) > 0 {
		tail := string(r.buf)
		r.buf = r.buf[:0]
		return emit(Event{Kind: Bytes, Bytes: tail})
	}

	const maxTail = 200
	if len(r.buf) > maxTail {
		r.buf = append([]byte(nil), r.buf[len(r.buf)-maxTail:]...)
	}
	return nil
}

func (r *Router) handleTag(name, nameLower string, attrs map[string]string, isClose, isIgnored, isWanted bool, emit Sink) error {
	if !isClose {
		r.depth++
		switch {
		case isIgnored:
			r.insideIgnored = true
			r.ignoredDepth++
		case r.inside && !r.insideIgnored:
			// already inside a wanted region: forward every nested tag
			// regardless of its own wanted-set membership.
			return emit(Event{Kind: Open, Tag: Tag{Name: name, Attributes: attrs, Depth: r.depth}})
		case isWanted && !r.insideIgnored:
			if err := emit(Event{Kind: Open, Tag: Tag{Name: name, Attributes: attrs, Depth: r.depth}}); err != nil {
				return err
			}
			r.inside = true
		}
		return nil
	}

	switch {
	case isIgnored && r.insideIgnored:
		r.ignoredDepth--
		if r.ignoredDepth == 0 {
			r.insideIgnored = false
		}
	case r.inside && !r.insideIgnored:
		if err := emit(Event{Kind: Close, Tag: Tag{Name: name, Depth: r.depth}}); err != nil {
			return err
		}
		if isWanted && r.depth == 1 {
			r.inside = false
		}
	case isWanted && !r.insideIgnored:
		if err := emit(Event{Kind: Close, Tag: Tag{Name: name, Depth: r.depth}}); err != nil {
			return err
		}
		if r.depth == 1 {
			r.inside = false
		}
	}

	if r.depth > 0 {
		r.depth--
	}
	return nil
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

// splitNameAttrs splits "Name attr1=v1 attr2=v2" on the first whitespace.
func splitNameAttrs(namePart string) (name, attrPart string) {
	idx := strings.IndexFunc(namePart, isSpace)
	if idx < 0 {
		return namePart, ""
	}
	return namePart[:idx], strings.TrimSpace(namePart[idx:])
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// parseAttributes implements the tolerant key=value grammar: whitespace
// separated pairs, values either "quoted", 'quoted', or bareword up to
// the next whitespace. An unterminated quote takes the rest of the
// attribute text as its value rather than erroring. A token without '='
// is skipped entirely.
func parseAttributes(attrPart string) map[string]string {
	attrs := map[string]string{}
	remaining := attrPart
	for remaining != "" {
		remaining = strings.TrimLeftFunc(remaining, isSpace)
		if remaining == "" {
			break
		}

		eq := strings.IndexByte(remaining, '=')
		if eq < 0 {
			end := strings.IndexFunc(remaining, isSpace)
			if end < 0 {
				break
			}
			remaining = remaining[end:]
			continue
		}

		key := strings.TrimSpace(remaining[:eq])
		if sp := strings.IndexFunc(key, isSpace); sp >= 0 {
			// the first token has no '=' of its own: skip it
			remaining = remaining[sp:]
			continue
		}
		remaining = strings.TrimLeftFunc(remaining[eq+1:], isSpace)

		var val string
		switch {
		case strings.HasPrefix(remaining, `"`):
			val, remaining = takeQuoted(remaining[1:], '"')
		case strings.HasPrefix(remaining, "'"):
			val, remaining = takeQuoted(remaining[1:], '\'')
		default:
			end := strings.IndexFunc(remaining, isSpace)
			if end < 0 {
				end = len(remaining)
			}
			val = remaining[:end]
			remaining = remaining[end:]
		}
		attrs[key] = val
	}
	return attrs
}

func takeQuoted(s string, quote byte) (val, rest string) {
	closeIdx := strings.IndexByte(s, quote)
	if closeIdx < 0 {
		// malformed attribute: take the rest of the tag body as the value
		return s, ""
	}
	return s[:closeIdx], s[closeIdx+1:]
}
