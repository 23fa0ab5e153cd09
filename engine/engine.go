// Package engine is the external façade wiring tag.Router into
// sax.Scanner and builder.Builder, exposing the incremental Step/Finish
// API of spec.md §6.
package engine

import (
	goerrors "github.com/go-errors/errors"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/kallsyms/gasp-sub000/builder"
	"github.com/kallsyms/gasp-sub000/json"
	"github.com/kallsyms/gasp-sub000/repair"
	"github.com/kallsyms/gasp-sub000/sax"
	"github.com/kallsyms/gasp-sub000/schema"
	"github.com/kallsyms/gasp-sub000/tag"
	"github.com/kallsyms/gasp-sub000/value"
)

// Engine drives one stream end to end: locate the wanted tag region,
// lex/scan/build the JSON-ish payload inside it, and report Partial/Complete
// snapshots as they become available.
type Engine struct {
	ID uuid.UUID

	router  *tag.Router
	scanner *sax.Scanner
	build   *builder.Builder

	log    hclog.Logger
	done   bool
	sticky error
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a caller-supplied logger. The default is
// hclog.NewNullLogger.
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New returns an Engine watching for the named wanted tags (case
// insensitive), ignoring the content of any named ignored tags. An empty
// wanted set means every tag not ignored is wanted.
func New(wanted, ignored []string, opts ...Option) *Engine {
	e := &Engine{
		ID:      uuid.New(),
		scanner: sax.New(),
		build:   builder.New(),
		log:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.router = tag.New(wanted, ignored, tag.WithLogger(e.log.Named("tag")))
	return e
}

// Step feeds chunk to the pipeline and returns the most recent Partial or
// Complete snapshot the builder produced while consuming it, or nil if
// none was emitted this call.
func (e *Engine) Step(chunk []byte) (*value.Snapshot, error) {
	if e.sticky != nil {
		return nil, e.sticky
	}

	var last *value.Snapshot
	emit := func(ev tag.Event) error {
		switch ev.Kind {
		case tag.Bytes:
			e.scanner.Push([]byte(ev.Bytes))
			for {
				saxEv, err := e.scanner.Next()
				if err == value.ErrNeedMore {
					return nil
				}
				if err != nil {
					return err
				}
				snap, err := e.build.FeedEvent(saxEv)
				if err != nil {
					return err
				}
				if snap != nil {
					last = snap
				}
			}
		case tag.Close:
			if ev.Tag.Depth == 1 {
				e.done = true
				snap := value.NewComplete(e.build.Peek())
				last = &snap
			}
		}
		return nil
	}

	if err := e.router.Push(chunk, emit); err != nil {
		wrapped := goerrors.Wrap(err, 0)
		e.sticky = wrapped
		e.log.Error("step failed", "id", e.ID, "error", err)
		return nil, wrapped
	}
	return last, nil
}

// IsDone reports whether the wanted tag region has closed.
func (e *Engine) IsDone() bool { return e.done }

// Finish force-closes the builder in streaming mode, applying the dangling
// scalar flush rule, and returns the final value.
func (e *Engine) Finish() (value.Value, error) {
	if e.sticky != nil {
		return value.Value{}, e.sticky
	}
	v, err := e.build.Finish(true)
	if err != nil {
		return value.Value{}, goerrors.Wrap(err, 0)
	}
	return v, nil
}

// FinishAgainst closes the stream like Finish, then repairs the result
// against t using reg to resolve any missing/ambiguous _type discriminant.
func (e *Engine) FinishAgainst(t schema.Type, reg *schema.Registry) (value.Value, error) {
	v, err := e.Finish()
	if err != nil {
		return v, err
	}
	return repair.Fix(reg, t, v)
}

// FinishJSON closes the stream like Finish, then renders the result as a
// JSON string via json.Marshal, for hosts that want the parsed region back
// out as text rather than as a value.Value tree.
func (e *Engine) FinishJSON() (string, error) {
	v, err := e.Finish()
	if err != nil {
		return "", err
	}
	return json.Marshal(v)
}

// ParseComplete is the non-streaming counterpart to Step/Finish: it takes a
// whole buffered document (already complete, not a tag-wrapped stream) and
// parses it through json.Parse's format auto-detection and progressive
// repair before converting the result to a value.Value tree. Callers that
// already have the full LLM response in hand don't need the incremental
// pipeline at all.
func ParseComplete(data string, hint ...string) (value.Value, error) {
	decoded, err := json.Parse(data, hint...)
	if err != nil {
		return value.Value{}, goerrors.Wrap(err, 0)
	}
	return json.ToValue(decoded), nil
}
