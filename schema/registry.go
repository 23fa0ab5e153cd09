package schema

import (
	"fmt"

	"github.com/kallsyms/gasp-sub000/store/lru"
	"github.com/kallsyms/gasp-sub000/value"
)

// Registry holds the named record Types a Repairer or TypeGuesser consults
// when a value is missing its _type discriminant or needs fuzzy field-name
// correction. A compiled declared-field-set is cached per type name so
// InferTypeFromFields doesn't rebuild it on every call.
type Registry struct {
	types map[string]Type
	sets  *lru.Cache
}

// NewRegistry returns an empty Registry. cacheSize bounds how many compiled
// field-set tables are kept at once; 0 picks a sensible default.
func NewRegistry(cacheSize int) *Registry {
	if cacheSize <= 0 {
		cacheSize = 256
	}
	c, err := lru.New(cacheSize)
	if err != nil {
		// NewARC only fails for size <= 0, already guarded above.
		panic(err)
	}
	return &Registry{types: map[string]Type{}, sets: c}
}

// Register adds t under its TypeName, replacing any prior registration of
// the same name. t must be an Object schema returned by NewRecord.
func (r *Registry) Register(t Type) error {
	if t.Kind != Object || t.TypeName == "" {
		return fmt.Errorf("schema: Register requires a named record type")
	}
	r.types[t.TypeName] = t
	r.sets.Del(t.TypeName)
	return nil
}

// Lookup returns the record type registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns every registered type name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	return names
}

func (r *Registry) declaredSet(name string, t Type) map[string]struct{} {
	v, _ := r.sets.GetSet(name, func() (interface{}, error) {
		return t.DeclaredFieldSet(), nil
	})
	return v.(map[string]struct{})
}

// InferTypeFromFields ports the original's one-directional diff rule: a
// record type matches when every key of the object is one of its declared
// fields, apart from an optional reserved _type key; declared fields the
// object lacks do not prevent a match (see fieldSetsMatch). Ambiguous (more
// than one match) or unmatched field sets return ok == false.
func (r *Registry) InferTypeFromFields(fields map[string]value.Value) (string, bool) {
	present := make(map[string]struct{}, len(fields))
	for k := range fields {
		present[k] = struct{}{}
	}

	var matched string
	matches := 0
	for name, t := range r.types {
		declared := r.declaredSet(name, t)
		if fieldSetsMatch(declared, present) {
			matched = name
			matches++
		}
	}

	if matches != 1 {
		return "", false
	}
	return matched, true
}

// fieldSetsMatch ports the original's one-directional diff exactly: only
// keys present but not declared count against a match (a present set
// missing some declared fields still matches, mirroring the original's
// behavior). A match requires that diff to be empty, or exactly the
// reserved _type key.
func fieldSetsMatch(declared, present map[string]struct{}) bool {
	var diff []string
	for k := range present {
		if _, ok := declared[k]; !ok {
			diff = append(diff, k)
		}
	}
	if len(diff) == 0 {
		return true
	}
	return len(diff) == 1 && diff[0] == MetaTypeField
}
