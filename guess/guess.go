// Package guess infers the most likely schema.Type for a value.Value that
// arrived without (or with a garbled) _type discriminant, grounded on
// guess_type_inner/guess_array/guess_object in the original implementation.
package guess

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/kallsyms/gasp-sub000/schema"
	"github.com/kallsyms/gasp-sub000/value"
)

// Confidence grades how sure a Result is, ordered None < Low < Medium <
// High < Exact.
type Confidence int

// Confidence levels.
const (
	None Confidence = iota
	Low
	Medium
	High
	Exact
)

// Result is a guessed type paired with how confident the guess is.
type Result struct {
	Type       schema.Type
	Confidence Confidence
}

var dmp = diffmatchpatch.New()

// maxDist is the maximum edit distance a key or _type name may be from a
// declared name and still count as a fuzzy match.
const maxDist = 1

// editDistance computes plain Levenshtein distance via diffmatchpatch's
// character-level diff. Adjacent transpositions are not special-cased: a
// swap of two neighbouring characters costs 2, so at maxDist == 1 a
// transposed name is not a fuzzy match.
func editDistance(a, b string) int {
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffLevenshtein(diffs)
}

// Type guesses val's schema.Type with no expected type to bias toward.
func Type(reg *schema.Registry, val value.Value) (Result, bool) {
	return guessInner(reg, val)
}

// AgainstExpected guesses val's type and reconciles it with the type a
// surrounding context expects: a structural match is promoted to High, an
// expected Array/Union that merely accepts the guess is downgraded to
// Medium, and anything else is rejected (ok == false).
func AgainstExpected(reg *schema.Registry, val value.Value, expected schema.Type) (Result, bool) {
	g, ok := guessInner(reg, val)
	if !ok {
		return Result{}, false
	}
	if sameShape(g.Type, expected) {
		if g.Confidence < High {
			g.Confidence = High
		}
		return g, true
	}
	if accepts(expected, g.Type) {
		g.Confidence = Medium
		return g, true
	}
	return Result{}, false
}

func guessInner(reg *schema.Registry, val value.Value) (Result, bool) {
	switch val.Kind {
	case value.KindString:
		return Result{Type: schema.NewString(), Confidence: Exact}, true
	case value.KindBool:
		return Result{Type: schema.NewBoolean(), Confidence: Exact}, true
	case value.KindInt:
		return Result{Type: schema.NewNumber(schema.IntNumber), Confidence: Exact}, true
	case value.KindFloat:
		return Result{Type: schema.NewNumber(schema.FloatNumber), Confidence: Exact}, true
	case value.KindNull:
		return Result{}, false
	case value.KindArray:
		elems, _ := val.AsArray()
		return guessArray(reg, elems)
	case value.KindObject:
		fields, _ := val.AsObject()
		return guessObject(reg, fields)
	}
	return Result{}, false
}

func guessArray(reg *schema.Registry, arr []value.Value) (Result, bool) {
	if len(arr) == 0 {
		return Result{}, false
	}
	var guesses []Result
	for _, v := range arr {
		if g, ok := guessInner(reg, v); ok {
			guesses = append(guesses, g)
		}
	}
	if len(guesses) == 0 {
		return Result{}, false
	}

	allSame := true
	for _, g := range guesses[1:] {
		if !sameShape(g.Type, guesses[0].Type) {
			allSame = false
			break
		}
	}
	if allSame {
		return Result{Type: schema.NewArray(guesses[0].Type), Confidence: guesses[0].Confidence}, true
	}

	members := make([]schema.Type, len(guesses))
	for i, g := range guesses {
		members[i] = g.Type
	}
	return Result{Type: schema.NewArray(schema.NewUnion(members...)), Confidence: Low}, true
}

func guessObject(reg *schema.Registry, fields map[string]value.Value) (Result, bool) {
	if tn, ok := fields[schema.MetaTypeField]; ok {
		if name, ok := tn.AsString(); ok {
			if t, found := reg.Lookup(name); found {
				return Result{Type: t, Confidence: Exact}, true
			}
		}
	}

	observed := make([]string, 0, len(fields))
	for k := range fields {
		if k != schema.MetaTypeField {
			observed = append(observed, k)
		}
	}

	if len(observed) > 0 {
		// 1. exact field-set match.
		for _, name := range reg.Names() {
			t, _ := reg.Lookup(name)
			declared := t.DeclaredFieldSet()
			if len(declared) == len(observed) && containsAll(declared, observed) {
				return Result{Type: t, Confidence: Exact}, true
			}
		}

		// 2. every declared field fuzzily present in what's observed (all
		// declared fields present, possibly plus extras): High.
		for _, name := range reg.Names() {
			t, _ := reg.Lookup(name)
			if fuzzySubset(declaredNames(t), observed) {
				return Result{Type: t, Confidence: High}, true
			}
		}

		// 3. subset hits in the other direction: observed fuzzily covered by
		// some type's declared set. Ambiguous (>1) drops confidence to Low.
		var hits []schema.Type
		for _, name := range reg.Names() {
			t, _ := reg.Lookup(name)
			if fuzzySubset(observed, declaredNames(t)) {
				hits = append(hits, t)
			}
		}
		switch len(hits) {
		case 1:
			return Result{Type: hits[0], Confidence: Medium}, true
		default:
			if len(hits) > 1 {
				return Result{Type: hits[0], Confidence: Low}, true
			}
		}
	}

	// 4. fuzzy _type name against every registered type name.
	if tn, ok := fields[schema.MetaTypeField]; ok {
		if name, ok := tn.AsString(); ok {
			var matches []schema.Type
			for _, candidate := range reg.Names() {
				if editDistance(candidate, name) <= maxDist {
					t, _ := reg.Lookup(candidate)
					matches = append(matches, t)
				}
			}
			switch len(matches) {
			case 1:
				return Result{Type: matches[0], Confidence: Exact}, true
			default:
				if len(matches) > 1 {
					return Result{Type: matches[0], Confidence: High}, true
				}
			}
		}
	}

	return Result{}, false
}

func declaredNames(t schema.Type) []string {
	set := t.DeclaredFieldSet()
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	return names
}

func containsAll(set map[string]struct{}, keys []string) bool {
	for _, k := range keys {
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}

// fuzzyContains reports whether key is within maxDist of some name in declared.
func fuzzyContains(declared []string, key string) bool {
	for _, d := range declared {
		if editDistance(d, key) <= maxDist {
			return true
		}
	}
	return false
}

// fuzzySubset reports whether every entry of observed fuzzily matches some
// entry of declared.
func fuzzySubset(observed, declared []string) bool {
	for _, k := range observed {
		if !fuzzyContains(declared, k) {
			return false
		}
	}
	return true
}

// sameShape reports whether a and b have the same structural Kind, and for
// Object the same TypeName. It does not recurse into Array element types or
// Union members, matching the original's shallow same_shape_as check.
func sameShape(a, b schema.Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == schema.Object {
		return a.TypeName == b.TypeName
	}
	return true
}

// accepts reports whether an expected type admits a guessed type: an exact
// shape match, an expected Array whose element accepts it, or an expected
// Union with a member that accepts it.
func accepts(expected, guessed schema.Type) bool {
	if sameShape(expected, guessed) {
		return true
	}
	switch expected.Kind {
	case schema.Array:
		return expected.Element != nil && accepts(*expected.Element, guessed)
	case schema.Union:
		for _, m := range expected.Members {
			if accepts(m, guessed) {
				return true
			}
		}
	}
	return false
}
