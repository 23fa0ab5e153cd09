// Package repair applies a single bounded coercion at the first validation
// failure location, grounded on fix_json_value in the original
// implementation's wail_parser module.
package repair

import (
	"strconv"
	"strings"

	"github.com/kallsyms/gasp-sub000/schema"
	"github.com/kallsyms/gasp-sub000/validate"
	"github.com/kallsyms/gasp-sub000/value"
)

// maxRounds bounds validate-then-fix retries so a pathological schema can't
// loop forever.
const maxRounds = 3

// Fix repeatedly validates v against t and applies one coercion per round
// until v conforms or no further fix applies, capped at maxRounds. It
// returns the (possibly repaired) value and the validation error that
// remains, if any.
func Fix(reg *schema.Registry, t schema.Type, v value.Value) (value.Value, error) {
	var err error
	for i := 0; i < maxRounds; i++ {
		err = validate.Value(t, v)
		if err == nil {
			return v, nil
		}
		fixed, fixErr := apply(reg, t, v, err)
		if fixErr != nil {
			return v, err
		}
		v = fixed
	}
	return v, validate.Value(t, v)
}

// apply walks to the first failure location named by err and applies the
// matching coercion, returning an updated copy of v.
func apply(reg *schema.Registry, t schema.Type, v value.Value, err error) (value.Value, error) {
	switch e := err.(type) {
	case *value.MissingMetaTypeError:
		fields, ok := v.AsObject()
		if !ok {
			return v, e
		}
		name, ok := reg.InferTypeFromFields(fields)
		if !ok {
			return v, e
		}
		return v.Set(schema.MetaTypeField, value.NewString(name)), nil

	case *value.FieldTypeError:
		child, ok := v.Get(e.Name)
		if !ok {
			return v, e
		}
		fieldType, ok := fieldTypeOf(t, e.Name)
		if !ok {
			return v, e
		}
		fixed, err := applyLeaf(reg, fieldType, child, e.Inner)
		if err != nil {
			return v, err
		}
		return v.Set(e.Name, fixed), nil

	case *value.ArrayElemError:
		elems, ok := v.AsArray()
		if !ok || e.Index >= len(elems) {
			return v, e
		}
		if t.Element == nil {
			return v, e
		}
		fixed, err := applyLeaf(reg, *t.Element, elems[e.Index], e.Inner)
		if err != nil {
			return v, err
		}
		return v.SetIndex(e.Index, fixed), nil

	case *value.NotMemberOfUnionError:
		return fixUnion(reg, t, v, e)

	case *value.ExpectedTypeError:
		return coerce(v, e.Expected)

	case *value.MissingFieldError:
		return v, e

	default:
		return v, err
	}
}

// applyLeaf dispatches a nested field/array-element error the same way
// apply does at the top, or coerces directly if inner is itself an
// ExpectedTypeError (the common leaf case).
func applyLeaf(reg *schema.Registry, t schema.Type, v value.Value, inner error) (value.Value, error) {
	if ete, ok := inner.(*value.ExpectedTypeError); ok {
		return coerce(v, ete.Expected)
	}
	return apply(reg, t, v, inner)
}

// fixUnion tries each member type in turn, cloning v and attempting the fix
// implied by that member's own validation error; the first member whose fix
// makes v valid against it wins.
func fixUnion(reg *schema.Registry, t schema.Type, v value.Value, e *value.NotMemberOfUnionError) (value.Value, error) {
	for i, m := range t.Members {
		if i >= len(e.Members) {
			break
		}
		candidate := v
		memberErr := e.Members[i].Inner
		fixed, err := apply(reg, m, candidate, memberErr)
		if err != nil {
			continue
		}
		if validate.Value(m, fixed) == nil {
			return fixed, nil
		}
	}
	return v, e
}

func fieldTypeOf(t schema.Type, name string) (schema.Type, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return schema.Type{}, false
}

// coerce converts v to the expected scalar/structural kind, matching the
// original's per-target-type conversion table. Returning the original
// error's Expected string lets this stay table-free.
func coerce(v value.Value, expected string) (value.Value, error) {
	switch expected {
	case "Array":
		return value.NewArray(v), nil

	case "String":
		switch v.Kind {
		case value.KindInt:
			i, _ := v.AsInt()
			return value.NewString(strconv.FormatInt(i, 10)), nil
		case value.KindFloat:
			f, _ := v.AsFloat()
			return value.NewString(strconv.FormatFloat(f, 'g', -1, 64)), nil
		case value.KindBool:
			b, _ := v.AsBool()
			return value.NewString(strconv.FormatBool(b)), nil
		case value.KindNull:
			return value.NewString("null"), nil
		case value.KindString:
			return v, nil
		}
		return v, &value.ExpectedTypeError{Expected: "String"}

	case "Number":
		switch v.Kind {
		case value.KindString:
			s, _ := v.AsString()
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return value.NewInt(i), nil
			}
			return v, &value.InvalidNumberError{Text: s}
		case value.KindBool:
			b, _ := v.AsBool()
			if b {
				return value.NewInt(1), nil
			}
			return value.NewInt(0), nil
		case value.KindInt, value.KindFloat:
			return v, nil
		}
		return v, &value.ExpectedTypeError{Expected: "Number"}

	case "Boolean":
		switch v.Kind {
		case value.KindString:
			s, _ := v.AsString()
			switch strings.ToLower(s) {
			case "true", "1":
				return value.NewBool(true), nil
			case "false", "0":
				return value.NewBool(false), nil
			}
			return v, &value.ExpectedTypeError{Expected: "Boolean"}
		case value.KindInt:
			i, _ := v.AsInt()
			switch i {
			case 0:
				return value.NewBool(false), nil
			case 1:
				return value.NewBool(true), nil
			}
			return v, &value.ExpectedTypeError{Expected: "Boolean"}
		case value.KindFloat:
			return v, &value.ExpectedTypeError{Expected: "Boolean"}
		case value.KindBool:
			return v, nil
		}
		return v, &value.ExpectedTypeError{Expected: "Boolean"}

	case "Null":
		return value.Null(), nil

	default:
		return v, &value.ExpectedTypeError{Expected: expected}
	}
}
