// Package validate walks a value.Value tree against a schema.Type and
// reports the first mismatch, ported from the original's validate_json
// (types.rs) field for field.
package validate

import (
	"github.com/kallsyms/gasp-sub000/schema"
	"github.com/kallsyms/gasp-sub000/value"
)

// Value checks v against t, returning the first typed error encountered
// (depth-first, declared field order), or nil if v conforms.
func Value(t schema.Type, v value.Value) error {
	switch t.Kind {
	case schema.Object:
		return validateObject(t, v)
	case schema.Array:
		return validateArray(t, v)
	case schema.Union:
		return validateUnion(t, v)
	case schema.String:
		if v.Kind != value.KindString {
			return &value.ExpectedTypeError{Expected: "String"}
		}
		return nil
	case schema.Number:
		return validateNumber(t, v)
	case schema.Boolean:
		if v.Kind != value.KindBool {
			return &value.ExpectedTypeError{Expected: "Boolean"}
		}
		return nil
	case schema.Null:
		if !v.IsNull() {
			return &value.ExpectedTypeError{Expected: "Null"}
		}
		return nil
	}
	return &value.ExpectedTypeError{Expected: "unknown"}
}

func validateObject(t schema.Type, v value.Value) error {
	fields, ok := v.AsObject()
	if !ok {
		return &value.ExpectedTypeError{Expected: "Object"}
	}
	for _, f := range t.Fields {
		fv, present := fields[f.Name]
		if !present {
			if f.Name == schema.MetaTypeField {
				return &value.MissingMetaTypeError{}
			}
			return &value.MissingFieldError{Name: f.Name}
		}
		if err := Value(f.Type, fv); err != nil {
			return &value.FieldTypeError{Name: f.Name, Inner: err}
		}
	}
	return nil
}

func validateArray(t schema.Type, v value.Value) error {
	elems, ok := v.AsArray()
	if !ok {
		return &value.ExpectedTypeError{Expected: "Array"}
	}
	if t.Element == nil {
		return nil
	}
	for i, e := range elems {
		if err := Value(*t.Element, e); err != nil {
			return &value.ArrayElemError{Index: i, Inner: err}
		}
	}
	return nil
}

func validateUnion(t schema.Type, v value.Value) error {
	var members []value.MemberError
	for _, m := range t.Members {
		if err := Value(m, v); err == nil {
			return nil
		} else {
			members = append(members, value.MemberError{TypeName: memberName(m), Inner: err})
		}
	}
	return &value.NotMemberOfUnionError{Members: members}
}

// memberName returns a display name for a union member, matching
// type_name() in the original: a record's TypeName, or its Kind string.
func memberName(t schema.Type) string {
	if t.Kind == schema.Object && t.TypeName != "" {
		return t.TypeName
	}
	return t.Kind.String()
}

// validateNumber ports the asymmetric Number rule: a Float schema rejects
// an Int value, but an Int or unconstrained Number schema accepts a Float.
func validateNumber(t schema.Type, v value.Value) error {
	switch v.Kind {
	case value.KindInt:
		if t.NumberKind == schema.FloatNumber {
			return &value.ExpectedTypeError{Expected: "Float"}
		}
		return nil
	case value.KindFloat:
		return nil
	default:
		return &value.ExpectedTypeError{Expected: "Number"}
	}
}
