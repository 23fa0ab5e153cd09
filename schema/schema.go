// Package schema defines the closed SchemaType variant (spec.md §3) used
// to validate, repair, and guess the shape of a value.Value tree, and a
// Registry of named record types for guess.TypeGuesser and
// repair.Repairer to consult.
package schema

// NumberKind narrows a Number schema to Int, Float, or either. Only
// Float rejects an Int value during validation (ported verbatim from the
// original's Number validation asymmetry: an Int-typed or unconstrained
// Number schema accepts a Float value, but a Float-typed schema rejects an
// Int value).
type NumberKind int

// Number kinds.
const (
	AnyNumber NumberKind = iota
	IntNumber
	FloatNumber
)

// Kind discriminates a Type.
type Kind int

// Type kinds, mirroring spec.md §3's closed SchemaType variant.
const (
	String Kind = iota
	Number
	Boolean
	Null
	Array
	Object
	Union
)

// String names a Kind for error messages and union member listings.
func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	case Array:
		return "Array"
	case Object:
		return "Object"
	case Union:
		return "Union"
	default:
		return "unknown"
	}
}

// MetaTypeField is the reserved field name every record Object carries,
// whose value is the record's TypeName.
const MetaTypeField = "_type"

// Field is one declared field of an Object schema, in declaration order.
type Field struct {
	Name string
	Type Type
}

// Type is the closed schema variant. Only the members relevant to Kind
// are meaningful.
type Type struct {
	Kind       Kind
	NumberKind NumberKind

	// Object
	TypeName string
	Fields   []Field

	// Array
	Element *Type

	// Union
	Members []Type
}

// NewString returns the String schema.
func NewString() Type { return Type{Kind: String} }

// NewNumber returns a Number schema of the given NumberKind.
func NewNumber(kind NumberKind) Type { return Type{Kind: Number, NumberKind: kind} }

// NewBoolean returns the Boolean schema.
func NewBoolean() Type { return Type{Kind: Boolean} }

// NewNull returns the Null schema.
func NewNull() Type { return Type{Kind: Null} }

// NewArray returns an Array schema over the given element type.
func NewArray(element Type) Type {
	return Type{Kind: Array, Element: &element}
}

// NewUnion returns a Union schema over the given member types, tried in
// order during validation and repair.
func NewUnion(members ...Type) Type {
	return Type{Kind: Union, Members: append([]Type{}, members...)}
}

// NewRecord returns an Object schema named typeName with the given
// declared fields, automatically prepending the reserved _type field
// (spec.md §3: "Records carry a reserved field _type whose value is the
// record's type_name").
func NewRecord(typeName string, fields ...Field) Type {
	all := make([]Field, 0, len(fields)+1)
	all = append(all, Field{Name: MetaTypeField, Type: NewString()})
	all = append(all, fields...)
	return Type{Kind: Object, TypeName: typeName, Fields: all}
}

// FieldNames returns the declared field names in order, including the
// reserved _type field if present.
func (t Type) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// DeclaredFieldSet returns the declared field names (excluding _type) as
// a set, the shape guess.TypeGuesser's fuzzy matching consumes.
func (t Type) DeclaredFieldSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if f.Name == MetaTypeField {
			continue
		}
		set[f.Name] = struct{}{}
	}
	return set
}
