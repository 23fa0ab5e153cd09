package json

import (
	"github.com/kallsyms/gasp-sub000/value"
)

// FromValue converts a value.Value tree into the plain interface{} shape
// Encode/Marshal expect, so a finished engine result can go out through the
// same jsoniter path any other host value does.
func FromValue(v value.Value) interface{} {
	switch v.Kind {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.AsBool()
		return b
	case value.KindInt:
		i, _ := v.AsInt()
		return i
	case value.KindFloat:
		f, _ := v.AsFloat()
		return f
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindArray:
		elems, _ := v.AsArray()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			out[i] = FromValue(e)
		}
		return out
	case value.KindObject:
		out := make(map[string]interface{}, v.Len())
		for _, k := range v.Keys() {
			f, _ := v.Get(k)
			out[k] = FromValue(f)
		}
		return out
	default:
		return nil
	}
}

// ToValue converts a decoded interface{} (as produced by Decode/Parse, where
// every JSON number comes back as float64) into a value.Value tree, for
// hosts that hand the engine a pre-parsed document instead of a raw byte
// stream. A float64 with no fractional part becomes an Int, matching the
// builder's own NumberEnd classification for whole-number literals.
func ToValue(v interface{}) value.Value {
	switch tv := v.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.NewBool(tv)
	case float64:
		if tv == float64(int64(tv)) {
			return value.NewInt(int64(tv))
		}
		return value.NewFloat(tv)
	case string:
		return value.NewString(tv)
	case []interface{}:
		elems := make([]value.Value, len(tv))
		for i, e := range tv {
			elems[i] = ToValue(e)
		}
		return value.NewArray(elems...)
	case map[string]interface{}:
		out := value.NewObject()
		for k, f := range tv {
			out = out.Set(k, ToValue(f))
		}
		return out
	default:
		return value.Null()
	}
}

// Marshal renders a value.Value as a JSON string by way of FromValue and
// Encode, the inverse of ToValue.
func Marshal(v value.Value) (string, error) {
	return Encode(FromValue(v))
}
