package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullIsZeroValue(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind)
}

func TestScalarAccessors(t *testing.T) {
	b, ok := NewBool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	i, ok := NewInt(7).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(7), i)

	f, ok := NewFloat(1.5).AsFloat()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	s, ok := NewString("x").AsString()
	require.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestAsFloatAlsoAcceptsInt(t *testing.T) {
	f, ok := NewInt(3).AsFloat()
	require.True(t, ok)
	assert.Equal(t, 3.0, f)
}

func TestAsAccessorsRejectWrongKind(t *testing.T) {
	_, ok := NewInt(1).AsString()
	assert.False(t, ok)
	_, ok = NewString("x").AsInt()
	assert.False(t, ok)
	_, ok = NewBool(true).AsFloat()
	assert.False(t, ok)
}

func TestObjectSetAndGet(t *testing.T) {
	v := NewObject().Set("a", NewInt(1)).Set("b", NewInt(2))
	a, ok := v.Get("a")
	require.True(t, ok)
	i, _ := a.AsInt()
	assert.Equal(t, int64(1), i)

	_, ok = v.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, v.Len())
}

func TestObjectSetOverwritesWithoutDuplicatingKey(t *testing.T) {
	v := NewObject().Set("a", NewInt(1)).Set("a", NewInt(2))
	a, ok := v.Get("a")
	require.True(t, ok)
	i, _ := a.AsInt()
	assert.Equal(t, int64(2), i)
	assert.Equal(t, []string{"a"}, v.Keys())
}

func TestObjectSetPreservesInsertionOrder(t *testing.T) {
	v := NewObject().Set("z", NewInt(1)).Set("a", NewInt(2)).Set("m", NewInt(3))
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())
}

func TestObjectSetIsCopyOnWrite(t *testing.T) {
	base := NewObject().Set("a", NewInt(1))
	next := base.Set("b", NewInt(2))

	_, ok := base.Get("b")
	assert.False(t, ok, "mutating the derived value must not affect the original")
	_, ok = next.Get("b")
	assert.True(t, ok)
}

func TestArrayIndexAndPush(t *testing.T) {
	v := NewArray(NewInt(1), NewInt(2))
	v = v.Push(NewInt(3))
	assert.Equal(t, 3, v.Len())

	e, ok := v.Index(2)
	require.True(t, ok)
	i, _ := e.AsInt()
	assert.Equal(t, int64(3), i)

	_, ok = v.Index(10)
	assert.False(t, ok)
}

func TestArraySetIndex(t *testing.T) {
	v := NewArray(NewInt(1), NewInt(2))
	v = v.SetIndex(1, NewInt(99))
	e, _ := v.Index(1)
	i, _ := e.AsInt()
	assert.Equal(t, int64(99), i)

	unchanged := v.SetIndex(10, NewInt(0))
	assert.True(t, unchanged.Equal(v))
}

func TestEqual(t *testing.T) {
	a := NewObject().Set("x", NewInt(1)).Set("y", NewArray(NewString("a")))
	b := NewObject().Set("y", NewArray(NewString("a"))).Set("x", NewInt(1))
	assert.True(t, a.Equal(b), "Equal ignores object insertion order")

	c := NewObject().Set("x", NewInt(2))
	assert.False(t, a.Equal(c))

	assert.False(t, NewInt(1).Equal(NewFloat(1)), "Int and Float are distinct kinds")
}

func TestStringRendersDebugForm(t *testing.T) {
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "1.5", NewFloat(1.5).String())
	assert.Equal(t, "2.0", NewFloat(2).String())
	assert.Equal(t, `"hi"`, NewString("hi").String())
	assert.Equal(t, "[1, 2]", NewArray(NewInt(1), NewInt(2)).String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
