package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kallsyms/gasp-sub000/value"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(16)
	user := NewRecord("User", Field{Name: "name", Type: NewString()})
	require.NoError(t, reg.Register(user))

	got, ok := reg.Lookup("User")
	assert.True(t, ok)
	assert.Equal(t, "User", got.TypeName)

	_, ok = reg.Lookup("Missing")
	assert.False(t, ok)
}

func TestRegistryRejectsNonRecord(t *testing.T) {
	reg := NewRegistry(16)
	assert.Error(t, reg.Register(NewString()))
}

func TestInferTypeFromFieldsExactMatch(t *testing.T) {
	reg := NewRegistry(16)
	require.NoError(t, reg.Register(NewRecord("User",
		Field{Name: "name", Type: NewString()},
		Field{Name: "age", Type: NewNumber(IntNumber)},
	)))

	fields := map[string]value.Value{
		"name": value.NewString("alice"),
		"age":  value.NewInt(30),
	}
	name, ok := reg.InferTypeFromFields(fields)
	assert.True(t, ok)
	assert.Equal(t, "User", name)
}

func TestInferTypeFromFieldsAmbiguous(t *testing.T) {
	reg := NewRegistry(16)
	require.NoError(t, reg.Register(NewRecord("A", Field{Name: "x", Type: NewString()})))
	require.NoError(t, reg.Register(NewRecord("B", Field{Name: "x", Type: NewString()})))

	fields := map[string]value.Value{"x": value.NewString("v")}
	_, ok := reg.InferTypeFromFields(fields)
	assert.False(t, ok)
}

func TestInferTypeFromFieldsNoMatch(t *testing.T) {
	reg := NewRegistry(16)
	require.NoError(t, reg.Register(NewRecord("User", Field{Name: "name", Type: NewString()})))

	fields := map[string]value.Value{"unrelated": value.NewString("v")}
	_, ok := reg.InferTypeFromFields(fields)
	assert.False(t, ok)
}
