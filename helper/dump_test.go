package helper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kallsyms/gasp-sub000/value"
)

func TestToStringBasicTypes(t *testing.T) {
	assert.Equal(t, "42\n", ToString(42))
	assert.Equal(t, "3.14\n", ToString(3.14))
	assert.Equal(t, "true\n", ToString(true))
}

func TestToStringStringAndBytes(t *testing.T) {
	assert.Equal(t, "hello\n", ToString("hello"))
	assert.Equal(t, "world\n", ToString([]byte("world")))
}

func TestToStringError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, "boom\n", ToString(err))
}

func TestToStringMultipleValues(t *testing.T) {
	result := ToString("first", 123, true)
	lines := strings.Split(result, "\n")
	want := []string{"first", "123", "true", ""}
	assert.Equal(t, want, lines)
}

func TestToStringJSONObject(t *testing.T) {
	obj := map[string]interface{}{"foo": "bar", "num": 123}
	result := ToString(obj)
	assert.Contains(t, result, `"foo": "bar"`)
	assert.Contains(t, result, `"num": 123`)
}

func TestToStringValueType(t *testing.T) {
	v := value.NewObject().Set("a", value.NewInt(1))
	result := ToString(v)
	assert.Equal(t, v.String()+"\n", result)
}

func TestToStringSnapshotType(t *testing.T) {
	snap := value.NewComplete(value.NewString("done"))
	result := ToString(snap)
	assert.Equal(t, `"done"`+"\n", result)
}
