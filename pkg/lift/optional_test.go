package lift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional_ZeroValueIsAbsent(t *testing.T) {
	t.Parallel()
	var o Optional[int]

	assert.True(t, o.IsAbsent())
	assert.False(t, o.IsPresent())
	assert.Equal(t, Absent[int](), o)
}

func TestOptional_Present(t *testing.T) {
	t.Parallel()
	o := Present(7)

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, o.OrElse(0))
	assert.Equal(t, "Present(7)", o.String())
}

func TestOptional_AbsentOrElse(t *testing.T) {
	t.Parallel()
	o := Absent[string]()

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "fallback", o.OrElse("fallback"))
	assert.Equal(t, "Absent", o.String())
}

func TestOptional_FromOk(t *testing.T) {
	t.Parallel()
	ports := map[string]int{"http": 80}

	assert.Equal(t, Present(80), FromOk(ports["http"], true))

	v, ok := ports["gopher"]
	assert.Equal(t, Absent[int](), FromOk(v, ok))
}

func TestOptional_FromPtr(t *testing.T) {
	t.Parallel()
	n := 3

	assert.Equal(t, Present(3), FromPtr(&n))
	assert.Equal(t, Absent[int](), FromPtr[int](nil))
}

func TestOptional_FromValue(t *testing.T) {
	t.Parallel()

	assert.True(t, FromValue[*int](nil).IsAbsent())
	assert.True(t, FromValue[[]byte](nil).IsAbsent())
	assert.True(t, FromValue[any](nil).IsAbsent())
	assert.Equal(t, Present(0), FromValue(0))
	assert.Equal(t, Present(""), FromValue(""))
}

func TestOptional_NestedIsNotFlattened(t *testing.T) {
	t.Parallel()
	inner := Absent[int]()
	outer := Present(inner)

	assert.True(t, outer.IsPresent())
	got, _ := outer.Get()
	assert.True(t, got.IsAbsent())
	assert.Equal(t, "Present(Absent)", outer.String())
}
