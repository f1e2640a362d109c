package lift

import "fmt"

// Optional holds a value of type T or nothing. The zero value is Absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// FromOk builds an Optional from the comma-ok idiom, e.g. a map lookup.
func FromOk[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}

func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromValue treats nil-like values (see IsNil) as absence.
func FromValue[T any](v T) Optional[T] {
	if IsNil(v) {
		return Absent[T]()
	}
	return Present(v)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}
