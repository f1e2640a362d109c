package lift

import "reflect"

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsError reports whether x is a non-nil error or a Failable in the error
// variant.
func IsError(x any) bool {
	if IsNil(x) {
		return false
	}
	switch v := x.(type) {
	case ErrorReporter:
		return v.IsErr()
	case error:
		return !IsNil(v)
	}
	return false
}

// IsAbsent reports whether x is nil-like or an absent Optional.
func IsAbsent(x any) bool {
	if IsNil(x) {
		return true
	}
	if v, ok := x.(AbsenceReporter); ok {
		return v.IsAbsent()
	}
	return false
}
