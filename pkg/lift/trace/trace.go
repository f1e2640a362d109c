package trace

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/ib-77/lift/pkg/lift/check"
)

const anonymous = "anonymous"

type tracer struct {
	name string
	options
}

func newTracer(name string, opts []Option) *tracer {
	if name == "" {
		name = anonymous
	}
	return &tracer{name: name, options: newOptions(opts)}
}

// enter emits the Function and Input records and returns the id of the call.
func (t *tracer) enter(in []any) uuid.UUID {
	id := uuid.New()
	t.emit(id, FieldFunction, t.name)
	t.emit(id, FieldInput, t.render(in))
	return id
}

func (t *tracer) leave(id uuid.UUID, out []any) {
	t.emit(id, FieldOutput, t.render(out))
}

func (t *tracer) emit(id uuid.UUID, field Field, value string) {
	t.sink.Emit(Record{Call: id, Function: t.name, Field: field, Value: value})
}

// WithLogging returns a function with the signature of f that reports every
// call of f under name.
func WithLogging[T, U any](name string, f func(T) U, opts ...Option) func(T) U {
	t := newTracer(name, opts)
	return func(in T) U {
		id := t.enter([]any{in})
		out := f(in)
		t.leave(id, []any{out})
		return out
	}
}

func WithLogging2[A, B, U any](name string, f func(A, B) U, opts ...Option) func(A, B) U {
	t := newTracer(name, opts)
	return func(a A, b B) U {
		id := t.enter([]any{a, b})
		out := f(a, b)
		t.leave(id, []any{out})
		return out
	}
}

// Wrap is WithLogging for a function of any signature. It panics when F is
// not a function type.
func Wrap[F any](name string, f F, opts ...Option) F {
	fv := reflect.ValueOf(f)
	check.AssertThat(fv.Kind() == reflect.Func && !fv.IsNil())

	t := newTracer(name, opts)
	ft := fv.Type()
	wrapped := reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		id := t.enter(interfaces(args))

		var results []reflect.Value
		if ft.IsVariadic() {
			results = fv.CallSlice(args)
		} else {
			results = fv.Call(args)
		}

		t.leave(id, interfaces(results))
		return results
	})
	return wrapped.Interface().(F)
}

func interfaces(values []reflect.Value) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v.Interface())
	}
	return out
}
