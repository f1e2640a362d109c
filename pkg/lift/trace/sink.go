package trace

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink receives diagnostic records in emission order.
type Sink interface {
	Emit(r Record)
}

type SinkFunc func(r Record)

func (f SinkFunc) Emit(r Record) {
	f(r)
}

// WriterSink writes one "<Field>: <value>" line per record.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s: %s\n", r.Field, r.Value)
}

var stdout = NewWriterSink(os.Stdout)

// Stdout is the default sink.
func Stdout() Sink {
	return stdout
}
