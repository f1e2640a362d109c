package trace

import "github.com/npillmayer/schuko/tracing"

// TracingSink forwards records to a schuko trace at info level.
type TracingSink struct {
	trace tracing.Trace
}

func NewTracingSink(t tracing.Trace) *TracingSink {
	return &TracingSink{trace: t}
}

// NewTracingSinkFor selects the trace by key, e.g. "lift.trace".
func NewTracingSinkFor(key string) *TracingSink {
	return NewTracingSink(tracing.Select(key))
}

func (s *TracingSink) Emit(r Record) {
	s.trace.Infof("%s", r)
}
