package trace

type Option func(*options)

type options struct {
	sink   Sink
	render Renderer
}

func WithSink(s Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(o *options) {
		if r != nil {
			o.render = r
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		sink:   Stdout(),
		render: RenderDefault,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
