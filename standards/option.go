package standards

type Options struct {
	strictRange bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

// StrictRangeOption fails the augmented curve when an A1 point lies outside the A2 pressure range
// instead of leaving the point out.
func StrictRangeOption() Option {
	return func(o *Options) {
		o.strictRange = true
	}
}
