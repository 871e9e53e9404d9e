package chroma

type Options struct {
	Style       string
	ClassPrefix string
}

type OptionFunc func(opts *Options)

func WithStyle(style string) OptionFunc {
	return func(opts *Options) {
		opts.Style = style
	}
}

func WithClassPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.ClassPrefix = prefix
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Style:       "github",
		ClassPrefix: "",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
