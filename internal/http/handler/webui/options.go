package webui

import "net/http"

type Options struct {
	ContactRateLimit func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// WithContactRateLimit wraps the contact form submission endpoint, which is
// the only unauthenticated write on the site.
func WithContactRateLimit(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.ContactRateLimit = middleware
	}
}
