package emailjs

import (
	"net/http"
	"net/url"
	"time"

	"github.com/advertisingnotdead/agency/pkg/client"
)

type Options struct {
	Endpoint   *url.URL
	HTTPClient *http.Client
}

type OptionFunc func(opts *Options)

func WithEndpoint(endpoint *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.Endpoint = endpoint
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Endpoint: &url.URL{
			Scheme: "https",
			Host:   "api.emailjs.com",
			Path:   "/api/v1.0/email/send",
		},
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &client.RateLimitTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  3,
				DefaultWait: time.Second,
			},
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
