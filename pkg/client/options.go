package client

import (
	"net/http"
	"net/url"
	"time"
)

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	UserAgent  string
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithUserAgent(userAgent string) OptionFunc {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

// WithRetries enables the retry of rate limited (429) requests. Requests
// are never retried by default.
func WithRetries(maxRetries int, defaultWait time.Duration) OptionFunc {
	return func(opts *Options) {
		base := opts.HTTPClient.Transport
		if transport, ok := base.(*RateLimitTransport); ok {
			base = transport.Base
		}

		httpClient := *opts.HTTPClient
		httpClient.Transport = &RateLimitTransport{
			Base:        base,
			MaxRetries:  maxRetries,
			DefaultWait: defaultWait,
		}

		opts.HTTPClient = &httpClient
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "https",
			Host:   "www.notion.so",
		},
		HTTPClient: &http.Client{
			Timeout: time.Minute,
			Transport: &RateLimitTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  0,
				DefaultWait: time.Second,
			},
		},
		UserAgent: "notionhtml",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
