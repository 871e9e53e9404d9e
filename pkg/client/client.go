// Package client implements a minimal client for the private block API of
// Notion, the one its web application uses to read public pages.
package client

import (
	"net/http"
	"net/url"

	"github.com/bornholm/notionhtml/internal/core/port"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
	}
}

var _ port.BlockStore = &Client{}
