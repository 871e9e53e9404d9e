package client

import (
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests answered with 429 Too Many
// Requests, waiting for the delay advertised by the store.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	for attempt := 0; ; attempt++ {
		res, err := transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		io.Copy(io.Discard, res.Body)
		res.Body.Close()

		wait := t.getWaitTime(res)

		slog.WarnContext(req.Context(), "store rate limited the request",
			slog.Duration("wait_time", wait),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", t.MaxRetries),
		)

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}

		if err := rewind(req); err != nil {
			return nil, errors.WithStack(err)
		}
	}
}

func rewind(req *http.Request) error {
	if req.Body == nil {
		return nil
	}

	if req.GetBody == nil {
		return errors.New("cannot retry request with one-time reader body")
	}

	body, err := req.GetBody()
	if err != nil {
		return errors.Wrap(err, "could not rewind request body")
	}

	req.Body = body

	return nil
}

func (t *RateLimitTransport) getWaitTime(res *http.Response) time.Duration {
	retryAfter := res.Header.Get("Retry-After")
	if retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			wait := time.Duration(seconds) * time.Second
			jitter := time.Duration(rand.Float64() * float64(wait))
			return wait + jitter
		}
		if date, err := http.ParseTime(retryAfter); err == nil {
			return time.Until(date)
		}
	}

	return t.DefaultWait
}

var _ http.RoundTripper = &RateLimitTransport{}
