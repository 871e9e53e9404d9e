package setup

import (
	"context"
	stdhttp "net/http"

	"github.com/bornholm/notionhtml/internal/config"
	"github.com/bornholm/notionhtml/internal/http"
	"github.com/bornholm/notionhtml/internal/http/handler/metrics"
	"github.com/bornholm/notionhtml/internal/http/handler/page"
	"github.com/bornholm/notionhtml/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	store, err := getBlockStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create block store from config")
	}

	documentOptions, err := NewDocumentOptionsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create document options from config")
	}

	stylesheet, err := NewStylesheetFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create stylesheet from config")
	}

	var pages stdhttp.Handler = page.NewHandler(store, stylesheet, documentOptions...)

	if conf.HTTP.RateLimit.Enabled {
		pages = ratelimit.Middleware(
			ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
			ratelimit.WithLimit(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
		)(pages)
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithAllowedOrigins(conf.HTTP.AllowedOrigins...),
		http.WithMount("/pages/", pages),
		http.WithMount("/metrics/", metrics.NewHandler()),
	}

	server := http.NewServer(options...)

	return server, nil
}
