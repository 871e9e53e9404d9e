package setup

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/notionhtml/internal/blockstore"
	"github.com/bornholm/notionhtml/internal/build"
	"github.com/bornholm/notionhtml/internal/config"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/bornholm/notionhtml/pkg/client"
	"github.com/pkg/errors"
)

var getBlockStoreFromConfig = createFromConfigOnce(NewBlockStoreFromConfig)

func NewBlockStoreFromConfig(ctx context.Context, conf *config.Config) (port.BlockStore, error) {
	baseURL, err := url.Parse(conf.Store.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse store base url '%s'", conf.Store.BaseURL)
	}

	options := []client.OptionFunc{
		client.WithBaseURL(baseURL),
		client.WithUserAgent("notionhtml/" + build.ShortVersion),
		client.WithHTTPClient(&http.Client{
			Timeout:   conf.Store.Timeout,
			Transport: http.DefaultTransport,
		}),
	}

	if conf.Store.MaxRetries > 0 {
		options = append(options, client.WithRetries(conf.Store.MaxRetries, time.Second))
	}

	var store port.BlockStore = client.New(options...)

	if conf.Store.RateLimit.Interval > 0 {
		store = blockstore.NewRateLimitedBlockStore(store, conf.Store.RateLimit.Interval, conf.Store.RateLimit.Burst)
	}

	store = blockstore.NewInstrumentedBlockStore(store)
	store = blockstore.NewLoggerBlockStore(store)

	return store, nil
}
