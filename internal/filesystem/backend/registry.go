package backend

import (
	"net/url"

	"github.com/bornholm/notionhtml/internal/filesystem"
	"github.com/pkg/errors"
)

var backendFactories = make(map[string]BackendFactory, 0)

type BackendFactory func(url *url.URL) (filesystem.Backend, error)

func RegisterBackendFactory(scheme string, factory BackendFactory) {
	backendFactories[scheme] = factory
}

// New returns the backend matching the scheme of the given DSN. The
// backend packages register their scheme when imported.
func New(dsn string) (filesystem.Backend, error) {
	url, err := url.Parse(dsn)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	factory, exists := backendFactories[url.Scheme]
	if !exists {
		return nil, errors.Wrapf(ErrSchemeNotRegistered, "no driver associated with scheme '%s'", url.Scheme)
	}

	backend, err := factory(url)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create backend for scheme '%s'", url.Scheme)
	}

	return backend, nil
}
