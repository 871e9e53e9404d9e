package local

import (
	"net/url"
	"strings"

	"github.com/bornholm/notionhtml/internal/filesystem"
	"github.com/bornholm/notionhtml/internal/filesystem/backend"
)

func init() {
	backend.RegisterBackendFactory("local", FromDSN)
}

func FromDSN(dsn *url.URL) (filesystem.Backend, error) {
	basePath := dsn.Host + "/" + strings.TrimPrefix(dsn.Path, "/")
	backend := New(basePath)
	return backend, nil
}
