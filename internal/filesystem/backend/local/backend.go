package local

import (
	"context"
	"os"

	"github.com/bornholm/notionhtml/internal/filesystem"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type Backend struct {
	basePath string
}

// Mount implements filesystem.Backend. The base directory is created if
// missing. An empty base path gives access to the whole filesystem.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, fs afero.Fs) error) error {
	var fs afero.Fs = afero.NewOsFs()

	if b.basePath != "" {
		if err := os.MkdirAll(b.basePath, os.ModePerm); err != nil {
			return errors.WithStack(err)
		}

		fs = afero.NewBasePathFs(fs, b.basePath)
	}

	if err := fn(ctx, fs); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(basePath string) *Backend {
	return &Backend{
		basePath: basePath,
	}
}

var _ filesystem.Backend = &Backend{}
