package filesystem

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// WriteFile mounts the backend and writes data to the named file, creating
// the missing parent directories.
func WriteFile(ctx context.Context, backend Backend, name string, data []byte) error {
	err := backend.Mount(ctx, func(ctx context.Context, fs afero.Fs) error {
		if dir := filepath.Dir(name); dir != "." {
			if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
				return errors.Wrapf(err, "could not create directory '%s'", dir)
			}
		}

		if err := afero.WriteFile(fs, name, data, 0o644); err != nil {
			return errors.Wrapf(err, "could not write file '%s'", name)
		}

		slog.DebugContext(ctx, "file written", slog.String("filesystem", fs.Name()), slog.String("name", name), slog.Int("size", len(data)))

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
