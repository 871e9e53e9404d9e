// Package filesystem writes rendered pages to local or remote
// filesystems, designated by a DSN (local:///var/www, sftp://user@host/dir...).
package filesystem

import (
	"context"

	"github.com/spf13/afero"
)

// Backend gives access to a filesystem for the duration of fn.
type Backend interface {
	Mount(ctx context.Context, fn func(ctx context.Context, fs afero.Fs) error) error
}
