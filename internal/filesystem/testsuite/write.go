package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/notionhtml/internal/filesystem"
	"github.com/bornholm/notionhtml/internal/filesystem/backend"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func TestWriteFile(t *testing.T, dsn string) {
	t.Logf("Using backend '%s'", dsn)

	b, err := backend.New(dsn)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data := []byte("<h1>Heading</h1>")

	if err := filesystem.WriteFile(ctx, b, "pages/page.html", data); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Overwriting an existing file should succeed
	if err := filesystem.WriteFile(ctx, b, "pages/page.html", data); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	err = b.Mount(ctx, func(ctx context.Context, fs afero.Fs) error {
		written, err := afero.ReadFile(fs, "pages/page.html")
		if err != nil {
			return errors.WithStack(err)
		}

		if e, g := string(data), string(written); e != g {
			t.Errorf("written: expected '%s', got '%s'", e, g)
		}

		return nil
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
}
