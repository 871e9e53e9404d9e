package katex

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/pkg/errors"
)

// LazyRenderer loads the KaTeX bundle on first use. When the bundle
// cannot be loaded, every equation is handed to the fallback renderer.
type LazyRenderer struct {
	source   string
	timeout  time.Duration
	fallback port.MathRenderer

	once     sync.Once
	renderer port.MathRenderer
}

// RenderMath implements [port.MathRenderer].
func (r *LazyRenderer) RenderMath(source string, displayMode bool) (string, error) {
	r.once.Do(r.load)
	return r.renderer.RenderMath(source, displayMode)
}

func (r *LazyRenderer) load() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	ctx = slogx.WithAttrs(ctx, slog.String("katexScript", r.source))

	script, err := LoadScript(ctx, r.source)
	if err != nil {
		slog.WarnContext(ctx, "could not load katex script, falling back", slogx.Error(err))
		r.renderer = r.fallback
		return
	}

	renderer, err := NewRenderer(script)
	if err != nil {
		slog.WarnContext(ctx, "could not initialize katex, falling back", slogx.Error(err))
		r.renderer = r.fallback
		return
	}

	slog.DebugContext(ctx, "katex script loaded")

	r.renderer = renderer
}

func NewLazyRenderer(source string, timeout time.Duration, fallback port.MathRenderer) *LazyRenderer {
	return &LazyRenderer{
		source:   source,
		timeout:  timeout,
		fallback: fallback,
	}
}

var _ port.MathRenderer = &LazyRenderer{}

// LoadScript reads the KaTeX bundle from a local path or an http(s) URL.
func LoadScript(ctx context.Context, source string) (string, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return "", errors.WithStack(err)
		}

		return string(data), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected response status '%s'", res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(data), nil
}
