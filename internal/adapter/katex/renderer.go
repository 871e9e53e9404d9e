// Package katex typesets equations server side by running the KaTeX
// library inside an embedded JavaScript runtime.
package katex

import (
	"strings"
	"sync"

	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/dop251/goja"
	"github.com/pkg/errors"
)

var ErrKaTeXNotFound = errors.New("katex.renderToString not found in script")

// Renderer calls katex.renderToString. A goja runtime is not safe for
// concurrent use, calls are serialized.
type Renderer struct {
	mutex          sync.Mutex
	runtime        *goja.Runtime
	renderToString goja.Callable
}

// RenderMath implements [port.MathRenderer].
func (r *Renderer) RenderMath(source string, displayMode bool) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", nil
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	options := r.runtime.NewObject()

	if err := options.Set("displayMode", displayMode); err != nil {
		return "", errors.WithStack(err)
	}

	// Invalid TeX is rendered as an error span instead of failing the page
	if err := options.Set("throwOnError", false); err != nil {
		return "", errors.WithStack(err)
	}

	value, err := r.renderToString(goja.Undefined(), r.runtime.ToValue(source), options)
	if err != nil {
		return "", errors.Wrapf(err, "could not render equation '%s'", source)
	}

	return value.String(), nil
}

// NewRenderer evaluates the given KaTeX bundle (katex.min.js) and binds
// its global katex object.
func NewRenderer(script string) (*Renderer, error) {
	runtime := goja.New()

	if _, err := runtime.RunScript("katex.min.js", script); err != nil {
		return nil, errors.Wrap(err, "could not evaluate katex script")
	}

	katex := runtime.Get("katex")
	if katex == nil || goja.IsUndefined(katex) || goja.IsNull(katex) {
		return nil, errors.WithStack(ErrKaTeXNotFound)
	}

	renderToString, ok := goja.AssertFunction(katex.ToObject(runtime).Get("renderToString"))
	if !ok {
		return nil, errors.WithStack(ErrKaTeXNotFound)
	}

	return &Renderer{
		runtime:        runtime,
		renderToString: renderToString,
	}, nil
}

var _ port.MathRenderer = &Renderer{}
