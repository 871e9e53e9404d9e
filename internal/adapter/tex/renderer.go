// Package tex renders equations as delimited TeX sources, ready to be
// typeset in the browser by KaTeX auto-render.
package tex

import (
	"html"
	"strings"

	"github.com/bornholm/notionhtml/internal/core/port"
)

type Renderer struct{}

// RenderMath implements [port.MathRenderer]. It never fails: invalid TeX
// is left to the client side typesetter.
func (r *Renderer) RenderMath(source string, displayMode bool) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", nil
	}

	if displayMode {
		return `<span class="math math-display">\[` + html.EscapeString(source) + `\]</span>`, nil
	}

	return `<span class="math math-inline">\(` + html.EscapeString(source) + `\)</span>`, nil
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ port.MathRenderer = &Renderer{}
