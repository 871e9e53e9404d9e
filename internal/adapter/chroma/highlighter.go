// Package chroma highlights code blocks with github.com/alecthomas/chroma.
package chroma

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/pkg/errors"
)

type Highlighter struct {
	formatter *html.Formatter
	style     *chroma.Style
}

// Highlight implements [port.Highlighter].
func (h *Highlighter) Highlight(source string, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", errors.WithStack(port.ErrUnsupportedLanguage)
	}

	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", errors.WithStack(err)
	}

	var buff bytes.Buffer

	if err := h.formatter.Format(&buff, h.style, iterator); err != nil {
		return "", errors.WithStack(err)
	}

	return buff.String(), nil
}

// WriteCSS writes the stylesheet matching the classes of the highlighted
// markup.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	if err := h.formatter.WriteCSS(w, h.style); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewHighlighter(funcs ...OptionFunc) *Highlighter {
	opts := NewOptions(funcs...)

	return &Highlighter{
		formatter: html.New(
			html.WithClasses(true),
			html.PreventSurroundingPre(true),
			html.ClassPrefix(opts.ClassPrefix),
		),
		style: styles.Get(opts.Style),
	}
}

var _ port.Highlighter = &Highlighter{}
