package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestWriteStandalone(t *testing.T) {
	var buff bytes.Buffer

	page := StandalonePage{
		Title:      "Fish & Chips",
		Body:       `<p class="block-text">Hello</p>`,
		Stylesheet: ".chroma { color: red; }",
	}

	if err := WriteStandalone(&buff, page); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	html := buff.String()

	for _, expected := range []string{
		"<title>Fish &amp; Chips</title>",
		`<p class="block-text">Hello</p>`,
		".chroma { color: red; }",
		KaTeXBaseURL + "/katex.min.css",
		"max-width: 100%;",
	} {
		if !strings.Contains(html, expected) {
			t.Errorf("expected page to contain '%s', got:\n%s", expected, html)
		}
	}
}
