package katex

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bornholm/notionhtml/internal/adapter/tex"
	"github.com/pkg/errors"
)

// Stands in for the KaTeX bundle: same global, same call signature.
const fakeScript = `
var katex = {
	renderToString: function(source, options) {
		if (source === "\\fail") {
			throw new Error("parse error");
		}
		var mode = options.displayMode ? "display" : "inline";
		return '<span class="katex ' + mode + '" data-throw="' + options.throwOnError + '">' + source + '</span>';
	}
};
`

func TestRenderMath(t *testing.T) {
	type testCase struct {
		Source      string
		DisplayMode bool
		Expected    string
	}

	testCases := []testCase{
		{
			Source:      "e^{i\\pi} + 1 = 0",
			DisplayMode: true,
			Expected:    `<span class="katex display" data-throw="false">e^{i\pi} + 1 = 0</span>`,
		},
		{
			Source:      " x_1 ",
			DisplayMode: false,
			Expected:    `<span class="katex inline" data-throw="false">x_1</span>`,
		},
		{
			Source:      "  ",
			DisplayMode: true,
			Expected:    "",
		},
	}

	renderer, err := NewRenderer(fakeScript)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, tc := range testCases {
		rendered, err := renderer.RenderMath(tc.Source, tc.DisplayMode)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := tc.Expected, rendered; e != g {
			t.Errorf("RenderMath(%q): expected '%s', got '%s'", tc.Source, e, g)
		}
	}
}

func TestRenderMathError(t *testing.T) {
	renderer, err := NewRenderer(fakeScript)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := renderer.RenderMath("\\fail", false); err == nil {
		t.Error("expected an error")
	}
}

func TestNewRendererWithoutKaTeX(t *testing.T) {
	if _, err := NewRenderer(`var notKatex = {};`); !errors.Is(err, ErrKaTeXNotFound) {
		t.Errorf("expected ErrKaTeXNotFound, got '%v'", err)
	}

	if _, err := NewRenderer(`var katex = { renderToString: 42 };`); !errors.Is(err, ErrKaTeXNotFound) {
		t.Errorf("expected ErrKaTeXNotFound, got '%v'", err)
	}

	if _, err := NewRenderer(`this is not javascript`); err == nil {
		t.Error("expected an error")
	}
}

func TestLazyRendererFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		w.Write([]byte(fakeScript))
	}))
	defer server.Close()

	renderer := NewLazyRenderer(server.URL+"/katex.min.js", time.Second, tex.NewRenderer())

	rendered, err := renderer.RenderMath("a", false)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := `<span class="katex inline" data-throw="false">a</span>`, rendered; e != g {
		t.Errorf("rendered: expected '%s', got '%s'", e, g)
	}
}

func TestLazyRendererFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "katex.min.js")

	if err := os.WriteFile(path, []byte(fakeScript), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	renderer := NewLazyRenderer(path, time.Second, tex.NewRenderer())

	rendered, err := renderer.RenderMath("b", true)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := `<span class="katex display" data-throw="false">b</span>`, rendered; e != g {
		t.Errorf("rendered: expected '%s', got '%s'", e, g)
	}
}

func TestLazyRendererFallback(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	renderer := NewLazyRenderer(server.URL+"/katex.min.js", time.Second, tex.NewRenderer())

	for i := 0; i < 2; i++ {
		rendered, err := renderer.RenderMath("a < b", false)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := `<span class="math math-inline">\(a &lt; b\)</span>`, rendered; e != g {
			t.Errorf("rendered: expected '%s', got '%s'", e, g)
		}
	}
}
