package render

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/notionhtml/internal/command"
	"github.com/pkg/errors"
)

const testPageID = "a2449a4a48884c49bd5225828d29b2ed"

const testRecordMap = `{
	"recordMap": {
		"block": {
			"a2449a4a-4888-4c49-bd52-25828d29b2ed": {
				"role": "reader",
				"value": {"id": "a2449a4a-4888-4c49-bd52-25828d29b2ed", "type": "page", "properties": {"title": [["My page"]]}, "content": ["h"]}
			},
			"h": {
				"role": "reader",
				"value": {"id": "h", "type": "header", "properties": {"title": [["Heading"]]}}
			}
		}
	},
	"cursor": {"stack": []}
}`

func newTestStore(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testRecordMap))
	}))

	t.Cleanup(server.Close)

	return server
}

func runApp(t *testing.T, args ...string) string {
	var stdout bytes.Buffer

	app := command.NewApp("notionhtml", "", Command())
	app.Writer = &stdout
	app.ErrWriter = io.Discard

	if err := app.Run(append([]string{"notionhtml"}, args...)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return stdout.String()
}

func TestRenderCommandStdout(t *testing.T) {
	store := newTestStore(t)

	output := runApp(t, "render", "--store-url", store.URL, "--downgrade-headings", testPageID)

	if e, g := "<h2>Heading</h2>", output; e != g {
		t.Errorf("output: expected '%s', got '%s'", e, g)
	}
}

func TestRenderCommandStandaloneFile(t *testing.T) {
	store := newTestStore(t)

	dir := t.TempDir()

	output := runApp(t, "render", "--store-url", store.URL, "--standalone", "--destination", "local://"+dir, "-o", "out/page.html", testPageID)

	if e, g := "", output; e != g {
		t.Errorf("output: expected '%s', got '%s'", e, g)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out/page.html"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, expected := range []string{"<title>My page</title>", "<h1>Heading</h1>", "katex.min.css"} {
		if !strings.Contains(string(data), expected) {
			t.Errorf("expected file to contain '%s', got:\n%s", expected, data)
		}
	}
}
