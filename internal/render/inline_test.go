package render

import (
	"context"
	"testing"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/pkg/errors"
)

func TestColorClass(t *testing.T) {
	type testCase struct {
		Color    string
		Expected string
	}

	testCases := []testCase{
		{Color: "teal_background", Expected: "background-green"},
		{Color: "red", Expected: "color-red"},
		{Color: "blue_background", Expected: "background-blue"},
		{Color: "teal", Expected: "color-green"},
		{Color: "gray_background", Expected: "background-gray"},
	}

	for _, tc := range testCases {
		if e, g := tc.Expected, ColorClass(tc.Color); e != g {
			t.Errorf("ColorClass(%q): expected '%s', got '%s'", tc.Color, e, g)
		}
	}
}

func TestRenderRuns(t *testing.T) {
	source := newMemorySource(`[
		{"id": "page-1", "type": "page", "properties": {"title": [["Other <page>"]]}},
		{"id": "page-2", "type": "page"}
	]`)

	type testCase struct {
		Name     string
		Runs     string
		Options  RunOptions
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "bold",
			Runs:     `[["hello", [["b"]]]]`,
			Options:  DefaultRunOptions,
			Expected: "<strong>hello</strong>",
		},
		{
			Name:     "escape",
			Runs:     `[["<x>", []]]`,
			Options:  DefaultRunOptions,
			Expected: "&lt;x&gt;",
		},
		{
			Name:     "no escape",
			Runs:     `[["<x>", []]]`,
			Options:  RunOptions{Escape: false, Breaks: true},
			Expected: "<x>",
		},
		{
			Name:     "nested annotations in order",
			Runs:     `[["hi", [["b"], ["i"], ["a", "https://example.com/?a=1&b=2"]]]]`,
			Options:  DefaultRunOptions,
			Expected: `<a href="https://example.com/?a=1&amp;b=2"><em><strong>hi</strong></em></a>`,
		},
		{
			Name:     "all simple annotations",
			Runs:     `[["a", [["_"]]], ["b", [["s"]]], ["c", [["c"]]], ["d", [["h", "teal_background"]]]]`,
			Options:  DefaultRunOptions,
			Expected: `<u>a</u><strike>b</strike><code>c</code><span class="background-green">d</span>`,
		},
		{
			Name:     "breaks",
			Runs:     `[["line 1\nline 2"]]`,
			Options:  DefaultRunOptions,
			Expected: "line 1<br>line 2",
		},
		{
			Name:     "no breaks",
			Runs:     `[["line 1\nline 2"]]`,
			Options:  RunOptions{Escape: true, Breaks: false},
			Expected: "line 1\nline 2",
		},
		{
			Name:     "page reference short-circuits",
			Runs:     `[["‣", [["p", "page-1"], ["b"]]]]`,
			Options:  DefaultRunOptions,
			Expected: `<a data-page-id="page-1">Other &lt;page&gt;</a>`,
		},
		{
			Name:     "untitled page reference",
			Runs:     `[["‣", [["p", "page-2"]]], ["‣", [["p", "page-3"]]]]`,
			Options:  DefaultRunOptions,
			Expected: `<a data-page-id="page-2">Untitled</a><a data-page-id="page-3">Untitled</a>`,
		},
		{
			Name:     "unknown annotation",
			Runs:     `[["mention", [["u", "user-id"], ["b"]]]]`,
			Options:  DefaultRunOptions,
			Expected: "<strong>mention</strong>",
		},
		{
			Name:     "inline equation without renderer",
			Runs:     `[["⁍", [["e", "a<b"]]]]`,
			Options:  DefaultRunOptions,
			Expected: "a&lt;b",
		},
	}

	renderer := NewRenderer(source)

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			html, err := renderer.RenderRuns(context.Background(), mustRichText(tc.Runs), tc.Options)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, html; e != g {
				t.Errorf("RenderRuns(%s): expected '%s', got '%s'", tc.Runs, e, g)
			}
		})
	}
}

type fakeMathRenderer struct {
	err error
}

func (r *fakeMathRenderer) RenderMath(source string, displayMode bool) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	if displayMode {
		return "<math display>" + source + "</math>", nil
	}

	return "<math>" + source + "</math>", nil
}

func TestRenderRunsEquation(t *testing.T) {
	source := newMemorySource(`[]`)

	renderer := NewRenderer(source, WithMathRenderer(&fakeMathRenderer{}))

	html, err := renderer.RenderRuns(context.Background(), mustRichText(`[["⁍", [["e", "x^2"]]]]`), DefaultRunOptions)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "<math>x^2</math>", html; e != g {
		t.Errorf("html: expected '%s', got '%s'", e, g)
	}

	renderer = NewRenderer(source, WithMathRenderer(&fakeMathRenderer{err: errors.New("parse error")}))

	html, err = renderer.RenderRuns(context.Background(), mustRichText(`[["⁍", [["e", "\\frac{"]]]]`), DefaultRunOptions)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := `\frac{`, html; e != g {
		t.Errorf("html: expected '%s', got '%s'", e, g)
	}
}

func TestRenderRunsStoreFailure(t *testing.T) {
	source := newMemorySource(`[]`)
	source.err = errors.New("connection refused")

	renderer := NewRenderer(source)

	_, err := renderer.RenderRuns(context.Background(), model.RichText{
		{Text: "‣", Annotations: []model.Annotation{{Code: model.AnnotationPageReference, Value: "page-1"}}},
	}, DefaultRunOptions)
	if err == nil {
		t.Errorf("expected an error, got nil")
	}
}
