package tex

import (
	"testing"

	"github.com/pkg/errors"
)

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
			Expected:    `<span class="math math-display">\[e^{i\pi} + 1 = 0\]</span>`,
		},
		{
			Source:      "a < b",
			DisplayMode: false,
			Expected:    `<span class="math math-inline">\(a &lt; b\)</span>`,
		},
		{
			Source:      "  ",
			DisplayMode: true,
			Expected:    "",
		},
	}

	renderer := NewRenderer()

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
