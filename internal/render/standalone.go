package render

import (
	"html/template"
	"io"

	"github.com/pkg/errors"
)

const KaTeXBaseURL = "https://unpkg.com/katex@0.13.1/dist"

var standaloneTemplate = template.Must(template.New("").Parse(`<!DOCTYPE html>
<html>
	<head>
		<meta charset="utf-8">
		<title>{{ .Title }}</title>
		<style>
			img {
				max-width: 100%;
			}
			{{ .Stylesheet }}
		</style>
		<link rel="stylesheet" href="{{ .KaTeXBaseURL }}/katex.min.css">
		<script defer src="{{ .KaTeXBaseURL }}/katex.min.js"></script>
		<script defer src="{{ .KaTeXBaseURL }}/contrib/auto-render.min.js" onload="renderMathInElement(document.body)"></script>
	</head>
	<body>
		{{ .Body }}
	</body>
</html>
`))

// StandalonePage is a rendered document wrapped in a complete HTML page,
// with the KaTeX assets needed by the math markup.
type StandalonePage struct {
	Title string
	Body  string
	// Stylesheet is inlined in the page head, typically the highlighter
	// classes.
	Stylesheet string
}

func WriteStandalone(w io.Writer, page StandalonePage) error {
	data := struct {
		Title        string
		Body         template.HTML
		Stylesheet   template.CSS
		KaTeXBaseURL string
	}{
		Title:        page.Title,
		Body:         template.HTML(page.Body),
		Stylesheet:   template.CSS(page.Stylesheet),
		KaTeXBaseURL: KaTeXBaseURL,
	}

	if err := standaloneTemplate.Execute(w, data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
