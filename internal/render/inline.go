package render

import (
	"context"
	"html"
	"log/slog"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/metrics"
	"github.com/pkg/errors"
)

const untitled = "Untitled"

type RunOptions struct {
	// Escape HTML-escapes the text of each run before annotating it.
	Escape bool
	// Breaks converts newlines to <br> once the runs are joined.
	Breaks bool
}

var DefaultRunOptions = RunOptions{
	Escape: true,
	Breaks: true,
}

// RenderRuns renders rich text. Annotations of a run are applied in order,
// each one wrapping the result of the previous one, except page
// references: they replace the whole run with a link to the referenced
// page and the remaining annotations of the run are ignored.
func (r *Renderer) RenderRuns(ctx context.Context, runs model.RichText, opts RunOptions) (string, error) {
	var sb strings.Builder

	for _, run := range runs {
		text, err := r.renderRun(ctx, run, opts)
		if err != nil {
			return "", errors.WithStack(err)
		}

		sb.WriteString(text)
	}

	joined := sb.String()

	if opts.Breaks {
		joined = strings.ReplaceAll(joined, "\n", "<br>")
	}

	return joined, nil
}

func (r *Renderer) renderRun(ctx context.Context, run model.TextRun, opts RunOptions) (string, error) {
	text := run.Text
	if opts.Escape {
		text = html.EscapeString(text)
	}

	for _, annotation := range run.Annotations {
		switch annotation.Code {
		case model.AnnotationBold:
			text = "<strong>" + text + "</strong>"
		case model.AnnotationItalic:
			text = "<em>" + text + "</em>"
		case model.AnnotationUnderline:
			text = "<u>" + text + "</u>"
		case model.AnnotationStrike:
			text = "<strike>" + text + "</strike>"
		case model.AnnotationLink:
			text = `<a href="` + html.EscapeString(annotation.Value) + `">` + text + "</a>"
		case model.AnnotationColor:
			text = `<span class="` + ColorClass(annotation.Value) + `">` + text + "</span>"
		case model.AnnotationInlineCode:
			text = "<code>" + text + "</code>"
		case model.AnnotationEquation:
			text = r.renderMath(ctx, annotation.Value, false)
		case model.AnnotationPageReference:
			pageID := model.BlockID(annotation.Value)

			title, err := r.pageTitle(ctx, pageID)
			if err != nil {
				return "", errors.WithStack(err)
			}

			return `<a data-page-id="` + html.EscapeString(string(pageID)) + `">` + html.EscapeString(title) + "</a>", nil
		default:
			metrics.UnhandledAnnotations.WithLabelValues(string(annotation.Code)).Inc()
			slog.WarnContext(ctx, "unhandled text annotation", slog.String("annotation", string(annotation.Code)), slog.String("value", annotation.Value))
		}
	}

	return text, nil
}

// pageTitle returns the plain title of the given page, fetching it when
// needed.
func (r *Renderer) pageTitle(ctx context.Context, pageID model.BlockID) (string, error) {
	if err := r.source.LoadBlocks(ctx, pageID); err != nil {
		return "", errors.Wrapf(err, "could not load page '%s'", pageID)
	}

	page, exists := r.source.Block(pageID)
	if !exists {
		return untitled, nil
	}

	return titleOrUntitled(page), nil
}

func titleOrUntitled(block *model.Block) string {
	title := block.Title().PlainText()
	if title == "" {
		return untitled
	}

	return title
}

// renderMath never fails: errors of the math renderer are logged and the
// escaped source is used instead.
func (r *Renderer) renderMath(ctx context.Context, source string, displayMode bool) string {
	if r.opts.MathRenderer == nil {
		return html.EscapeString(source)
	}

	rendered, err := r.opts.MathRenderer.RenderMath(source, displayMode)
	if err != nil {
		slog.WarnContext(ctx, "could not render equation", slogx.Error(errors.WithStack(err)), slog.String("source", source))
		return html.EscapeString(source)
	}

	return rendered
}

// ColorClass derives the CSS class of a color hint such as "red" or
// "teal_background".
func ColorClass(color string) string {
	base, _, _ := strings.Cut(color, "_")
	if base == "teal" {
		base = "green"
	}

	if strings.Contains(color, "background") {
		return "background-" + base
	}

	return "color-" + base
}
