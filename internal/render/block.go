package render

import (
	"context"
	"html"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/bornholm/notionhtml/internal/metrics"
	"github.com/pkg/errors"
)

// RenderBlock renders the given block and its descendants. Blocks that
// cannot be loaded and blocks of unknown types render as an empty string.
// Only store failures are returned as errors.
func (r *Renderer) RenderBlock(ctx context.Context, id model.BlockID) (string, error) {
	if err := r.source.LoadBlocks(ctx, id); err != nil {
		return "", errors.Wrapf(err, "could not load block '%s'", id)
	}

	block, exists := r.source.Block(id)
	if !exists {
		metrics.UnresolvedBlocks.Inc()
		slog.WarnContext(ctx, "could not load block", slog.String("block_id", string(id)), slog.String("url", "https://notion.so/"+id.Compact()))
		return "", nil
	}

	var (
		markup string
		err    error
	)

	switch block.Type {
	case model.BlockTypeHeader, model.BlockTypeSubHeader, model.BlockTypeSubSubHeader, model.BlockTypeText:
		markup, err = r.renderTextual(ctx, block)
	case model.BlockTypeNumberedList, model.BlockTypeBulletedList:
		markup, err = r.renderListItem(ctx, block)
	case model.BlockTypeToDo:
		markup, err = r.renderToDo(ctx, block)
	case model.BlockTypeCode:
		markup, err = r.renderCode(ctx, block)
	case model.BlockTypeCallout:
		markup, err = r.renderCallout(ctx, block)
	case model.BlockTypeQuote:
		markup, err = r.renderQuote(ctx, block)
	case model.BlockTypeDivider:
		markup = "<hr>"
	case model.BlockTypeImage:
		markup = r.renderImage(ctx, block)
	case model.BlockTypeEquation:
		markup = r.renderEquation(ctx, block)
	case model.BlockTypeToggle:
		markup, err = r.renderToggle(ctx, block)
	case model.BlockTypePage:
		markup = r.renderPageLink(block)
	default:
		metrics.UnhandledBlocks.WithLabelValues(string(block.Type)).Inc()
		slog.WarnContext(ctx, "unhandled block type", slog.String("block_id", string(id)), slog.String("block_type", string(block.Type)))
		return "", nil
	}
	if err != nil {
		return "", errors.WithStack(err)
	}

	metrics.RenderedBlocks.WithLabelValues(string(block.Type)).Inc()

	return markup, nil
}

func (r *Renderer) headingElement(blockType model.BlockType) string {
	level := 0

	switch blockType {
	case model.BlockTypeHeader:
		level = 1
	case model.BlockTypeSubHeader:
		level = 2
	case model.BlockTypeSubSubHeader:
		level = 3
	default:
		return "p"
	}

	if r.opts.DowngradeHeadings {
		level++
	}

	return "h" + strconv.Itoa(level)
}

func classAttr(block *model.Block, classes ...string) string {
	if color := block.FormatString(model.FormatBlockColor); color != "" {
		classes = append(classes, ColorClass(color))
	}

	if len(classes) == 0 {
		return ""
	}

	return ` class="` + strings.Join(classes, " ") + `"`
}

func (r *Renderer) renderTextual(ctx context.Context, block *model.Block) (string, error) {
	el := r.headingElement(block.Type)

	title, err := r.RenderRuns(ctx, block.Title(), DefaultRunOptions)
	if err != nil {
		return "", errors.WithStack(err)
	}

	var sb strings.Builder

	sb.WriteString("<" + el + classAttr(block) + ">" + title + "</" + el + ">")

	for _, childID := range block.Content {
		child, err := r.RenderBlock(ctx, childID)
		if err != nil {
			return "", errors.WithStack(err)
		}

		sb.WriteString(`<div class="indented">` + child + "</div>")
	}

	return sb.String(), nil
}

func (r *Renderer) renderListItem(ctx context.Context, block *model.Block) (string, error) {
	el := "ul"
	if block.Type == model.BlockTypeNumberedList {
		el = "ol"
	}

	title, err := r.RenderRuns(ctx, block.Title(), DefaultRunOptions)
	if err != nil {
		return "", errors.WithStack(err)
	}

	children, err := r.RenderChildren(ctx, block.Content)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return "<" + el + "><li>" + title + children + "</li></" + el + ">", nil
}

func (r *Renderer) renderToDo(ctx context.Context, block *model.Block) (string, error) {
	title, err := r.RenderRuns(ctx, block.Title(), DefaultRunOptions)
	if err != nil {
		return "", errors.WithStack(err)
	}

	checked := ""
	if block.Checked() {
		checked = " checked"
	}

	return `<div class="checklist"><div><input type="checkbox" disabled` + checked + "><label>" + title + "</label></div></div>", nil
}

func (r *Renderer) renderCode(ctx context.Context, block *model.Block) (string, error) {
	language := strings.ReplaceAll(strings.ToLower(block.RichText(model.PropertyLanguage).PlainText()), " ", "-")

	code, err := r.RenderRuns(ctx, block.Title(), RunOptions{Escape: false, Breaks: false})
	if err != nil {
		return "", errors.WithStack(err)
	}

	code = strings.ReplaceAll(code, "\t", "  ")

	highlighted := r.highlight(ctx, code, language)
	highlighted = strings.ReplaceAll(highlighted, "\n", "<br>")

	return `<pre><code class="language-` + html.EscapeString(language) + `">` + highlighted + "</code></pre>", nil
}

// highlight falls back to the escaped source when the highlighter fails
// for any reason.
func (r *Renderer) highlight(ctx context.Context, code string, language string) string {
	if r.opts.Highlighter == nil {
		return html.EscapeString(code)
	}

	highlighted, err := r.opts.Highlighter.Highlight(code, language)
	if err != nil {
		if !errors.Is(err, port.ErrUnsupportedLanguage) {
			slog.WarnContext(ctx, "could not highlight code", slogx.Error(errors.WithStack(err)), slog.String("language", language))
		}

		return html.EscapeString(code)
	}

	return highlighted
}

func (r *Renderer) renderCallout(ctx context.Context, block *model.Block) (string, error) {
	title, err := r.RenderRuns(ctx, block.Title(), DefaultRunOptions)
	if err != nil {
		return "", errors.WithStack(err)
	}

	icon := ""
	if pageIcon := block.FormatString(model.FormatPageIcon); pageIcon != "" {
		icon = `<img src="` + r.iconSrc(pageIcon, block.ID) + `">`
	}

	return "<div" + classAttr(block, "callout") + ">" + icon + "<p>" + title + "</p></div>", nil
}

func (r *Renderer) renderQuote(ctx context.Context, block *model.Block) (string, error) {
	title, err := r.RenderRuns(ctx, block.Title(), DefaultRunOptions)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return "<blockquote" + classAttr(block) + ">" + title + "</blockquote>", nil
}

func (r *Renderer) renderImage(ctx context.Context, block *model.Block) string {
	source := block.FormatString(model.FormatDisplaySource)
	if source == "" {
		source = block.RichText(model.PropertySource).PlainText()
	}

	if source == "" {
		slog.WarnContext(ctx, "image block without source", slog.String("block_id", string(block.ID)))
		return ""
	}

	return `<img src="` + r.imageSrc(source, block.ID) + `">`
}

func (r *Renderer) renderEquation(ctx context.Context, block *model.Block) string {
	equation := r.renderMath(ctx, block.Title().PlainText(), true)

	return `<div class="block-equation">` + equation + "</div>"
}

func (r *Renderer) renderToggle(ctx context.Context, block *model.Block) (string, error) {
	if err := r.source.LoadBlocks(ctx, block.Content...); err != nil {
		return "", errors.Wrapf(err, "could not load children of toggle '%s'", block.ID)
	}

	summary, err := r.RenderRuns(ctx, block.Title(), DefaultRunOptions)
	if err != nil {
		return "", errors.WithStack(err)
	}

	children, err := r.RenderChildren(ctx, block.Content)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return "<details><summary>" + summary + "</summary>" + children + "</details>", nil
}

func (r *Renderer) renderPageLink(block *model.Block) string {
	return `<div class="block-page-link"><a data-page-id="` + html.EscapeString(string(block.ID)) + `">` + html.EscapeString(titleOrUntitled(block)) + "</a></div>"
}
