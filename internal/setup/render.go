package setup

import (
	"bytes"
	"context"

	"github.com/bornholm/notionhtml/internal/adapter/cache"
	"github.com/bornholm/notionhtml/internal/adapter/chroma"
	"github.com/bornholm/notionhtml/internal/adapter/katex"
	"github.com/bornholm/notionhtml/internal/adapter/tex"
	"github.com/bornholm/notionhtml/internal/config"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/bornholm/notionhtml/internal/core/service"
	"github.com/pkg/errors"
)

func newChromaHighlighter(conf *config.Config) *chroma.Highlighter {
	return chroma.NewHighlighter(
		chroma.WithStyle(conf.Render.Highlight.Style),
		chroma.WithClassPrefix(conf.Render.Highlight.ClassPrefix),
	)
}

var getHighlighterFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Highlighter, error) {
	var highlighter port.Highlighter = newChromaHighlighter(conf)

	if conf.Render.Cache.Size > 0 {
		highlighter = cache.NewHighlighter(highlighter, conf.Render.Cache.Size, conf.Render.Cache.TTL)
	}

	return highlighter, nil
})

func newMathRenderer(conf *config.Config) (port.MathRenderer, error) {
	var renderer port.MathRenderer

	switch conf.Render.Math.Engine {
	case "katex":
		renderer = katex.NewLazyRenderer(conf.Render.Math.KaTeXScript, conf.Render.Math.KaTeXTimeout, tex.NewRenderer())
	case "tex":
		renderer = tex.NewRenderer()
	default:
		return nil, errors.Errorf("unknown math engine '%s'", conf.Render.Math.Engine)
	}

	if conf.Render.Cache.Size > 0 {
		renderer = cache.NewMathRenderer(renderer, conf.Render.Cache.Size, conf.Render.Cache.TTL)
	}

	return renderer, nil
}

var getMathRendererFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.MathRenderer, error) {
	return newMathRenderer(conf)
})

// NewStylesheetFromConfig returns the CSS rules matching the classes of
// the highlighted code blocks.
func NewStylesheetFromConfig(ctx context.Context, conf *config.Config) (string, error) {
	var buff bytes.Buffer

	if err := newChromaHighlighter(conf).WriteCSS(&buff); err != nil {
		return "", errors.WithStack(err)
	}

	return buff.String(), nil
}

func NewDocumentOptionsFromConfig(ctx context.Context, conf *config.Config) ([]service.DocumentOptionFunc, error) {
	highlighter, err := getHighlighterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create highlighter from config")
	}

	mathRenderer, err := getMathRendererFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create math renderer from config")
	}

	options := []service.DocumentOptionFunc{
		service.WithDowngradeHeadings(conf.Render.DowngradeHeadings),
		service.WithImageWidth(conf.Render.ImageWidth),
		service.WithImageBaseURL(conf.Render.ImageBaseURL),
		service.WithEmojiBaseURL(conf.Render.EmojiBaseURL),
		service.WithHighlighter(highlighter),
		service.WithMathRenderer(mathRenderer),
	}

	return options, nil
}
