package render

import (
	"github.com/bornholm/notionhtml/internal/core/port"
)

const (
	DefaultImageBaseURL = "https://www.notion.so"
	DefaultEmojiBaseURL = "https://emojicdn.elk.sh"
)

type Options struct {
	// DowngradeHeadings renders headers one level lower (h1 becomes h2...).
	DowngradeHeadings bool
	// ImageWidth is forwarded to the image proxy when greater than zero.
	ImageWidth   int
	ImageBaseURL string
	EmojiBaseURL string
	Highlighter  port.Highlighter
	MathRenderer port.MathRenderer
}

type OptionFunc func(opts *Options)

func WithDowngradeHeadings(downgrade bool) OptionFunc {
	return func(opts *Options) {
		opts.DowngradeHeadings = downgrade
	}
}

func WithImageWidth(width int) OptionFunc {
	return func(opts *Options) {
		opts.ImageWidth = width
	}
}

func WithImageBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.ImageBaseURL = baseURL
	}
}

func WithEmojiBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.EmojiBaseURL = baseURL
	}
}

func WithHighlighter(highlighter port.Highlighter) OptionFunc {
	return func(opts *Options) {
		opts.Highlighter = highlighter
	}
}

func WithMathRenderer(renderer port.MathRenderer) OptionFunc {
	return func(opts *Options) {
		opts.MathRenderer = renderer
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		ImageBaseURL: DefaultImageBaseURL,
		EmojiBaseURL: DefaultEmojiBaseURL,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
