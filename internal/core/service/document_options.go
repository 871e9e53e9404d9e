package service

import (
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/bornholm/notionhtml/internal/render"
)

type DocumentOptions struct {
	DowngradeHeadings bool
	ImageWidth        int
	ImageBaseURL      string
	EmojiBaseURL      string
	Highlighter       port.Highlighter
	MathRenderer      port.MathRenderer
}

type DocumentOptionFunc func(opts *DocumentOptions)

// WithDowngradeHeadings sets the initial value of
// [Document.DowngradeHeadings].
func WithDowngradeHeadings(downgrade bool) DocumentOptionFunc {
	return func(opts *DocumentOptions) {
		opts.DowngradeHeadings = downgrade
	}
}

// WithImageWidth sets the initial value of [Document.ImageWidth].
func WithImageWidth(width int) DocumentOptionFunc {
	return func(opts *DocumentOptions) {
		opts.ImageWidth = width
	}
}

func WithImageBaseURL(baseURL string) DocumentOptionFunc {
	return func(opts *DocumentOptions) {
		opts.ImageBaseURL = baseURL
	}
}

func WithEmojiBaseURL(baseURL string) DocumentOptionFunc {
	return func(opts *DocumentOptions) {
		opts.EmojiBaseURL = baseURL
	}
}

func WithHighlighter(highlighter port.Highlighter) DocumentOptionFunc {
	return func(opts *DocumentOptions) {
		opts.Highlighter = highlighter
	}
}

func WithMathRenderer(renderer port.MathRenderer) DocumentOptionFunc {
	return func(opts *DocumentOptions) {
		opts.MathRenderer = renderer
	}
}

func NewDocumentOptions(funcs ...DocumentOptionFunc) *DocumentOptions {
	opts := &DocumentOptions{
		ImageBaseURL: render.DefaultImageBaseURL,
		EmojiBaseURL: render.DefaultEmojiBaseURL,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
