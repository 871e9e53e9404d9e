package service

import (
	"context"
	"time"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/bornholm/notionhtml/internal/render"
	"github.com/pkg/errors"
)

// Document gives access to one page of the block store. It owns the cache
// of the blocks fetched for the page and is not safe for concurrent use.
type Document struct {
	// DowngradeHeadings renders headers one level lower (h1 becomes h2...).
	DowngradeHeadings bool
	// ImageWidth, when greater than zero, is requested from the image proxy.
	ImageWidth int

	id     model.BlockID
	loader *Loader
	opts   *DocumentOptions
}

func (d *Document) ID() model.BlockID {
	return d.id
}

// Title returns the plain text title of the page.
func (d *Document) Title(ctx context.Context) (string, error) {
	page, err := d.root(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return page.Title().PlainText(), nil
}

func (d *Document) CreatedAt(ctx context.Context) (time.Time, error) {
	page, err := d.root(ctx)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return page.CreatedAt(), nil
}

func (d *Document) UpdatedAt(ctx context.Context) (time.Time, error) {
	page, err := d.root(ctx)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return page.UpdatedAt(), nil
}

// HTML loads the whole page and renders its content.
func (d *Document) HTML(ctx context.Context) (string, error) {
	if err := d.loader.LoadPageContents(ctx, d.id); err != nil {
		return "", errors.Wrapf(err, "could not load contents of page '%s'", d.id)
	}

	page, err := d.root(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	renderer := render.NewRenderer(d.loader,
		render.WithDowngradeHeadings(d.DowngradeHeadings),
		render.WithImageWidth(d.ImageWidth),
		render.WithImageBaseURL(d.opts.ImageBaseURL),
		render.WithEmojiBaseURL(d.opts.EmojiBaseURL),
		render.WithHighlighter(d.opts.Highlighter),
		render.WithMathRenderer(d.opts.MathRenderer),
	)

	html, err := renderer.RenderChildren(ctx, page.Content)
	if err != nil {
		return "", errors.Wrapf(err, "could not render page '%s'", d.id)
	}

	return html, nil
}

func (d *Document) root(ctx context.Context) (*model.Block, error) {
	if err := d.loader.LoadBlocks(ctx, d.id); err != nil {
		return nil, errors.Wrapf(err, "could not load page '%s'", d.id)
	}

	page, exists := d.loader.Block(d.id)
	if !exists {
		return nil, errors.Wrapf(port.ErrNotFound, "page '%s'", d.id)
	}

	return page, nil
}

// NewDocument returns a document for the given page identifier, in any of
// the forms accepted by [model.NormalizeBlockID].
func NewDocument(rawID string, store port.BlockStore, funcs ...DocumentOptionFunc) *Document {
	opts := NewDocumentOptions(funcs...)

	return &Document{
		DowngradeHeadings: opts.DowngradeHeadings,
		ImageWidth:        opts.ImageWidth,
		id:                model.NormalizeBlockID(rawID),
		loader:            NewLoader(store, NewBlockCache()),
		opts:              opts,
	}
}
