// Package render turns cached blocks into HTML.
package render

import (
	"context"

	"github.com/bornholm/notionhtml/internal/core/model"
)

// BlockSource gives the renderer access to blocks, loading them on demand.
type BlockSource interface {
	LoadBlocks(ctx context.Context, ids ...model.BlockID) error
	Block(id model.BlockID) (*model.Block, bool)
}

// Renderer renders blocks sequentially, in document order. It is not safe
// for concurrent use.
type Renderer struct {
	source BlockSource
	opts   *Options
}

func NewRenderer(source BlockSource, funcs ...OptionFunc) *Renderer {
	return &Renderer{
		source: source,
		opts:   NewOptions(funcs...),
	}
}
