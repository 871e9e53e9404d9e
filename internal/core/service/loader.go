package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/pkg/errors"
)

const (
	// PageChunkLimit is the number of blocks requested per page chunk.
	PageChunkLimit = 100
	// MaxPageChunks caps the number of chunk requests issued for one page,
	// whatever the cursor says. Larger pages are rendered from a partial
	// block set.
	MaxPageChunks = 9
)

// Loader fills a block cache from a block store.
type Loader struct {
	store port.BlockStore
	cache *BlockCache
}

// LoadBlocks fetches, in one request, the given blocks that are not cached
// yet. Blocks the store does not return stay absent from the cache.
func (l *Loader) LoadBlocks(ctx context.Context, ids ...model.BlockID) error {
	missing := l.cache.Missing(ids)
	if len(missing) == 0 {
		return nil
	}

	blocks, err := l.store.SyncRecordValues(ctx, missing)
	if err != nil {
		return errors.WithStack(err)
	}

	l.cache.PutAll(blocks)

	return nil
}

// LoadPageContents paginates through the block tree of the given page and
// merges every returned block into the cache once all chunks are fetched.
func (l *Loader) LoadPageContents(ctx context.Context, pageID model.BlockID) error {
	blocks := make(map[model.BlockID]*model.Block)
	cursor := model.NewCursor()

	chunkNumber := 0
	for ; chunkNumber < MaxPageChunks; chunkNumber++ {
		chunk, err := l.store.LoadPageChunk(ctx, port.PageChunkRequest{
			PageID:          pageID,
			Limit:           PageChunkLimit,
			Cursor:          cursor,
			ChunkNumber:     chunkNumber,
			VerticalColumns: false,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		for id, block := range chunk.RecordMap.Blocks() {
			blocks[id] = block
		}

		cursor = chunk.Cursor
		if cursor.Done() {
			break
		}
	}

	if chunkNumber == MaxPageChunks {
		slog.DebugContext(ctx, "page chunk limit reached, page contents may be partial", slog.String("page_id", string(pageID)), slog.Int("max_chunks", MaxPageChunks))
	}

	l.cache.PutAll(blocks)

	return nil
}

// Block returns a cached block.
func (l *Loader) Block(id model.BlockID) (*model.Block, bool) {
	return l.cache.Get(id)
}

func NewLoader(store port.BlockStore, cache *BlockCache) *Loader {
	return &Loader{
		store: store,
		cache: cache,
	}
}
