package port

import (
	"context"

	"github.com/bornholm/notionhtml/internal/core/model"
)

// BlockStore is the remote document store the blocks are read from.
type BlockStore interface {
	// SyncRecordValues fetches the latest version of the given blocks.
	// Blocks unknown to the store or not readable are absent from the
	// result.
	SyncRecordValues(ctx context.Context, ids []model.BlockID) (map[model.BlockID]*model.Block, error)
	// LoadPageChunk returns one chunk of a page block tree.
	LoadPageChunk(ctx context.Context, req PageChunkRequest) (*PageChunk, error)
}

type PageChunkRequest struct {
	PageID          model.BlockID `json:"pageId"`
	Limit           int           `json:"limit"`
	Cursor          model.Cursor  `json:"cursor"`
	ChunkNumber     int           `json:"chunkNumber"`
	VerticalColumns bool          `json:"verticalColumns"`
}

type PageChunk struct {
	RecordMap model.RecordMap `json:"recordMap"`
	Cursor    model.Cursor    `json:"cursor"`
}
