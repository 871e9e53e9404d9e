package blockstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/core/port"
)

type LoggerBlockStore struct {
	store port.BlockStore
}

// SyncRecordValues implements [port.BlockStore].
func (s *LoggerBlockStore) SyncRecordValues(ctx context.Context, ids []model.BlockID) (map[model.BlockID]*model.Block, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("store_request", methodSyncRecordValues), slog.Int("requested_blocks", len(ids)))

	before := time.Now()
	defer func() {
		slog.DebugContext(ctx, "store request completed", slog.Duration("duration", time.Since(before)))
	}()

	slog.DebugContext(ctx, "store request started")

	return s.store.SyncRecordValues(ctx, ids)
}

// LoadPageChunk implements [port.BlockStore].
func (s *LoggerBlockStore) LoadPageChunk(ctx context.Context, req port.PageChunkRequest) (*port.PageChunk, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("store_request", methodLoadPageChunk), slog.String("page_id", string(req.PageID)), slog.Int("chunk_number", req.ChunkNumber))

	before := time.Now()
	defer func() {
		slog.DebugContext(ctx, "store request completed", slog.Duration("duration", time.Since(before)))
	}()

	slog.DebugContext(ctx, "store request started")

	return s.store.LoadPageChunk(ctx, req)
}

func NewLoggerBlockStore(store port.BlockStore) *LoggerBlockStore {
	return &LoggerBlockStore{
		store: store,
	}
}

var _ port.BlockStore = &LoggerBlockStore{}
