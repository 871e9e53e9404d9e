package blockstore

import (
	"context"
	"time"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimitedBlockStore spaces the requests sent to the store.
type RateLimitedBlockStore struct {
	limiter *rate.Limiter
	store   port.BlockStore
}

// SyncRecordValues implements [port.BlockStore].
func (s *RateLimitedBlockStore) SyncRecordValues(ctx context.Context, ids []model.BlockID) (map[model.BlockID]*model.Block, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.store.SyncRecordValues(ctx, ids)
}

// LoadPageChunk implements [port.BlockStore].
func (s *RateLimitedBlockStore) LoadPageChunk(ctx context.Context, req port.PageChunkRequest) (*port.PageChunk, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.store.LoadPageChunk(ctx, req)
}

func NewRateLimitedBlockStore(store port.BlockStore, interval time.Duration, maxBurst int) *RateLimitedBlockStore {
	return &RateLimitedBlockStore{
		limiter: rate.NewLimiter(rate.Every(interval), maxBurst),
		store:   store,
	}
}

var _ port.BlockStore = &RateLimitedBlockStore{}
