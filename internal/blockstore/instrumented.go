package blockstore

import (
	"context"
	"time"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/bornholm/notionhtml/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	methodSyncRecordValues = "sync_record_values"
	methodLoadPageChunk    = "load_page_chunk"
)

type InstrumentedBlockStore struct {
	store port.BlockStore
}

// SyncRecordValues implements [port.BlockStore].
func (s *InstrumentedBlockStore) SyncRecordValues(ctx context.Context, ids []model.BlockID) (map[model.BlockID]*model.Block, error) {
	defer observe(methodSyncRecordValues, time.Now())

	blocks, err := s.store.SyncRecordValues(ctx, ids)
	if err != nil {
		count(methodSyncRecordValues, metrics.StatusFailure)
		return nil, errors.WithStack(err)
	}

	count(methodSyncRecordValues, metrics.StatusSuccess)
	metrics.StoreFetchedBlocks.With(prometheus.Labels{
		metrics.LabelMethod: methodSyncRecordValues,
	}).Add(float64(len(blocks)))

	return blocks, nil
}

// LoadPageChunk implements [port.BlockStore].
func (s *InstrumentedBlockStore) LoadPageChunk(ctx context.Context, req port.PageChunkRequest) (*port.PageChunk, error) {
	defer observe(methodLoadPageChunk, time.Now())

	chunk, err := s.store.LoadPageChunk(ctx, req)
	if err != nil {
		count(methodLoadPageChunk, metrics.StatusFailure)
		return nil, errors.WithStack(err)
	}

	count(methodLoadPageChunk, metrics.StatusSuccess)
	metrics.StoreFetchedBlocks.With(prometheus.Labels{
		metrics.LabelMethod: methodLoadPageChunk,
	}).Add(float64(len(chunk.RecordMap.Block)))

	return chunk, nil
}

func count(method string, status string) {
	metrics.StoreRequests.With(prometheus.Labels{
		metrics.LabelMethod: method,
		metrics.LabelStatus: status,
	}).Inc()
}

func observe(method string, start time.Time) {
	metrics.StoreRequestDuration.With(prometheus.Labels{
		metrics.LabelMethod: method,
	}).Observe(time.Since(start).Seconds())
}

func NewInstrumentedBlockStore(store port.BlockStore) *InstrumentedBlockStore {
	return &InstrumentedBlockStore{
		store: store,
	}
}

var _ port.BlockStore = &InstrumentedBlockStore{}
