package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/pkg/errors"
)

// memoryStore serves blocks from memory, splitting the page contents in
// chunks of chunkSize blocks.
type memoryStore struct {
	blocks    []*model.Block
	chunkSize int
	// endless makes every chunk advertise a non empty cursor.
	endless bool
	err     error

	syncCalls  [][]model.BlockID
	chunkCalls []port.PageChunkRequest
}

func (s *memoryStore) SyncRecordValues(ctx context.Context, ids []model.BlockID) (map[model.BlockID]*model.Block, error) {
	s.syncCalls = append(s.syncCalls, ids)

	if s.err != nil {
		return nil, s.err
	}

	blocks := make(map[model.BlockID]*model.Block)
	for _, id := range ids {
		for _, b := range s.blocks {
			if b.ID == id {
				blocks[id] = b
			}
		}
	}

	return blocks, nil
}

func (s *memoryStore) LoadPageChunk(ctx context.Context, req port.PageChunkRequest) (*port.PageChunk, error) {
	s.chunkCalls = append(s.chunkCalls, req)

	if s.err != nil {
		return nil, s.err
	}

	chunk := &port.PageChunk{
		RecordMap: model.RecordMap{
			Block: make(map[model.BlockID]model.Record),
		},
		Cursor: model.NewCursor(),
	}

	start := req.ChunkNumber * s.chunkSize
	end := min(start+s.chunkSize, len(s.blocks))

	for i := start; i < end; i++ {
		chunk.RecordMap.Block[s.blocks[i].ID] = model.Record{Role: "reader", Value: s.blocks[i]}
	}

	if s.endless || end < len(s.blocks) {
		chunk.Cursor.Stack = append(chunk.Cursor.Stack, json.RawMessage(fmt.Sprintf(`[{"index":%d}]`, end)))
	}

	return chunk, nil
}

func newMemoryStore(chunkSize int, data string) *memoryStore {
	var blocks []*model.Block
	if err := json.Unmarshal([]byte(data), &blocks); err != nil {
		panic(errors.WithStack(err))
	}

	return &memoryStore{
		blocks:    blocks,
		chunkSize: chunkSize,
	}
}

var _ port.BlockStore = &memoryStore{}
