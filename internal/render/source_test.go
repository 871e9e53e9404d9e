package render

import (
	"context"
	"encoding/json"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/pkg/errors"
)

type memorySource struct {
	blocks map[model.BlockID]*model.Block
	loads  [][]model.BlockID
	err    error
}

func (s *memorySource) LoadBlocks(ctx context.Context, ids ...model.BlockID) error {
	s.loads = append(s.loads, ids)
	return s.err
}

func (s *memorySource) Block(id model.BlockID) (*model.Block, bool) {
	block, exists := s.blocks[id]
	return block, exists
}

func newMemorySource(data string) *memorySource {
	var blocks []*model.Block
	if err := json.Unmarshal([]byte(data), &blocks); err != nil {
		panic(errors.WithStack(err))
	}

	source := &memorySource{
		blocks: make(map[model.BlockID]*model.Block, len(blocks)),
	}

	for _, b := range blocks {
		source.blocks[b.ID] = b
	}

	return source
}

func mustRichText(data string) model.RichText {
	var text model.RichText
	if err := json.Unmarshal([]byte(data), &text); err != nil {
		panic(errors.WithStack(err))
	}
	return text
}

var _ BlockSource = &memorySource{}
