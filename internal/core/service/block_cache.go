package service

import (
	"sync"

	"github.com/bornholm/notionhtml/internal/core/model"
)

// BlockCache holds the blocks fetched for one document. Entries are only
// ever added: there is no eviction during the document lifetime.
type BlockCache struct {
	blocks map[model.BlockID]*model.Block
	mutex  sync.RWMutex
}

func (c *BlockCache) Has(id model.BlockID) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	_, exists := c.blocks[id]

	return exists
}

func (c *BlockCache) Get(id model.BlockID) (*model.Block, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	block, exists := c.blocks[id]

	return block, exists
}

func (c *BlockCache) Put(id model.BlockID, block *model.Block) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.blocks[id] = block
}

// PutAll merges the given blocks in a single critical section.
func (c *BlockCache) PutAll(blocks map[model.BlockID]*model.Block) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for id, block := range blocks {
		c.blocks[id] = block
	}
}

// Missing returns the given identifiers that are not cached yet, in their
// original order and without duplicates.
func (c *BlockCache) Missing(ids []model.BlockID) []model.BlockID {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	missing := make([]model.BlockID, 0, len(ids))
	seen := make(map[model.BlockID]struct{}, len(ids))

	for _, id := range ids {
		if _, exists := c.blocks[id]; exists {
			continue
		}

		if _, exists := seen[id]; exists {
			continue
		}

		seen[id] = struct{}{}
		missing = append(missing, id)
	}

	return missing
}

func (c *BlockCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.blocks)
}

func NewBlockCache() *BlockCache {
	return &BlockCache{
		blocks: make(map[model.BlockID]*model.Block),
	}
}
