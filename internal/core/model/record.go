package model

import "encoding/json"

// Record wraps a block as found in a record map. Value is nil when the
// caller is not allowed to read the block.
type Record struct {
	Role  string `json:"role,omitempty"`
	Value *Block `json:"value,omitempty"`
}

type RecordMap struct {
	Block map[BlockID]Record `json:"block"`
}

// Blocks returns the readable blocks of the record map keyed by id.
func (m RecordMap) Blocks() map[BlockID]*Block {
	blocks := make(map[BlockID]*Block, len(m.Block))
	for id, record := range m.Block {
		if record.Value == nil {
			continue
		}
		blocks[id] = record.Value
	}
	return blocks
}

// Cursor is the opaque pagination token of page chunks. Its stack is
// empty once the last chunk has been served.
type Cursor struct {
	Stack []json.RawMessage `json:"stack"`
}

func NewCursor() Cursor {
	return Cursor{Stack: []json.RawMessage{}}
}

func (c Cursor) Done() bool {
	return len(c.Stack) == 0
}
