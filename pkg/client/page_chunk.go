package client

import (
	"context"
	"encoding/json"

	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/pkg/errors"
)

const methodLoadCachedPageChunk = "loadCachedPageChunk"

// LoadPageChunk implements [port.BlockStore].
func (c *Client) LoadPageChunk(ctx context.Context, req port.PageChunkRequest) (*port.PageChunk, error) {
	if req.Cursor.Stack == nil {
		req.Cursor.Stack = []json.RawMessage{}
	}

	var chunk port.PageChunk

	if err := c.jsonRequest(ctx, methodLoadCachedPageChunk, req, &chunk); err != nil {
		return nil, errors.Wrapf(err, "could not load page chunk %d", req.ChunkNumber)
	}

	return &chunk, nil
}
