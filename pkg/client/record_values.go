package client

import (
	"context"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/pkg/errors"
)

const (
	methodSyncRecordValues = "syncRecordValues"
	tableBlock             = "block"
	latestVersion          = -1
)

type recordRequest struct {
	ID      model.BlockID `json:"id"`
	Table   string        `json:"table"`
	Version int           `json:"version"`
}

type syncRecordValuesRequest struct {
	Requests []recordRequest `json:"requests"`
}

type syncRecordValuesResponse struct {
	RecordMap model.RecordMap `json:"recordMap"`
}

// SyncRecordValues implements [port.BlockStore].
func (c *Client) SyncRecordValues(ctx context.Context, ids []model.BlockID) (map[model.BlockID]*model.Block, error) {
	payload := syncRecordValuesRequest{
		Requests: make([]recordRequest, 0, len(ids)),
	}

	for _, id := range ids {
		payload.Requests = append(payload.Requests, recordRequest{
			ID:      id,
			Table:   tableBlock,
			Version: latestVersion,
		})
	}

	var res syncRecordValuesResponse

	if err := c.jsonRequest(ctx, methodSyncRecordValues, payload, &res); err != nil {
		return nil, errors.Wrap(err, "could not sync record values")
	}

	return res.RecordMap.Blocks(), nil
}
