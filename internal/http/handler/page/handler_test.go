package page

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/notionhtml/internal/core/model"
	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

const testPageID = "a2449a4a-4888-4c49-bd52-25828d29b2ed"

type fakeStore struct {
	blocks map[model.BlockID]*model.Block
	err    error
}

func (s *fakeStore) SyncRecordValues(ctx context.Context, ids []model.BlockID) (map[model.BlockID]*model.Block, error) {
	if s.err != nil {
		return nil, s.err
	}

	blocks := make(map[model.BlockID]*model.Block)
	for _, id := range ids {
		if b, exists := s.blocks[id]; exists {
			blocks[id] = b
		}
	}

	return blocks, nil
}

func (s *fakeStore) LoadPageChunk(ctx context.Context, req port.PageChunkRequest) (*port.PageChunk, error) {
	if s.err != nil {
		return nil, s.err
	}

	chunk := &port.PageChunk{
		RecordMap: model.RecordMap{
			Block: make(map[model.BlockID]model.Record),
		},
		Cursor: model.NewCursor(),
	}

	for id, b := range s.blocks {
		chunk.RecordMap.Block[id] = model.Record{Role: "reader", Value: b}
	}

	return chunk, nil
}

func newFakeStore(t *testing.T) *fakeStore {
	var blocks []*model.Block

	data := `[
		{
			"id": "a2449a4a-4888-4c49-bd52-25828d29b2ed",
			"type": "page",
			"properties": {"title": [["My page"]]},
			"content": ["h"],
			"created_time": 1617000000000,
			"last_edited_time": 1618000000000
		},
		{"id": "h", "type": "header", "properties": {"title": [["Heading"]]}}
	]`

	if err := json.Unmarshal([]byte(data), &blocks); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	store := &fakeStore{blocks: make(map[model.BlockID]*model.Block)}
	for _, b := range blocks {
		store.blocks[b.ID] = b
	}

	return store
}

func TestHandler(t *testing.T) {
	type testCase struct {
		Path                string
		Store               func(t *testing.T) *fakeStore
		ExpectedStatus      int
		ExpectedContentType string
		ExpectedBody        string
	}

	testCases := []testCase{
		{
			Path:                "/" + testPageID,
			Store:               newFakeStore,
			ExpectedStatus:      http.StatusOK,
			ExpectedContentType: "text/html; charset=utf-8",
			ExpectedBody:        "<h1>Heading</h1>",
		},
		{
			Path:                "/" + testPageID + "?downgrade=1",
			Store:               newFakeStore,
			ExpectedStatus:      http.StatusOK,
			ExpectedContentType: "text/html; charset=utf-8",
			ExpectedBody:        "<h2>Heading</h2>",
		},
		{
			Path:                "/" + testPageID + "?standalone=true",
			Store:               newFakeStore,
			ExpectedStatus:      http.StatusOK,
			ExpectedContentType: "text/html; charset=utf-8",
			ExpectedBody:        "<title>My page</title>",
		},
		{
			Path:                "/" + testPageID + "/info",
			Store:               newFakeStore,
			ExpectedStatus:      http.StatusOK,
			ExpectedContentType: "application/json",
			ExpectedBody:        `"title":"My page"`,
		},
		{
			Path: "/" + testPageID + "/info?untimed",
			Store: func(t *testing.T) *fakeStore {
				store := newFakeStore(t)
				page := store.blocks[testPageID]
				page.CreatedTime = 0
				page.LastEditedTime = 0
				return store
			},
			ExpectedStatus:      http.StatusOK,
			ExpectedContentType: "application/json",
			ExpectedBody:        `"title":"My page"}`,
		},
		{
			Path: "/00000000000000000000000000000000",
			Store: func(t *testing.T) *fakeStore {
				return &fakeStore{blocks: map[model.BlockID]*model.Block{}}
			},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Path: "/" + testPageID + "/info",
			Store: func(t *testing.T) *fakeStore {
				return &fakeStore{err: errors.New("unexpected status 500")}
			},
			ExpectedStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Path, func(t *testing.T) {
			handler := NewHandler(tc.Store(t), "")

			req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Fatalf("res.Code: expected %d, got %d (body: %s)", e, g, spew.Sdump(res.Body.String()))
			}

			if tc.ExpectedContentType != "" {
				if e, g := tc.ExpectedContentType, res.Header().Get("Content-Type"); e != g {
					t.Errorf("Content-Type: expected '%s', got '%s'", e, g)
				}
			}

			if !strings.Contains(res.Body.String(), tc.ExpectedBody) {
				t.Errorf("expected body to contain '%s', got '%s'", tc.ExpectedBody, res.Body.String())
			}
		})
	}
}
