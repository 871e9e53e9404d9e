package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func generateBlocks(total int) string {
	blocks := make([]string, 0, total)
	for i := range total {
		blocks = append(blocks, fmt.Sprintf(`{"id": "block-%d", "type": "text"}`, i))
	}
	return "[" + strings.Join(blocks, ",") + "]"
}

func TestLoaderLoadPageContents(t *testing.T) {
	store := newMemoryStore(100, generateBlocks(250))
	cache := NewBlockCache()
	loader := NewLoader(store, cache)

	if err := loader.LoadPageContents(context.Background(), "page"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 3, len(store.chunkCalls); e != g {
		t.Fatalf("len(store.chunkCalls): expected %d, got %d", e, g)
	}

	for i, call := range store.chunkCalls {
		if e, g := i, call.ChunkNumber; e != g {
			t.Errorf("store.chunkCalls[%d].ChunkNumber: expected %d, got %d", i, e, g)
		}

		if e, g := PageChunkLimit, call.Limit; e != g {
			t.Errorf("store.chunkCalls[%d].Limit: expected %d, got %d", i, e, g)
		}

		if e, g := i > 0, !call.Cursor.Done(); e != g {
			t.Errorf("store.chunkCalls[%d].Cursor: expected non empty stack %v, got %v", i, e, g)
		}
	}

	if e, g := 250, cache.Len(); e != g {
		t.Errorf("cache.Len(): expected %d, got %d", e, g)
	}
}

func TestLoaderLoadPageContentsCeiling(t *testing.T) {
	store := newMemoryStore(100, generateBlocks(2000))
	store.endless = true

	cache := NewBlockCache()
	loader := NewLoader(store, cache)

	if err := loader.LoadPageContents(context.Background(), "page"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := MaxPageChunks, len(store.chunkCalls); e != g {
		t.Errorf("len(store.chunkCalls): expected %d, got %d", e, g)
	}

	if e, g := MaxPageChunks*100, cache.Len(); e != g {
		t.Errorf("cache.Len(): expected %d, got %d", e, g)
	}
}

func TestLoaderLoadPageContentsFailure(t *testing.T) {
	store := newMemoryStore(100, generateBlocks(10))
	store.err = errors.New("connection reset")

	cache := NewBlockCache()
	loader := NewLoader(store, cache)

	if err := loader.LoadPageContents(context.Background(), "page"); err == nil {
		t.Errorf("expected an error, got nil")
	}

	if e, g := 0, cache.Len(); e != g {
		t.Errorf("cache.Len(): expected %d, got %d", e, g)
	}
}

func TestLoaderLoadBlocks(t *testing.T) {
	store := newMemoryStore(100, generateBlocks(5))
	cache := NewBlockCache()
	loader := NewLoader(store, cache)

	ctx := context.Background()

	if err := loader.LoadBlocks(ctx, "block-0", "block-1", "unknown"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := loader.LoadBlocks(ctx, "block-1", "block-2"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := loader.LoadBlocks(ctx, "block-0", "block-2"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(store.syncCalls); e != g {
		t.Fatalf("len(store.syncCalls): expected %d, got %d", e, g)
	}

	if e, g := 3, len(store.syncCalls[0]); e != g {
		t.Errorf("len(store.syncCalls[0]): expected %d, got %d", e, g)
	}

	if e, g := 1, len(store.syncCalls[1]); e != g {
		t.Errorf("len(store.syncCalls[1]): expected %d, got %d", e, g)
	}

	if _, exists := loader.Block("unknown"); exists {
		t.Errorf("block 'unknown' should not exist")
	}

	if e, g := 3, cache.Len(); e != g {
		t.Errorf("cache.Len(): expected %d, got %d", e, g)
	}
}
