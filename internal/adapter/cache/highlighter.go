package cache

import (
	"time"

	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Highlighter memoizes the output of a highlighter. Failures are not
// cached.
type Highlighter struct {
	backend port.Highlighter
	cache   *expirable.LRU[string, string]
}

// Highlight implements [port.Highlighter].
func (h *Highlighter) Highlight(source string, language string) (string, error) {
	cacheKey := hashCacheKey(language, source)

	if highlighted, exists := h.cache.Get(cacheKey); exists {
		return highlighted, nil
	}

	highlighted, err := h.backend.Highlight(source, language)
	if err != nil {
		return "", err
	}

	h.cache.Add(cacheKey, highlighted)

	return highlighted, nil
}

func NewHighlighter(backend port.Highlighter, size int, ttl time.Duration) *Highlighter {
	return &Highlighter{
		backend: backend,
		cache:   expirable.NewLRU[string, string](size, nil, ttl),
	}
}

var _ port.Highlighter = &Highlighter{}
