package cache

import (
	"strconv"
	"time"

	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MathRenderer memoizes the output of a math renderer. Failures are not
// cached.
type MathRenderer struct {
	backend port.MathRenderer
	cache   *expirable.LRU[string, string]
}

// RenderMath implements [port.MathRenderer].
func (r *MathRenderer) RenderMath(source string, displayMode bool) (string, error) {
	cacheKey := hashCacheKey(strconv.FormatBool(displayMode), source)

	if rendered, exists := r.cache.Get(cacheKey); exists {
		return rendered, nil
	}

	rendered, err := r.backend.RenderMath(source, displayMode)
	if err != nil {
		return "", err
	}

	r.cache.Add(cacheKey, rendered)

	return rendered, nil
}

func NewMathRenderer(backend port.MathRenderer, size int, ttl time.Duration) *MathRenderer {
	return &MathRenderer{
		backend: backend,
		cache:   expirable.NewLRU[string, string](size, nil, ttl),
	}
}

var _ port.MathRenderer = &MathRenderer{}
