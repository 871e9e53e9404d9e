package setup

import (
	"context"
	"sync"

	"github.com/bornholm/notionhtml/internal/config"
)

// createFromConfigOnce memoizes the result of the given factory. The
// first configuration received wins.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once   sync.Once
		result T
		err    error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			result, err = factory(ctx, conf)
		})

		return result, err
	}
}
