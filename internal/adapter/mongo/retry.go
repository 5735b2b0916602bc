package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

const (
	retryInterval = 100 * time.Millisecond
	maxRetries    = 3
)

// withRetry runs op, retrying transient driver failures a bounded number
// of times. Logical errors (not found, bad input) surface immediately;
// exhausted retries surface as ErrStoreUnavailable so callers never see
// raw driver errors for outages.
func withRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), maxRetries),
		ctx,
	)

	err := backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)

	if err != nil && isTransient(err) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}
