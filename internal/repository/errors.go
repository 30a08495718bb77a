package repository

import (
	"context"
	"errors"
	"fmt"

	"recommendation_service/internal/domain"
)

// wrapStoreErr classifies a failed store call. Cancellation is passed through
// untouched so callers can distinguish deadline policy from infrastructure
// failure; everything else is tagged as store unavailability.
func wrapStoreErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStoreUnavailable, err))
}
