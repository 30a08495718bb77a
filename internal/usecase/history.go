package usecase

import (
	"context"

	"recommendation_service/internal/domain"
)

// purchasedProductIDs returns the set of distinct product ids from the user's
// completed, non-deleted orders. It is computed fresh on every call. An order
// whose line-item snapshot fails to decode is logged and skipped; the rest of
// the history still counts.
func (uc *recommendationUseCase) purchasedProductIDs(ctx context.Context, userID int) (map[int]struct{}, error) {
	orders, err := uc.orderRepo.FindCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	purchased := make(map[int]struct{})
	for _, order := range orders {
		items, err := domain.DecodeLineItems(order.ItemsRaw)
		if err != nil {
			uc.log.Warnf("Use Case: Skipping order %d for user %d: %v", order.ID, userID, err)
			continue
		}
		for _, item := range items {
			purchased[item.ProductID] = struct{}{}
		}
	}
	return purchased, nil
}
