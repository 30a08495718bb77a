package usecase

import (
	"context"
	"fmt"
	"sort"

	"recommendation_service/internal/domain"
)

// CategoryPreferences counts, per category, how many times the user bought a
// product from it across completed orders. A product bought in two separate
// orders counts twice; ids that no longer resolve to an eligible product are
// ignored, as are orders with undecodable snapshots.
func (uc *recommendationUseCase) CategoryPreferences(ctx context.Context, userID int) (map[int]int, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", domain.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.FindCompletedByUser(ctx, userID)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to load orders for preferences of user %d: %v", userID, err)
		return nil, err
	}

	counts := make(map[int]int)
	for _, order := range orders {
		items, err := domain.DecodeLineItems(order.ItemsRaw)
		if err != nil {
			uc.log.Warnf("Use Case: Skipping order %d for user %d: %v", order.ID, userID, err)
			continue
		}

		idSet := make(map[int]struct{})
		for _, item := range items {
			idSet[item.ProductID] = struct{}{}
		}
		ids := make([]int, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		products, err := uc.productRepo.GetApprovedByIDs(ctx, ids)
		if err != nil {
			uc.log.Errorf("Use Case: Failed to resolve products for order %d of user %d: %v", order.ID, userID, err)
			return nil, err
		}
		for _, product := range products {
			if product.CategoryID != 0 {
				counts[product.CategoryID]++
			}
		}
	}

	uc.log.Infof("Use Case: Computed preferences over %d categories for user %d", len(counts), userID)
	return counts, nil
}
