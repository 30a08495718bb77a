package usecase

import (
	"context"
	"sort"

	"recommendation_service/internal/domain"
)

const (
	diversityBonus   = 1.2
	diversityPenalty = 0.8
)

// scoreCandidates accumulates a weighted score per candidate product across
// the supplied neighbors, processed strictly in the order given. The first
// product of a not-yet-seen category gets the diversity bonus, later ones the
// penalty; the seen-category set spans the whole pass, never resetting between
// neighbors, so neighbor order shapes the output. Products in exclude are
// ignored entirely. The returned product map caches the fetched records so the
// caller does not hit the store again.
func (uc *recommendationUseCase) scoreCandidates(ctx context.Context, neighbors []neighbor, exclude map[int]struct{}) (map[int]float64, map[int]domain.Product, error) {
	scores := make(map[int]float64)
	productsByID := make(map[int]domain.Product)
	seenCategories := make(map[int]struct{})

	for _, n := range neighbors {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		orders, err := uc.orderRepo.FindRecentCompletedByUser(ctx, n.UserID, uc.params.NeighborOrderLimit)
		if err != nil {
			return nil, nil, err
		}

		candidateIDs := make(map[int]struct{})
		for _, order := range orders {
			items, err := domain.DecodeLineItems(order.ItemsRaw)
			if err != nil {
				uc.log.Warnf("Use Case: Skipping order %d for neighbor %d: %v", order.ID, n.UserID, err)
				continue
			}
			for _, item := range items {
				candidateIDs[item.ProductID] = struct{}{}
			}
		}
		if len(candidateIDs) == 0 {
			continue
		}

		ids := make([]int, 0, len(candidateIDs))
		for id := range candidateIDs {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		products, err := uc.productRepo.GetApprovedByIDs(ctx, ids)
		if err != nil {
			return nil, nil, err
		}

		for _, product := range products {
			if _, skip := exclude[product.ID]; skip {
				continue
			}
			weight := diversityPenalty
			if _, seen := seenCategories[product.CategoryID]; !seen {
				weight = diversityBonus
			}
			scores[product.ID] += n.Similarity * weight
			seenCategories[product.CategoryID] = struct{}{}
			productsByID[product.ID] = product
		}
	}

	return scores, productsByID, nil
}
