package usecase

import (
	"context"
	"sort"
	"time"
)

type neighbor struct {
	UserID     int
	Similarity float64
}

// selectNeighbors scores a bounded pool of recently active users against the
// target's purchase set and returns the top MaxNeighbors with similarity above
// the threshold, descending. Candidates with equal similarity keep their pool
// order (stable sort) so repeated calls over the same store state agree. An
// empty result is legitimate; falling back to hot products is the caller's
// decision, not this function's.
func (uc *recommendationUseCase) selectNeighbors(ctx context.Context, userID int, purchased map[int]struct{}) ([]neighbor, error) {
	since := time.Now().AddDate(0, -uc.params.RecencyMonths, 0)
	candidates, err := uc.orderRepo.FindRecentActiveUsers(ctx, userID, since, uc.params.PoolSize)
	if err != nil {
		return nil, err
	}
	uc.log.Debugf("Use Case: Considering %d candidate neighbors for user %d", len(candidates), userID)

	var neighbors []neighbor
	for _, candidateID := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidatePurchases, err := uc.purchasedProductIDs(ctx, candidateID)
		if err != nil {
			return nil, err
		}
		if len(candidatePurchases) == 0 {
			continue
		}
		similarity := jaccard(purchased, candidatePurchases)
		if similarity > uc.params.SimilarityThreshold {
			neighbors = append(neighbors, neighbor{UserID: candidateID, Similarity: similarity})
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})
	if len(neighbors) > uc.params.MaxNeighbors {
		neighbors = neighbors[:uc.params.MaxNeighbors]
	}

	uc.log.Infof("Use Case: Selected %d neighbors for user %d", len(neighbors), userID)
	return neighbors, nil
}
