package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"recommendation_service/internal/domain"
)

// Params bounds the collaborative-filtering computation. Values come from
// configuration at process start; zero or negative fields fall back to the
// defaults below.
type Params struct {
	MaxNeighbors        int
	PoolSize            int
	NeighborOrderLimit  int
	RecencyMonths       int
	SimilarityThreshold float64
}

func DefaultParams() Params {
	return Params{
		MaxNeighbors:        10,
		PoolSize:            100,
		NeighborOrderLimit:  10,
		RecencyMonths:       3,
		SimilarityThreshold: 0.1,
	}
}

type RecommendationUseCase interface {
	Recommend(ctx context.Context, userID, limit int) ([]domain.Product, error)
	HotProducts(ctx context.Context, limit int) ([]domain.Product, error)
	CategoryPreferences(ctx context.Context, userID int) (map[int]int, error)
}

var _ RecommendationUseCase = (*recommendationUseCase)(nil)

type recommendationUseCase struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	params      Params
	log         *logrus.Logger
}

func NewRecommendationUseCase(orderRepo domain.OrderRepository, productRepo domain.ProductRepository, params Params, logger *logrus.Logger) RecommendationUseCase {
	defaults := DefaultParams()
	if params.MaxNeighbors <= 0 {
		params.MaxNeighbors = defaults.MaxNeighbors
	}
	if params.PoolSize <= 0 {
		params.PoolSize = defaults.PoolSize
	}
	if params.NeighborOrderLimit <= 0 {
		params.NeighborOrderLimit = defaults.NeighborOrderLimit
	}
	if params.RecencyMonths <= 0 {
		params.RecencyMonths = defaults.RecencyMonths
	}
	if params.SimilarityThreshold <= 0 {
		params.SimilarityThreshold = defaults.SimilarityThreshold
	}
	return &recommendationUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		params:      params,
		log:         logger,
	}
}

// Recommend produces up to limit products for the user, best candidates
// first, never repeating a product and never suggesting one the user already
// bought. A user with no purchase history gets the hot list verbatim.
func (uc *recommendationUseCase) Recommend(ctx context.Context, userID, limit int) ([]domain.Product, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", domain.ErrInvalidArgument)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	purchased, err := uc.purchasedProductIDs(ctx, userID)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to load purchase history for user %d: %v", userID, err)
		return nil, err
	}

	if len(purchased) == 0 {
		uc.log.Infof("Use Case: User %d has no purchase history, serving hot products", userID)
		return uc.productRepo.TopByPopularity(ctx, limit)
	}

	neighbors, err := uc.selectNeighbors(ctx, userID, purchased)
	if err != nil {
		uc.log.Errorf("Use Case: Neighbor selection failed for user %d: %v", userID, err)
		return nil, err
	}

	scores, productsByID, err := uc.scoreCandidates(ctx, neighbors, purchased)
	if err != nil {
		uc.log.Errorf("Use Case: Candidate scoring failed for user %d: %v", userID, err)
		return nil, err
	}

	recommended := make([]domain.Product, 0, limit)
	selected := make(map[int]struct{})
	for _, productID := range rankByScore(scores) {
		if len(recommended) >= limit {
			break
		}
		if _, ok := purchased[productID]; ok {
			continue
		}
		if _, ok := selected[productID]; ok {
			continue
		}
		product, ok := productsByID[productID]
		if !ok {
			continue
		}
		recommended = append(recommended, product)
		selected[productID] = struct{}{}
	}

	if len(recommended) < limit {
		uc.log.Infof("Use Case: Only %d scored candidates for user %d, filling from hot products", len(recommended), userID)
		hot, err := uc.productRepo.TopByPopularity(ctx, limit)
		if err != nil {
			uc.log.Errorf("Use Case: Hot-product fill failed for user %d: %v", userID, err)
			return nil, err
		}
		for _, product := range hot {
			if len(recommended) >= limit {
				break
			}
			if _, ok := purchased[product.ID]; ok {
				continue
			}
			if _, ok := selected[product.ID]; ok {
				continue
			}
			recommended = append(recommended, product)
			selected[product.ID] = struct{}{}
		}
	}

	uc.log.Infof("Use Case: Recommended %d products for user %d (limit %d)", len(recommended), userID, limit)
	return recommended, nil
}

// HotProducts returns up to limit approved products by popularity.
func (uc *recommendationUseCase) HotProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products, err := uc.productRepo.TopByPopularity(ctx, limit)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to retrieve hot products (limit %d): %v", limit, err)
		return nil, err
	}
	return products, nil
}

// rankByScore orders product ids by score descending, ties broken by product
// id ascending. Map insertion order must never leak into the result.
func rankByScore(scores map[int]float64) []int {
	ids := make([]int, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
