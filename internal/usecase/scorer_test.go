package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"recommendation_service/internal/domain"
)

// Two neighbors, the second re-hitting a category the first already
// introduced: the repeat must be penalized even though it came from a
// different neighbor, because the seen-category set spans the whole pass.
func TestScoreCandidatesDiversityWeightSpansNeighbors(t *testing.T) {
	const (
		categoryA = 1
		categoryB = 2
	)
	orders := &fakeOrderRepo{
		ordersByUser: map[int][]domain.Order{
			2: {completedOrder(20, 2, 10, 11)},
			3: {completedOrder(30, 3, 12)},
		},
	}
	products := &fakeProductRepo{
		products: map[int]domain.Product{
			10: approvedProduct(10, categoryA),
			11: approvedProduct(11, categoryB),
			12: approvedProduct(12, categoryA),
		},
	}
	uc := newTestUseCase(orders, products, Params{})

	neighbors := []neighbor{
		{UserID: 2, Similarity: 0.5},
		{UserID: 3, Similarity: 0.3},
	}
	scores, productsByID, err := uc.scoreCandidates(context.Background(), neighbors, setOf())
	require.NoError(t, err)

	require.InDelta(t, 0.5*1.2, scores[10], 1e-9, "first category-A product gets the bonus")
	require.InDelta(t, 0.5*1.2, scores[11], 1e-9, "first category-B product gets the bonus")
	require.InDelta(t, 0.3*0.8, scores[12], 1e-9, "repeat of category A gets the penalty")
	require.Len(t, productsByID, 3)
}

func TestScoreCandidatesAccumulatesAcrossNeighbors(t *testing.T) {
	orders := &fakeOrderRepo{
		ordersByUser: map[int][]domain.Order{
			2: {completedOrder(20, 2, 10)},
			3: {completedOrder(30, 3, 10)},
		},
	}
	products := &fakeProductRepo{
		products: map[int]domain.Product{10: approvedProduct(10, 1)},
	}
	uc := newTestUseCase(orders, products, Params{})

	scores, _, err := uc.scoreCandidates(context.Background(), []neighbor{
		{UserID: 2, Similarity: 0.5},
		{UserID: 3, Similarity: 0.3},
	}, setOf())
	require.NoError(t, err)

	// 0.5*1.2 from the first neighbor, then 0.3*0.8: category 1 is already seen.
	require.InDelta(t, 0.5*1.2+0.3*0.8, scores[10], 1e-9)
}

func TestScoreCandidatesSkipsExcludedProducts(t *testing.T) {
	orders := &fakeOrderRepo{
		ordersByUser: map[int][]domain.Order{
			2: {completedOrder(20, 2, 10, 11)},
		},
	}
	products := &fakeProductRepo{
		products: map[int]domain.Product{
			10: approvedProduct(10, 1),
			11: approvedProduct(11, 1),
		},
	}
	uc := newTestUseCase(orders, products, Params{})

	scores, _, err := uc.scoreCandidates(context.Background(), []neighbor{{UserID: 2, Similarity: 0.5}}, setOf(10))
	require.NoError(t, err)

	require.NotContains(t, scores, 10)
	// Product 10 was skipped entirely, so its category never entered the
	// seen set and product 11 still earns the bonus.
	require.InDelta(t, 0.5*1.2, scores[11], 1e-9)
}

func TestScoreCandidatesIgnoresIneligibleProducts(t *testing.T) {
	rejected := approvedProduct(11, 2)
	rejected.Status = domain.ProductRejected
	deleted := approvedProduct(12, 3)
	deleted.IsDeleted = true

	orders := &fakeOrderRepo{
		ordersByUser: map[int][]domain.Order{
			2: {completedOrder(20, 2, 10, 11, 12)},
		},
	}
	products := &fakeProductRepo{
		products: map[int]domain.Product{
			10: approvedProduct(10, 1),
			11: rejected,
			12: deleted,
		},
	}
	uc := newTestUseCase(orders, products, Params{})

	scores, _, err := uc.scoreCandidates(context.Background(), []neighbor{{UserID: 2, Similarity: 0.5}}, setOf())
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Contains(t, scores, 10)
}
