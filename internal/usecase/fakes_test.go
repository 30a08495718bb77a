package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"recommendation_service/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeOrderRepo serves canned completed orders per user. Orders are assumed
// to be stored newest first, matching the repository contract.
type fakeOrderRepo struct {
	ordersByUser map[int][]domain.Order
	activeUsers  []int
	err          error
}

func (f *fakeOrderRepo) FindCompletedByUser(_ context.Context, userID int) ([]domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ordersByUser[userID], nil
}

func (f *fakeOrderRepo) FindRecentActiveUsers(_ context.Context, excludeUserID int, _ time.Time, limit int) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	var users []int
	for _, id := range f.activeUsers {
		if id == excludeUserID {
			continue
		}
		users = append(users, id)
		if len(users) >= limit {
			break
		}
	}
	return users, nil
}

func (f *fakeOrderRepo) FindRecentCompletedByUser(_ context.Context, userID, limit int) ([]domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	orders := f.ordersByUser[userID]
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

type fakeProductRepo struct {
	products map[int]domain.Product
	hot      []domain.Product
	err      error
}

func (f *fakeProductRepo) GetApprovedByIDs(_ context.Context, ids []int) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	var products []domain.Product
	for _, id := range sorted {
		product, ok := f.products[id]
		if !ok || product.Status != domain.ProductApproved || product.IsDeleted {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (f *fakeProductRepo) TopByPopularity(_ context.Context, limit int) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	hot := f.hot
	if len(hot) > limit {
		hot = hot[:limit]
	}
	return hot, nil
}

func approvedProduct(id, categoryID int) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       fmt.Sprintf("product-%d", id),
		Price:      9.99,
		CategoryID: categoryID,
		Status:     domain.ProductApproved,
		ViewCount:  id,
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func completedOrder(id, userID int, productIDs ...int) domain.Order {
	items := make([]domain.LineItem, 0, len(productIDs))
	for _, productID := range productIDs {
		items = append(items, domain.LineItem{ProductID: productID, Quantity: 1, Price: 9.99})
	}
	raw, err := domain.EncodeLineItems(items)
	if err != nil {
		panic(err)
	}
	return domain.Order{
		ID:        id,
		UserID:    userID,
		Status:    domain.StatusCompleted,
		ItemsRaw:  raw,
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func malformedOrder(id, userID int) domain.Order {
	return domain.Order{
		ID:        id,
		UserID:    userID,
		Status:    domain.StatusCompleted,
		ItemsRaw:  []byte(`{"not":"a list"`),
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(orders *fakeOrderRepo, products *fakeProductRepo, params Params) *recommendationUseCase {
	return NewRecommendationUseCase(orders, products, params, testLogger()).(*recommendationUseCase)
}
