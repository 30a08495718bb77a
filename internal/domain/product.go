package domain

import (
	"context"
	"time"
)

type ProductStatus string

const (
	ProductPending  ProductStatus = "pending"
	ProductApproved ProductStatus = "approved"
	ProductRejected ProductStatus = "rejected"
)

type Product struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Price      float64       `json:"price"`
	CategoryID int           `json:"category_id"`
	Status     ProductStatus `json:"status"`
	ViewCount  int           `json:"view_count"`
	CreatedAt  time.Time     `json:"created_at"`
	IsDeleted  bool          `json:"-"`
}

// ProductRepository exposes the read-only product queries the recommendation
// core needs. Both methods return only approved, non-deleted products.
type ProductRepository interface {
	// GetApprovedByIDs returns matching products ordered by id ascending.
	// IDs that do not resolve to an eligible product are silently absent.
	GetApprovedByIDs(ctx context.Context, ids []int) ([]Product, error)
	// TopByPopularity returns up to limit products ordered by
	// (view_count desc, created_at desc).
	TopByPopularity(ctx context.Context, limit int) ([]Product, error)
}
