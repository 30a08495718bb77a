package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is a read-side view of a stored order. ItemsRaw carries the serialized
// line-item snapshot exactly as persisted; it is decoded lazily by the
// recommendation core so that a malformed snapshot never fails a query.
type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	Status    OrderStatus `json:"status"`
	ItemsRaw  []byte      `json:"-"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderRepository interface {
	FindCompletedByUser(ctx context.Context, userID int) ([]Order, error)
	FindRecentActiveUsers(ctx context.Context, excludeUserID int, since time.Time, limit int) ([]int, error)
	FindRecentCompletedByUser(ctx context.Context, userID, limit int) ([]Order, error)
}

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusPaid, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
