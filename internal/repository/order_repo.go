package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"recommendation_service/internal/domain"
)

type postgresOrderRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresOrderRepository(db *sql.DB, logger *logrus.Logger) domain.OrderRepository {
	return &postgresOrderRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresOrderRepository) FindCompletedByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT id, user_id, status, items, created_at
        FROM orders
        WHERE user_id = $1 AND status = $2 AND is_deleted = FALSE
    `
	rows, err := r.db.QueryContext(ctx, query, userID, domain.StatusCompleted)
	if err != nil {
		r.log.Errorf("Failed to query completed orders for user %d: %v", userID, err)
		return nil, wrapStoreErr("could not retrieve completed orders", err)
	}
	defer rows.Close()

	orders, err := r.scanOrders(rows)
	if err != nil {
		r.log.Errorf("Failed to scan completed orders for user %d: %v", userID, err)
		return nil, err
	}

	r.log.Debugf("Retrieved %d completed orders for user %d", len(orders), userID)
	return orders, nil
}

func (r *postgresOrderRepository) FindRecentActiveUsers(ctx context.Context, excludeUserID int, since time.Time, limit int) ([]int, error) {
	query := `
        SELECT DISTINCT user_id
        FROM orders
        WHERE user_id <> $1
          AND status = $2
          AND is_deleted = FALSE
          AND created_at >= $3
        ORDER BY user_id
        LIMIT $4
    `
	rows, err := r.db.QueryContext(ctx, query, excludeUserID, domain.StatusCompleted, since, limit)
	if err != nil {
		r.log.Errorf("Failed to query recent active users (excluding %d): %v", excludeUserID, err)
		return nil, wrapStoreErr("could not retrieve recent active users", err)
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			r.log.Errorf("Failed to scan active user row: %v", err)
			return nil, wrapStoreErr("error scanning active user", err)
		}
		userIDs = append(userIDs, id)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during active users iteration: %v", err)
		return nil, wrapStoreErr("error iterating active users", err)
	}

	r.log.Debugf("Retrieved %d recent active users since %s", len(userIDs), since.Format(time.RFC3339))
	return userIDs, nil
}

func (r *postgresOrderRepository) FindRecentCompletedByUser(ctx context.Context, userID, limit int) ([]domain.Order, error) {
	query := `
        SELECT id, user_id, status, items, created_at
        FROM orders
        WHERE user_id = $1 AND status = $2 AND is_deleted = FALSE
        ORDER BY created_at DESC
        LIMIT $3
    `
	rows, err := r.db.QueryContext(ctx, query, userID, domain.StatusCompleted, limit)
	if err != nil {
		r.log.Errorf("Failed to query recent completed orders for user %d: %v", userID, err)
		return nil, wrapStoreErr("could not retrieve recent completed orders", err)
	}
	defer rows.Close()

	orders, err := r.scanOrders(rows)
	if err != nil {
		r.log.Errorf("Failed to scan recent completed orders for user %d: %v", userID, err)
		return nil, err
	}

	r.log.Debugf("Retrieved %d recent completed orders for user %d", len(orders), userID)
	return orders, nil
}

func (r *postgresOrderRepository) scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.ItemsRaw,
			&order.CreatedAt,
		); err != nil {
			return nil, wrapStoreErr("error scanning order", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("error iterating orders", err)
	}
	return orders, nil
}
