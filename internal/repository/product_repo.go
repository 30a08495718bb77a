package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"recommendation_service/internal/domain"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) GetApprovedByIDs(ctx context.Context, ids []int) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	query := `
        SELECT id, name, price, category_id, status, view_count, created_at
        FROM products
        WHERE id = ANY($1::int[])
          AND status = $2
          AND is_deleted = FALSE
        ORDER BY id
    `
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids), domain.ProductApproved)
	if err != nil {
		r.log.Errorf("Failed to query products by ids (%v): %v", ids, err)
		return nil, wrapStoreErr("could not retrieve products by ids", err)
	}
	defer rows.Close()

	products, err := r.scanProducts(rows)
	if err != nil {
		r.log.Errorf("Failed to scan products by ids: %v", err)
		return nil, err
	}

	r.log.Debugf("Retrieved %d approved products for %d requested ids", len(products), len(ids))
	return products, nil
}

func (r *postgresProductRepository) TopByPopularity(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `
        SELECT id, name, price, category_id, status, view_count, created_at
        FROM products
        WHERE status = $1 AND is_deleted = FALSE
        ORDER BY view_count DESC, created_at DESC
        LIMIT $2
    `
	rows, err := r.db.QueryContext(ctx, query, domain.ProductApproved, limit)
	if err != nil {
		r.log.Errorf("Failed to query top products (limit %d): %v", limit, err)
		return nil, wrapStoreErr("could not retrieve top products", err)
	}
	defer rows.Close()

	products, err := r.scanProducts(rows)
	if err != nil {
		r.log.Errorf("Failed to scan top products: %v", err)
		return nil, err
	}

	r.log.Debugf("Retrieved %d top products (limit %d)", len(products), limit)
	return products, nil
}

func (r *postgresProductRepository) scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		var categoryID sql.NullInt64
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&categoryID,
			&product.Status,
			&product.ViewCount,
			&product.CreatedAt,
		); err != nil {
			return nil, wrapStoreErr("error scanning product", err)
		}
		if categoryID.Valid {
			product.CategoryID = int(categoryID.Int64)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("error iterating products", err)
	}
	return products, nil
}
