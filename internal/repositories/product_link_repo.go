package repositories

import (
	"context"
	"fmt"

	"mediahub/internal/models"
)

type ProductLinkRepository interface {
	Create(ctx context.Context, link *models.ProductLink) error
	UpdateURL(ctx context.Context, id int64, url string) (*models.ProductLink, error)
	ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.ProductLink, error)
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
}

type productLinkRepo struct {
	db DBTX
}

func NewProductLinkRepo(db DBTX) ProductLinkRepository {
	return &productLinkRepo{db: db}
}

func (r *productLinkRepo) Create(ctx context.Context, link *models.ProductLink) error {
	query := `
		INSERT INTO product_links (product_id, url, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	if err := r.db.QueryRow(ctx, query, link.ProductID, link.URL).Scan(&link.ID, &link.CreatedAt); err != nil {
		return fmt.Errorf("failed to create product link: %w", err)
	}
	return nil
}

func (r *productLinkRepo) UpdateURL(ctx context.Context, id int64, url string) (*models.ProductLink, error) {
	query := `
		UPDATE product_links SET url = $2
		WHERE id = $1
		RETURNING id, product_id, url, created_at
	`
	link := &models.ProductLink{}
	err := r.db.QueryRow(ctx, query, id, url).Scan(&link.ID, &link.ProductID, &link.URL, &link.CreatedAt)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return link, nil
}

func (r *productLinkRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.ProductLink, error) {
	result := make(map[int64][]models.ProductLink, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, product_id, url, created_at
		FROM product_links
		WHERE product_id = ANY($1)
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load product links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var link models.ProductLink
		if err := rows.Scan(&link.ID, &link.ProductID, &link.URL, &link.CreatedAt); err != nil {
			return nil, err
		}
		result[link.ProductID] = append(result[link.ProductID], link)
	}
	return result, rows.Err()
}

func (r *productLinkRepo) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_links WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product links: %w", err)
	}
	return tag.RowsAffected(), nil
}
