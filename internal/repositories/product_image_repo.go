package repositories

import (
	"context"
	"fmt"

	"mediahub/internal/models"

	"github.com/jackc/pgx/v5"
)

type ProductImageRepository interface {
	CreateMany(ctx context.Context, productID int64, images []string) (int64, error)
	ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.ProductImage, error)
	Delete(ctx context.Context, id int64) error
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
}

type productImageRepo struct {
	db DBTX
}

func NewProductImageRepo(db DBTX) ProductImageRepository {
	return &productImageRepo{db: db}
}

// CreateMany bulk inserts one row per image reference using COPY
func (r *productImageRepo) CreateMany(ctx context.Context, productID int64, images []string) (int64, error) {
	if len(images) == 0 {
		return 0, nil
	}
	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"product_images"},
		[]string{"product_id", "image"},
		pgx.CopyFromSlice(len(images), func(i int) ([]any, error) {
			return []any{productID, images[i]}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product images: %w", err)
	}
	return n, nil
}

// ListByProducts loads the images of several products in one query, keyed by product id
func (r *productImageRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.ProductImage, error) {
	result := make(map[int64][]models.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, product_id, image, created_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var image models.ProductImage
		if err := rows.Scan(&image.ID, &image.ProductID, &image.Image, &image.CreatedAt); err != nil {
			return nil, err
		}
		result[image.ProductID] = append(result[image.ProductID], image)
	}
	return result, rows.Err()
}

func (r *productImageRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productImageRepo) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product images: %w", err)
	}
	return tag.RowsAffected(), nil
}
