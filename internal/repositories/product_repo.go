package repositories

import (
	"context"
	"fmt"

	"mediahub/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, contentType models.ContentType, id int64) (*models.Product, error)
	Update(ctx context.Context, contentType models.ContentType, id int64, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, contentType models.ContentType, id int64) error
	List(ctx context.Context, contentType models.ContentType, search string, limit, offset int) ([]models.Product, int, error)
}

type productRepo struct {
	db DBTX
}

func NewProductRepo(db DBTX) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `p.id, p.content_type, p.title, p.description, p.created_at, p.updated_at`

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (content_type, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, product.ContentType, product.Title, product.Description).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, contentType models.ContentType, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1 AND p.content_type = $2`
	product, err := scanProduct(r.db.QueryRow(ctx, query, id, contentType))
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return product, nil
}

// Update changes only the non-nil fields of update
func (r *productRepo) Update(ctx context.Context, contentType models.ContentType, id int64, update models.ProductUpdate) (*models.Product, error) {
	query := `
		UPDATE products p
		SET title = COALESCE($3, p.title),
		    description = COALESCE($4, p.description),
		    updated_at = NOW()
		WHERE p.id = $1 AND p.content_type = $2
		RETURNING ` + productColumns
	product, err := scanProduct(r.db.QueryRow(ctx, query, id, contentType, update.Title, update.Description))
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return product, nil
}

func (r *productRepo) Delete(ctx context.Context, contentType models.ContentType, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1 AND content_type = $2`, id, contentType)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns one page of products, newest first, and the total match count.
// Images match search on title; links match when any of their urls contains it.
func (r *productRepo) List(ctx context.Context, contentType models.ContentType, search string, limit, offset int) ([]models.Product, int, error) {
	where, args := listFilter(contentType, search)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products p `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM products p %s ORDER BY p.id DESC LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func listFilter(contentType models.ContentType, search string) (string, []any) {
	where := `WHERE p.content_type = $1`
	args := []any{contentType}
	if search == "" {
		return where, args
	}

	switch contentType {
	case models.ContentTypeLinks:
		where += ` AND EXISTS (SELECT 1 FROM product_links l WHERE l.product_id = p.id AND l.url ILIKE $2 ESCAPE '\')`
	default:
		where += ` AND COALESCE(p.title, '') ILIKE $2 ESCAPE '\'`
	}
	return where, append(args, likePattern(search))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	p := &models.Product{}
	if err := row.Scan(&p.ID, &p.ContentType, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}
