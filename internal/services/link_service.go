package services

import (
	"context"
	"errors"

	"mediahub/internal/common"
	"mediahub/internal/models"
	"mediahub/internal/repositories"
)

// LinkService manages "links" products and their link rows
type LinkService interface {
	List(ctx context.Context, req models.PageRequest) (models.Page[models.LinkProduct], error)
	GetByID(ctx context.Context, id int64) (*models.LinkProduct, error)
	Create(ctx context.Context, input CreateLinkInput) (*LinkResult, error)
	Update(ctx context.Context, linkID int64, input UpdateLinkInput) (*LinkResult, error)
	Delete(ctx context.Context, productID int64) error
}

type CreateLinkInput struct {
	Title       string
	Description *string
	URL         string
}

// UpdateLinkInput targets the product by ProductID and the link by the path id
type UpdateLinkInput struct {
	ProductID   int64
	Title       string
	Description *string
	URL         string
}

type LinkResult struct {
	Product models.Product     `json:"product"`
	Link    models.ProductLink `json:"link"`
}

type linkService struct {
	repos repositories.Repos
	tx    repositories.TxManager
}

func NewLinkService(repos repositories.Repos, tx repositories.TxManager) LinkService {
	return &linkService{repos: repos, tx: tx}
}

func (s *linkService) List(ctx context.Context, req models.PageRequest) (models.Page[models.LinkProduct], error) {
	products, total, err := s.repos.Products.List(ctx, models.ContentTypeLinks, req.Search, req.PageSize, req.Offset())
	if err != nil {
		return models.Page[models.LinkProduct]{}, common.NewInternalError(err)
	}

	withLinks, err := attachLinks(ctx, s.repos.Links, products)
	if err != nil {
		return models.Page[models.LinkProduct]{}, common.NewInternalError(err)
	}

	return models.NewPage(withLinks, total, req), nil
}

func (s *linkService) GetByID(ctx context.Context, id int64) (*models.LinkProduct, error) {
	product, err := s.repos.Products.GetByID(ctx, models.ContentTypeLinks, id)
	if err != nil {
		return nil, mapNotFound(err, "Product not found")
	}

	withLinks, err := attachLinks(ctx, s.repos.Links, []models.Product{*product})
	if err != nil {
		return nil, common.NewInternalError(err)
	}
	return &withLinks[0], nil
}

func (s *linkService) Create(ctx context.Context, input CreateLinkInput) (*LinkResult, error) {
	if input.Title == "" || input.URL == "" {
		return nil, common.NewValidationError("title and url are required")
	}

	result := LinkResult{
		Product: models.Product{
			ContentType: models.ContentTypeLinks,
			Title:       &input.Title,
			Description: input.Description,
		},
	}

	err := s.tx.WithinTx(ctx, func(repos repositories.Repos) error {
		if err := repos.Products.Create(ctx, &result.Product); err != nil {
			return err
		}
		result.Link = models.ProductLink{ProductID: result.Product.ID, URL: input.URL}
		return repos.Links.Create(ctx, &result.Link)
	})
	if err != nil {
		return nil, common.NewInternalError(err)
	}

	return &result, nil
}

func (s *linkService) Update(ctx context.Context, linkID int64, input UpdateLinkInput) (*LinkResult, error) {
	if input.ProductID <= 0 || input.Title == "" || input.URL == "" {
		return nil, common.NewValidationError("product_id, title, and url are required")
	}

	var result LinkResult
	err := s.tx.WithinTx(ctx, func(repos repositories.Repos) error {
		product, err := repos.Products.Update(ctx, models.ContentTypeLinks, input.ProductID, models.ProductUpdate{
			Title:       &input.Title,
			Description: input.Description,
		})
		if err != nil {
			return mapNotFound(err, "Product not found")
		}

		link, err := repos.Links.UpdateURL(ctx, linkID, input.URL)
		if err != nil {
			return mapNotFound(err, "Link not found")
		}

		result = LinkResult{Product: *product, Link: *link}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	return &result, nil
}

// Delete removes the links of productID and the product itself
func (s *linkService) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return common.NewValidationError("product_id is required")
	}

	err := s.tx.WithinTx(ctx, func(repos repositories.Repos) error {
		if _, err := repos.Links.DeleteByProduct(ctx, productID); err != nil {
			return err
		}
		return repos.Products.Delete(ctx, models.ContentTypeLinks, productID)
	})
	if err != nil {
		return mapNotFound(err, "Product or Link not found")
	}
	return nil
}

func attachLinks(ctx context.Context, links repositories.ProductLinkRepository, products []models.Product) ([]models.LinkProduct, error) {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	byProduct, err := links.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.LinkProduct, len(products))
	for i, p := range products {
		ls := byProduct[p.ID]
		if ls == nil {
			ls = []models.ProductLink{}
		}
		result[i] = models.LinkProduct{Product: p, Links: ls}
	}
	return result, nil
}

func asAppError(err error) error {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return common.NewInternalError(err)
}
