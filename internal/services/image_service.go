package services

import (
	"context"
	"errors"
	"strings"

	"mediahub/internal/common"
	"mediahub/internal/models"
	"mediahub/internal/repositories"
)

// ImageService manages "images" products and their galleries
type ImageService interface {
	List(ctx context.Context, req models.PageRequest) (models.Page[models.ImageProduct], error)
	GetByID(ctx context.Context, id int64) (*models.ImageProduct, error)
	Create(ctx context.Context, input CreateImagesInput) (*CreateImagesResult, error)
	Update(ctx context.Context, id int64, input UpdateImagesInput) (*UpdateImagesResult, error)
	DeleteImage(ctx context.Context, imageID int64) error
	DeleteAll(ctx context.Context, productID int64) error
}

type CreateImagesInput struct {
	Title       string
	Description *string
	Images      []string
}

type CreateImagesResult struct {
	Product     models.Product `json:"product"`
	ImagesCount int64          `json:"imagesCount"`
}

// UpdateImagesInput appends Images; nil Title or Description keep the stored value
type UpdateImagesInput struct {
	Title       *string
	Description *string
	Images      []string
}

type UpdateImagesResult struct {
	Product     models.ImageProduct `json:"product"`
	ImagesAdded int64               `json:"imagesAdded"`
}

type imageService struct {
	repos repositories.Repos
	tx    repositories.TxManager
}

func NewImageService(repos repositories.Repos, tx repositories.TxManager) ImageService {
	return &imageService{repos: repos, tx: tx}
}

func (s *imageService) List(ctx context.Context, req models.PageRequest) (models.Page[models.ImageProduct], error) {
	products, total, err := s.repos.Products.List(ctx, models.ContentTypeImages, req.Search, req.PageSize, req.Offset())
	if err != nil {
		return models.Page[models.ImageProduct]{}, common.NewInternalError(err)
	}

	withImages, err := attachImages(ctx, s.repos.Images, products)
	if err != nil {
		return models.Page[models.ImageProduct]{}, common.NewInternalError(err)
	}

	return models.NewPage(withImages, total, req), nil
}

func (s *imageService) GetByID(ctx context.Context, id int64) (*models.ImageProduct, error) {
	product, err := s.repos.Products.GetByID(ctx, models.ContentTypeImages, id)
	if err != nil {
		return nil, mapNotFound(err, "Product not found")
	}

	withImages, err := attachImages(ctx, s.repos.Images, []models.Product{*product})
	if err != nil {
		return nil, common.NewInternalError(err)
	}
	return &withImages[0], nil
}

// Create inserts the product and its images in one transaction
func (s *imageService) Create(ctx context.Context, input CreateImagesInput) (*CreateImagesResult, error) {
	if input.Title == "" || len(input.Images) == 0 {
		return nil, common.NewValidationError("Title and images are required")
	}
	if err := validateImageRefs(input.Images); err != nil {
		return nil, err
	}

	product := models.Product{
		ContentType: models.ContentTypeImages,
		Title:       &input.Title,
		Description: input.Description,
	}

	var count int64
	err := s.tx.WithinTx(ctx, func(repos repositories.Repos) error {
		if err := repos.Products.Create(ctx, &product); err != nil {
			return err
		}
		n, err := repos.Images.CreateMany(ctx, product.ID, input.Images)
		count = n
		return err
	})
	if err != nil {
		return nil, common.NewInternalError(err)
	}

	return &CreateImagesResult{Product: product, ImagesCount: count}, nil
}

// Update applies the partial product update and appends any new images
func (s *imageService) Update(ctx context.Context, id int64, input UpdateImagesInput) (*UpdateImagesResult, error) {
	if err := validateImageRefs(input.Images); err != nil {
		return nil, err
	}

	var result UpdateImagesResult
	err := s.tx.WithinTx(ctx, func(repos repositories.Repos) error {
		product, err := repos.Products.Update(ctx, models.ContentTypeImages, id, models.ProductUpdate{
			Title:       input.Title,
			Description: input.Description,
		})
		if err != nil {
			return err
		}

		added, err := repos.Images.CreateMany(ctx, id, input.Images)
		if err != nil {
			return err
		}

		withImages, err := attachImages(ctx, repos.Images, []models.Product{*product})
		if err != nil {
			return err
		}

		result = UpdateImagesResult{Product: withImages[0], ImagesAdded: added}
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err, "Product not found")
	}

	return &result, nil
}

func (s *imageService) DeleteImage(ctx context.Context, imageID int64) error {
	if err := s.repos.Images.Delete(ctx, imageID); err != nil {
		return mapNotFound(err, "Image not found")
	}
	return nil
}

// DeleteAll removes a product's images and then the product itself
func (s *imageService) DeleteAll(ctx context.Context, productID int64) error {
	err := s.tx.WithinTx(ctx, func(repos repositories.Repos) error {
		if _, err := repos.Images.DeleteByProduct(ctx, productID); err != nil {
			return err
		}
		return repos.Products.Delete(ctx, models.ContentTypeImages, productID)
	})
	if err != nil {
		return mapNotFound(err, "Product not found")
	}
	return nil
}

func attachImages(ctx context.Context, images repositories.ProductImageRepository, products []models.Product) ([]models.ImageProduct, error) {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	byProduct, err := images.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.ImageProduct, len(products))
	for i, p := range products {
		imgs := byProduct[p.ID]
		if imgs == nil {
			imgs = []models.ProductImage{}
		}
		result[i] = models.ImageProduct{Product: p, Images: imgs}
	}
	return result, nil
}

func validateImageRefs(images []string) error {
	for _, image := range images {
		if strings.TrimSpace(image) == "" {
			return common.NewValidationError("Each image must be a non-empty string")
		}
	}
	return nil
}

// mapNotFound turns a repository miss into a NotFound error with message;
// any other failure becomes an internal error
func mapNotFound(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return common.NewNotFoundError(message)
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return common.NewInternalError(err)
}
