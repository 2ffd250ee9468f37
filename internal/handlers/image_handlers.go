package handlers

import (
	"bytes"
	"io"
	"net/http"

	"mediahub/internal/common"
	"mediahub/internal/services"

	"github.com/labstack/echo/v4"
)

// ImageHandlers handles the "images" product endpoints
type ImageHandlers struct {
	imageService  services.ImageService
	uploadService services.UploadService
}

func NewImageHandlers(imageService services.ImageService, uploadService services.UploadService) *ImageHandlers {
	return &ImageHandlers{imageService: imageService, uploadService: uploadService}
}

type CreateImagesRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

type UpdateImagesRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

// ListImages handles GET /images with page, pageSize and search query parameters
func (h *ImageHandlers) ListImages(c echo.Context) error {
	page, err := h.imageService.List(c.Request().Context(), parsePageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ImageHandlers) GetImage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.imageService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ImageHandlers) CreateImages(c echo.Context) error {
	var req CreateImagesRequest
	if err := c.Bind(&req); err != nil {
		return common.NewValidationError("Title and images are required")
	}

	result, err := h.imageService.Create(c.Request().Context(), services.CreateImagesInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// UpdateImages handles partial updates; images in the body are appended
func (h *ImageHandlers) UpdateImages(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateImagesRequest
	if err := c.Bind(&req); err != nil {
		return common.NewValidationError("Invalid request body")
	}

	result, err := h.imageService.Update(c.Request().Context(), id, services.UpdateImagesInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteImage removes a single image by its own id
func (h *ImageHandlers) DeleteImage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.imageService.DeleteImage(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAllImages removes a product together with all of its images
func (h *ImageHandlers) DeleteAllImages(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.imageService.DeleteAll(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImage stores the multipart "file" field and returns its key and URL
func (h *ImageHandlers) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return common.NewValidationError("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return common.NewInternalError(err)
	}
	defer file.Close()

	// sniff the content type instead of trusting the client header
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return common.NewInternalError(err)
	}
	head = head[:n]
	contentType := http.DetectContentType(head)

	result, err := h.uploadService.UploadImage(c.Request().Context(), fileHeader.Filename, contentType,
		fileHeader.Size, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}
