package handlers

import (
	"encoding/json"
	"net/http"

	"mediahub/internal/common"
	"mediahub/internal/services"

	"github.com/labstack/echo/v4"
)

// LinkHandlers handles the "links" product endpoints
type LinkHandlers struct {
	linkService services.LinkService
}

func NewLinkHandlers(linkService services.LinkService) *LinkHandlers {
	return &LinkHandlers{linkService: linkService}
}

type CreateLinkRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
}

type UpdateLinkRequest struct {
	ProductID   json.Number `json:"product_id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	URL         string      `json:"url"`
}

type DeleteLinkRequest struct {
	ProductID json.Number `json:"product_id"`
}

func (h *LinkHandlers) ListLinks(c echo.Context) error {
	page, err := h.linkService.List(c.Request().Context(), parsePageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *LinkHandlers) GetLink(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.linkService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *LinkHandlers) CreateLink(c echo.Context) error {
	var req CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return common.NewValidationError("title and url are required")
	}

	result, err := h.linkService.Create(c.Request().Context(), services.CreateLinkInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// UpdateLink updates the product named by body product_id and the link named by the path id
func (h *LinkHandlers) UpdateLink(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateLinkRequest
	if err := c.Bind(&req); err != nil {
		return common.NewValidationError("product_id, title, and url are required")
	}

	result, err := h.linkService.Update(c.Request().Context(), id, services.UpdateLinkInput{
		ProductID:   flexibleID(req.ProductID),
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteLink deletes by body product_id; the path id is not used
func (h *LinkHandlers) DeleteLink(c echo.Context) error {
	var req DeleteLinkRequest
	if err := c.Bind(&req); err != nil {
		return common.NewValidationError("product_id is required")
	}

	if err := h.linkService.Delete(c.Request().Context(), flexibleID(req.ProductID)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
