package handlers

import (
	"encoding/json"
	"math"
	"strconv"

	"mediahub/internal/common"
	"mediahub/internal/models"

	"github.com/labstack/echo/v4"
)

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewValidationError("Invalid id")
	}
	return id, nil
}

// parsePageRequest applies defaults for missing, non-numeric or non-positive values
func parsePageRequest(c echo.Context) models.PageRequest {
	pageSize := positiveIntOr(c.QueryParam("pageSize"), models.DefaultPageSize)
	if pageSize > models.MaxPageSize {
		pageSize = models.MaxPageSize
	}

	// keep (page-1)*pageSize within int
	page := positiveIntOr(c.QueryParam("page"), models.DefaultPage)
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}

	return models.PageRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   c.QueryParam("search"),
	}
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// flexibleID parses a JSON number or numeric string; anything else yields 0
func flexibleID(n json.Number) int64 {
	id, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
