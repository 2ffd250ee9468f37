package common

import (
	"context"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
)

// WithUserID stores the authenticated user ID on both the echo context and the request context
func WithUserID(c echo.Context, userID int64) {
	c.Set(string(UserIDKey), userID)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), UserIDKey, userID)))
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
