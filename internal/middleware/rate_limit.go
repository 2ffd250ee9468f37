package middleware

import (
	"net/http"
	"time"

	"mediahub/internal/common"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewMemoryRateLimiterStore allows limit requests per window for each client, refilling evenly
func NewMemoryRateLimiterStore(limit int, window time.Duration) echoMiddleware.RateLimiterStore {
	return echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(limit) / window.Seconds()),
		Burst:     limit,
		ExpiresIn: 3 * window,
	})
}

// RateLimit throttles requests per client IP using store. A nil store disables throttling.
func RateLimit(store echoMiddleware.RateLimiterStore) echo.MiddlewareFunc {
	if store == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Skipper: echoMiddleware.DefaultSkipper,
		Store:   store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return common.SendFailure(c, http.StatusForbidden, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return common.SendFailure(c, http.StatusTooManyRequests, "Too many requests, please try again later")
		},
	})
}
