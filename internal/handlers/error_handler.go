package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"mediahub/internal/common"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler renders errors returned by handlers as {"message": ...}.
// Internal failures are logged and reported with a generic message.
func NewHTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		var appErr *common.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.StatusCode()
			if appErr.Kind != common.KindInternal {
				message = appErr.Message
			}
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if status < http.StatusInternalServerError {
				message = fmt.Sprint(httpErr.Message)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = common.SendMessage(c, status, message)
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}
