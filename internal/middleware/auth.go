package middleware

import (
	"errors"
	"net/http"

	"mediahub/internal/common"
	"mediahub/internal/services"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "claims"

// TokenValidator verifies bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*services.TokenClaims, error)
}

// RequireAuth rejects requests without a valid bearer token. On success the
// user id is available through common.GetUserIDFromContext.
func RequireAuth(validator TokenValidator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return validator.ValidateToken(auth)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get(claimsContextKey).(*services.TokenClaims); ok {
				common.WithUserID(c, claims.UserID)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return common.SendMessage(c, http.StatusUnauthorized, "No token provided")
			}
			return common.SendMessage(c, http.StatusUnauthorized, "Invalid token")
		},
	})
}
