package middleware

import (
	"strings"

	"roster/config"
	deliverycontext "roster/internal/delivery/context"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const defaultSessionCookieName = "authorization"

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := defaultSessionCookieName
	if cfg != nil && cfg.SessionCookie != nil && cfg.SessionCookie.Name != "" {
		cookieName = cfg.SessionCookie.Name
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cookieName}
}

// Authenticate validates the session token and stores the authenticated user
// ID on the context. The token is read from the Authorization header first,
// then from the session cookie set at login.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := m.extractToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("session token rejected")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

// extractToken pulls the bearer token out of the request. Both the header and
// the cookie carry the "Bearer <token>" form.
func (m *AuthMiddleware) extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return "", domainerrors.ErrTokenInvalid.WrapMessage("authorization header must carry a Bearer token")
		}

		return tokenString, nil
	}

	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", domainerrors.ErrTokenInvalid.WrapMessage("no session token provided")
	}

	return strings.TrimPrefix(cookie.Value, "Bearer "), nil
}
