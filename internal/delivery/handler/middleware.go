package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"realty-server/internal/infrastructure"
)

const (
	authCookieName = "auth_token"
	claimsKey      = "authClaims"
	loginPath      = "/login"
)

// AuthMiddleware is the request gate. It runs in front of every protected
// route and is instantiated again per-handler for role-sensitive
// mutations, so reaching an API route directly is rejected the same way
// as a page navigation.
type AuthMiddleware struct {
	jwtService *infrastructure.JWTService
}

func NewAuthMiddleware(jwtService *infrastructure.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth rejects requests without a valid, unexpired token. Browser
// navigations are redirected to the sign-in page; API clients get 401.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			return m.reject(c, http.StatusUnauthorized, "")
		}

		claims, err := m.jwtService.ParseToken(tokenStr)
		if err != nil {
			return m.reject(c, http.StatusUnauthorized, "")
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

// RequirePrivileged allows only moderator and super-admin tokens through.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequirePrivileged(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := CurrentClaims(c)
		if claims == nil {
			return m.reject(c, http.StatusUnauthorized, "")
		}
		if !claims.Role.IsPrivileged() {
			return m.reject(c, http.StatusForbidden, "AccessDenied")
		}
		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, status int, indicator string) error {
	if wantsHTML(c) {
		target := loginPath
		if indicator != "" {
			target += "?error=" + indicator
		}
		return c.Redirect(http.StatusFound, target)
	}
	message := "unauthenticated"
	if status == http.StatusForbidden {
		message = "access denied"
	}
	return c.JSON(status, echo.Map{"error": message})
}

// CurrentClaims returns the claims stored by RequireAuth, or nil.
func CurrentClaims(c echo.Context) *infrastructure.AuthClaims {
	claims, ok := c.Get(claimsKey).(*infrastructure.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(authCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
