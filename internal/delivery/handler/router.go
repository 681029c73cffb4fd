// Package handler wires the Echo router: public browsing routes, the auth
// routes, and the admin surface behind the request gate.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth    *AuthHandler
	Listing *ListingHandler
	Account *AccountHandler
	Upload  *UploadHandler
	Gate    *AuthMiddleware
}

func NewRouter(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// Allowed unconditionally, ahead of the gate.
	auth := e.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/register", h.Auth.Register)
	auth.POST("/logout", h.Auth.Logout)

	// Public browsing surface.
	e.GET("/listings", h.Listing.List)
	e.GET("/listings/search", h.Listing.Search)
	e.GET("/listings/:id", h.Listing.Get)

	// Authenticated mutations on the public prefix.
	e.POST("/listings", h.Listing.Create, h.Gate.RequireAuth, h.Gate.RequirePrivileged)
	e.PUT("/listings/:id", h.Listing.Update, h.Gate.RequireAuth, h.Gate.RequirePrivileged)
	e.DELETE("/listings/:id", h.Listing.Delete, h.Gate.RequireAuth, h.Gate.RequirePrivileged)

	// Admin mirror. The gate runs on the group and again inside the
	// handlers' role-sensitive paths.
	admin := e.Group("/admin", h.Gate.RequireAuth, h.Gate.RequirePrivileged)
	admin.GET("/listings", h.Listing.AdminList)
	admin.POST("/listings", h.Listing.Create)
	admin.GET("/listings/:id", h.Listing.Get)
	admin.PUT("/listings/:id", h.Listing.Update)
	admin.DELETE("/listings/:id", h.Listing.Delete)

	users := e.Group("/users", h.Gate.RequireAuth, h.Gate.RequirePrivileged)
	users.GET("", h.Account.List)
	users.POST("", h.Account.Create)
	users.GET("/:id", h.Account.Get)
	users.PUT("/:id", h.Account.Update)
	users.DELETE("/:id", h.Account.Delete)

	e.POST("/upload", h.Upload.Upload, h.Gate.RequireAuth, h.Gate.RequirePrivileged)

	return e
}
