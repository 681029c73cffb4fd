package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"realty-server/internal/application/command"
	"realty-server/internal/application/interfaces"
)

type AuthHandler struct {
	authService interfaces.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService interfaces.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenTTL:    tokenTTL,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginCommand
	if err := bindError(c, &cmd); err != nil {
		return respondError(c, err)
	}

	result, err := h.authService.Login(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.CreateAccountCommand
	if err := bindError(c, &cmd); err != nil {
		return respondError(c, err)
	}

	result, err := h.authService.Register(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, result.Result)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return respondNoContent(c, "signed out")
}
