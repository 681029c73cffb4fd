package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realty-server/internal/apperr"
	"realty-server/internal/application/command"
	"realty-server/internal/application/interfaces"
)

type AccountHandler struct {
	accountService interfaces.AccountService
}

func NewAccountHandler(accountService interfaces.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) List(c echo.Context) error {
	query := interfaces.AccountListQuery{
		Role:     c.QueryParam("role"),
		Search:   c.QueryParam("q"),
		SortBy:   c.QueryParam("sortBy"),
		SortDesc: c.QueryParam("sortOrder") == "desc",
	}

	results, err := h.accountService.List(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *AccountHandler) Get(c echo.Context) error {
	id, err := parseId(c)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.accountService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AccountHandler) Create(c echo.Context) error {
	var cmd command.CreateAccountCommand
	if err := bindError(c, &cmd); err != nil {
		return respondError(c, err)
	}

	result, err := h.accountService.Create(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

func (h *AccountHandler) Update(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		return respondError(c, apperr.Unauthenticated("unauthenticated"))
	}

	id, err := parseId(c)
	if err != nil {
		return respondError(c, err)
	}

	var cmd command.UpdateAccountCommand
	if err := bindError(c, &cmd); err != nil {
		return respondError(c, err)
	}

	result, err := h.accountService.Update(c.Request().Context(), claims.AccountId, id, cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *AccountHandler) Delete(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		return respondError(c, apperr.Unauthenticated("unauthenticated"))
	}

	id, err := parseId(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.accountService.Delete(c.Request().Context(), claims.AccountId, id); err != nil {
		return respondError(c, err)
	}
	return respondNoContent(c, "account deleted")
}
