package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"realty-server/internal/apperr"
	"realty-server/internal/application/command"
	"realty-server/internal/application/interfaces"
)

type ListingHandler struct {
	listingService interfaces.ListingService
}

func NewListingHandler(listingService interfaces.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

func (h *ListingHandler) List(c echo.Context) error {
	results, err := h.listingService.PublicList(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *ListingHandler) Search(c echo.Context) error {
	query := interfaces.ListingSearchQuery{
		City: c.QueryParam("city"),
	}

	var err error
	if query.MinPrice, err = parseFloatParam(c, "minPrice"); err != nil {
		return respondError(c, err)
	}
	if query.MaxPrice, err = parseFloatParam(c, "maxPrice"); err != nil {
		return respondError(c, err)
	}
	if query.Beds, err = parseIntParam(c, "beds"); err != nil {
		return respondError(c, err)
	}
	if query.Baths, err = parseIntParam(c, "baths"); err != nil {
		return respondError(c, err)
	}

	results, err := h.listingService.Search(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *ListingHandler) Get(c echo.Context) error {
	id, err := parseId(c)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.listingService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// AdminList returns every listing, unpublished included, with the owner
// projection embedded.
func (h *ListingHandler) AdminList(c echo.Context) error {
	query := interfaces.AdminListingQuery{
		Status:   c.QueryParam("status"),
		Search:   c.QueryParam("q"),
		SortBy:   c.QueryParam("sortBy"),
		SortDesc: c.QueryParam("sortOrder") == "desc",
	}

	results, err := h.listingService.AdminList(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *ListingHandler) Create(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		return respondError(c, apperr.Unauthenticated("unauthenticated"))
	}

	var cmd command.CreateListingCommand
	if err := bindError(c, &cmd); err != nil {
		return respondError(c, err)
	}

	result, err := h.listingService.Create(c.Request().Context(), claims.AccountId, cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

func (h *ListingHandler) Update(c echo.Context) error {
	id, err := parseId(c)
	if err != nil {
		return respondError(c, err)
	}

	var cmd command.UpdateListingCommand
	if err := bindError(c, &cmd); err != nil {
		return respondError(c, err)
	}

	result, err := h.listingService.Update(c.Request().Context(), id, cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := parseId(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.listingService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respondNoContent(c, "listing deleted")
}

func parseId(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid id")
	}
	return id, nil
}

func parseFloatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperr.Validation(name + " must be a number")
	}
	return &value, nil
}

func parseIntParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Validation(name + " must be a number")
	}
	return &value, nil
}
