package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"realty-server/internal/apperr"
)

// respondError maps the error taxonomy to a wire status in one place.
// Internal failures are logged server-side and reported opaquely.
func respondError(c echo.Context, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": apperr.PublicMessage(err)})
}

// bindError turns a failed Echo bind (malformed JSON, wrong field types)
// into a validation error.
func bindError(c echo.Context, dest interface{}) error {
	if err := c.Bind(dest); err != nil {
		return apperr.Wrap(apperr.KindValidation, "malformed request body", err)
	}
	return nil
}

func respondNoContent(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}
