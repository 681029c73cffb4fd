package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"realty-server/internal/apperr"
	"realty-server/internal/infrastructure"
)

type UploadHandler struct {
	uploadService *infrastructure.UploadService
}

func NewUploadHandler(uploadService *infrastructure.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperr.Validation("file field is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, apperr.Internal(err))
	}
	defer file.Close()

	url, err := h.uploadService.UploadImage(c.Request().Context(), file)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"url": url})
}
