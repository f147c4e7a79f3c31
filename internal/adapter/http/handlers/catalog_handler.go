package handlers

import (
	"errors"
	"net/http"

	request "projestimate/internal/adapter/http/dto/request"
	response "projestimate/internal/adapter/http/dto/response"
	"projestimate/internal/usecase"
	"projestimate/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests against the global configuration
// catalog: suppliers, internal resources, categories and the calculation
// parameters.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetGlobalConfig(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromGlobalConfig(h.usecase.GetGlobalConfig()))
}

// SaveRateEntity creates or replaces a supplier or internal resource. The
// collection comes from the path so the same handler serves both lists.
func (h *CatalogHandler) SaveRateEntity(c *gin.Context) {
	var payload request.RateEntityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	collection := usecase.Collection(c.Param("collection"))
	saved, err := h.usecase.SaveRateEntity(c.Request.Context(), collection, payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *CatalogHandler) DeleteRateEntity(c *gin.Context) {
	collection := usecase.Collection(c.Param("collection"))
	if err := h.usecase.DeleteRateEntity(c.Request.Context(), collection, c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) SaveCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.SaveCategory(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.usecase.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) UpdateCalculationParameters(c *gin.Context) {
	var payload request.CalculationParametersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.UpdateCalculationParameters(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, saved)
}

func mapCatalogError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewValidationError("VALIDATION_FAILED", "Validation failed", validationErr.Issues, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnknownCollection):
		return pkg.NewDomainErrorSimple("UNKNOWN_COLLECTION", "Unknown catalog collection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogNotLoaded):
		return pkg.NewDomainErrorSimple("CATALOG_NOT_LOADED", "Catalog not loaded yet", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
