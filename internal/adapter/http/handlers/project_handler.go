package handlers

import (
	"errors"
	"net/http"

	request "projestimate/internal/adapter/http/dto/request"
	response "projestimate/internal/adapter/http/dto/response"
	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase"
	"projestimate/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for project estimation: project
// lifecycle, per-project overrides, phase editing and the cost report.

type ProjectHandler struct {
	usecase usecase.IProjectEstimationUseCase
}

func NewProjectHandler(uc usecase.IProjectEstimationUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.CreateProject(c.Request.Context(), payload.Name, payload.Client)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProjectDocument(doc))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	doc, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectDocument(doc))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetPhaseManDays updates the entered man-days of one phase. The
// development phase answers 422: its figure is derived from the features.
func (h *ProjectHandler) SetPhaseManDays(c *gin.Context) {
	var payload request.PhaseManDaysRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	phase := entities.PhaseID(c.Param("phase"))
	doc, err := h.usecase.SetPhaseManDays(c.Request.Context(), c.Param("id"), phase, *payload.ManDays)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectDocument(doc))
}

// SelectSupplier records which rate entity prices a role. An empty
// entityId clears the selection.
func (h *ProjectHandler) SelectSupplier(c *gin.Context) {
	var payload request.SelectSupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	role := entities.Role(c.Param("role"))
	doc, err := h.usecase.SelectSupplier(c.Request.Context(), c.Param("id"), role, payload.EntityID)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectDocument(doc))
}

func (h *ProjectHandler) GetEffectiveConfig(c *gin.Context) {
	cfg, err := h.usecase.EffectiveConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEffectiveConfig(cfg))
}

// AddOverride appends one override item to the collection named in the
// path. Rate collections take a rate patch, categories a category patch.
func (h *ProjectHandler) AddOverride(c *gin.Context) {
	collection := usecase.Collection(c.Param("collection"))

	var (
		doc entities.ProjectDocument
		err error
	)
	switch {
	case collection.IsRateCollection():
		var payload request.RateOverrideRequest
		if bindErr := c.ShouldBindJSON(&payload); bindErr != nil {
			c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
			return
		}
		doc, err = h.usecase.AddRateOverride(c.Request.Context(), c.Param("id"), collection, payload.ToPatch())
	case collection == usecase.CollectionCategories:
		var payload request.CategoryOverrideRequest
		if bindErr := c.ShouldBindJSON(&payload); bindErr != nil {
			c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
			return
		}
		doc, err = h.usecase.AddCategoryOverride(c.Request.Context(), c.Param("id"), payload.ToPatch())
	default:
		err = usecase.ErrUnknownCollection
	}
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectDocument(doc))
}

func (h *ProjectHandler) ResetOverrides(c *gin.Context) {
	doc, err := h.usecase.ResetOverrides(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectDocument(doc))
}

func (h *ProjectHandler) GetCostReport(c *gin.Context) {
	report, err := h.usecase.CostReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostReport(report))
}

func mapProjectError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewValidationError("VALIDATION_FAILED", "Validation failed", validationErr.Issues, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectName),
		errors.Is(err, usecase.ErrInvalidManDays), errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrUnknownPhase), errors.Is(err, usecase.ErrUnknownCollection):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhaseIsCalculated):
		return pkg.NewDomainErrorSimple("PHASE_IS_CALCULATED", "Phase man-days are derived from the feature estimates", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogNotLoaded):
		return pkg.NewDomainErrorSimple("CATALOG_NOT_LOADED", "Catalog not loaded yet", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
