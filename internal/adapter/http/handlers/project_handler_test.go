package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"projestimate/internal/adapter/http/handlers/mocks"
	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleProjectDoc() entities.ProjectDocument {
	now := time.Now().UTC()
	overrides := entities.ProjectOverrides{
		Suppliers:         []entities.RateEntityPatch{},
		InternalResources: []entities.RateEntityPatch{},
		Categories:        []entities.CategoryPatch{},
	}
	return entities.ProjectDocument{
		Project: entities.ProjectInfo{ID: "proj-1", Name: "CRM Replatform", CreatedAt: now, UpdatedAt: now},
		Phases:  entities.NewPhasePlan(),
		Config:  entities.ProjectConfig{ProjectOverrides: &overrides},
	}
}

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"client":"ACME"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().CreateProject(gomock.Any(), "CRM Replatform", "ACME").Return(sampleProjectDoc(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"CRM Replatform","client":"ACME"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "proj-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetProject(gomock.Any(), "missing").Return(entities.ProjectDocument{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetProject(gomock.Any(), "proj-1").Return(sampleProjectDoc(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_SetPhaseManDays(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("development phase rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PUT("/v1/projects/:id/phases/:phase/man-days", h.SetPhaseManDays)

		uc.EXPECT().SetPhaseManDays(gomock.Any(), "proj-1", entities.PhaseDevelopment, 10.0).
			Return(entities.ProjectDocument{}, usecase.ErrPhaseIsCalculated)

		req := httptest.NewRequest(http.MethodPut, "/v1/projects/proj-1/phases/development/man-days", bytes.NewBufferString(`{"manDays":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("missing man-days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PUT("/v1/projects/:id/phases/:phase/man-days", h.SetPhaseManDays)

		req := httptest.NewRequest(http.MethodPut, "/v1/projects/proj-1/phases/sit/man-days", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PUT("/v1/projects/:id/phases/:phase/man-days", h.SetPhaseManDays)

		uc.EXPECT().SetPhaseManDays(gomock.Any(), "proj-1", entities.PhaseSIT, 25.0).Return(sampleProjectDoc(), nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/projects/proj-1/phases/sit/man-days", bytes.NewBufferString(`{"manDays":25}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_SelectSupplier(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PUT("/v1/projects/:id/suppliers/:role", h.SelectSupplier)

		uc.EXPECT().SelectSupplier(gomock.Any(), "proj-1", entities.Role("XX"), "sup-1").
			Return(entities.ProjectDocument{}, usecase.ErrInvalidRole)

		req := httptest.NewRequest(http.MethodPut, "/v1/projects/proj-1/suppliers/XX", bytes.NewBufferString(`{"entityId":"sup-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PUT("/v1/projects/:id/suppliers/:role", h.SelectSupplier)

		uc.EXPECT().SelectSupplier(gomock.Any(), "proj-1", entities.RoleG1, "sup-reply-g1").Return(sampleProjectDoc(), nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/projects/proj-1/suppliers/G1", bytes.NewBufferString(`{"entityId":"sup-reply-g1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_AddOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rate collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/config/overrides/:collection", h.AddOverride)

		uc.EXPECT().AddRateOverride(gomock.Any(), "proj-1", usecase.CollectionSuppliers, gomock.Any()).Return(sampleProjectDoc(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/config/overrides/suppliers", bytes.NewBufferString(`{"id":"sup-reply-g1","realRate":480}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("categories collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/config/overrides/:collection", h.AddOverride)

		uc.EXPECT().AddCategoryOverride(gomock.Any(), "proj-1", gomock.Any()).Return(sampleProjectDoc(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/config/overrides/categories", bytes.NewBufferString(`{"name":"Urgent","multiplier":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/config/overrides/:collection", h.AddOverride)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/config/overrides/nope", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_CostReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectEstimationUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id/cost-report", h.GetCostReport)

	report := usecase.CostReport{
		ProjectID: "proj-1",
		Currency:  "€",
		Summary: entities.ProjectCostSummary{
			Phases:       []entities.PhaseCostBreakdown{{Phase: entities.PhaseSIT, ManDays: 100, TotalCost: 42000}},
			TotalManDays: 100,
			TotalCost:    42000,
		},
		Validation: usecase.ValidationResult{IsValid: true, Issues: []string{}},
	}
	uc.EXPECT().CostReport(gomock.Any(), "proj-1").Return(report, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/cost-report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["projectId"] != "proj-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if body["totalCost"] != 42000.0 {
		t.Fatalf("unexpected totalCost: %v", body["totalCost"])
	}
}

func TestMapProjectError(t *testing.T) {
	if got := mapProjectError(usecase.ErrInvalidProjectID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrUnknownPhase); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrPhaseIsCalculated); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapProjectError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(&usecase.ValidationError{Issues: []string{"x"}}); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapProjectError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
