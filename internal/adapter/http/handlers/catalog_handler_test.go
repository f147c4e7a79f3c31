package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"projestimate/internal/adapter/http/handlers/mocks"
	"projestimate/internal/domain/entities"
	"projestimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_GetGlobalConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/config", h.GetGlobalConfig)

	uc.EXPECT().GetGlobalConfig().Return(entities.DefaultGlobalConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if _, ok := body["suppliers"]; !ok {
		t.Fatalf("expected suppliers in body: %s", w.Body.String())
	}
	if _, ok := body["calculationParameters"]; !ok {
		t.Fatalf("expected calculationParameters in body: %s", w.Body.String())
	}
}

func TestCatalogHandler_SaveRateEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/:collection", h.SaveRateEntity)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/suppliers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/:collection", h.SaveRateEntity)

		uc.EXPECT().SaveRateEntity(gomock.Any(), usecase.Collection("nope"), gomock.Any()).Return(entities.RateEntity{}, usecase.ErrUnknownCollection)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/nope", bytes.NewBufferString(`{"name":"Reply","role":"G1","realRate":463,"officialRate":463}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error carries details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/:collection", h.SaveRateEntity)

		uc.EXPECT().SaveRateEntity(gomock.Any(), usecase.CollectionSuppliers, gomock.Any()).
			Return(entities.RateEntity{}, &usecase.ValidationError{Issues: []string{"realRate must be greater than zero"}})

		req := httptest.NewRequest(http.MethodPut, "/v1/config/suppliers", bytes.NewBufferString(`{"name":"Reply","role":"G1","realRate":1,"officialRate":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		details, _ := body["details"].([]any)
		if len(details) != 1 {
			t.Fatalf("expected one detail, got %v", body["details"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/:collection", h.SaveRateEntity)

		saved := entities.RateEntity{ID: "sup-1", Name: "Reply", Role: entities.RoleG1, RealRate: 463, OfficialRate: 463, IsGlobal: true, Status: entities.StatusActive}
		uc.EXPECT().SaveRateEntity(gomock.Any(), usecase.CollectionSuppliers, gomock.Any()).Return(saved, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/suppliers", bytes.NewBufferString(`{"name":"Reply","role":"G1","realRate":463,"officialRate":463}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "sup-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_DeleteRateEntity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/config/:collection/:id", h.DeleteRateEntity)

		uc.EXPECT().DeleteRateEntity(gomock.Any(), usecase.CollectionSuppliers, "missing").Return(usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/config/suppliers/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/config/:collection/:id", h.DeleteRateEntity)

		uc.EXPECT().DeleteRateEntity(gomock.Any(), usecase.CollectionInternalResources, "int-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/config/internalResources/int-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_SaveCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.PUT("/v1/config/categories", h.SaveCategory)

	saved := entities.Category{ID: "cat-1", Name: "Complex", Multiplier: 1.8, IsGlobal: true}
	uc.EXPECT().SaveCategory(gomock.Any(), gomock.Any()).Return(saved, nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/config/categories", bytes.NewBufferString(`{"name":"Complex","multiplier":1.8}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCatalogHandler_UpdateCalculationParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("catalog not loaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/parameters", h.UpdateCalculationParameters)

		uc.EXPECT().UpdateCalculationParameters(gomock.Any(), gomock.Any()).Return(entities.CalculationParameters{}, usecase.ErrCatalogNotLoaded)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/parameters", bytes.NewBufferString(`{"workingDaysPerMonth":20,"workingHoursPerDay":8}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/parameters", h.UpdateCalculationParameters)

		params := entities.CalculationParameters{WorkingDaysPerMonth: 22, WorkingHoursPerDay: 8, CurrencySymbol: "€"}
		uc.EXPECT().UpdateCalculationParameters(gomock.Any(), gomock.Any()).Return(params, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/parameters", bytes.NewBufferString(`{"workingDaysPerMonth":22,"workingHoursPerDay":8,"currencySymbol":"€"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(&usecase.ValidationError{Issues: []string{"x"}}); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapCatalogError(usecase.ErrUnknownCollection); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrItemNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(usecase.ErrCatalogNotLoaded); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
