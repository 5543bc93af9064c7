package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"techassist/internal/adapter/http/handlers/mocks"
	"techassist/internal/domain/entities"
	"techassist/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_SubmitEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/api/estimates", h.SubmitEstimate)

		req := httptest.NewRequest(http.MethodPost, "/api/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/api/estimates", h.SubmitEstimate)

		req := httptest.NewRequest(http.MethodPost, "/api/estimates", bytes.NewBufferString(`{"status":"submitted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), int64(1), "submitted", "", false).Return(entities.Estimate{
			ID: 1, JobID: 1, Status: entities.EstimateStatusSubmitted, TotalAmount: 17000,
		}, nil)

		r := gin.New()
		r.POST("/api/estimates", h.SubmitEstimate)

		req := httptest.NewRequest(http.MethodPost, "/api/estimates", bytes.NewBufferString(`{"jobId":1,"status":"submitted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body entities.Estimate
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.TotalAmount != 17000 {
			t.Fatalf("expected totalAmount 17000, got %d", body.TotalAmount)
		}
	})

	t.Run("duplicate conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), int64(1), "", "", false).Return(entities.Estimate{}, usecase.ErrEstimateAlreadyExists)

		r := gin.New()
		r.POST("/api/estimates", h.SubmitEstimate)

		req := httptest.NewRequest(http.MethodPost, "/api/estimates", bytes.NewBufferString(`{"jobId":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetEstimateByJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().GetByJob(gomock.Any(), int64(9)).Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.GET("/api/jobs/:id/estimate", h.GetEstimateByJob)

		req := httptest.NewRequest(http.MethodGet, "/api/jobs/9/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/api/jobs/:id/estimate", h.GetEstimateByJob)

		req := httptest.NewRequest(http.MethodGet, "/api/jobs/abc/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_DeleteEstimateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success is 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().DeleteItem(gomock.Any(), int64(3)).Return(nil)

		r := gin.New()
		r.DELETE("/api/estimate-items/:id", h.DeleteEstimateItem)

		req := httptest.NewRequest(http.MethodDelete, "/api/estimate-items/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("missing item is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().DeleteItem(gomock.Any(), int64(3)).Return(usecase.ErrEstimateItemNotFound)

		r := gin.New()
		r.DELETE("/api/estimate-items/:id", h.DeleteEstimateItem)

		req := httptest.NewRequest(http.MethodDelete, "/api/estimate-items/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidJobID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.HTTPStatus)
	}
	if got := mapEstimateError(usecase.ErrEstimateAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409, got %d", got.HTTPStatus)
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got.HTTPStatus)
	}
	if got := mapEstimateError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}
