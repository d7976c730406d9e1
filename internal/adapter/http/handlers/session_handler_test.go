package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"verkstad_portal/internal/adapter/http/handlers/mocks"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSessionHandler_OpenSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions", h.OpenSession)

		w := serve(r, http.MethodPost, "/v1/sessions", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("strips bearer prefix and returns the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Open(gomock.Any(), "abc.def.ghi").Return(entities.Session{
			ID:        "sess-1",
			Role:      entities.RoleWorkshop,
			ActorID:   "ws-1",
			ExpiresAt: testNow.Add(time.Hour),
		}, nil)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions", h.OpenSession)

		w := serve(r, http.MethodPost, "/v1/sessions", `{"token":"Bearer abc.def.ghi"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "sess-1" || body["role"] != "WORKSHOP" {
			t.Fatalf("unexpected body %v", body)
		}
		if _, leaked := body["token"]; leaked {
			t.Fatalf("token must not be echoed")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Open(gomock.Any(), "old").Return(entities.Session{}, usecase.ErrTokenExpired)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions", h.OpenSession)

		w := serve(r, http.MethodPost, "/v1/sessions", `{"token":"old"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestSessionHandler_CloseSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("clears with logout reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Clear(gomock.Any(), "sess-c", usecase.SessionClearLogout).Return(nil)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.DELETE("/v1/sessions", withSession(customerSess), h.CloseSession)

		w := serve(r, http.MethodDelete, "/v1/sessions", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("without session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSessionHandler(mocks.NewMockISessionUseCase(ctrl))

		r := gin.New()
		r.DELETE("/v1/sessions", h.CloseSession)

		w := serve(r, http.MethodDelete, "/v1/sessions", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestSessionHandler_CurrentSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewSessionHandler(mocks.NewMockISessionUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/sessions/me", withSession(adminSess), h.CurrentSession)

	w := serve(r, http.MethodGet, "/v1/sessions/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["actor_id"] != "admin-1" {
		t.Fatalf("unexpected body %v", body)
	}
}
