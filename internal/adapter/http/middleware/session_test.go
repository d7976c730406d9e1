package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"verkstad_portal/internal/adapter/http/handlers/mocks"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase"
	"verkstad_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(sessions usecase.ISessionUseCase, role entities.Role, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/area", Session(sessions), RequireRole(role))
	g.GET("", h)
	return r
}

func doGet(r *gin.Engine, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/area", nil)
	if sessionID != "" {
		req.Header.Set(HeaderSessionID, sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	customer := entities.Session{ID: "sess-1", Token: "tok", Role: entities.RoleCustomer, ActorID: "cust-1"}
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)

		w := doGet(newTestRouter(sessions, entities.RoleCustomer, ok), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Resolve(gomock.Any(), "sess-1").Return(entities.Session{}, usecase.ErrSessionExpired)

		w := doGet(newTestRouter(sessions, entities.RoleCustomer, ok), "sess-1")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Resolve(gomock.Any(), "sess-1").Return(customer, nil)

		w := doGet(newTestRouter(sessions, entities.RoleAdmin, ok), "sess-1")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("session reaches the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Resolve(gomock.Any(), "sess-1").Return(customer, nil)

		var got entities.Session
		w := doGet(newTestRouter(sessions, entities.RoleCustomer, func(c *gin.Context) {
			got, _ = CurrentSession(c)
			c.Status(http.StatusNoContent)
		}), "sess-1")
		if w.Code != http.StatusNoContent || got.ActorID != "cust-1" {
			t.Fatalf("unexpected code=%d session=%+v", w.Code, got)
		}
	})

	t.Run("backend 401 clears the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Resolve(gomock.Any(), "sess-1").Return(customer, nil)
		sessions.EXPECT().Clear(gomock.Any(), "sess-1", usecase.SessionClearUnauthorized).Return(nil)

		w := doGet(newTestRouter(sessions, entities.RoleCustomer, func(c *gin.Context) {
			_ = c.Error(fmt.Errorf("list requests: %w", interfaces.ErrBackendUnauthorized))
			c.Status(http.StatusUnauthorized)
		}), "sess-1")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("other errors keep the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Resolve(gomock.Any(), "sess-1").Return(customer, nil)
		sessions.EXPECT().Clear(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		doGet(newTestRouter(sessions, entities.RoleCustomer, func(c *gin.Context) {
			_ = c.Error(interfaces.ErrBackendConflict)
			c.Status(http.StatusConflict)
		}), "sess-1")
	})
}
