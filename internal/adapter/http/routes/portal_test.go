package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"verkstad_portal/internal/adapter/http/handlers"
	"verkstad_portal/internal/adapter/http/handlers/mocks"
	"verkstad_portal/internal/adapter/http/middleware"
	"verkstad_portal/internal/domain/classifier"
	"verkstad_portal/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPortalRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	workshop := entities.Session{ID: "sess-w", Role: entities.RoleWorkshop, ActorID: "ws-1"}
	customer := entities.Session{ID: "sess-c", Role: entities.RoleCustomer, ActorID: "cust-1"}

	build := func(ctrl *gomock.Controller) (*gin.Engine, *mocks.MockISessionUseCase, *mocks.MockICaseUseCase) {
		sessions := mocks.NewMockISessionUseCase(ctrl)
		cases := mocks.NewMockICaseUseCase(ctrl)
		r := gin.New()
		v1 := r.Group("/v1")
		addPingRoutes(v1)
		addSessionRoutes(v1, sessions, handlers.NewSessionHandler(sessions))
		addCustomerRoutes(v1, sessions, handlers.NewCustomerHandler(cases, mocks.NewMockIBookingUseCase(ctrl)))
		addWorkshopRoutes(v1, sessions, handlers.NewWorkshopHandler(mocks.NewMockIWorkshopUseCase(ctrl), 25))
		addAdminRoutes(v1, sessions, handlers.NewAdminHandler(mocks.NewMockIAdminUseCase(ctrl)))
		return r, sessions, cases
	}

	get := func(r *gin.Engine, path, sessionID string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if sessionID != "" {
			req.Header.Set(middleware.HeaderSessionID, sessionID)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("ping is public", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _, _ := build(ctrl)
		if code := get(r, "/v1/ping", ""); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})

	t.Run("customer area needs a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _, _ := build(ctrl)
		if code := get(r, "/v1/customer/cases", ""); code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", code)
		}
	})

	t.Run("workshop session cannot open customer area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, sessions, _ := build(ctrl)
		sessions.EXPECT().Resolve(gomock.Any(), "sess-w").Return(workshop, nil)
		if code := get(r, "/v1/customer/cases", "sess-w"); code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})

	t.Run("customer session reaches the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, sessions, cases := build(ctrl)
		sessions.EXPECT().Resolve(gomock.Any(), "sess-c").Return(customer, nil)
		cases.EXPECT().ListCases(gomock.Any(), customer, classifier.TabMyCases).Return(nil, nil)
		if code := get(r, "/v1/customer/cases", "sess-c"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})

	t.Run("admin area rejects customers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, sessions, _ := build(ctrl)
		sessions.EXPECT().Resolve(gomock.Any(), "sess-c").Return(customer, nil)
		if code := get(r, "/v1/admin/workshops", "sess-c"); code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})
}
