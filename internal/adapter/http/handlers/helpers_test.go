package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"time"

	"verkstad_portal/internal/adapter/http/middleware"
	"verkstad_portal/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	testNow      = time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)
	customerSess = entities.Session{ID: "sess-c", Token: "tok-c", Role: entities.RoleCustomer, ActorID: "cust-1"}
	workshopSess = entities.Session{ID: "sess-w", Token: "tok-w", Role: entities.RoleWorkshop, ActorID: "ws-1"}
	adminSess    = entities.Session{ID: "sess-a", Token: "tok-a", Role: entities.RoleAdmin, ActorID: "admin-1"}
)

// withSession stands in for the session middleware.
func withSession(sess entities.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetSession(c, sess)
		c.Next()
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
