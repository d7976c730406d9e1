package handlers

import (
	"net/http"

	request "verkstad_portal/internal/adapter/http/dto/request"
	response "verkstad_portal/internal/adapter/http/dto/response"
	"verkstad_portal/internal/adapter/http/middleware"
	"verkstad_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler hands a sign-in token over to a server-side session and clears it on logout.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// OpenSession godoc
// @Summary      Open a session
// @Description  Decodes the marketplace bearer token and stores a session. Send the returned id as X-Session-ID.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      request.OpenSessionRequest  true  "Sign-in token"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *SessionHandler) OpenSession(c *gin.Context) {
	var payload request.OpenSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	sess, err := h.usecase.Open(c.Request.Context(), payload.ResolveToken())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(sess))
}

// CurrentSession godoc
// @Summary  Current session
// @Tags     sessions
// @Produce  json
// @Param    X-Session-ID  header    string  true  "Session id"
// @Success  200           {object}  response.SessionResponse
// @Failure  401           {object}  pkg.HTTPError
// @Router   /sessions/me [get]
func (h *SessionHandler) CurrentSession(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}

// CloseSession godoc
// @Summary  Log out
// @Tags     sessions
// @Param    X-Session-ID  header  string  true  "Session id"
// @Success  204
// @Failure  401  {object}  pkg.HTTPError
// @Router   /sessions [delete]
func (h *SessionHandler) CloseSession(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	if err := h.usecase.Clear(c.Request.Context(), sess.ID, usecase.SessionClearLogout); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
