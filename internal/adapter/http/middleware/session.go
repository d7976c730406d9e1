package middleware

import (
	"errors"
	"log"
	"net/http"

	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase"
	"verkstad_portal/internal/usecase/interfaces"
	"verkstad_portal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderSessionID = "X-Session-ID"

	sessionKey = "session"
)

var (
	errMissingSession = pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Sign in to continue", http.StatusUnauthorized)
	errInvalidSession = pkg.NewDomainErrorSimple("SESSION_INVALID", "Your session has ended, sign in again", http.StatusUnauthorized)
	errSessionLookup  = pkg.NewDomainErrorSimple("SESSION_UNAVAILABLE", "Could not load your session", http.StatusServiceUnavailable)
	errWrongRole      = pkg.NewDomainErrorSimple("FORBIDDEN", "This area is not available for your account", http.StatusForbidden)
)

// Session resolves the X-Session-ID header and stores the session in the gin context.
//
// After the handler ran, a backend 401 recorded with c.Error clears the session.
func Session(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)
		if id == "" {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), id)
		if err != nil {
			appErr := mapSessionError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(sessionKey, sess)
		c.Next()

		for _, e := range c.Errors {
			if errors.Is(e.Err, interfaces.ErrBackendUnauthorized) {
				if err := sessions.Clear(c.Request.Context(), sess.ID, usecase.SessionClearUnauthorized); err != nil {
					log.Printf("[session][middleware] clear failed session_id=%s err=%v", sess.ID, err)
				}
				return
			}
		}
	}
}

// RequireRole rejects sessions of any other role with 403.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}
		if sess.Role != role {
			c.AbortWithStatusJSON(errWrongRole.HTTPStatus, errWrongRole.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session stored by Session.
func CurrentSession(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	sess, ok := v.(entities.Session)
	return sess, ok
}

// SetSession is used by handlers that open a session and by tests.
func SetSession(c *gin.Context, sess entities.Session) {
	c.Set(sessionKey, sess)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrSessionExpired):
		return errInvalidSession
	default:
		return errSessionLookup
	}
}
