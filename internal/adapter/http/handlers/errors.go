package handlers

import (
	"context"
	"errors"
	"net/http"

	"verkstad_portal/internal/usecase"
	"verkstad_portal/internal/usecase/interfaces"
	"verkstad_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errNoSession      = pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Sign in to continue", http.StatusUnauthorized)
	errInvalidTab     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "invalid tab", http.StatusBadRequest)
	errInvalidArea    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "latitude, longitude and radius must be numbers", http.StatusBadRequest)
	errInvalidPeriod  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "month and year must be numbers", http.StatusBadRequest)
)

var validationErrors = []error{
	usecase.ErrInvalidToken,
	usecase.ErrInvalidRole,
	usecase.ErrInvalidRequestID,
	usecase.ErrInvalidVehicleID,
	usecase.ErrInvalidReportID,
	usecase.ErrInvalidDescription,
	usecase.ErrInvalidLocation,
	usecase.ErrInvalidAddress,
	usecase.ErrInvalidExpiry,
	usecase.ErrInvalidOfferSort,
	usecase.ErrInvalidOfferID,
	usecase.ErrInvalidBookingID,
	usecase.ErrInvalidScheduledAt,
	usecase.ErrScheduleNotOffered,
	usecase.ErrInvalidRating,
	usecase.ErrEmptyReview,
	usecase.ErrInvalidOfferPrice,
	usecase.ErrInvalidOfferDuration,
	usecase.ErrNoAvailableDates,
	usecase.ErrAvailableDateInPast,
	usecase.ErrInvalidRadius,
	usecase.ErrInvalidWorkshopID,
	usecase.ErrInvalidPayoutID,
	usecase.ErrInvalidPeriod,
}

var conflictErrors = []error{
	usecase.ErrOfferNotAcceptable,
	usecase.ErrOfferAlreadyAccepted,
	usecase.ErrRequestNotBookable,
	usecase.ErrBookingNotActive,
	usecase.ErrOfferNotEditable,
	usecase.ErrContractNotAccepted,
	usecase.ErrContractCompleted,
}

func isAny(err error, targets []error) (error, bool) {
	for _, t := range targets {
		if errors.Is(err, t) {
			return t, true
		}
	}
	return nil, false
}

// mapError turns use case and backend errors into the client-facing AppError.
// Only the sentinel text reaches the client, never the wrapped backend body.
func mapError(err error) *pkg.AppError {
	if appErr, ok := pkg.AsAppError(err); ok {
		return appErr
	}
	if target, ok := isAny(err, validationErrors); ok {
		return pkg.NewDomainError("INVALID_REQUEST", target.Error(), err, http.StatusBadRequest)
	}
	if target, ok := isAny(err, conflictErrors); ok {
		return pkg.NewDomainError("CONFLICT", target.Error(), err, http.StatusConflict)
	}

	switch {
	case errors.Is(err, usecase.ErrTokenExpired):
		return pkg.NewDomainError("TOKEN_EXPIRED", "Your sign-in has expired, sign in again", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return pkg.NewDomainError("FORBIDDEN", "This action is not available for your account", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainError("OFFER_NOT_FOUND", "Offer not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainError("BOOKING_NOT_FOUND", "Booking not found", err, http.StatusNotFound)

	case errors.Is(err, interfaces.ErrBackendUnauthorized):
		return pkg.NewDomainError("SESSION_INVALID", "Your session has ended, sign in again", err, http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrBackendForbidden):
		return pkg.NewDomainError("FORBIDDEN", "The marketplace refused this action", err, http.StatusForbidden)
	case errors.Is(err, interfaces.ErrBackendNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Not found", err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrBackendConflict):
		return pkg.NewDomainError("CONFLICT", "The item was changed by someone else, refresh and try again", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrBackendBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "The marketplace rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrBackendTimeout), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("BACKEND_TIMEOUT", "The marketplace did not answer in time, check your connection and try again", err, http.StatusGatewayTimeout)
	case errors.Is(err, interfaces.ErrBackendUnavailable):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Could not reach the marketplace, check your connection and try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError records err on the context (the session middleware inspects it) and
// writes the mapped AppError.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
