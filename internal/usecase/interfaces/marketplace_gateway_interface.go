package interfaces

import (
	"context"
	"errors"

	"verkstad_portal/internal/domain/entities"
)

// Error kinds surfaced by the marketplace backend collaborator. Implementations wrap
// them with status/body detail, callers match with errors.Is.
var (
	ErrBackendUnauthorized = errors.New("marketplace backend: unauthorized")
	ErrBackendForbidden    = errors.New("marketplace backend: forbidden")
	ErrBackendNotFound     = errors.New("marketplace backend: not found")
	ErrBackendConflict     = errors.New("marketplace backend: conflict")
	ErrBackendBadRequest   = errors.New("marketplace backend: bad request")
	ErrBackendTimeout      = errors.New("marketplace backend: timeout")
	ErrBackendUnavailable  = errors.New("marketplace backend: unavailable")
)

// IMarketplaceGateway abstracts the marketplace REST backend.
//
// Every call carries the caller's session; its bearer token is attached to the request.
// Calls are never retried: lifecycle operations are not idempotent.
type IMarketplaceGateway interface {
	ListCustomerRequests(ctx context.Context, sess entities.Session, customerID string) ([]entities.Request, error)
	ListAvailableRequests(ctx context.Context, sess entities.Session, q entities.AreaQuery) ([]entities.Request, error)
	CreateRequest(ctx context.Context, sess entities.Session, in entities.NewRequest) (entities.Request, error)

	ListOffersForRequest(ctx context.Context, sess entities.Session, requestID string, sortBy entities.OfferSort) ([]entities.Offer, error)
	ListWorkshopOffers(ctx context.Context, sess entities.Session) ([]entities.Offer, error)
	CreateOffer(ctx context.Context, sess entities.Session, in entities.OfferDraft) (entities.Offer, error)
	UpdateOffer(ctx context.Context, sess entities.Session, offerID string, patch entities.OfferPatch) (entities.Offer, error)

	CreateBooking(ctx context.Context, sess entities.Session, in entities.NewBooking) (entities.Booking, error)
	UpdateBooking(ctx context.Context, sess entities.Session, bookingID string, patch entities.BookingPatch) (entities.Booking, error)
	CreateReview(ctx context.Context, sess entities.Session, in entities.Review) (entities.Review, error)

	ListWorkshops(ctx context.Context, sess entities.Session) ([]entities.Workshop, error)
	UpdateWorkshopFlags(ctx context.Context, sess entities.Session, patch entities.WorkshopFlagsPatch) (entities.Workshop, error)
	ListPayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error)
	GeneratePayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error)
	MarkPayoutPaid(ctx context.Context, sess entities.Session, payoutID string) (entities.PayoutReport, error)
}
