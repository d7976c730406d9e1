package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/infrastructure/metrics"
	"verkstad_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidOfferID       = errors.New("invalid offer id")
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidScheduledAt   = errors.New("invalid scheduled_at")
	ErrScheduleNotOffered   = errors.New("scheduled_at is not one of the offer's available dates")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrEmptyReview          = errors.New("review text is required")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrOfferNotAcceptable   = errors.New("offer is no longer open for acceptance")
	ErrOfferAlreadyAccepted = errors.New("another offer on this request is already accepted")
	ErrRequestNotBookable   = errors.New("request is not open for booking")
	ErrBookingNotActive     = errors.New("booking is not active")
)

// CompletionResult reports both steps of CompleteBooking.
//
// Booking is the completed booking. ReviewErr is set when the review could not be
// stored; completion still went through in that case.
type CompletionResult struct {
	Booking   entities.Booking
	Review    *entities.Review
	ReviewErr error
}

// IBookingUseCase holds the customer-side booking lifecycle.
//
//	accept:     offer SENT            -> booking CONFIRMED (offer ACCEPTED, request BOOKED server-side)
//	cancel:     CONFIRMED|RESCHEDULED -> CANCELLED
//	reschedule: CONFIRMED|RESCHEDULED -> RESCHEDULED (repeatable)
//	complete:   CONFIRMED|RESCHEDULED -> DONE (request COMPLETED server-side), review best-effort
//
// Preconditions are checked against a fresh fetch of the customer's requests. None of
// the operations are retried.
type IBookingUseCase interface {
	AcceptOffer(ctx context.Context, sess entities.Session, offerID string, scheduledAt time.Time, notes string) (entities.Booking, error)
	CancelBooking(ctx context.Context, sess entities.Session, bookingID string) (entities.Booking, error)
	RescheduleBooking(ctx context.Context, sess entities.Session, bookingID string, newScheduledAt time.Time) (entities.Booking, error)
	CompleteBooking(ctx context.Context, sess entities.Session, bookingID string, rating int, reviewText string) (CompletionResult, error)
}

type BookingUseCase struct {
	gateway interfaces.IMarketplaceGateway
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(gateway interfaces.IMarketplaceGateway, m *metrics.Metrics) *BookingUseCase {
	return &BookingUseCase{gateway: gateway, metrics: m, now: time.Now}
}

func (u *BookingUseCase) AcceptOffer(ctx context.Context, sess entities.Session, offerID string, scheduledAt time.Time, notes string) (booking entities.Booking, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("accept_offer", start, err) }(time.Now())

	if err := requireRole(sess, entities.RoleCustomer); err != nil {
		return entities.Booking{}, err
	}
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.Booking{}, ErrInvalidOfferID
	}
	if scheduledAt.IsZero() || scheduledAt.Before(u.now()) {
		return entities.Booking{}, ErrInvalidScheduledAt
	}
	log.Printf("[booking][usecase] accept start offer_id=%s customer_id=%s scheduled_at=%s", offerID, sess.ActorID, scheduledAt.UTC().Format(time.RFC3339))

	reqs, err := u.gateway.ListCustomerRequests(ctx, sess, sess.ActorID)
	if err != nil {
		log.Printf("[booking][usecase] accept fetch failed offer_id=%s err=%v", offerID, err)
		return entities.Booking{}, err
	}
	req, offer, ok := findOffer(reqs, offerID)
	if !ok {
		return entities.Booking{}, ErrOfferNotFound
	}

	if offer.Status != entities.OfferStatusSent {
		log.Printf("[booking][usecase] accept rejected offer_id=%s status=%s", offerID, offer.Status)
		return entities.Booking{}, ErrOfferNotAcceptable
	}
	for _, o := range req.Offers {
		if o.ID != offer.ID && o.Status == entities.OfferStatusAccepted {
			log.Printf("[booking][usecase] accept rejected offer_id=%s accepted_offer_id=%s", offerID, o.ID)
			return entities.Booking{}, ErrOfferAlreadyAccepted
		}
	}
	switch req.Status {
	case entities.RequestStatusNew, entities.RequestStatusInBidding, entities.RequestStatusBiddingClosed:
	default:
		log.Printf("[booking][usecase] accept rejected offer_id=%s request_status=%s", offerID, req.Status)
		return entities.Booking{}, ErrRequestNotBookable
	}
	if len(offer.AvailableDates) > 0 && !offer.OffersDate(scheduledAt) {
		return entities.Booking{}, ErrScheduleNotOffered
	}

	booking, err = u.gateway.CreateBooking(ctx, sess, entities.NewBooking{
		OfferID:     offer.ID,
		ScheduledAt: scheduledAt.UTC(),
		Notes:       strings.TrimSpace(notes),
	})
	if err != nil {
		log.Printf("[booking][usecase] accept create booking failed offer_id=%s err=%v", offerID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] accept success offer_id=%s booking_id=%s", offerID, booking.ID)
	return booking, nil
}

func (u *BookingUseCase) CancelBooking(ctx context.Context, sess entities.Session, bookingID string) (booking entities.Booking, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("cancel_booking", start, err) }(time.Now())

	current, err := u.loadActiveBooking(ctx, sess, bookingID, entities.BookingStatusCancelled)
	if err != nil {
		return entities.Booking{}, err
	}

	booking, err = u.gateway.UpdateBooking(ctx, sess, current.ID, entities.BookingPatch{Status: entities.BookingStatusCancelled})
	if err != nil {
		log.Printf("[booking][usecase] cancel failed booking_id=%s err=%v", current.ID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] cancel success booking_id=%s", booking.ID)
	return booking, nil
}

func (u *BookingUseCase) RescheduleBooking(ctx context.Context, sess entities.Session, bookingID string, newScheduledAt time.Time) (booking entities.Booking, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("reschedule_booking", start, err) }(time.Now())

	if newScheduledAt.IsZero() || newScheduledAt.Before(u.now()) {
		return entities.Booking{}, ErrInvalidScheduledAt
	}
	current, err := u.loadActiveBooking(ctx, sess, bookingID, entities.BookingStatusRescheduled)
	if err != nil {
		return entities.Booking{}, err
	}

	at := newScheduledAt.UTC()
	booking, err = u.gateway.UpdateBooking(ctx, sess, current.ID, entities.BookingPatch{
		Status:      entities.BookingStatusRescheduled,
		ScheduledAt: &at,
	})
	if err != nil {
		log.Printf("[booking][usecase] reschedule failed booking_id=%s err=%v", current.ID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] reschedule success booking_id=%s scheduled_at=%s", booking.ID, at.Format(time.RFC3339))
	return booking, nil
}

// CompleteBooking stores the review and then marks the booking DONE, in that order.
// A failed review is logged and returned in CompletionResult.ReviewErr; only a failed
// completion makes the call fail.
func (u *BookingUseCase) CompleteBooking(ctx context.Context, sess entities.Session, bookingID string, rating int, reviewText string) (res CompletionResult, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("complete_booking", start, err) }(time.Now())

	if rating < entities.MinReviewRating || rating > entities.MaxReviewRating {
		return CompletionResult{}, ErrInvalidRating
	}
	reviewText = strings.TrimSpace(reviewText)
	if reviewText == "" {
		return CompletionResult{}, ErrEmptyReview
	}
	current, err := u.loadActiveBooking(ctx, sess, bookingID, entities.BookingStatusDone)
	if err != nil {
		return CompletionResult{}, err
	}

	review, reviewErr := u.gateway.CreateReview(ctx, sess, entities.Review{
		BookingID:  current.ID,
		WorkshopID: current.WorkshopID,
		Rating:     rating,
		Comment:    reviewText,
	})
	if reviewErr != nil {
		u.metrics.ReviewFailed()
		log.Printf("[booking][usecase] review failed, continuing with completion booking_id=%s err=%v", current.ID, reviewErr)
		res.ReviewErr = reviewErr
	} else {
		res.Review = &review
	}

	done, err := u.gateway.UpdateBooking(ctx, sess, current.ID, entities.BookingPatch{Status: entities.BookingStatusDone})
	if err != nil {
		log.Printf("[booking][usecase] complete failed booking_id=%s err=%v", current.ID, err)
		return CompletionResult{}, err
	}
	res.Booking = done
	log.Printf("[booking][usecase] complete success booking_id=%s review_stored=%t", done.ID, res.Review != nil)
	return res, nil
}

// loadActiveBooking fetches the customer's requests and returns the booking if it
// may move to next.
func (u *BookingUseCase) loadActiveBooking(ctx context.Context, sess entities.Session, bookingID string, next entities.BookingStatus) (entities.Booking, error) {
	if err := requireRole(sess, entities.RoleCustomer); err != nil {
		return entities.Booking{}, err
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	reqs, err := u.gateway.ListCustomerRequests(ctx, sess, sess.ActorID)
	if err != nil {
		log.Printf("[booking][usecase] fetch failed booking_id=%s err=%v", bookingID, err)
		return entities.Booking{}, err
	}
	b, ok := findBooking(reqs, bookingID)
	if !ok {
		return entities.Booking{}, ErrBookingNotFound
	}
	if !b.Status.CanTransition(next) {
		log.Printf("[booking][usecase] transition rejected booking_id=%s from=%s to=%s", bookingID, b.Status, next)
		return entities.Booking{}, ErrBookingNotActive
	}
	return b, nil
}

func findOffer(reqs []entities.Request, offerID string) (entities.Request, entities.Offer, bool) {
	for _, r := range reqs {
		for _, o := range r.Offers {
			if o.ID == offerID {
				return r, o, true
			}
		}
	}
	return entities.Request{}, entities.Offer{}, false
}

func findBooking(reqs []entities.Request, bookingID string) (entities.Booking, bool) {
	for _, r := range reqs {
		for _, b := range r.Bookings {
			if b.ID == bookingID {
				if b.RequestID == "" {
					b.RequestID = r.ID
				}
				return b, true
			}
		}
	}
	return entities.Booking{}, false
}
