package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed   BookingStatus = "CONFIRMED"
	BookingStatusRescheduled BookingStatus = "RESCHEDULED"
	BookingStatusCancelled   BookingStatus = "CANCELLED"
	BookingStatusDone        BookingStatus = "DONE"
	BookingStatusNoShow      BookingStatus = "NO_SHOW"
)

var allowedBookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusConfirmed: {
		BookingStatusRescheduled: true,
		BookingStatusCancelled:   true,
		BookingStatusDone:        true,
		BookingStatusNoShow:      true,
	},
	// Rescheduling is repeatable.
	BookingStatusRescheduled: {
		BookingStatusRescheduled: true,
		BookingStatusCancelled:   true,
		BookingStatusDone:        true,
		BookingStatusNoShow:      true,
	},
	BookingStatusCancelled: {},
	BookingStatusDone:      {},
	BookingStatusNoShow:    {},
}

// CanTransition reports whether a booking may move from one status to another.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	m, ok := allowedBookingTransitions[s]
	if !ok {
		return false
	}
	return m[to]
}

// IsActive reports whether the booking can still be cancelled, rescheduled or completed.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusConfirmed || s == BookingStatusRescheduled
}

// Booking is the scheduled engagement created once an offer is accepted.
type Booking struct {
	ID               string          `json:"id"`
	OfferID          string          `json:"offerId"`
	RequestID        string          `json:"requestId,omitempty"`
	CustomerID       string          `json:"customerId"`
	WorkshopID       string          `json:"workshopId"`
	ScheduledAt      time.Time       `json:"scheduledAt"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	Status           BookingStatus   `json:"status"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt,omitempty"`
	UpdatedAt        time.Time       `json:"updatedAt,omitempty"`
}

// NewBooking carries the fields of POST /api/bookings.
type NewBooking struct {
	OfferID     string
	ScheduledAt time.Time
	Notes       string
}

// BookingPatch carries PATCH /api/bookings/{id}. ScheduledAt is only sent for reschedules.
type BookingPatch struct {
	Status      BookingStatus
	ScheduledAt *time.Time
}
