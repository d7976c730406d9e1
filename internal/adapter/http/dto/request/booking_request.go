package request

import (
	"strings"
	"time"
)

type AcceptOfferRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Notes       string    `json:"notes"`
}

func (r AcceptOfferRequest) ResolveNotes() string {
	return strings.TrimSpace(r.Notes)
}

type RescheduleBookingRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// CompleteBookingRequest marks the booking DONE and leaves a review.
type CompleteBookingRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

func (r CompleteBookingRequest) ResolveReview() string {
	return strings.TrimSpace(r.Review)
}
