package entities

import "time"

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review is left by the customer when a booking is completed.
type Review struct {
	ID         string    `json:"id,omitempty"`
	BookingID  string    `json:"bookingId"`
	WorkshopID string    `json:"workshopId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}
