package entities

import "time"

// RequestStatus represents the lifecycle of a customer's repair request.
//
// Domain notes:
//   - The marketplace backend is the source of truth for request state.
//   - BOOKED and COMPLETED are cascaded server-side from booking operations.
type RequestStatus string

const (
	RequestStatusNew           RequestStatus = "NEW"
	RequestStatusInBidding     RequestStatus = "IN_BIDDING"
	RequestStatusBiddingClosed RequestStatus = "BIDDING_CLOSED"
	RequestStatusBooked        RequestStatus = "BOOKED"
	RequestStatusCompleted     RequestStatus = "COMPLETED"
	RequestStatusCancelled     RequestStatus = "CANCELLED"
)

// IsOpenForBidding reports whether workshops may still send or edit offers.
func (s RequestStatus) IsOpenForBidding() bool {
	return s == RequestStatusNew || s == RequestStatusInBidding
}

// Request is a customer's posted repair job, as received from the marketplace backend
// with its vehicle, offers and bookings nested.
type Request struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customerId"`
	VehicleID   string        `json:"vehicleId"`
	Vehicle     *Vehicle      `json:"vehicle,omitempty"`
	ReportID    string        `json:"reportId,omitempty"`
	Description string        `json:"description"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	PostalCode  string        `json:"postalCode"`
	Country     string        `json:"country"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	Offers      []Offer       `json:"offers,omitempty"`
	Bookings    []Booking     `json:"bookings,omitempty"`
}

// HasBookingIn reports whether any nested booking is in one of the given statuses.
func (r Request) HasBookingIn(statuses ...BookingStatus) bool {
	for _, b := range r.Bookings {
		for _, s := range statuses {
			if b.Status == s {
				return true
			}
		}
	}
	return false
}

// IsExpired reports whether the bidding window has passed. A zero ExpiresAt never expires.
func (r Request) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && r.ExpiresAt.Before(now)
}

// NewRequest carries the fields of POST /api/requests.
type NewRequest struct {
	VehicleID   string    `json:"vehicleId"`
	ReportID    string    `json:"reportId"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postalCode"`
	Country     string    `json:"country"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AreaQuery is the radius query used to list requests available to a workshop.
type AreaQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
}
