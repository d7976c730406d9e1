package response

import (
	"time"

	"verkstad_portal/internal/domain/entities"
)

type VehicleResponse struct {
	ID    string `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type WorkshopResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Address    string   `json:"address,omitempty"`
	City       string   `json:"city,omitempty"`
	IsVerified bool     `json:"is_verified"`
	IsActive   bool     `json:"is_active"`
	Rating     *float64 `json:"rating,omitempty"`
}

type BookingResponse struct {
	ID               string    `json:"id"`
	OfferID          string    `json:"offer_id"`
	RequestID        string    `json:"request_id,omitempty"`
	CustomerID       string    `json:"customer_id"`
	WorkshopID       string    `json:"workshop_id"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	TotalAmount      string    `json:"total_amount"`
	CommissionAmount string    `json:"commission_amount"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
}

type OfferResponse struct {
	ID                       string            `json:"id"`
	RequestID                string            `json:"request_id"`
	WorkshopID               string            `json:"workshop_id"`
	Workshop                 *WorkshopResponse `json:"workshop,omitempty"`
	Price                    string            `json:"price"`
	EstimatedDurationMinutes int               `json:"estimated_duration_minutes"`
	Warranty                 string            `json:"warranty,omitempty"`
	Note                     string            `json:"note,omitempty"`
	AvailableDates           []time.Time       `json:"available_dates"`
	Status                   string            `json:"status"`
	CreatedAt                time.Time         `json:"created_at"`
	DistanceKM               *float64          `json:"distance_km,omitempty"`
	Request                  *RequestResponse  `json:"request,omitempty"`
	Booking                  *BookingResponse  `json:"booking,omitempty"`
}

type RequestResponse struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customer_id"`
	VehicleID   string            `json:"vehicle_id"`
	Vehicle     *VehicleResponse  `json:"vehicle,omitempty"`
	ReportID    string            `json:"report_id,omitempty"`
	Description string            `json:"description"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	PostalCode  string            `json:"postal_code"`
	Country     string            `json:"country"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
	Offers      []OfferResponse   `json:"offers"`
	Bookings    []BookingResponse `json:"bookings"`
}

type ReviewResponse struct {
	ID         string `json:"id,omitempty"`
	BookingID  string `json:"booking_id"`
	WorkshopID string `json:"workshop_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type PayoutResponse struct {
	ID                 string `json:"id"`
	WorkshopID         string `json:"workshop_id"`
	WorkshopName       string `json:"workshop_name,omitempty"`
	Month              int    `json:"month"`
	Year               int    `json:"year"`
	TotalCompletedJobs int    `json:"total_completed_jobs"`
	TotalAmount        string `json:"total_amount"`
	Commission         string `json:"commission"`
	WorkshopAmount     string `json:"workshop_amount"`
	IsPaid             bool   `json:"is_paid"`
}

func FromWorkshop(w entities.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:         w.ID,
		Name:       w.DisplayName,
		Email:      w.Email,
		Phone:      w.Phone,
		Address:    w.Address,
		City:       w.City,
		IsVerified: w.IsVerified,
		IsActive:   w.IsActive,
		Rating:     w.Rating,
	}
}

func FromWorkshops(ws []entities.Workshop) []WorkshopResponse {
	out := make([]WorkshopResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWorkshop(w))
	}
	return out
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		OfferID:          b.OfferID,
		RequestID:        b.RequestID,
		CustomerID:       b.CustomerID,
		WorkshopID:       b.WorkshopID,
		ScheduledAt:      b.ScheduledAt,
		TotalAmount:      money(b.TotalAmount),
		CommissionAmount: money(b.CommissionAmount),
		Status:           string(b.Status),
		Notes:            b.Notes,
	}
}

func FromOffer(o entities.Offer) OfferResponse {
	out := OfferResponse{
		ID:                       o.ID,
		RequestID:                o.RequestID,
		WorkshopID:               o.WorkshopID,
		Price:                    money(o.Price),
		EstimatedDurationMinutes: o.EstimatedDurationMinutes,
		Warranty:                 o.Warranty,
		Note:                     o.Note,
		AvailableDates:           o.AvailableDates,
		Status:                   string(o.Status),
		CreatedAt:                o.CreatedAt,
		DistanceKM:               o.DistanceKM,
	}
	if out.AvailableDates == nil {
		out.AvailableDates = []time.Time{}
	}
	if o.Workshop != nil {
		w := FromWorkshop(*o.Workshop)
		out.Workshop = &w
	}
	if o.Request != nil {
		r := FromRequest(*o.Request)
		out.Request = &r
	}
	if o.Booking != nil {
		b := FromBooking(*o.Booking)
		out.Booking = &b
	}
	return out
}

func FromOffers(offers []entities.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, FromOffer(o))
	}
	return out
}

func FromRequest(r entities.Request) RequestResponse {
	out := RequestResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		VehicleID:   r.VehicleID,
		ReportID:    r.ReportID,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Address:     r.Address,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		ExpiresAt:   r.ExpiresAt,
		Offers:      FromOffers(r.Offers),
		Bookings:    make([]BookingResponse, 0, len(r.Bookings)),
	}
	if r.Vehicle != nil {
		out.Vehicle = &VehicleResponse{ID: r.Vehicle.ID, Make: r.Vehicle.Make, Model: r.Vehicle.Model, Year: r.Vehicle.Year}
	}
	for _, b := range r.Bookings {
		out.Bookings = append(out.Bookings, FromBooking(b))
	}
	return out
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		BookingID:  r.BookingID,
		WorkshopID: r.WorkshopID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func FromPayout(p entities.PayoutReport) PayoutResponse {
	out := PayoutResponse{
		ID:                 p.ID,
		WorkshopID:         p.WorkshopID,
		Month:              p.Month,
		Year:               p.Year,
		TotalCompletedJobs: p.TotalCompletedJobs,
		TotalAmount:        money(p.TotalAmount),
		Commission:         money(p.Commission),
		WorkshopAmount:     money(p.WorkshopAmount),
		IsPaid:             p.IsPaid,
	}
	if p.Workshop != nil {
		out.WorkshopName = p.Workshop.DisplayName
	}
	return out
}

func FromPayouts(ps []entities.PayoutReport) []PayoutResponse {
	out := make([]PayoutResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayout(p))
	}
	return out
}
