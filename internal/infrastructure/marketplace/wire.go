package marketplace

import (
	"time"

	"verkstad_portal/internal/domain/entities"
)

// Request bodies sent to the backend. Money goes out as a JSON number.

type offerBody struct {
	RequestID         string      `json:"requestId"`
	Price             float64     `json:"price"`
	EstimatedDuration int         `json:"estimatedDuration"`
	Warranty          string      `json:"warranty,omitempty"`
	Note              string      `json:"note,omitempty"`
	AvailableDates    []time.Time `json:"availableDates"`
}

func newOfferBody(d entities.OfferDraft) offerBody {
	dates := make([]time.Time, 0, len(d.AvailableDates))
	for _, at := range d.AvailableDates {
		dates = append(dates, at.UTC())
	}
	return offerBody{
		RequestID:         d.RequestID,
		Price:             d.Price.InexactFloat64(),
		EstimatedDuration: d.EstimatedDurationMinutes,
		Warranty:          d.Warranty,
		Note:              d.Note,
		AvailableDates:    dates,
	}
}

type offerPatchBody struct {
	Price             *float64              `json:"price,omitempty"`
	EstimatedDuration *int                  `json:"estimatedDuration,omitempty"`
	Warranty          *string               `json:"warranty,omitempty"`
	Note              *string               `json:"note,omitempty"`
	AvailableDates    []time.Time           `json:"availableDates,omitempty"`
	Status            *entities.OfferStatus `json:"status,omitempty"`
}

func newOfferPatchBody(p entities.OfferPatch) offerPatchBody {
	body := offerPatchBody{Status: p.Status}
	if p.Draft != nil {
		full := newOfferBody(*p.Draft)
		body.Price = &full.Price
		body.EstimatedDuration = &full.EstimatedDuration
		body.Warranty = &full.Warranty
		body.Note = &full.Note
		body.AvailableDates = full.AvailableDates
	}
	return body
}

type bookingBody struct {
	OfferID     string    `json:"offerId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Notes       string    `json:"notes,omitempty"`
}

type bookingPatchBody struct {
	Status      entities.BookingStatus `json:"status"`
	ScheduledAt *time.Time             `json:"scheduledAt,omitempty"`
}

type reviewBody struct {
	BookingID  string `json:"bookingId"`
	WorkshopID string `json:"workshopId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type payoutPeriodBody struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}
