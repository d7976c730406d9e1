package request

import (
	"strings"
	"time"

	"verkstad_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OfferRequest is the body of the offer upsert. Price accepts a JSON number or string (SEK).
type OfferRequest struct {
	Price                    decimal.Decimal `json:"price" swaggertype:"string" example:"1850.00"`
	EstimatedDurationMinutes int             `json:"estimated_duration_minutes" binding:"required"`
	Warranty                 string          `json:"warranty"`
	Note                     string          `json:"note"`
	AvailableDates           []time.Time     `json:"available_dates" binding:"required"`
}

func (r OfferRequest) ToDraft(requestID string) entities.OfferDraft {
	return entities.OfferDraft{
		RequestID:                strings.TrimSpace(requestID),
		Price:                    r.Price,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		Warranty:                 strings.TrimSpace(r.Warranty),
		Note:                     strings.TrimSpace(r.Note),
		AvailableDates:           r.AvailableDates,
	}
}
