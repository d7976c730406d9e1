package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OfferStatus string

const (
	OfferStatusSent     OfferStatus = "SENT"
	OfferStatusAccepted OfferStatus = "ACCEPTED"
	OfferStatusDeclined OfferStatus = "DECLINED"
	OfferStatusExpired  OfferStatus = "EXPIRED"
)

// Offer is a workshop's priced proposal against a request. Price is in SEK.
//
// The workshop offers endpoint nests the parent request and the booking created from the
// offer (if any); the per-request endpoint leaves both empty.
type Offer struct {
	ID                       string          `json:"id"`
	WorkshopID               string          `json:"workshopId"`
	Workshop                 *Workshop       `json:"workshop,omitempty"`
	RequestID                string          `json:"requestId"`
	Price                    decimal.Decimal `json:"price"`
	EstimatedDurationMinutes int             `json:"estimatedDuration"`
	Warranty                 string          `json:"warranty,omitempty"`
	Note                     string          `json:"note,omitempty"`
	AvailableDates           []time.Time     `json:"availableDates"`
	Status                   OfferStatus     `json:"status"`
	CreatedAt                time.Time       `json:"createdAt"`
	DistanceKM               *float64        `json:"distance,omitempty"`

	Request *Request `json:"request,omitempty"`
	Booking *Booking `json:"booking,omitempty"`
}

// OffersDate reports whether at is one of the proposed available datetimes.
func (o Offer) OffersDate(at time.Time) bool {
	for _, d := range o.AvailableDates {
		if d.Equal(at) {
			return true
		}
	}
	return false
}

// OfferDraft carries the fields of POST /api/offers and PATCH /api/offers/{id}.
type OfferDraft struct {
	RequestID                string
	Price                    decimal.Decimal
	EstimatedDurationMinutes int
	Warranty                 string
	Note                     string
	AvailableDates           []time.Time
}

// OfferPatch updates an offer in place. A nil Draft leaves the proposal untouched,
// a nil Status leaves the status untouched.
type OfferPatch struct {
	Draft  *OfferDraft
	Status *OfferStatus
}

type OfferSort string

const (
	OfferSortPrice    OfferSort = "price"
	OfferSortRating   OfferSort = "rating"
	OfferSortDistance OfferSort = "distance"
)

func ParseOfferSort(s string) (OfferSort, bool) {
	switch OfferSort(s) {
	case OfferSortPrice, OfferSortRating, OfferSortDistance:
		return OfferSort(s), true
	case "":
		return OfferSortPrice, true
	default:
		return "", false
	}
}
