package entities

import "github.com/shopspring/decimal"

// PayoutReport aggregates a workshop's completed bookings for one month.
//
// WorkshopAmount = TotalAmount - Commission. IsPaid is a one-way flag.
type PayoutReport struct {
	ID                 string          `json:"id"`
	WorkshopID         string          `json:"workshopId"`
	Workshop           *Workshop       `json:"workshop,omitempty"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	TotalCompletedJobs int             `json:"totalCompletedJobs"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Commission         decimal.Decimal `json:"commission"`
	WorkshopAmount     decimal.Decimal `json:"workshopAmount"`
	IsPaid             bool            `json:"isPaid"`
}
