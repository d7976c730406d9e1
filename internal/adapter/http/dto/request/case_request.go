package request

import (
	"strings"
	"time"

	"verkstad_portal/internal/domain/entities"
)

type CreateRequestRequest struct {
	VehicleID   string    `json:"vehicle_id" binding:"required"`
	ReportID    string    `json:"report_id" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Latitude    *float64  `json:"latitude" binding:"required"`
	Longitude   *float64  `json:"longitude" binding:"required"`
	Address     string    `json:"address" binding:"required"`
	City        string    `json:"city" binding:"required"`
	PostalCode  string    `json:"postal_code" binding:"required"`
	Country     string    `json:"country" binding:"required"`
	ExpiresAt   time.Time `json:"expires_at" binding:"required"`
}

func (r CreateRequestRequest) ToDomain() entities.NewRequest {
	in := entities.NewRequest{
		VehicleID:   strings.TrimSpace(r.VehicleID),
		ReportID:    strings.TrimSpace(r.ReportID),
		Description: strings.TrimSpace(r.Description),
		Address:     strings.TrimSpace(r.Address),
		City:        strings.TrimSpace(r.City),
		PostalCode:  strings.TrimSpace(r.PostalCode),
		Country:     strings.TrimSpace(r.Country),
		ExpiresAt:   r.ExpiresAt,
	}
	if r.Latitude != nil {
		in.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		in.Longitude = *r.Longitude
	}
	return in
}
