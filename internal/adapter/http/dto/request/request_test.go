package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOpenSessionRequest_ResolveToken(t *testing.T) {
	cases := map[string]string{
		"abc":          "abc",
		" Bearer abc ": "abc",
		"Bearer abc":   "abc",
	}
	for in, want := range cases {
		if got := (OpenSessionRequest{Token: in}).ResolveToken(); got != want {
			t.Fatalf("ResolveToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateRequestRequest_ToDomain(t *testing.T) {
	lat, lng := 59.33, 18.06
	exp := time.Date(2030, 4, 1, 0, 0, 0, 0, time.UTC)
	in := CreateRequestRequest{
		VehicleID:   " veh-1 ",
		ReportID:    "rep-1",
		Description: " Brakes squeal ",
		Latitude:    &lat,
		Longitude:   &lng,
		Address:     "Sveavägen 10",
		City:        "Stockholm",
		PostalCode:  "111 57",
		Country:     "SE",
		ExpiresAt:   exp,
	}.ToDomain()

	if in.VehicleID != "veh-1" || in.Description != "Brakes squeal" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
	if in.Latitude != lat || in.Longitude != lng || !in.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected location or expiry %+v", in)
	}
}

func TestOfferRequest_PriceAcceptsNumberAndString(t *testing.T) {
	for _, body := range []string{
		`{"price":1850.5,"estimated_duration_minutes":90,"available_dates":["2030-05-01T09:00:00Z"]}`,
		`{"price":"1850.50","estimated_duration_minutes":90,"available_dates":["2030-05-01T09:00:00Z"]}`,
	} {
		var r OfferRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		d := r.ToDraft(" req-1 ")
		if d.RequestID != "req-1" || !d.Price.Equal(decimal.RequireFromString("1850.5")) {
			t.Fatalf("unexpected draft %+v", d)
		}
		if len(d.AvailableDates) != 1 || d.EstimatedDurationMinutes != 90 {
			t.Fatalf("unexpected draft %+v", d)
		}
	}
}
