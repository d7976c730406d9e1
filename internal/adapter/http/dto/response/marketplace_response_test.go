package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"verkstad_portal/internal/domain/classifier"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromBooking_MoneyHasTwoDecimals(t *testing.T) {
	b := FromBooking(entities.Booking{
		ID:               "bk-1",
		TotalAmount:      decimal.RequireFromString("1850"),
		CommissionAmount: decimal.RequireFromString("185.5"),
		Status:           entities.BookingStatusConfirmed,
	})
	if b.TotalAmount != "1850.00" || b.CommissionAmount != "185.50" {
		t.Fatalf("unexpected amounts %+v", b)
	}
}

func TestFromPayout(t *testing.T) {
	p := FromPayout(entities.PayoutReport{
		ID:             "po-1",
		WorkshopID:     "ws-1",
		Workshop:       &entities.Workshop{ID: "ws-1", DisplayName: "Bilverkstan"},
		Month:          2,
		Year:           2030,
		TotalAmount:    decimal.NewFromInt(1000),
		Commission:     decimal.NewFromInt(100),
		WorkshopAmount: decimal.NewFromInt(900),
		IsPaid:         true,
	})
	if p.WorkshopName != "Bilverkstan" || p.WorkshopAmount != "900.00" || !p.IsPaid {
		t.Fatalf("unexpected payout %+v", p)
	}
}

func TestFromRequest_NestedCollectionsNeverNull(t *testing.T) {
	r := FromRequest(entities.Request{ID: "req-1", Status: entities.RequestStatusNew})
	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	if !strings.Contains(s, `"offers":[]`) || !strings.Contains(s, `"bookings":[]`) {
		t.Fatalf("expected empty arrays, got %s", s)
	}
}

func TestFromOffer_Nested(t *testing.T) {
	at := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	o := FromOffer(entities.Offer{
		ID:             "off-1",
		Price:          decimal.RequireFromString("999.9"),
		AvailableDates: []time.Time{at},
		Status:         entities.OfferStatusAccepted,
		Request:        &entities.Request{ID: "req-1"},
		Booking:        &entities.Booking{ID: "bk-1", Status: entities.BookingStatusDone},
	})
	if o.Price != "999.90" || o.Request == nil || o.Request.ID != "req-1" || o.Booking == nil || o.Booking.Status != "DONE" {
		t.Fatalf("unexpected offer %+v", o)
	}
}

func TestFromCaseView(t *testing.T) {
	c := FromCaseView(usecase.CaseView{
		Request:    entities.Request{ID: "req-1"},
		Tabs:       []classifier.CustomerTab{classifier.TabMyCases, classifier.TabBookedCases},
		PrimaryTab: classifier.TabBookedCases,
	})
	if len(c.Tabs) != 2 || c.Tabs[1] != "booked_cases" || c.PrimaryTab != "booked_cases" {
		t.Fatalf("unexpected case %+v", c)
	}
}

func TestFromAvailableRequests(t *testing.T) {
	own := entities.Offer{ID: "off-1", WorkshopID: "ws-1"}
	out := FromAvailableRequests([]classifier.AvailableRequest{
		{Request: entities.Request{ID: "req-1"}, Action: classifier.ActionApply},
		{Request: entities.Request{ID: "req-2"}, OwnOffer: &own, Action: classifier.ActionEdit},
	})
	if len(out) != 2 || out[0].OwnOffer != nil || out[1].OwnOffer == nil || out[1].Action != "edit" {
		t.Fatalf("unexpected items %+v", out)
	}
}
