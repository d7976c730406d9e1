package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"verkstad_portal/internal/domain/classifier"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/infrastructure/marketplace"

	"github.com/shopspring/decimal"
)

// These tests run the use cases against the in-memory marketplace so the server-side
// cascades are part of what is checked.

type marketplaceFixture struct {
	gw       *marketplace.MemoryGateway
	cases    *CaseUseCase
	bookings *BookingUseCase
	workshop *WorkshopUseCase
	admin    *AdminUseCase
}

func newMarketplaceFixture() marketplaceFixture {
	gw := marketplace.NewMemoryGateway(decimal.RequireFromString("0.10"))
	return marketplaceFixture{
		gw:       gw,
		cases:    NewCaseUseCase(gw, nil),
		bookings: NewBookingUseCase(gw, nil),
		workshop: NewWorkshopUseCase(gw, nil),
		admin:    NewAdminUseCase(gw, nil),
	}
}

func (f marketplaceFixture) postRequest(t *testing.T) entities.Request {
	t.Helper()
	r, err := f.cases.CreateRequest(context.Background(), customerSess, entities.NewRequest{
		VehicleID:   "veh-1",
		ReportID:    "rep-1",
		Description: "Engine light on",
		Latitude:    59.3293,
		Longitude:   18.0686,
		Address:     "Sveavägen 10",
		City:        "Stockholm",
		PostalCode:  "111 57",
		Country:     "SE",
		ExpiresAt:   time.Now().Add(7 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return r
}

func futureSlot(h int) time.Time {
	return time.Now().Add(time.Duration(h) * time.Hour).UTC().Truncate(time.Minute)
}

func offerDraft(requestID string, price int64, slots ...time.Time) entities.OfferDraft {
	return entities.OfferDraft{
		RequestID:                requestID,
		Price:                    decimal.NewFromInt(price),
		EstimatedDurationMinutes: 120,
		Warranty:                 "12 months",
		AvailableDates:           slots,
	}
}

func caseIDs(views []CaseView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.Request.ID)
	}
	return ids
}

func TestSubmitOffer_UpsertKeepsSingleOffer(t *testing.T) {
	ctx := context.Background()
	f := newMarketplaceFixture()
	req := f.postRequest(t)

	first, err := f.workshop.SubmitOffer(ctx, workshopSess, offerDraft(req.ID, 1800, futureSlot(48)))
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if !first.Created {
		t.Fatalf("expected first submit to create")
	}

	second, err := f.workshop.SubmitOffer(ctx, workshopSess, offerDraft(req.ID, 1650, futureSlot(72)))
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.Created || second.Offer.ID != first.Offer.ID {
		t.Fatalf("expected in-place update of %s, got %+v", first.Offer.ID, second)
	}

	offers, err := f.cases.ListOffers(ctx, customerSess, req.ID, "")
	if err != nil {
		t.Fatalf("list offers: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected exactly one offer, got %d", len(offers))
	}
	if !offers[0].Price.Equal(decimal.NewFromInt(1650)) {
		t.Fatalf("expected latest price 1650, got %s", offers[0].Price)
	}
}

func TestRescheduleBooking_Repeatable(t *testing.T) {
	ctx := context.Background()
	f := newMarketplaceFixture()
	req := f.postRequest(t)
	slot := futureSlot(48)
	sub, err := f.workshop.SubmitOffer(ctx, workshopSess, offerDraft(req.ID, 900, slot))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	booking, err := f.bookings.AcceptOffer(ctx, customerSess, sub.Offer.ID, slot, "")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	firstAt, secondAt := futureSlot(96), futureSlot(120)
	if _, err := f.bookings.RescheduleBooking(ctx, customerSess, booking.ID, firstAt); err != nil {
		t.Fatalf("first reschedule: %v", err)
	}
	if _, err := f.bookings.RescheduleBooking(ctx, customerSess, booking.ID, secondAt); err != nil {
		t.Fatalf("second reschedule: %v", err)
	}

	views, err := f.cases.ListCases(ctx, customerSess, classifier.TabRescheduledCases)
	if err != nil {
		t.Fatalf("list cases: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected the request in rescheduled_cases, got %v", caseIDs(views))
	}
	got := views[0].Request.Bookings[0]
	if got.Status != entities.BookingStatusRescheduled || !got.ScheduledAt.Equal(secondAt) {
		t.Fatalf("expected RESCHEDULED at %s, got %s at %s", secondAt, got.Status, got.ScheduledAt)
	}

	booked, err := f.cases.ListCases(ctx, customerSess, classifier.TabBookedCases)
	if err != nil {
		t.Fatalf("list cases: %v", err)
	}
	if len(booked) != 0 {
		t.Fatalf("rescheduled request must not be in booked_cases, got %v", caseIDs(booked))
	}
}

func TestAcceptOffer_SecondAcceptCreatesNoBooking(t *testing.T) {
	ctx := context.Background()
	f := newMarketplaceFixture()
	req := f.postRequest(t)
	slot := futureSlot(48)
	sub, err := f.workshop.SubmitOffer(ctx, workshopSess, offerDraft(req.ID, 900, slot))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := f.bookings.AcceptOffer(ctx, customerSess, sub.Offer.ID, slot, ""); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err = f.bookings.AcceptOffer(ctx, customerSess, sub.Offer.ID, slot, "")
	if !errors.Is(err, ErrOfferNotAcceptable) {
		t.Fatalf("expected ErrOfferNotAcceptable, got %v", err)
	}

	views, err := f.cases.ListCases(ctx, customerSess, classifier.TabBookedCases)
	if err != nil {
		t.Fatalf("list cases: %v", err)
	}
	if len(views) != 1 || len(views[0].Request.Bookings) != 1 {
		t.Fatalf("expected exactly one booking, got %+v", views)
	}
}

func TestBookingLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newMarketplaceFixture()
	req := f.postRequest(t)
	slot := futureSlot(48)

	available, err := f.workshop.AvailableRequests(ctx, workshopSess, entities.AreaQuery{Latitude: 59.33, Longitude: 18.07, RadiusKM: 10})
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(available) != 1 || available[0].Action != classifier.ActionApply {
		t.Fatalf("expected one request to apply to, got %+v", available)
	}

	sub, err := f.workshop.SubmitOffer(ctx, workshopSess, offerDraft(req.ID, 2500, slot))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	available, err = f.workshop.AvailableRequests(ctx, workshopSess, entities.AreaQuery{Latitude: 59.33, Longitude: 18.07, RadiusKM: 10})
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(available) != 1 || available[0].Action != classifier.ActionEdit || available[0].OwnOffer == nil {
		t.Fatalf("expected edit action on own offer, got %+v", available)
	}

	booking, err := f.bookings.AcceptOffer(ctx, customerSess, sub.Offer.ID, slot, "")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	current, err := f.workshop.Contracts(ctx, workshopSess, classifier.ContractsCurrent)
	if err != nil {
		t.Fatalf("contracts: %v", err)
	}
	if len(current) != 1 || current[0].ID != sub.Offer.ID {
		t.Fatalf("expected contract under current, got %+v", current)
	}

	res, err := f.bookings.CompleteBooking(ctx, customerSess, booking.ID, 5, "Great")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.ReviewErr != nil || res.Booking.Status != entities.BookingStatusDone {
		t.Fatalf("unexpected completion %+v", res)
	}

	completed, err := f.cases.ListCases(ctx, customerSess, classifier.TabCompletedCases)
	if err != nil {
		t.Fatalf("list cases: %v", err)
	}
	if len(completed) != 1 || completed[0].PrimaryTab != classifier.TabCompletedCases {
		t.Fatalf("expected request in completed_cases, got %+v", completed)
	}

	current, _ = f.workshop.Contracts(ctx, workshopSess, classifier.ContractsCurrent)
	done, _ := f.workshop.Contracts(ctx, workshopSess, classifier.ContractsCompleted)
	if len(current) != 0 || len(done) != 1 {
		t.Fatalf("expected contract moved to completed, current=%d completed=%d", len(current), len(done))
	}

	if _, err := f.workshop.CancelContract(ctx, workshopSess, sub.Offer.ID); !errors.Is(err, ErrContractCompleted) {
		t.Fatalf("expected ErrContractCompleted, got %v", err)
	}

	at := res.Booking.ScheduledAt.UTC()
	reports, err := f.admin.GeneratePayouts(ctx, adminSess, int(at.Month()), at.Year())
	if errors.Is(err, ErrInvalidPeriod) {
		// The slot may fall in next month; payouts only cover finished or running months.
		return
	}
	if err != nil {
		t.Fatalf("generate payouts: %v", err)
	}
	if len(reports) != 1 || !reports[0].WorkshopAmount.Equal(decimal.NewFromInt(2250)) {
		t.Fatalf("unexpected payouts %+v", reports)
	}
}

func TestCancelContract_CancelsBookingAndReopensRequest(t *testing.T) {
	ctx := context.Background()
	f := newMarketplaceFixture()
	req := f.postRequest(t)
	slot := futureSlot(48)
	sub, err := f.workshop.SubmitOffer(ctx, workshopSess, offerDraft(req.ID, 1200, slot))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	booking, err := f.bookings.AcceptOffer(ctx, customerSess, sub.Offer.ID, slot, "")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := f.workshop.CancelContract(ctx, workshopSess, sub.Offer.ID); err != nil {
		t.Fatalf("cancel contract: %v", err)
	}

	booked, err := f.cases.ListCases(ctx, customerSess, classifier.TabBookedCases)
	if err != nil {
		t.Fatalf("list cases: %v", err)
	}
	if len(booked) != 0 {
		t.Fatalf("withdrawn contract must leave booked_cases, got %v", caseIDs(booked))
	}

	if _, err := f.bookings.CompleteBooking(ctx, customerSess, booking.ID, 5, "Great"); !errors.Is(err, ErrBookingNotActive) {
		t.Fatalf("expected ErrBookingNotActive, got %v", err)
	}

	views, err := f.cases.ListCases(ctx, customerSess, classifier.TabMyCases)
	if err != nil {
		t.Fatalf("list cases: %v", err)
	}
	if len(views) != 1 || views[0].Request.Status != entities.RequestStatusInBidding {
		t.Fatalf("expected the request back in bidding, got %+v", views)
	}
	if got := views[0].Request.Bookings[0].Status; got != entities.BookingStatusCancelled {
		t.Fatalf("expected CANCELLED booking, got %s", got)
	}
}

func TestAdmin_FlagsAreOrthogonal(t *testing.T) {
	ctx := context.Background()
	f := newMarketplaceFixture()
	f.gw.SeedWorkshop(entities.Workshop{ID: "ws-1", DisplayName: "Bilverkstan", IsVerified: false, IsActive: true})

	w, err := f.admin.SetWorkshopVerification(ctx, adminSess, "ws-1", true)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !w.IsVerified || !w.IsActive {
		t.Fatalf("verification changed the active flag: %+v", w)
	}

	w, err = f.admin.SetWorkshopActive(ctx, adminSess, "ws-1", false)
	if err != nil {
		t.Fatalf("block: %v", err)
	}
	if !w.IsVerified || w.IsActive {
		t.Fatalf("blocking changed the verified flag: %+v", w)
	}

	w, err = f.admin.SetWorkshopVerification(ctx, adminSess, "ws-1", false)
	if err != nil {
		t.Fatalf("unverify: %v", err)
	}
	if w.IsVerified || w.IsActive {
		t.Fatalf("unexpected flags: %+v", w)
	}
}
