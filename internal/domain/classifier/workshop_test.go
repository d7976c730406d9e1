package classifier

import (
	"testing"
	"time"

	"verkstad_portal/internal/domain/entities"
)

func TestFilterProposals(t *testing.T) {
	now := time.Now()
	offers := []entities.Offer{
		{ID: "o1", Status: entities.OfferStatusSent, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "o2", Status: entities.OfferStatusAccepted, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "o3", Status: entities.OfferStatusDeclined, CreatedAt: now.Add(-time.Hour)},
		{ID: "o4", Status: entities.OfferStatusExpired, CreatedAt: now},
		{ID: "o5", Status: entities.OfferStatusSent, CreatedAt: now.Add(time.Minute)},
	}

	cases := []struct {
		tab  ProposalTab
		want []string
	}{
		{tab: ProposalsAll, want: []string{"o5", "o4", "o3", "o2", "o1"}},
		{tab: ProposalsSent, want: []string{"o5", "o1"}},
		{tab: ProposalsAccepted, want: []string{"o2"}},
		{tab: ProposalsDeclined, want: []string{"o3"}},
		{tab: ProposalsExpired, want: []string{"o4"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.tab), func(t *testing.T) {
			got := FilterProposals(offers, tc.tab)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, got)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestContractSplit(t *testing.T) {
	booking := &entities.Booking{ID: "b1", Status: entities.BookingStatusConfirmed}
	offer := entities.Offer{ID: "o1", Status: entities.OfferStatusAccepted, Booking: booking}

	if got := FilterContracts([]entities.Offer{offer}, ContractsCurrent); len(got) != 1 {
		t.Fatalf("expected offer under current before DONE")
	}
	if got := FilterContracts([]entities.Offer{offer}, ContractsCompleted); len(got) != 0 {
		t.Fatalf("expected nothing under completed before DONE")
	}

	done := offer
	done.Booking = &entities.Booking{ID: "b1", Status: entities.BookingStatusDone}
	if got := FilterContracts([]entities.Offer{done}, ContractsCompleted); len(got) != 1 {
		t.Fatalf("expected offer under completed after DONE")
	}
	if got := FilterContracts([]entities.Offer{done}, ContractsCurrent); len(got) != 0 {
		t.Fatalf("expected nothing under current after DONE")
	}
}

func TestContractTabOf(t *testing.T) {
	t.Run("completed by request status", func(t *testing.T) {
		o := entities.Offer{Status: entities.OfferStatusAccepted, Request: &entities.Request{Status: entities.RequestStatusCompleted}}
		if tab, ok := ContractTabOf(o); !ok || tab != ContractsCompleted {
			t.Fatalf("expected completed, got %q ok=%v", tab, ok)
		}
	})

	t.Run("accepted without booking is current", func(t *testing.T) {
		o := entities.Offer{Status: entities.OfferStatusAccepted}
		if tab, ok := ContractTabOf(o); !ok || tab != ContractsCurrent {
			t.Fatalf("expected current, got %q ok=%v", tab, ok)
		}
	})

	t.Run("not accepted is not a contract", func(t *testing.T) {
		for _, s := range []entities.OfferStatus{entities.OfferStatusSent, entities.OfferStatusDeclined, entities.OfferStatusExpired} {
			if _, ok := ContractTabOf(entities.Offer{Status: s, Booking: &entities.Booking{Status: entities.BookingStatusDone}}); ok {
				t.Fatalf("status %s must not be a contract", s)
			}
		}
	})
}

func TestAvailableWork(t *testing.T) {
	now := time.Now()
	reqs := []entities.Request{
		{ID: "r1", Status: entities.RequestStatusInBidding, CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour)},
		{
			ID: "r2", Status: entities.RequestStatusInBidding, CreatedAt: now, ExpiresAt: now.Add(time.Hour),
			Offers: []entities.Offer{{ID: "other", WorkshopID: "w2"}, {ID: "mine", WorkshopID: "w1"}},
		},
		{ID: "r3", Status: entities.RequestStatusBooked, CreatedAt: now},
		{ID: "r4", Status: entities.RequestStatusNew, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "r5", Status: entities.RequestStatusInBidding, CreatedAt: now, ExpiresAt: now.Add(-time.Minute)},
	}

	got := AvailableWork(reqs, "w1", now)
	if len(got) != 3 {
		t.Fatalf("expected 3 available requests, got %d", len(got))
	}
	if got[0].Request.ID != "r2" || got[0].Action != ActionEdit || got[0].OwnOffer == nil || got[0].OwnOffer.ID != "mine" {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[1].Request.ID != "r1" || got[1].Action != ActionApply || got[1].OwnOffer != nil {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
	if got[2].Request.ID != "r4" {
		t.Fatalf("unexpected third entry: %+v", got[2])
	}
}

func TestParseWorkshopTabs(t *testing.T) {
	if tab, ok := ParseProposalTab(""); !ok || tab != ProposalsAll {
		t.Fatalf("empty proposal tab should default to all")
	}
	if _, ok := ParseProposalTab("pending"); ok {
		t.Fatalf("expected unknown proposal tab to fail")
	}
	if tab, ok := ParseContractTab(""); !ok || tab != ContractsCurrent {
		t.Fatalf("empty contract tab should default to current")
	}
	if _, ok := ParseContractTab("archived"); ok {
		t.Fatalf("expected unknown contract tab to fail")
	}
}
