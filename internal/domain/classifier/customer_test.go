package classifier

import (
	"testing"
	"time"

	"verkstad_portal/internal/domain/entities"
)

func req(id string, status entities.RequestStatus, bookings ...entities.BookingStatus) entities.Request {
	r := entities.Request{ID: id, Status: status}
	for i, b := range bookings {
		r.Bookings = append(r.Bookings, entities.Booking{ID: id + "-b" + string(rune('0'+i)), Status: b})
	}
	return r
}

func TestMatchesCustomerTab(t *testing.T) {
	cases := []struct {
		name string
		r    entities.Request
		want []CustomerTab
	}{
		{name: "new", r: req("r", entities.RequestStatusNew), want: []CustomerTab{TabMyCases}},
		{name: "in bidding", r: req("r", entities.RequestStatusInBidding), want: []CustomerTab{TabMyCases}},
		{name: "bidding closed", r: req("r", entities.RequestStatusBiddingClosed), want: []CustomerTab{TabMyCases}},
		{name: "booked confirmed", r: req("r", entities.RequestStatusBooked, entities.BookingStatusConfirmed), want: []CustomerTab{TabBookedCases}},
		{name: "booked rescheduled", r: req("r", entities.RequestStatusBooked, entities.BookingStatusRescheduled), want: []CustomerTab{TabRescheduledCases}},
		{name: "booked cancelled booking", r: req("r", entities.RequestStatusBooked, entities.BookingStatusCancelled), want: []CustomerTab{TabCancelledCases}},
		{name: "completed done", r: req("r", entities.RequestStatusCompleted, entities.BookingStatusDone), want: []CustomerTab{TabCompletedCases}},
		{name: "completed without done booking", r: req("r", entities.RequestStatusCompleted), want: nil},
		{name: "cancelled request", r: req("r", entities.RequestStatusCancelled), want: []CustomerTab{TabCancelledCases}},
		{
			name: "cancelled request with rescheduled booking",
			r:    req("r", entities.RequestStatusCancelled, entities.BookingStatusRescheduled),
			want: []CustomerTab{TabCancelledCases, TabRescheduledCases},
		},
		{
			name: "booked with cancelled and rescheduled bookings",
			r:    req("r", entities.RequestStatusBooked, entities.BookingStatusCancelled, entities.BookingStatusRescheduled),
			want: []CustomerTab{TabCancelledCases, TabRescheduledCases},
		},
		{name: "booked no-show still booked", r: req("r", entities.RequestStatusBooked, entities.BookingStatusNoShow), want: []CustomerTab{TabBookedCases}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CustomerTabs(tc.r)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestBookedWithoutCancelOrRescheduleIsAlwaysBooked(t *testing.T) {
	for _, b := range []entities.BookingStatus{entities.BookingStatusConfirmed, entities.BookingStatusDone, entities.BookingStatusNoShow} {
		r := req("r", entities.RequestStatusBooked, b)
		if !MatchesCustomerTab(r, TabBookedCases) {
			t.Fatalf("booking %s: expected booked_cases", b)
		}
	}
	if !MatchesCustomerTab(req("r", entities.RequestStatusBooked), TabBookedCases) {
		t.Fatalf("booked request without bookings must be in booked_cases")
	}
}

func TestRescheduledBookingTabsEvaluatedIndependently(t *testing.T) {
	r := req("r", entities.RequestStatusBooked, entities.BookingStatusRescheduled)

	if MatchesCustomerTab(r, TabBookedCases) {
		t.Fatalf("rescheduled booking must not be in booked_cases")
	}
	if !MatchesCustomerTab(r, TabRescheduledCases) {
		t.Fatalf("rescheduled booking must be in rescheduled_cases")
	}

	reqs := []entities.Request{r}
	if got := FilterCustomerCases(reqs, TabBookedCases); len(got) != 0 {
		t.Fatalf("expected empty booked tab, got %d", len(got))
	}
	if got := FilterCustomerCases(reqs, TabRescheduledCases); len(got) != 1 {
		t.Fatalf("expected one rescheduled case, got %d", len(got))
	}
}

func TestPrimaryCustomerTab(t *testing.T) {
	tab, ok := PrimaryCustomerTab(req("r", entities.RequestStatusCancelled, entities.BookingStatusRescheduled))
	if !ok || tab != TabCancelledCases {
		t.Fatalf("expected cancelled_cases, got %q ok=%v", tab, ok)
	}
	if _, ok := PrimaryCustomerTab(req("r", entities.RequestStatusCompleted)); ok {
		t.Fatalf("expected no primary tab")
	}
}

func TestFilterCustomerCases_NewestFirst(t *testing.T) {
	now := time.Now()
	older := req("older", entities.RequestStatusNew)
	older.CreatedAt = now.Add(-time.Hour)
	newer := req("newer", entities.RequestStatusInBidding)
	newer.CreatedAt = now
	booked := req("booked", entities.RequestStatusBooked, entities.BookingStatusConfirmed)

	got := FilterCustomerCases([]entities.Request{older, booked, newer}, TabMyCases)
	if len(got) != 2 || got[0].ID != "newer" || got[1].ID != "older" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestCountCustomerTabs(t *testing.T) {
	reqs := []entities.Request{
		req("a", entities.RequestStatusNew),
		req("b", entities.RequestStatusBooked, entities.BookingStatusConfirmed),
		req("c", entities.RequestStatusCancelled, entities.BookingStatusRescheduled),
		req("d", entities.RequestStatusCompleted),
	}
	got := CountCustomerTabs(reqs)
	want := map[CustomerTab]int{
		TabMyCases:          1,
		TabBookedCases:      1,
		TabCompletedCases:   0,
		TabCancelledCases:   1,
		TabRescheduledCases: 1,
	}
	for tab, n := range want {
		if got[tab] != n {
			t.Fatalf("tab %s: expected %d, got %d", tab, n, got[tab])
		}
	}
}

func TestParseCustomerTab(t *testing.T) {
	if tab, ok := ParseCustomerTab(""); !ok || tab != TabMyCases {
		t.Fatalf("empty tab should default to my_cases")
	}
	if tab, ok := ParseCustomerTab("completed_cases"); !ok || tab != TabCompletedCases {
		t.Fatalf("unexpected parse result %q", tab)
	}
	if _, ok := ParseCustomerTab("archive"); ok {
		t.Fatalf("expected unknown tab to fail")
	}
}
