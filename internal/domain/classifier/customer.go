// Package classifier derives the UI tab(s) a request or offer belongs to from the
// backend snapshot. It is pure: no I/O, no clock unless one is passed in.
package classifier

import (
	"sort"

	"verkstad_portal/internal/domain/entities"
)

// CustomerTab is a bucket of the customer "My Cases" view.
type CustomerTab string

const (
	TabMyCases          CustomerTab = "my_cases"
	TabBookedCases      CustomerTab = "booked_cases"
	TabCompletedCases   CustomerTab = "completed_cases"
	TabCancelledCases   CustomerTab = "cancelled_cases"
	TabRescheduledCases CustomerTab = "rescheduled_cases"
)

// CustomerTabOrder is the evaluation order used to pick a primary tab.
var CustomerTabOrder = []CustomerTab{
	TabMyCases,
	TabBookedCases,
	TabCompletedCases,
	TabCancelledCases,
	TabRescheduledCases,
}

func ParseCustomerTab(s string) (CustomerTab, bool) {
	if s == "" {
		return TabMyCases, true
	}
	for _, t := range CustomerTabOrder {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// MatchesCustomerTab evaluates the membership predicate of a single tab.
//
// Predicates are independent per tab and do not form a partition: a request can
// match several tabs (e.g. CANCELLED status with a RESCHEDULED booking) or none
// (e.g. COMPLETED without a DONE booking).
func MatchesCustomerTab(r entities.Request, tab CustomerTab) bool {
	switch tab {
	case TabMyCases:
		switch r.Status {
		case entities.RequestStatusNew, entities.RequestStatusInBidding, entities.RequestStatusBiddingClosed:
			return true
		}
		return false
	case TabBookedCases:
		return r.Status == entities.RequestStatusBooked &&
			!r.HasBookingIn(entities.BookingStatusRescheduled, entities.BookingStatusCancelled)
	case TabCompletedCases:
		return r.Status == entities.RequestStatusCompleted && r.HasBookingIn(entities.BookingStatusDone)
	case TabCancelledCases:
		return r.Status == entities.RequestStatusCancelled || r.HasBookingIn(entities.BookingStatusCancelled)
	case TabRescheduledCases:
		return r.HasBookingIn(entities.BookingStatusRescheduled)
	default:
		return false
	}
}

// CustomerTabs returns every tab whose predicate holds, in CustomerTabOrder.
func CustomerTabs(r entities.Request) []CustomerTab {
	var out []CustomerTab
	for _, t := range CustomerTabOrder {
		if MatchesCustomerTab(r, t) {
			out = append(out, t)
		}
	}
	return out
}

// PrimaryCustomerTab returns the first matching tab in CustomerTabOrder.
func PrimaryCustomerTab(r entities.Request) (CustomerTab, bool) {
	for _, t := range CustomerTabOrder {
		if MatchesCustomerTab(r, t) {
			return t, true
		}
	}
	return "", false
}

// FilterCustomerCases keeps the requests matching tab, newest first.
func FilterCustomerCases(reqs []entities.Request, tab CustomerTab) []entities.Request {
	out := make([]entities.Request, 0, len(reqs))
	for _, r := range reqs {
		if MatchesCustomerTab(r, tab) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CountCustomerTabs counts tab membership. Counts can add up to more (or fewer)
// than len(reqs) since predicates overlap.
func CountCustomerTabs(reqs []entities.Request) map[CustomerTab]int {
	out := make(map[CustomerTab]int, len(CustomerTabOrder))
	for _, t := range CustomerTabOrder {
		out[t] = 0
	}
	for _, r := range reqs {
		for _, t := range CustomerTabs(r) {
			out[t]++
		}
	}
	return out
}
