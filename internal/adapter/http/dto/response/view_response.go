package response

import (
	"verkstad_portal/internal/domain/classifier"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase"
)

// CaseResponse is a customer request annotated with every tab it matches.
type CaseResponse struct {
	Request    RequestResponse `json:"request"`
	Tabs       []string        `json:"tabs"`
	PrimaryTab string          `json:"primary_tab,omitempty"`
}

func FromCaseView(v usecase.CaseView) CaseResponse {
	tabs := make([]string, 0, len(v.Tabs))
	for _, t := range v.Tabs {
		tabs = append(tabs, string(t))
	}
	return CaseResponse{
		Request:    FromRequest(v.Request),
		Tabs:       tabs,
		PrimaryTab: string(v.PrimaryTab),
	}
}

func FromCaseViews(views []usecase.CaseView) []CaseResponse {
	out := make([]CaseResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCaseView(v))
	}
	return out
}

func FromSummary(counts map[classifier.CustomerTab]int) map[string]int {
	out := make(map[string]int, len(counts))
	for tab, n := range counts {
		out[string(tab)] = n
	}
	return out
}

type AvailableRequestResponse struct {
	Request  RequestResponse `json:"request"`
	OwnOffer *OfferResponse  `json:"own_offer,omitempty"`
	Action   string          `json:"action"`
}

func FromAvailableRequests(items []classifier.AvailableRequest) []AvailableRequestResponse {
	out := make([]AvailableRequestResponse, 0, len(items))
	for _, it := range items {
		r := AvailableRequestResponse{Request: FromRequest(it.Request), Action: string(it.Action)}
		if it.OwnOffer != nil {
			o := FromOffer(*it.OwnOffer)
			r.OwnOffer = &o
		}
		out = append(out, r)
	}
	return out
}

type OfferSubmissionResponse struct {
	Offer   OfferResponse `json:"offer"`
	Created bool          `json:"created"`
}

func FromOfferSubmission(s usecase.OfferSubmission) OfferSubmissionResponse {
	return OfferSubmissionResponse{Offer: FromOffer(s.Offer), Created: s.Created}
}

// LifecycleResponse is returned by the booking operations: the outcome plus the
// customer's cases as they look after the change.
type LifecycleResponse struct {
	Booking *BookingResponse `json:"booking,omitempty"`
	Review  *ReviewResponse  `json:"review,omitempty"`
	// ReviewError is set when the booking was completed but the review could not be saved.
	ReviewError  string         `json:"review_error,omitempty"`
	Cases        []CaseResponse `json:"cases"`
	Summary      map[string]int `json:"summary,omitempty"`
	RefreshError string         `json:"refresh_error,omitempty"`
}

func NewLifecycleResponse(b entities.Booking) LifecycleResponse {
	br := FromBooking(b)
	return LifecycleResponse{Booking: &br, Cases: []CaseResponse{}}
}
