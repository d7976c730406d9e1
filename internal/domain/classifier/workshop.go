package classifier

import (
	"sort"
	"time"

	"verkstad_portal/internal/domain/entities"
)

type ProposalTab string

const (
	ProposalsAll      ProposalTab = "all"
	ProposalsSent     ProposalTab = "sent"
	ProposalsAccepted ProposalTab = "accepted"
	ProposalsDeclined ProposalTab = "declined"
	ProposalsExpired  ProposalTab = "expired"
)

var proposalStatus = map[ProposalTab]entities.OfferStatus{
	ProposalsSent:     entities.OfferStatusSent,
	ProposalsAccepted: entities.OfferStatusAccepted,
	ProposalsDeclined: entities.OfferStatusDeclined,
	ProposalsExpired:  entities.OfferStatusExpired,
}

func ParseProposalTab(s string) (ProposalTab, bool) {
	if s == "" || ProposalTab(s) == ProposalsAll {
		return ProposalsAll, true
	}
	if _, ok := proposalStatus[ProposalTab(s)]; ok {
		return ProposalTab(s), true
	}
	return "", false
}

// FilterProposals keeps the workshop's offers in tab, newest first. "all" is identity.
func FilterProposals(offers []entities.Offer, tab ProposalTab) []entities.Offer {
	out := make([]entities.Offer, 0, len(offers))
	want, filtered := proposalStatus[tab]
	for _, o := range offers {
		if filtered && o.Status != want {
			continue
		}
		out = append(out, o)
	}
	sortOffersNewestFirst(out)
	return out
}

type ContractTab string

const (
	ContractsCurrent   ContractTab = "current"
	ContractsCompleted ContractTab = "completed"
)

func ParseContractTab(s string) (ContractTab, bool) {
	switch ContractTab(s) {
	case "", ContractsCurrent:
		return ContractsCurrent, true
	case ContractsCompleted:
		return ContractsCompleted, true
	default:
		return "", false
	}
}

// IsCompletedContract reports whether an accepted offer's work is finished: its
// booking is DONE or its parent request is COMPLETED.
func IsCompletedContract(o entities.Offer) bool {
	if o.Booking != nil && o.Booking.Status == entities.BookingStatusDone {
		return true
	}
	return o.Request != nil && o.Request.Status == entities.RequestStatusCompleted
}

// ContractTabOf returns the contract tab of an offer; ok is false unless the offer is ACCEPTED.
func ContractTabOf(o entities.Offer) (ContractTab, bool) {
	if o.Status != entities.OfferStatusAccepted {
		return "", false
	}
	if IsCompletedContract(o) {
		return ContractsCompleted, true
	}
	return ContractsCurrent, true
}

// FilterContracts keeps ACCEPTED offers in tab, newest first.
func FilterContracts(offers []entities.Offer, tab ContractTab) []entities.Offer {
	out := make([]entities.Offer, 0, len(offers))
	for _, o := range offers {
		if got, ok := ContractTabOf(o); ok && got == tab {
			out = append(out, o)
		}
	}
	sortOffersNewestFirst(out)
	return out
}

// OfferAction is the call-to-action shown next to an available request.
type OfferAction string

const (
	ActionApply OfferAction = "apply"
	ActionEdit  OfferAction = "edit"
)

// AvailableRequest is a request a workshop may bid on, with the workshop's own offer if any.
type AvailableRequest struct {
	Request  entities.Request
	OwnOffer *entities.Offer
	Action   OfferAction
}

// OwnOffer finds the offer a workshop already sent on a request.
func OwnOffer(r entities.Request, workshopID string) *entities.Offer {
	for i := range r.Offers {
		if r.Offers[i].WorkshopID == workshopID {
			o := r.Offers[i]
			return &o
		}
	}
	return nil
}

// AvailableWork turns the radius-query result into the workshop "requests" view.
// Distance filtering already happened in the backend; only requests still open for
// bidding and not expired at now are kept.
func AvailableWork(reqs []entities.Request, workshopID string, now time.Time) []AvailableRequest {
	out := make([]AvailableRequest, 0, len(reqs))
	for _, r := range reqs {
		if !r.Status.IsOpenForBidding() || r.IsExpired(now) {
			continue
		}
		ar := AvailableRequest{Request: r, Action: ActionApply}
		if own := OwnOffer(r, workshopID); own != nil {
			ar.OwnOffer = own
			ar.Action = ActionEdit
		}
		out = append(out, ar)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Request.CreatedAt.After(out[j].Request.CreatedAt)
	})
	return out
}

func sortOffersNewestFirst(offers []entities.Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].CreatedAt.After(offers[j].CreatedAt)
	})
}
