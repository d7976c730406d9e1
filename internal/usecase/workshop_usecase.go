package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"verkstad_portal/internal/domain/classifier"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/infrastructure/metrics"
	"verkstad_portal/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOfferPrice    = errors.New("invalid offer price")
	ErrInvalidOfferDuration = errors.New("invalid estimated duration")
	ErrNoAvailableDates     = errors.New("at least one available date is required")
	ErrAvailableDateInPast  = errors.New("available dates must be in the future")
	ErrInvalidRadius        = errors.New("invalid search radius")
	ErrOfferNotEditable     = errors.New("offer can no longer be edited")
	ErrContractNotAccepted  = errors.New("offer is not an accepted contract")
	ErrContractCompleted    = errors.New("contract is already completed")
)

// OfferSubmission is the outcome of SubmitOffer. Created is false when an existing
// offer of the workshop on the request was updated in place.
type OfferSubmission struct {
	Offer   entities.Offer
	Created bool
}

// IWorkshopUseCase exposes the workshop views (available requests, proposals,
// contracts) and the workshop-side offer operations.
type IWorkshopUseCase interface {
	AvailableRequests(ctx context.Context, sess entities.Session, q entities.AreaQuery) ([]classifier.AvailableRequest, error)
	Proposals(ctx context.Context, sess entities.Session, tab classifier.ProposalTab) ([]entities.Offer, error)
	Contracts(ctx context.Context, sess entities.Session, tab classifier.ContractTab) ([]entities.Offer, error)
	SubmitOffer(ctx context.Context, sess entities.Session, draft entities.OfferDraft) (OfferSubmission, error)
	CancelContract(ctx context.Context, sess entities.Session, offerID string) (entities.Offer, error)
}

type WorkshopUseCase struct {
	gateway interfaces.IMarketplaceGateway
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ IWorkshopUseCase = (*WorkshopUseCase)(nil)

func NewWorkshopUseCase(gateway interfaces.IMarketplaceGateway, m *metrics.Metrics) *WorkshopUseCase {
	return &WorkshopUseCase{gateway: gateway, metrics: m, now: time.Now}
}

func (u *WorkshopUseCase) AvailableRequests(ctx context.Context, sess entities.Session, q entities.AreaQuery) ([]classifier.AvailableRequest, error) {
	if err := requireRole(sess, entities.RoleWorkshop); err != nil {
		return nil, err
	}
	if q.Latitude < -90 || q.Latitude > 90 || q.Longitude < -180 || q.Longitude > 180 {
		return nil, ErrInvalidLocation
	}
	if q.RadiusKM <= 0 {
		return nil, ErrInvalidRadius
	}

	reqs, err := u.gateway.ListAvailableRequests(ctx, sess, q)
	if err != nil {
		log.Printf("[workshop][usecase] available requests failed workshop_id=%s err=%v", sess.ActorID, err)
		return nil, err
	}
	return classifier.AvailableWork(reqs, sess.ActorID, u.now()), nil
}

func (u *WorkshopUseCase) Proposals(ctx context.Context, sess entities.Session, tab classifier.ProposalTab) ([]entities.Offer, error) {
	offers, err := u.ownOffers(ctx, sess)
	if err != nil {
		return nil, err
	}
	return classifier.FilterProposals(offers, tab), nil
}

func (u *WorkshopUseCase) Contracts(ctx context.Context, sess entities.Session, tab classifier.ContractTab) ([]entities.Offer, error) {
	offers, err := u.ownOffers(ctx, sess)
	if err != nil {
		return nil, err
	}
	return classifier.FilterContracts(offers, tab), nil
}

// SubmitOffer creates the workshop's offer on a request, or updates it in place when
// the workshop already has one there. A workshop never ends up with two offers on
// the same request through this call.
func (u *WorkshopUseCase) SubmitOffer(ctx context.Context, sess entities.Session, draft entities.OfferDraft) (res OfferSubmission, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("submit_offer", start, err) }(time.Now())

	draft, err = u.validateDraft(draft)
	if err != nil {
		return OfferSubmission{}, err
	}
	offers, err := u.ownOffers(ctx, sess)
	if err != nil {
		return OfferSubmission{}, err
	}

	var existing *entities.Offer
	for i := range offers {
		if offers[i].RequestID == draft.RequestID {
			existing = &offers[i]
			break
		}
	}

	if existing == nil {
		created, err := u.gateway.CreateOffer(ctx, sess, draft)
		if err != nil {
			log.Printf("[offer][usecase] create failed request_id=%s workshop_id=%s err=%v", draft.RequestID, sess.ActorID, err)
			return OfferSubmission{}, err
		}
		log.Printf("[offer][usecase] created offer_id=%s request_id=%s price=%s", created.ID, draft.RequestID, draft.Price.StringFixed(2))
		return OfferSubmission{Offer: created, Created: true}, nil
	}

	if existing.Status != entities.OfferStatusSent {
		log.Printf("[offer][usecase] update rejected offer_id=%s status=%s", existing.ID, existing.Status)
		return OfferSubmission{}, ErrOfferNotEditable
	}
	updated, err := u.gateway.UpdateOffer(ctx, sess, existing.ID, entities.OfferPatch{Draft: &draft})
	if err != nil {
		log.Printf("[offer][usecase] update failed offer_id=%s err=%v", existing.ID, err)
		return OfferSubmission{}, err
	}
	log.Printf("[offer][usecase] updated offer_id=%s request_id=%s price=%s", updated.ID, draft.RequestID, draft.Price.StringFixed(2))
	return OfferSubmission{Offer: updated, Created: false}, nil
}

// CancelContract withdraws the workshop from an accepted, not yet completed contract.
// The offer becomes DECLINED; there is no way back.
func (u *WorkshopUseCase) CancelContract(ctx context.Context, sess entities.Session, offerID string) (offer entities.Offer, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("cancel_contract", start, err) }(time.Now())

	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}
	offers, err := u.ownOffers(ctx, sess)
	if err != nil {
		return entities.Offer{}, err
	}

	var current *entities.Offer
	for i := range offers {
		if offers[i].ID == offerID {
			current = &offers[i]
			break
		}
	}
	if current == nil {
		return entities.Offer{}, ErrOfferNotFound
	}
	tab, ok := classifier.ContractTabOf(*current)
	if !ok {
		return entities.Offer{}, ErrContractNotAccepted
	}
	if tab == classifier.ContractsCompleted {
		return entities.Offer{}, ErrContractCompleted
	}

	declined := entities.OfferStatusDeclined
	offer, err = u.gateway.UpdateOffer(ctx, sess, offerID, entities.OfferPatch{Status: &declined})
	if err != nil {
		log.Printf("[offer][usecase] cancel contract failed offer_id=%s err=%v", offerID, err)
		return entities.Offer{}, err
	}
	log.Printf("[offer][usecase] contract cancelled offer_id=%s workshop_id=%s", offerID, sess.ActorID)
	return offer, nil
}

func (u *WorkshopUseCase) ownOffers(ctx context.Context, sess entities.Session) ([]entities.Offer, error) {
	if err := requireRole(sess, entities.RoleWorkshop); err != nil {
		return nil, err
	}
	offers, err := u.gateway.ListWorkshopOffers(ctx, sess)
	if err != nil {
		log.Printf("[offer][usecase] list own offers failed workshop_id=%s err=%v", sess.ActorID, err)
		return nil, err
	}
	return offers, nil
}

func (u *WorkshopUseCase) validateDraft(d entities.OfferDraft) (entities.OfferDraft, error) {
	d.RequestID = strings.TrimSpace(d.RequestID)
	d.Warranty = strings.TrimSpace(d.Warranty)
	d.Note = strings.TrimSpace(d.Note)

	if d.RequestID == "" {
		return d, ErrInvalidRequestID
	}
	d.Price = d.Price.Round(2)
	if d.Price.LessThanOrEqual(decimal.Zero) {
		return d, ErrInvalidOfferPrice
	}
	if d.EstimatedDurationMinutes <= 0 {
		return d, ErrInvalidOfferDuration
	}
	if len(d.AvailableDates) == 0 {
		return d, ErrNoAvailableDates
	}

	now := u.now()
	seen := make(map[int64]bool, len(d.AvailableDates))
	dates := make([]time.Time, 0, len(d.AvailableDates))
	for _, at := range d.AvailableDates {
		if !at.After(now) {
			return d, ErrAvailableDateInPast
		}
		at = at.UTC()
		if seen[at.UnixNano()] {
			continue
		}
		seen[at.UnixNano()] = true
		dates = append(dates, at)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	d.AvailableDates = dates
	return d, nil
}
