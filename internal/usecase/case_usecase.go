package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"verkstad_portal/internal/domain/classifier"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/infrastructure/metrics"
	"verkstad_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidRequestID   = errors.New("invalid request id")
	ErrInvalidVehicleID   = errors.New("invalid vehicle id")
	ErrInvalidReportID    = errors.New("invalid report id")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidLocation    = errors.New("invalid location")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidExpiry      = errors.New("invalid expiry")
	ErrInvalidOfferSort   = errors.New("invalid offer sort")
)

// CaseView is a request as shown in the customer "My Cases" view.
//
// Tabs lists every tab whose predicate holds; PrimaryTab is the first of them and is
// empty when the request belongs to no tab.
type CaseView struct {
	Request    entities.Request
	Tabs       []classifier.CustomerTab
	PrimaryTab classifier.CustomerTab
}

// ICaseUseCase exposes the customer read side plus request creation.
//
// Every call re-fetches the customer's requests; nothing is cached between calls.
type ICaseUseCase interface {
	ListCases(ctx context.Context, sess entities.Session, tab classifier.CustomerTab) ([]CaseView, error)
	Summary(ctx context.Context, sess entities.Session) (map[classifier.CustomerTab]int, error)
	CreateRequest(ctx context.Context, sess entities.Session, in entities.NewRequest) (entities.Request, error)
	ListOffers(ctx context.Context, sess entities.Session, requestID string, sortBy entities.OfferSort) ([]entities.Offer, error)
}

type CaseUseCase struct {
	gateway interfaces.IMarketplaceGateway
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

func NewCaseUseCase(gateway interfaces.IMarketplaceGateway, m *metrics.Metrics) *CaseUseCase {
	return &CaseUseCase{gateway: gateway, metrics: m, now: time.Now}
}

func (u *CaseUseCase) ListCases(ctx context.Context, sess entities.Session, tab classifier.CustomerTab) ([]CaseView, error) {
	if err := requireRole(sess, entities.RoleCustomer); err != nil {
		return nil, err
	}

	reqs, err := u.gateway.ListCustomerRequests(ctx, sess, sess.ActorID)
	if err != nil {
		log.Printf("[case][usecase] list requests failed customer_id=%s err=%v", sess.ActorID, err)
		return nil, err
	}

	filtered := classifier.FilterCustomerCases(reqs, tab)
	out := make([]CaseView, 0, len(filtered))
	for _, r := range filtered {
		primary, _ := classifier.PrimaryCustomerTab(r)
		out = append(out, CaseView{Request: r, Tabs: classifier.CustomerTabs(r), PrimaryTab: primary})
	}
	return out, nil
}

func (u *CaseUseCase) Summary(ctx context.Context, sess entities.Session) (map[classifier.CustomerTab]int, error) {
	if err := requireRole(sess, entities.RoleCustomer); err != nil {
		return nil, err
	}

	reqs, err := u.gateway.ListCustomerRequests(ctx, sess, sess.ActorID)
	if err != nil {
		log.Printf("[case][usecase] summary failed customer_id=%s err=%v", sess.ActorID, err)
		return nil, err
	}
	return classifier.CountCustomerTabs(reqs), nil
}

func (u *CaseUseCase) CreateRequest(ctx context.Context, sess entities.Session, in entities.NewRequest) (created entities.Request, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("create_request", start, err) }(time.Now())

	if err := requireRole(sess, entities.RoleCustomer); err != nil {
		return entities.Request{}, err
	}
	in, err = u.validateNewRequest(in)
	if err != nil {
		return entities.Request{}, err
	}

	created, err = u.gateway.CreateRequest(ctx, sess, in)
	if err != nil {
		log.Printf("[case][usecase] create request failed customer_id=%s vehicle_id=%s err=%v", sess.ActorID, in.VehicleID, err)
		return entities.Request{}, err
	}
	log.Printf("[case][usecase] request created request_id=%s customer_id=%s", created.ID, sess.ActorID)
	return created, nil
}

func (u *CaseUseCase) validateNewRequest(in entities.NewRequest) (entities.NewRequest, error) {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.ReportID = strings.TrimSpace(in.ReportID)
	in.Description = strings.TrimSpace(in.Description)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Country = strings.TrimSpace(in.Country)

	switch {
	case in.VehicleID == "":
		return in, ErrInvalidVehicleID
	case in.ReportID == "":
		return in, ErrInvalidReportID
	case in.Description == "":
		return in, ErrInvalidDescription
	case in.Latitude < -90 || in.Latitude > 90 || in.Longitude < -180 || in.Longitude > 180:
		return in, ErrInvalidLocation
	case in.Address == "" || in.City == "" || in.PostalCode == "" || in.Country == "":
		return in, ErrInvalidAddress
	case !in.ExpiresAt.After(u.now()):
		return in, ErrInvalidExpiry
	}
	in.ExpiresAt = in.ExpiresAt.UTC()
	return in, nil
}

func (u *CaseUseCase) ListOffers(ctx context.Context, sess entities.Session, requestID string, sortBy entities.OfferSort) ([]entities.Offer, error) {
	if err := requireRole(sess, entities.RoleCustomer); err != nil {
		return nil, err
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	sortBy, ok := entities.ParseOfferSort(string(sortBy))
	if !ok {
		return nil, ErrInvalidOfferSort
	}

	offers, err := u.gateway.ListOffersForRequest(ctx, sess, requestID, sortBy)
	if err != nil {
		log.Printf("[case][usecase] list offers failed request_id=%s err=%v", requestID, err)
		return nil, err
	}
	return offers, nil
}
