package marketplace

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryGateway is an in-process marketplace backend used when MARKETPLACE_MOCK is set.
//
// It applies the server-side rules the portal relies on:
//   - creating a booking flips the offer to ACCEPTED and the request to BOOKED
//   - a second booking against an accepted request is a conflict
//   - a DONE booking cascades its request to COMPLETED
//   - payouts are aggregated once per workshop and period; paid rows are never recomputed
//   - moderation flags are patched independently
type MemoryGateway struct {
	mu             sync.Mutex
	commissionRate decimal.Decimal
	now            func() time.Time

	requests  map[string]*entities.Request
	offers    map[string]*entities.Offer
	bookings  map[string]*entities.Booking
	reviews   map[string]*entities.Review
	workshops map[string]*entities.Workshop
	payouts   map[string]*entities.PayoutReport
}

var _ interfaces.IMarketplaceGateway = (*MemoryGateway)(nil)

func NewMemoryGateway(commissionRate decimal.Decimal) *MemoryGateway {
	log.Printf("[marketplace][gateway] mock mode enabled commission_rate=%s", commissionRate.String())
	return &MemoryGateway{
		commissionRate: commissionRate,
		now:            func() time.Time { return time.Now().UTC() },
		requests:       map[string]*entities.Request{},
		offers:         map[string]*entities.Offer{},
		bookings:       map[string]*entities.Booking{},
		reviews:        map[string]*entities.Review{},
		workshops:      map[string]*entities.Workshop{},
		payouts:        map[string]*entities.PayoutReport{},
	}
}

// SeedWorkshop registers or replaces a workshop profile.
func (g *MemoryGateway) SeedWorkshop(w entities.Workshop) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cp := w
	g.workshops[w.ID] = &cp
}

func (g *MemoryGateway) ListCustomerRequests(ctx context.Context, sess entities.Session, customerID string) ([]entities.Request, error) {
	if err := authorize(sess, entities.RoleCustomer, entities.RoleAdmin); err != nil {
		return nil, err
	}
	if sess.Role == entities.RoleCustomer && sess.ActorID != customerID {
		return nil, fmt.Errorf("%w: requests of another customer", interfaces.ErrBackendForbidden)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]entities.Request, 0)
	for _, r := range g.requests {
		if r.CustomerID == customerID {
			out = append(out, g.requestView(r))
		}
	}
	sortRequests(out)
	return out, nil
}

func (g *MemoryGateway) ListAvailableRequests(ctx context.Context, sess entities.Session, q entities.AreaQuery) ([]entities.Request, error) {
	if err := authorize(sess, entities.RoleWorkshop); err != nil {
		return nil, err
	}
	if q.RadiusKM <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", interfaces.ErrBackendBadRequest)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]entities.Request, 0)
	for _, r := range g.requests {
		if !r.Status.IsOpenForBidding() {
			continue
		}
		if distanceKM(q.Latitude, q.Longitude, r.Latitude, r.Longitude) > q.RadiusKM {
			continue
		}
		out = append(out, g.requestView(r))
	}
	sortRequests(out)
	return out, nil
}

func (g *MemoryGateway) CreateRequest(ctx context.Context, sess entities.Session, in entities.NewRequest) (entities.Request, error) {
	if err := authorize(sess, entities.RoleCustomer); err != nil {
		return entities.Request{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	r := &entities.Request{
		ID:          uuid.NewString(),
		CustomerID:  sess.ActorID,
		VehicleID:   in.VehicleID,
		ReportID:    in.ReportID,
		Description: in.Description,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Address:     in.Address,
		City:        in.City,
		PostalCode:  in.PostalCode,
		Country:     in.Country,
		Status:      entities.RequestStatusNew,
		CreatedAt:   g.now(),
		ExpiresAt:   in.ExpiresAt.UTC(),
	}
	g.requests[r.ID] = r
	return g.requestView(r), nil
}

func (g *MemoryGateway) ListOffersForRequest(ctx context.Context, sess entities.Session, requestID string, sortBy entities.OfferSort) ([]entities.Offer, error) {
	if err := authorize(sess, entities.RoleCustomer, entities.RoleAdmin); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: request %s", interfaces.ErrBackendNotFound, requestID)
	}
	if sess.Role == entities.RoleCustomer && r.CustomerID != sess.ActorID {
		return nil, fmt.Errorf("%w: request %s", interfaces.ErrBackendForbidden, requestID)
	}

	out := make([]entities.Offer, 0)
	for _, o := range g.offers {
		if o.RequestID != requestID {
			continue
		}
		view := g.offerView(o)
		if view.Workshop != nil {
			d := distanceKM(r.Latitude, r.Longitude, view.Workshop.Latitude, view.Workshop.Longitude)
			view.DistanceKM = &d
		}
		out = append(out, view)
	}
	sortOffers(out, sortBy)
	return out, nil
}

func (g *MemoryGateway) ListWorkshopOffers(ctx context.Context, sess entities.Session) ([]entities.Offer, error) {
	if err := authorize(sess, entities.RoleWorkshop); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]entities.Offer, 0)
	for _, o := range g.offers {
		if o.WorkshopID != sess.ActorID {
			continue
		}
		view := g.offerView(o)
		if r, ok := g.requests[o.RequestID]; ok {
			parent := *r
			parent.Offers = nil
			parent.Bookings = nil
			view.Request = &parent
		}
		if b := g.bookingForOffer(o.ID); b != nil {
			cp := *b
			view.Booking = &cp
		}
		out = append(out, view)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (g *MemoryGateway) CreateOffer(ctx context.Context, sess entities.Session, in entities.OfferDraft) (entities.Offer, error) {
	if err := authorize(sess, entities.RoleWorkshop); err != nil {
		return entities.Offer{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.ensureWorkshop(sess)
	if !w.IsActive {
		return entities.Offer{}, fmt.Errorf("%w: workshop %s is blocked", interfaces.ErrBackendForbidden, w.ID)
	}
	r, ok := g.requests[in.RequestID]
	if !ok {
		return entities.Offer{}, fmt.Errorf("%w: request %s", interfaces.ErrBackendNotFound, in.RequestID)
	}
	if !r.Status.IsOpenForBidding() || r.IsExpired(g.now()) {
		return entities.Offer{}, fmt.Errorf("%w: request %s is not open for bidding", interfaces.ErrBackendConflict, r.ID)
	}
	for _, o := range g.offers {
		if o.RequestID == r.ID && o.WorkshopID == w.ID {
			return entities.Offer{}, fmt.Errorf("%w: offer %s already exists for request %s", interfaces.ErrBackendConflict, o.ID, r.ID)
		}
	}

	o := &entities.Offer{
		ID:         uuid.NewString(),
		WorkshopID: w.ID,
		RequestID:  r.ID,
		Status:     entities.OfferStatusSent,
		CreatedAt:  g.now(),
	}
	applyDraft(o, in)
	g.offers[o.ID] = o
	if r.Status == entities.RequestStatusNew {
		r.Status = entities.RequestStatusInBidding
	}
	return g.offerView(o), nil
}

func (g *MemoryGateway) UpdateOffer(ctx context.Context, sess entities.Session, offerID string, patch entities.OfferPatch) (entities.Offer, error) {
	if err := authorize(sess, entities.RoleWorkshop); err != nil {
		return entities.Offer{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	o, ok := g.offers[offerID]
	if !ok {
		return entities.Offer{}, fmt.Errorf("%w: offer %s", interfaces.ErrBackendNotFound, offerID)
	}
	if o.WorkshopID != sess.ActorID {
		return entities.Offer{}, fmt.Errorf("%w: offer %s", interfaces.ErrBackendForbidden, offerID)
	}
	if patch.Draft != nil {
		if o.Status != entities.OfferStatusSent {
			return entities.Offer{}, fmt.Errorf("%w: offer %s is %s", interfaces.ErrBackendConflict, offerID, o.Status)
		}
		applyDraft(o, *patch.Draft)
	}
	if patch.Status != nil {
		if *patch.Status == entities.OfferStatusDeclined && o.Status == entities.OfferStatusDeclined {
			return entities.Offer{}, fmt.Errorf("%w: offer %s already declined", interfaces.ErrBackendConflict, offerID)
		}
		if o.Status == entities.OfferStatusAccepted && *patch.Status == entities.OfferStatusDeclined {
			g.withdrawContract(o)
		}
		o.Status = *patch.Status
	}
	return g.offerView(o), nil
}

// withdrawContract cancels the open bookings of a contract the workshop backs out of
// and puts a BOOKED request back into bidding. Callers hold g.mu.
func (g *MemoryGateway) withdrawContract(o *entities.Offer) {
	now := g.now()
	for _, b := range g.bookings {
		if b.OfferID != o.ID || !b.Status.CanTransition(entities.BookingStatusCancelled) {
			continue
		}
		b.Status = entities.BookingStatusCancelled
		b.UpdatedAt = now
	}
	if r, ok := g.requests[o.RequestID]; ok && r.Status == entities.RequestStatusBooked {
		r.Status = entities.RequestStatusInBidding
	}
}

func (g *MemoryGateway) CreateBooking(ctx context.Context, sess entities.Session, in entities.NewBooking) (entities.Booking, error) {
	if err := authorize(sess, entities.RoleCustomer); err != nil {
		return entities.Booking{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	o, ok := g.offers[in.OfferID]
	if !ok {
		return entities.Booking{}, fmt.Errorf("%w: offer %s", interfaces.ErrBackendNotFound, in.OfferID)
	}
	r, ok := g.requests[o.RequestID]
	if !ok {
		return entities.Booking{}, fmt.Errorf("%w: request %s", interfaces.ErrBackendNotFound, o.RequestID)
	}
	if r.CustomerID != sess.ActorID {
		return entities.Booking{}, fmt.Errorf("%w: request %s", interfaces.ErrBackendForbidden, r.ID)
	}
	if o.Status != entities.OfferStatusSent {
		return entities.Booking{}, fmt.Errorf("%w: offer %s is %s", interfaces.ErrBackendConflict, o.ID, o.Status)
	}
	for _, other := range g.offers {
		if other.RequestID == r.ID && other.Status == entities.OfferStatusAccepted {
			return entities.Booking{}, fmt.Errorf("%w: request %s already has an accepted offer", interfaces.ErrBackendConflict, r.ID)
		}
	}
	if in.ScheduledAt.Before(g.now()) {
		return entities.Booking{}, fmt.Errorf("%w: scheduledAt is in the past", interfaces.ErrBackendBadRequest)
	}

	now := g.now()
	b := &entities.Booking{
		ID:               uuid.NewString(),
		OfferID:          o.ID,
		RequestID:        r.ID,
		CustomerID:       r.CustomerID,
		WorkshopID:       o.WorkshopID,
		ScheduledAt:      in.ScheduledAt.UTC(),
		TotalAmount:      o.Price,
		CommissionAmount: o.Price.Mul(g.commissionRate).Round(2),
		Status:           entities.BookingStatusConfirmed,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	g.bookings[b.ID] = b
	o.Status = entities.OfferStatusAccepted
	r.Status = entities.RequestStatusBooked
	return *b, nil
}

func (g *MemoryGateway) UpdateBooking(ctx context.Context, sess entities.Session, bookingID string, patch entities.BookingPatch) (entities.Booking, error) {
	if err := authorize(sess, entities.RoleCustomer, entities.RoleWorkshop, entities.RoleAdmin); err != nil {
		return entities.Booking{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	b, ok := g.bookings[bookingID]
	if !ok {
		return entities.Booking{}, fmt.Errorf("%w: booking %s", interfaces.ErrBackendNotFound, bookingID)
	}
	if (sess.Role == entities.RoleCustomer && b.CustomerID != sess.ActorID) ||
		(sess.Role == entities.RoleWorkshop && b.WorkshopID != sess.ActorID) {
		return entities.Booking{}, fmt.Errorf("%w: booking %s", interfaces.ErrBackendForbidden, bookingID)
	}
	if !b.Status.CanTransition(patch.Status) {
		return entities.Booking{}, fmt.Errorf("%w: booking %s cannot move from %s to %s", interfaces.ErrBackendConflict, bookingID, b.Status, patch.Status)
	}
	if patch.Status == entities.BookingStatusRescheduled {
		if patch.ScheduledAt == nil || patch.ScheduledAt.Before(g.now()) {
			return entities.Booking{}, fmt.Errorf("%w: reschedule needs a future scheduledAt", interfaces.ErrBackendBadRequest)
		}
		b.ScheduledAt = patch.ScheduledAt.UTC()
	}
	b.Status = patch.Status
	b.UpdatedAt = g.now()

	if b.Status == entities.BookingStatusDone {
		if r, ok := g.requests[b.RequestID]; ok {
			r.Status = entities.RequestStatusCompleted
		}
	}
	return *b, nil
}

func (g *MemoryGateway) CreateReview(ctx context.Context, sess entities.Session, in entities.Review) (entities.Review, error) {
	if err := authorize(sess, entities.RoleCustomer); err != nil {
		return entities.Review{}, err
	}
	if in.Rating < entities.MinReviewRating || in.Rating > entities.MaxReviewRating {
		return entities.Review{}, fmt.Errorf("%w: rating %d", interfaces.ErrBackendBadRequest, in.Rating)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	b, ok := g.bookings[in.BookingID]
	if !ok {
		return entities.Review{}, fmt.Errorf("%w: booking %s", interfaces.ErrBackendNotFound, in.BookingID)
	}
	if b.CustomerID != sess.ActorID {
		return entities.Review{}, fmt.Errorf("%w: booking %s", interfaces.ErrBackendForbidden, in.BookingID)
	}
	for _, existing := range g.reviews {
		if existing.BookingID == in.BookingID {
			return entities.Review{}, fmt.Errorf("%w: booking %s already reviewed", interfaces.ErrBackendConflict, in.BookingID)
		}
	}

	rv := in
	rv.ID = uuid.NewString()
	rv.WorkshopID = b.WorkshopID
	rv.CreatedAt = g.now()
	g.reviews[rv.ID] = &rv
	g.refreshRating(b.WorkshopID)
	return rv, nil
}

func (g *MemoryGateway) ListWorkshops(ctx context.Context, sess entities.Session) ([]entities.Workshop, error) {
	if err := authorize(sess, entities.RoleAdmin); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]entities.Workshop, 0, len(g.workshops))
	for _, w := range g.workshops {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

func (g *MemoryGateway) UpdateWorkshopFlags(ctx context.Context, sess entities.Session, patch entities.WorkshopFlagsPatch) (entities.Workshop, error) {
	if err := authorize(sess, entities.RoleAdmin); err != nil {
		return entities.Workshop{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	w, ok := g.workshops[patch.ID]
	if !ok {
		return entities.Workshop{}, fmt.Errorf("%w: workshop %s", interfaces.ErrBackendNotFound, patch.ID)
	}
	if patch.IsVerified != nil {
		w.IsVerified = *patch.IsVerified
	}
	if patch.IsActive != nil {
		w.IsActive = *patch.IsActive
	}
	return *w, nil
}

func (g *MemoryGateway) ListPayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error) {
	if err := authorize(sess, entities.RoleAdmin); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.payoutsFor(month, year), nil
}

func (g *MemoryGateway) GeneratePayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error) {
	if err := authorize(sess, entities.RoleAdmin); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", interfaces.ErrBackendBadRequest, month)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	type totals struct {
		jobs       int
		amount     decimal.Decimal
		commission decimal.Decimal
	}
	perWorkshop := map[string]*totals{}
	for _, b := range g.bookings {
		if b.Status != entities.BookingStatusDone {
			continue
		}
		at := b.ScheduledAt.UTC()
		if int(at.Month()) != month || at.Year() != year {
			continue
		}
		t, ok := perWorkshop[b.WorkshopID]
		if !ok {
			t = &totals{}
			perWorkshop[b.WorkshopID] = t
		}
		t.jobs++
		t.amount = t.amount.Add(b.TotalAmount)
		t.commission = t.commission.Add(b.CommissionAmount)
	}

	for workshopID, t := range perWorkshop {
		key := payoutKey(workshopID, month, year)
		p, ok := g.payouts[key]
		if !ok {
			p = &entities.PayoutReport{ID: uuid.NewString(), WorkshopID: workshopID, Month: month, Year: year}
			g.payouts[key] = p
		}
		if p.IsPaid {
			continue
		}
		p.TotalCompletedJobs = t.jobs
		p.TotalAmount = t.amount
		p.Commission = t.commission
		p.WorkshopAmount = t.amount.Sub(t.commission)
	}
	log.Printf("[payout][gateway] mock generated month=%d year=%d workshops=%d", month, year, len(perWorkshop))
	return g.payoutsFor(month, year), nil
}

func (g *MemoryGateway) MarkPayoutPaid(ctx context.Context, sess entities.Session, payoutID string) (entities.PayoutReport, error) {
	if err := authorize(sess, entities.RoleAdmin); err != nil {
		return entities.PayoutReport{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range g.payouts {
		if p.ID != payoutID {
			continue
		}
		if p.IsPaid {
			return entities.PayoutReport{}, fmt.Errorf("%w: payout %s already paid", interfaces.ErrBackendConflict, payoutID)
		}
		p.IsPaid = true
		return g.payoutView(p), nil
	}
	return entities.PayoutReport{}, fmt.Errorf("%w: payout %s", interfaces.ErrBackendNotFound, payoutID)
}

// Helpers below expect g.mu to be held.

func (g *MemoryGateway) requestView(r *entities.Request) entities.Request {
	out := *r
	out.Offers = nil
	out.Bookings = nil
	for _, o := range g.offers {
		if o.RequestID == r.ID {
			out.Offers = append(out.Offers, g.offerView(o))
		}
	}
	for _, b := range g.bookings {
		if b.RequestID == r.ID {
			out.Bookings = append(out.Bookings, *b)
		}
	}
	sort.SliceStable(out.Offers, func(i, j int) bool { return out.Offers[i].CreatedAt.Before(out.Offers[j].CreatedAt) })
	sort.SliceStable(out.Bookings, func(i, j int) bool { return out.Bookings[i].CreatedAt.Before(out.Bookings[j].CreatedAt) })
	return out
}

func (g *MemoryGateway) offerView(o *entities.Offer) entities.Offer {
	out := *o
	out.AvailableDates = append([]time.Time(nil), o.AvailableDates...)
	if w, ok := g.workshops[o.WorkshopID]; ok {
		cp := *w
		out.Workshop = &cp
	}
	return out
}

func (g *MemoryGateway) payoutView(p *entities.PayoutReport) entities.PayoutReport {
	out := *p
	if w, ok := g.workshops[p.WorkshopID]; ok {
		cp := *w
		out.Workshop = &cp
	}
	return out
}

func (g *MemoryGateway) payoutsFor(month, year int) []entities.PayoutReport {
	out := make([]entities.PayoutReport, 0)
	for _, p := range g.payouts {
		if p.Month == month && p.Year == year {
			out = append(out, g.payoutView(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WorkshopID < out[j].WorkshopID })
	return out
}

func (g *MemoryGateway) bookingForOffer(offerID string) *entities.Booking {
	var latest *entities.Booking
	for _, b := range g.bookings {
		if b.OfferID == offerID && (latest == nil || b.CreatedAt.After(latest.CreatedAt)) {
			latest = b
		}
	}
	return latest
}

// ensureWorkshop registers an unknown workshop actor the first time it bids.
func (g *MemoryGateway) ensureWorkshop(sess entities.Session) *entities.Workshop {
	if w, ok := g.workshops[sess.ActorID]; ok {
		return w
	}
	w := &entities.Workshop{ID: sess.ActorID, DisplayName: sess.DisplayName, IsActive: true}
	g.workshops[w.ID] = w
	return w
}

func (g *MemoryGateway) refreshRating(workshopID string) {
	w, ok := g.workshops[workshopID]
	if !ok {
		return
	}
	sum, n := 0, 0
	for _, rv := range g.reviews {
		if rv.WorkshopID == workshopID {
			sum += rv.Rating
			n++
		}
	}
	if n == 0 {
		w.Rating = nil
		return
	}
	avg := float64(sum) / float64(n)
	w.Rating = &avg
}

func applyDraft(o *entities.Offer, d entities.OfferDraft) {
	o.Price = d.Price
	o.EstimatedDurationMinutes = d.EstimatedDurationMinutes
	o.Warranty = d.Warranty
	o.Note = d.Note
	o.AvailableDates = append([]time.Time(nil), d.AvailableDates...)
}

func authorize(sess entities.Session, roles ...entities.Role) error {
	if sess.Token == "" {
		return fmt.Errorf("%w: missing bearer token", interfaces.ErrBackendUnauthorized)
	}
	for _, r := range roles {
		if sess.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s", interfaces.ErrBackendForbidden, sess.Role)
}

func payoutKey(workshopID string, month, year int) string {
	return fmt.Sprintf("%s/%04d-%02d", workshopID, year, month)
}

func sortRequests(rs []entities.Request) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].CreatedAt.After(rs[j].CreatedAt) })
}

func sortOffers(offers []entities.Offer, by entities.OfferSort) {
	switch by {
	case entities.OfferSortRating:
		sort.SliceStable(offers, func(i, j int) bool { return ratingOf(offers[i]) > ratingOf(offers[j]) })
	case entities.OfferSortDistance:
		sort.SliceStable(offers, func(i, j int) bool { return distanceOf(offers[i]) < distanceOf(offers[j]) })
	default:
		sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price.LessThan(offers[j].Price) })
	}
}

func ratingOf(o entities.Offer) float64 {
	if o.Workshop == nil || o.Workshop.Rating == nil {
		return 0
	}
	return *o.Workshop.Rating
}

func distanceOf(o entities.Offer) float64 {
	if o.DistanceKM == nil {
		return math.MaxFloat64
	}
	return *o.DistanceKM
}

const earthRadiusKM = 6371.0

// distanceKM is the haversine great-circle distance.
func distanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}
