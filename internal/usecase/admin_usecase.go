package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/infrastructure/metrics"
	"verkstad_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidWorkshopID = errors.New("invalid workshop id")
	ErrInvalidPayoutID   = errors.New("invalid payout id")
	ErrInvalidPeriod     = errors.New("invalid payout period")
)

// IAdminUseCase exposes the back-office moderation operations.
//
// Verification and activity are independent flags: each setter only sends its own flag.
type IAdminUseCase interface {
	ListWorkshops(ctx context.Context, sess entities.Session) ([]entities.Workshop, error)
	SetWorkshopVerification(ctx context.Context, sess entities.Session, workshopID string, isVerified bool) (entities.Workshop, error)
	SetWorkshopActive(ctx context.Context, sess entities.Session, workshopID string, isActive bool) (entities.Workshop, error)
	ListPayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error)
	GeneratePayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error)
	MarkPayoutPaid(ctx context.Context, sess entities.Session, payoutID string) (entities.PayoutReport, error)
}

type AdminUseCase struct {
	gateway interfaces.IMarketplaceGateway
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(gateway interfaces.IMarketplaceGateway, m *metrics.Metrics) *AdminUseCase {
	return &AdminUseCase{gateway: gateway, metrics: m, now: time.Now}
}

func (u *AdminUseCase) ListWorkshops(ctx context.Context, sess entities.Session) ([]entities.Workshop, error) {
	if err := requireRole(sess, entities.RoleAdmin); err != nil {
		return nil, err
	}
	return u.gateway.ListWorkshops(ctx, sess)
}

func (u *AdminUseCase) SetWorkshopVerification(ctx context.Context, sess entities.Session, workshopID string, isVerified bool) (entities.Workshop, error) {
	return u.updateFlags(ctx, sess, "set_workshop_verification", entities.WorkshopFlagsPatch{ID: workshopID, IsVerified: &isVerified})
}

func (u *AdminUseCase) SetWorkshopActive(ctx context.Context, sess entities.Session, workshopID string, isActive bool) (entities.Workshop, error) {
	return u.updateFlags(ctx, sess, "set_workshop_active", entities.WorkshopFlagsPatch{ID: workshopID, IsActive: &isActive})
}

func (u *AdminUseCase) updateFlags(ctx context.Context, sess entities.Session, op string, patch entities.WorkshopFlagsPatch) (w entities.Workshop, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation(op, start, err) }(time.Now())

	if err := requireRole(sess, entities.RoleAdmin); err != nil {
		return entities.Workshop{}, err
	}
	patch.ID = strings.TrimSpace(patch.ID)
	if patch.ID == "" {
		return entities.Workshop{}, ErrInvalidWorkshopID
	}

	w, err = u.gateway.UpdateWorkshopFlags(ctx, sess, patch)
	if err != nil {
		log.Printf("[admin][usecase] %s failed workshop_id=%s err=%v", op, patch.ID, err)
		return entities.Workshop{}, err
	}
	log.Printf("[admin][usecase] %s success workshop_id=%s is_verified=%t is_active=%t", op, w.ID, w.IsVerified, w.IsActive)
	return w, nil
}

func (u *AdminUseCase) ListPayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error) {
	if err := requireRole(sess, entities.RoleAdmin); err != nil {
		return nil, err
	}
	if err := u.validatePeriod(month, year); err != nil {
		return nil, err
	}
	return u.gateway.ListPayouts(ctx, sess, month, year)
}

// GeneratePayouts asks the backend to aggregate the DONE bookings of a finished or
// running month. The backend keeps one report per (workshop, month, year), so running
// it twice does not double-count.
func (u *AdminUseCase) GeneratePayouts(ctx context.Context, sess entities.Session, month, year int) (reports []entities.PayoutReport, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("generate_payouts", start, err) }(time.Now())

	if err := requireRole(sess, entities.RoleAdmin); err != nil {
		return nil, err
	}
	if err := u.validatePeriod(month, year); err != nil {
		return nil, err
	}

	reports, err = u.gateway.GeneratePayouts(ctx, sess, month, year)
	if err != nil {
		log.Printf("[admin][usecase] generate payouts failed month=%d year=%d err=%v", month, year, err)
		return nil, err
	}
	log.Printf("[admin][usecase] generate payouts success month=%d year=%d reports=%d", month, year, len(reports))
	return reports, nil
}

func (u *AdminUseCase) MarkPayoutPaid(ctx context.Context, sess entities.Session, payoutID string) (p entities.PayoutReport, err error) {
	defer func(start time.Time) { u.metrics.ObserveOperation("mark_payout_paid", start, err) }(time.Now())

	if err := requireRole(sess, entities.RoleAdmin); err != nil {
		return entities.PayoutReport{}, err
	}
	payoutID = strings.TrimSpace(payoutID)
	if payoutID == "" {
		return entities.PayoutReport{}, ErrInvalidPayoutID
	}

	p, err = u.gateway.MarkPayoutPaid(ctx, sess, payoutID)
	if err != nil {
		log.Printf("[admin][usecase] mark paid failed payout_id=%s err=%v", payoutID, err)
		return entities.PayoutReport{}, err
	}
	log.Printf("[admin][usecase] mark paid success payout_id=%s workshop_id=%s", p.ID, p.WorkshopID)
	return p, nil
}

// validatePeriod accepts months from 2000 up to the current month.
func (u *AdminUseCase) validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 2000 {
		return ErrInvalidPeriod
	}
	now := u.now().UTC()
	if year > now.Year() || (year == now.Year() && month > int(now.Month())) {
		return ErrInvalidPeriod
	}
	return nil
}
