package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase/interfaces"
	mock_interfaces "verkstad_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedAdminUseCase(gw interfaces.IMarketplaceGateway) *AdminUseCase {
	uc := NewAdminUseCase(gw, nil)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestAdminUseCase_WorkshopFlags(t *testing.T) {
	t.Run("verification sends only its own flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIMarketplaceGateway(ctrl)
		uc := fixedAdminUseCase(gw)

		gw.EXPECT().UpdateWorkshopFlags(gomock.Any(), adminSess, gomock.AssignableToTypeOf(entities.WorkshopFlagsPatch{})).DoAndReturn(
			func(_ context.Context, _ entities.Session, p entities.WorkshopFlagsPatch) (entities.Workshop, error) {
				if p.ID != "ws-1" || p.IsVerified == nil || !*p.IsVerified || p.IsActive != nil {
					t.Fatalf("unexpected patch %+v", p)
				}
				return entities.Workshop{ID: "ws-1", IsVerified: true, IsActive: true}, nil
			},
		)

		if _, err := uc.SetWorkshopVerification(context.Background(), adminSess, " ws-1 ", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("active sends only its own flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIMarketplaceGateway(ctrl)
		uc := fixedAdminUseCase(gw)

		gw.EXPECT().UpdateWorkshopFlags(gomock.Any(), adminSess, gomock.AssignableToTypeOf(entities.WorkshopFlagsPatch{})).DoAndReturn(
			func(_ context.Context, _ entities.Session, p entities.WorkshopFlagsPatch) (entities.Workshop, error) {
				if p.IsActive == nil || *p.IsActive || p.IsVerified != nil {
					t.Fatalf("unexpected patch %+v", p)
				}
				return entities.Workshop{ID: "ws-1", IsVerified: true, IsActive: false}, nil
			},
		)

		w, err := uc.SetWorkshopActive(context.Background(), adminSess, "ws-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.IsActive || !w.IsVerified {
			t.Fatalf("unexpected workshop %+v", w)
		}
	})

	t.Run("missing workshop id", func(t *testing.T) {
		uc := fixedAdminUseCase(nil)
		if _, err := uc.SetWorkshopActive(context.Background(), adminSess, "", true); !errors.Is(err, ErrInvalidWorkshopID) {
			t.Fatalf("expected ErrInvalidWorkshopID, got %v", err)
		}
	})

	t.Run("non admin", func(t *testing.T) {
		uc := fixedAdminUseCase(nil)
		if _, err := uc.SetWorkshopVerification(context.Background(), workshopSess, "ws-1", true); !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})
}

func TestAdminUseCase_Payouts(t *testing.T) {
	periods := []struct {
		name        string
		month, year int
		ok          bool
	}{
		{"current month", 3, 2030, true},
		{"previous year", 12, 2029, true},
		{"month zero", 0, 2030, false},
		{"month thirteen", 13, 2030, false},
		{"future month", 4, 2030, false},
		{"before 2000", 6, 1999, false},
	}
	for _, tc := range periods {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gw := mock_interfaces.NewMockIMarketplaceGateway(ctrl)
			uc := fixedAdminUseCase(gw)

			if tc.ok {
				gw.EXPECT().GeneratePayouts(gomock.Any(), adminSess, tc.month, tc.year).Return([]entities.PayoutReport{{ID: "po-1"}}, nil)
			}
			_, err := uc.GeneratePayouts(context.Background(), adminSess, tc.month, tc.year)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidPeriod) {
				t.Fatalf("expected ErrInvalidPeriod, got %v", err)
			}
		})
	}

	t.Run("mark paid twice surfaces conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIMarketplaceGateway(ctrl)
		uc := fixedAdminUseCase(gw)

		gomock.InOrder(
			gw.EXPECT().MarkPayoutPaid(gomock.Any(), adminSess, "po-1").Return(entities.PayoutReport{ID: "po-1", IsPaid: true}, nil),
			gw.EXPECT().MarkPayoutPaid(gomock.Any(), adminSess, "po-1").Return(entities.PayoutReport{}, interfaces.ErrBackendConflict),
		)

		p, err := uc.MarkPayoutPaid(context.Background(), adminSess, "po-1")
		if err != nil || !p.IsPaid {
			t.Fatalf("expected paid payout, got %+v err=%v", p, err)
		}
		if _, err := uc.MarkPayoutPaid(context.Background(), adminSess, "po-1"); !errors.Is(err, interfaces.ErrBackendConflict) {
			t.Fatalf("expected ErrBackendConflict, got %v", err)
		}
	})

	t.Run("missing payout id", func(t *testing.T) {
		uc := fixedAdminUseCase(nil)
		if _, err := uc.MarkPayoutPaid(context.Background(), adminSess, " "); !errors.Is(err, ErrInvalidPayoutID) {
			t.Fatalf("expected ErrInvalidPayoutID, got %v", err)
		}
	})
}
