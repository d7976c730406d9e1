package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"verkstad_portal/internal/domain/entities"
)

type recordingGenerator struct {
	calls []entities.Session
	month int
	year  int
	err   error
}

func (g *recordingGenerator) GeneratePayouts(_ context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error) {
	g.calls = append(g.calls, sess)
	g.month, g.year = month, year
	if g.err != nil {
		return nil, g.err
	}
	return []entities.PayoutReport{{ID: "po-1"}}, nil
}

func TestPreviousMonth(t *testing.T) {
	cases := []struct {
		now   time.Time
		month int
		year  int
	}{
		{time.Date(2030, 3, 1, 3, 0, 0, 0, time.UTC), 2, 2030},
		{time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC), 12, 2029},
		{time.Date(2030, 3, 31, 23, 59, 0, 0, time.UTC), 2, 2030},
	}
	for _, tc := range cases {
		m, y := previousMonth(tc.now)
		if m != tc.month || y != tc.year {
			t.Fatalf("previousMonth(%s) = %d/%d, want %d/%d", tc.now, m, y, tc.month, tc.year)
		}
	}
}

func TestNewPayoutJob_RequiresToken(t *testing.T) {
	if _, err := NewPayoutJob(&recordingGenerator{}, "0 0 3 1 * *", "", time.Minute); !errors.Is(err, ErrMissingServiceToken) {
		t.Fatalf("expected ErrMissingServiceToken, got %v", err)
	}
}

func TestPayoutJob_RunOnce(t *testing.T) {
	t.Run("uses an admin service session for the previous month", func(t *testing.T) {
		gen := &recordingGenerator{}
		job, err := NewPayoutJob(gen, "0 0 3 1 * *", "svc-token", time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		job.now = func() time.Time { return time.Date(2030, 1, 1, 3, 0, 0, 0, time.UTC) }

		if err := job.RunOnce(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(gen.calls) != 1 {
			t.Fatalf("expected one call, got %d", len(gen.calls))
		}
		sess := gen.calls[0]
		if sess.Role != entities.RoleAdmin || sess.Token != "svc-token" {
			t.Fatalf("unexpected session %+v", sess)
		}
		if gen.month != 12 || gen.year != 2029 {
			t.Fatalf("expected 12/2029, got %d/%d", gen.month, gen.year)
		}
	})

	t.Run("propagates generation errors", func(t *testing.T) {
		gen := &recordingGenerator{err: errors.New("backend down")}
		job, _ := NewPayoutJob(gen, "0 0 3 1 * *", "svc-token", time.Minute)
		if err := job.RunOnce(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPayoutJob_StartRejectsBadSchedule(t *testing.T) {
	job, _ := NewPayoutJob(&recordingGenerator{}, "not a schedule", "svc-token", time.Minute)
	if err := job.Start(); err == nil {
		job.Stop()
		t.Fatalf("expected schedule error")
	}
}

func TestPayoutJob_StartStop(t *testing.T) {
	job, _ := NewPayoutJob(&recordingGenerator{}, "0 0 3 1 * *", "svc-token", time.Minute)
	if err := job.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	job.Stop()
}
