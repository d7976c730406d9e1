package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"verkstad_portal/internal/domain/entities"

	"github.com/robfig/cron/v3"
)

var ErrMissingServiceToken = errors.New("payout job requires a service token")

// PayoutGenerator is satisfied by usecase.IAdminUseCase.
type PayoutGenerator interface {
	GeneratePayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error)
}

// PayoutJob generates the payout reports of the previous month on a cron schedule.
type PayoutJob struct {
	cron      *cron.Cron
	generator PayoutGenerator
	session   entities.Session
	schedule  string
	timeout   time.Duration
	now       func() time.Time

	mu    sync.Mutex
	jobID cron.EntryID
}

// NewPayoutJob builds the job. schedule is a six-field cron spec (seconds first).
func NewPayoutJob(generator PayoutGenerator, schedule, serviceToken string, timeout time.Duration) (*PayoutJob, error) {
	if serviceToken == "" {
		return nil, ErrMissingServiceToken
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &PayoutJob{
		cron:      cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		generator: generator,
		session: entities.Session{
			ID:          "payout-job",
			Token:       serviceToken,
			Role:        entities.RoleAdmin,
			ActorID:     "payout-job",
			DisplayName: "Payout scheduler",
		},
		schedule: schedule,
		timeout:  timeout,
		now:      time.Now,
	}, nil
}

func (j *PayoutJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	id, err := j.cron.AddFunc(j.schedule, func() { _ = j.RunOnce(context.Background()) })
	if err != nil {
		return fmt.Errorf("error scheduling payout job: %w", err)
	}
	j.jobID = id
	j.cron.Start()
	log.Printf("[payout][scheduler] started schedule=%q", j.schedule)
	return nil
}

// Stop waits for a running generation to finish.
func (j *PayoutJob) Stop() {
	<-j.cron.Stop().Done()
	log.Printf("[payout][scheduler] stopped")
}

// RunOnce generates the reports for the month before now.
func (j *PayoutJob) RunOnce(ctx context.Context) error {
	month, year := previousMonth(j.now())

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	reports, err := j.generator.GeneratePayouts(ctx, j.session, month, year)
	if err != nil {
		log.Printf("[payout][scheduler] run failed month=%d year=%d err=%v", month, year, err)
		return err
	}
	log.Printf("[payout][scheduler] run success month=%d year=%d reports=%d", month, year, len(reports))
	return nil
}

func previousMonth(now time.Time) (int, int) {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	return int(prev.Month()), prev.Year()
}
