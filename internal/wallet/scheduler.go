package wallet

import (
	"context"
	"sync"
	"time"
	"walletfx/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type activationStarter interface {
	Activate() uuid.UUID
	Wait(ctx context.Context, id uuid.UUID) (domain.ViewModel, error)
}

// Scheduler starts a fresh activation every interval. A zero interval disables it,
// leaving the single startup activation as the only fetch. A run lasts until its
// activation settles, so fetches never overlap.
type Scheduler struct {
	service  activationStarter
	interval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		logrus.Info("Wallet refresh disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		activationID := s.service.Activate()
		fields := logrus.Fields{"exec_id": execID, "activation_id": activationID}
		logrus.WithFields(fields).Debug("Wallet refresh started")

		if _, waitErr := s.service.Wait(jobCtx, activationID); waitErr != nil {
			logrus.WithError(waitErr).WithFields(fields).Warn("Wallet refresh stopped waiting for activation")
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(service activationStarter, interval time.Duration) *Scheduler {
	return &Scheduler{service: service, interval: interval}
}
