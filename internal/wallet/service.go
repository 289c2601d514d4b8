package wallet

import (
	"context"
	"sync/atomic"
	"walletfx/internal/adapters"
	"walletfx/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	aggregator *Aggregator
	cache      adapters.ActivationCache
	current    atomic.Pointer[Activation]
	// activations outlive the request that started them and end with the service
	lifetime context.Context
}

// Activate starts a new activation, makes it current and returns its ID.
func (s *Service) Activate() uuid.UUID {
	act := s.aggregator.Activate(s.lifetime)
	s.current.Store(act)
	if s.cache != nil {
		s.cache.Set(act.ID(), act)
	}
	return act.ID()
}

// Current is the view of the latest activation, or a loading view when none was started.
func (s *Service) Current() domain.ViewModel {
	if act := s.current.Load(); act != nil {
		return act.View()
	}
	return domain.LoadingView(uuid.Nil)
}

func (s *Service) GetByActivationID(_ context.Context, id uuid.UUID) (domain.ViewModel, error) {
	src, err := s.lookup(id)
	if err != nil {
		return domain.ViewModel{}, err
	}
	return src.View(), nil
}

// Wait blocks until the activation settles or ctx ends.
func (s *Service) Wait(ctx context.Context, id uuid.UUID) (domain.ViewModel, error) {
	src, err := s.lookup(id)
	if err != nil {
		return domain.ViewModel{}, err
	}
	return waitFor(ctx, src)
}

func (s *Service) SupportedCodes() []string {
	return s.aggregator.Filter().SupportedCodes()
}

func (s *Service) lookup(id uuid.UUID) (domain.ViewSource, error) {
	if act := s.current.Load(); act != nil && act.ID() == id {
		return act, nil
	}
	if s.cache != nil {
		if src, ok := s.cache.Get(id); ok {
			return src, nil
		}
	}
	return nil, domain.ErrActivationNotFound
}

func NewService(lifetime context.Context, aggregator *Aggregator, cache adapters.ActivationCache) *Service {
	return &Service{aggregator: aggregator, cache: cache, lifetime: lifetime}
}
