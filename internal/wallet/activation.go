package wallet

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"walletfx/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Activation is a single-shot fetch. The view is written once by the fetching
// goroutine and may be read concurrently by any number of readers.
type Activation struct {
	id     uuid.UUID
	view   atomic.Pointer[domain.ViewModel]
	done   chan struct{}
	cancel context.CancelFunc
	once   sync.Once
}

// Activate starts one fetch in the background and returns immediately.
// The fetch is bounded by the aggregator's activation timeout and by ctx.
func (a *Aggregator) Activate(ctx context.Context) *Activation {
	ctx, cancel := context.WithTimeout(ctx, a.activationTimeout)
	act := &Activation{
		id:     uuid.New(),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	a.metrics.ObserveActivation()

	go act.run(ctx, a)
	return act
}

func (act *Activation) run(ctx context.Context, agg *Aggregator) {
	defer act.cancel()

	vm, err := agg.Aggregate(ctx)
	vm.ActivationID = act.id

	fields := logrus.Fields{"activation_id": act.id}
	if err != nil {
		logrus.WithError(err).WithFields(fields).Error("Wallet activation failed")
	} else {
		fields["currencies"] = len(vm.Currencies)
		fields["total_balance"] = vm.FormattedBalance()
		logrus.WithFields(fields).Info("Wallet activation settled")
	}
	act.publish(vm)
}

func (act *Activation) publish(vm domain.ViewModel) {
	act.once.Do(func() {
		act.view.Store(&vm)
		close(act.done)
	})
}

func (act *Activation) ID() uuid.UUID { return act.id }

// View returns a loading view until the fetch settles, then the settled view.
func (act *Activation) View() domain.ViewModel {
	p := act.view.Load()
	if p == nil {
		return domain.LoadingView(act.id)
	}
	vm := *p
	vm.Currencies = slices.Clone(p.Currencies)
	return vm
}

func (act *Activation) Done() <-chan struct{} { return act.done }

// Cancel aborts the in-flight request; the activation still settles, with a network error.
func (act *Activation) Cancel() { act.cancel() }

// Wait blocks until the activation settles or ctx ends.
func (act *Activation) Wait(ctx context.Context) (domain.ViewModel, error) {
	return waitFor(ctx, act)
}

func waitFor(ctx context.Context, src domain.ViewSource) (domain.ViewModel, error) {
	select {
	case <-src.Done():
		return src.View(), nil
	case <-ctx.Done():
		return src.View(), ctx.Err()
	}
}
