package wallet

import (
	"context"
	"errors"
	"math"
	"time"
	"walletfx/internal/adapters"
	"walletfx/internal/domain"
	"walletfx/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

const defaultActivationTimeout = 15 * time.Second

// BidPolicy decides what a non-numeric bid does to an aggregate.
type BidPolicy int

const (
	// BidPolicyFaithful lets a bad bid turn the total into NaN while the fetch still succeeds.
	BidPolicyFaithful BidPolicy = iota
	// BidPolicyStrict fails the fetch with a parse error.
	BidPolicyStrict
)

type Aggregator struct {
	client            adapters.RateClient
	filter            *CodeFilter
	policy            BidPolicy
	activationTimeout time.Duration
	metrics           *metrics.WalletMetrics
	now               func() time.Time
}

// Aggregate fetches the provider table once, keeps the wallet currencies and sums
// their bids. The returned view is always settled; on failure it carries the
// same *domain.FetchError that is returned as err.
func (a *Aggregator) Aggregate(ctx context.Context) (domain.ViewModel, error) {
	started := a.now()

	records, err := a.client.GetAllRates(ctx)
	if err != nil {
		return a.fail(started, toFetchError(err))
	}

	currencies := filterRecords(records, a.filter)

	total, err := sumBids(currencies, a.policy)
	if err != nil {
		return a.fail(started, domain.NewFetchError(domain.KindParse, err))
	}

	a.metrics.ObserveSuccess(started, len(currencies), total)
	return domain.ViewModel{
		Loading:      false,
		Currencies:   currencies,
		TotalBalance: total,
		SettledAt:    a.now(),
	}, nil
}

func (a *Aggregator) fail(started time.Time, fe *domain.FetchError) (domain.ViewModel, error) {
	a.metrics.ObserveFailure(started, string(fe.Kind))
	return domain.ViewModel{
		Loading:    false,
		Currencies: []domain.RateRecord{},
		Error:      fe,
		SettledAt:  a.now(),
	}, fe
}

func (a *Aggregator) Filter() *CodeFilter { return a.filter }

func filterRecords(records []domain.RateRecord, filter *CodeFilter) []domain.RateRecord {
	kept := make([]domain.RateRecord, 0, len(WalletCodes))
	for _, r := range records {
		if filter.Allows(r.Code) {
			kept = append(kept, r)
		}
	}
	return kept
}

// sumBids accumulates in provider order. Quote currencies are not reconciled:
// a USD/BRL bid and a JPY/BRL bid are added as plain numbers.
func sumBids(currencies []domain.RateRecord, policy BidPolicy) (float64, error) {
	total := 0.0
	for _, r := range currencies {
		v, err := r.BidValue()
		if err != nil {
			if policy == BidPolicyStrict {
				return 0, err
			}
			logrus.WithError(err).WithFields(logrus.Fields{"pair": r.Pair()}).
				Warn("Non-numeric bid, total balance becomes NaN")
			v = math.NaN()
		}
		total += v
	}
	return total, nil
}

func toFetchError(err error) *domain.FetchError {
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return domain.NewFetchError(domain.KindNetwork, err)
}

type AggregatorOption func(*Aggregator)

func WithBidPolicy(p BidPolicy) AggregatorOption {
	return func(a *Aggregator) { a.policy = p }
}

func WithActivationTimeout(d time.Duration) AggregatorOption {
	return func(a *Aggregator) {
		if d > 0 {
			a.activationTimeout = d
		}
	}
}

func WithMetrics(m *metrics.WalletMetrics) AggregatorOption {
	return func(a *Aggregator) { a.metrics = m }
}

func NewAggregator(client adapters.RateClient, filter *CodeFilter, opts ...AggregatorOption) *Aggregator {
	if filter == nil {
		filter = NewWalletFilter()
	}
	a := &Aggregator{
		client:            client,
		filter:            filter,
		policy:            BidPolicyFaithful,
		activationTimeout: defaultActivationTimeout,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
