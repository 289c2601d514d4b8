package wallet

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"walletfx/internal/domain"
	"walletfx/internal/platform/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) GetAllRates(ctx context.Context) ([]domain.RateRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.RateRecord)
	return records, args.Error(1)
}

type MockActivationCache struct{ mock.Mock }

func (m *MockActivationCache) Get(id uuid.UUID) (domain.ViewSource, bool) {
	args := m.Called(id)
	src, _ := args.Get(0).(domain.ViewSource)
	return src, args.Bool(1)
}

func (m *MockActivationCache) Set(id uuid.UUID, source domain.ViewSource) {
	m.Called(id, source)
}

func rec(code, codein, bid string) domain.RateRecord {
	return domain.RateRecord{Code: code, CodeIn: codein, Name: code + "/" + codein, Bid: bid}
}

// --- Aggregate ---

func TestAggregate_SumsWalletCurrencies(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetAllRates", mock.Anything).Return([]domain.RateRecord{
		rec("USD", "BRL", "5.10"),
		rec("CAD", "BRL", "3.70"),
		rec("EUR", "BRL", "6.20"),
	}, nil).Once()

	vm, err := NewAggregator(client, nil).Aggregate(context.Background())

	require.NoError(t, err)
	require.False(t, vm.Loading)
	require.Nil(t, vm.Error)
	require.Len(t, vm.Currencies, 2)
	require.Equal(t, "USD", vm.Currencies[0].Code)
	require.Equal(t, "EUR", vm.Currencies[1].Code)
	require.InDelta(t, 11.30, vm.TotalBalance, 1e-9)
	require.Equal(t, "11.30", vm.FormattedBalance())
	client.AssertExpectations(t)
}

func TestAggregate_KeepsProviderOrder(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetAllRates", mock.Anything).Return([]domain.RateRecord{
		rec("JPY", "BRL", "0.035"),
		rec("GBP", "BRL", "7.00"),
		rec("BTC", "BRL", "300000"),
		rec("USD", "BRL", "5.00"),
		rec("EUR", "BRL", "6.00"),
	}, nil).Once()

	vm, err := NewAggregator(client, nil).Aggregate(context.Background())

	require.NoError(t, err)
	codes := make([]string, 0, len(vm.Currencies))
	for _, c := range vm.Currencies {
		codes = append(codes, c.Code)
	}
	require.Equal(t, []string{"JPY", "GBP", "USD", "EUR"}, codes)
	require.InDelta(t, 18.035, vm.TotalBalance, 1e-9)
}

func TestAggregate_NoWalletCurrencies(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetAllRates", mock.Anything).Return([]domain.RateRecord{
		rec("CAD", "BRL", "3.70"),
	}, nil).Once()

	vm, err := NewAggregator(client, nil).Aggregate(context.Background())

	require.NoError(t, err)
	require.False(t, vm.Loading)
	require.NotNil(t, vm.Currencies)
	require.Empty(t, vm.Currencies)
	require.Equal(t, 0.0, vm.TotalBalance)
	require.Equal(t, "0.00", vm.FormattedBalance())
}

func TestAggregate_EmptyTable(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetAllRates", mock.Anything).Return([]domain.RateRecord{}, nil).Once()

	vm, err := NewAggregator(client, nil).Aggregate(context.Background())

	require.NoError(t, err)
	require.Empty(t, vm.Currencies)
	require.Equal(t, 0.0, vm.TotalBalance)
}

func TestAggregate_NonNumericBid_Faithful(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetAllRates", mock.Anything).Return([]domain.RateRecord{
		rec("USD", "BRL", "N/A"),
		rec("EUR", "BRL", "6.20"),
	}, nil).Once()

	vm, err := NewAggregator(client, nil).Aggregate(context.Background())

	require.NoError(t, err)
	require.Nil(t, vm.Error)
	require.Len(t, vm.Currencies, 2)
	require.True(t, math.IsNaN(vm.TotalBalance))
	require.True(t, vm.BalanceIsNaN())
	require.Equal(t, "NaN", vm.FormattedBalance())
}

func TestAggregate_NonNumericBid_Strict(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetAllRates", mock.Anything).Return([]domain.RateRecord{
		rec("USD", "BRL", "N/A"),
	}, nil).Once()

	vm, err := NewAggregator(client, nil, WithBidPolicy(BidPolicyStrict)).Aggregate(context.Background())

	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInvalidBid)
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	require.Equal(t, domain.KindParse, kind)
	require.False(t, vm.Loading)
	require.Empty(t, vm.Currencies)
	require.NotNil(t, vm.Error)
	require.Equal(t, domain.KindParse, vm.Error.Kind)
}

func TestAggregate_ClientError_KeepsKind(t *testing.T) {
	client := new(MockRateClient)
	decodeErr := domain.NewFetchError(domain.KindDecode, errors.New("failed to decode response"))
	client.On("GetAllRates", mock.Anything).Return(nil, decodeErr).Once()

	vm, err := NewAggregator(client, nil).Aggregate(context.Background())

	require.Error(t, err)
	require.Same(t, decodeErr, vm.Error)
	require.Equal(t, domain.KindDecode, vm.Error.Kind)
	require.Empty(t, vm.Currencies)
	require.Equal(t, 0.0, vm.TotalBalance)
}

func TestAggregate_UnclassifiedError_IsNetwork(t *testing.T) {
	client := new(MockRateClient)
	client.On("GetAllRates", mock.Anything).Return(nil, errors.New("connection reset")).Once()

	vm, err := NewAggregator(client, nil).Aggregate(context.Background())

	require.Error(t, err)
	require.NotNil(t, vm.Error)
	require.Equal(t, domain.KindNetwork, vm.Error.Kind)
}

func TestAggregate_RecordsMetrics(t *testing.T) {
	m := metrics.NewWalletMetrics(nil)
	client := new(MockRateClient)
	client.On("GetAllRates", mock.Anything).Return([]domain.RateRecord{rec("USD", "BRL", "5.00")}, nil).Once()
	client.On("GetAllRates", mock.Anything).Return(nil, errors.New("boom")).Once()

	agg := NewAggregator(client, nil, WithMetrics(m))
	_, err := agg.Aggregate(context.Background())
	require.NoError(t, err)
	_, err = agg.Aggregate(context.Background())
	require.Error(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues(metrics.OutcomeSuccess, "")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues(metrics.OutcomeFailure, "network")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RetainedCurrencies))
	require.Equal(t, 5.0, testutil.ToFloat64(m.TotalBalance))
}

func TestWithActivationTimeout_IgnoresNonPositive(t *testing.T) {
	agg := NewAggregator(new(MockRateClient), nil, WithActivationTimeout(0))
	require.Equal(t, defaultActivationTimeout, agg.activationTimeout)

	agg = NewAggregator(new(MockRateClient), nil, WithActivationTimeout(3*time.Second))
	require.Equal(t, 3*time.Second, agg.activationTimeout)
}
