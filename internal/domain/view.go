package domain

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ViewModel is the read-only structure handed to a rendering surface.
// It is never mutated after construction.
type ViewModel struct {
	ActivationID uuid.UUID
	Loading      bool
	Currencies   []RateRecord
	TotalBalance float64
	Error        *FetchError
	SettledAt    time.Time
}

func LoadingView(activationID uuid.UUID) ViewModel {
	return ViewModel{ActivationID: activationID, Loading: true, Currencies: []RateRecord{}}
}

func (v ViewModel) Failed() bool { return !v.Loading && v.Error != nil }

func (v ViewModel) BalanceIsNaN() bool { return math.IsNaN(v.TotalBalance) }

// FormattedBalance renders the total with two decimals, "NaN" when a bid poisoned the sum.
func (v ViewModel) FormattedBalance() string {
	return FormatAmount(v.TotalBalance)
}

func FormatAmount(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 0) {
		if f > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}
	// round the exact binary value, not its shortest decimal form: 1.005 is 1.00499... and prints 1.00
	exact, err := decimal.NewFromString(strconv.FormatFloat(f, 'f', 1074, 64))
	if err != nil {
		return decimal.NewFromFloat(f).StringFixed(2)
	}
	return exact.StringFixed(2)
}

// ViewSource is anything that can produce the current view model, such as an
// in-flight activation. Done is closed once the view stops changing.
type ViewSource interface {
	View() ViewModel
	Done() <-chan struct{}
}
