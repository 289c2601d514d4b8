package handler

import (
	"net/http"
	"walletfx/internal/domain"
)

type CurrencyResponse struct {
	Code   string `json:"code" example:"USD"`
	CodeIn string `json:"codein" example:"BRL"`
	Name   string `json:"name" example:"Dólar Americano/Real Brasileiro"`
	Bid    string `json:"bid" example:"5.1032"`
}

type FetchErrorResponse struct {
	Kind    string `json:"kind" example:"network"`
	Message string `json:"message" example:"network error: failed to execute request: context deadline exceeded"`
}

type WalletResponse struct {
	ActivationID string             `json:"activation_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Loading      bool               `json:"loading" example:"false"`
	Currencies   []CurrencyResponse `json:"currencies"`
	// null when a bid could not be parsed
	TotalBalance     *float64            `json:"total_balance" example:"11.3"`
	FormattedBalance string              `json:"formatted_balance" example:"11.30"`
	Error            *FetchErrorResponse `json:"error,omitempty"`
}

func newWalletResponse(vm domain.ViewModel) WalletResponse {
	res := WalletResponse{
		ActivationID:     vm.ActivationID.String(),
		Loading:          vm.Loading,
		Currencies:       make([]CurrencyResponse, 0, len(vm.Currencies)),
		FormattedBalance: vm.FormattedBalance(),
	}
	for _, c := range vm.Currencies {
		res.Currencies = append(res.Currencies, CurrencyResponse{Code: c.Code, CodeIn: c.CodeIn, Name: c.Name, Bid: c.Bid})
	}
	if !vm.Loading && !vm.BalanceIsNaN() {
		total := vm.TotalBalance
		res.TotalBalance = &total
	}
	if vm.Error != nil {
		res.Error = &FetchErrorResponse{Kind: string(vm.Error.Kind), Message: vm.Error.Error()}
	}
	return res
}

// statusFor maps a view to its HTTP status. pending is what an unsettled view answers with.
func statusFor(vm domain.ViewModel, pending int) int {
	switch {
	case vm.Loading:
		return pending
	case vm.Failed():
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
