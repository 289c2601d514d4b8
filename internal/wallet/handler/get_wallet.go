package handler

import (
	"net/http"
)

// GetWallet godoc
// @Summary Get wallet
// @Description Current wallet view: retained currencies and total balance of the latest activation
// @Tags Wallet
// @Produce json
// @Success 200 {object} WalletResponse "settled, or loading=true while the fetch is in flight"
// @Failure 502 {object} WalletResponse "provider fetch failed"
// @Router /wallet [get]
func (h *Handler) GetWallet(w http.ResponseWriter, _ *http.Request) {
	vm := h.service.Current()
	writeJSON(w, statusFor(vm, http.StatusOK), newWalletResponse(vm))
}
