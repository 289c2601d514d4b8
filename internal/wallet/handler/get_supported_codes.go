package handler

import (
	"net/http"
)

type GetSupportedCodesResponse struct {
	Codes []string `json:"codes" example:"EUR,GBP,JPY,USD"`
}

// GetSupportedCodes godoc
// @Summary List wallet currencies
// @Description Currency codes the wallet keeps from the provider table
// @Tags Wallet
// @Produce json
// @Success 200 {object} GetSupportedCodesResponse
// @Router /wallet/supported-currencies [get]
func (h *Handler) GetSupportedCodes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetSupportedCodesResponse{
		Codes: h.service.SupportedCodes(),
	})
}
