package handler

import (
	"errors"
	"net/http"
	"walletfx/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GetByActivationID godoc
// @Summary Get wallet by activation ID
// @Description Wallet view produced by a given activation
// @Tags Wallet
// @Produce json
// @Param id path string true "Activation ID"
// @Success 200 {object} WalletResponse
// @Success 202 {object} WalletResponse "activation pending"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} WalletResponse "provider fetch failed"
// @Failure 500 {object} errorResponse
// @Router /wallet/activations/{id} [get]
func (h *Handler) GetByActivationID(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	activationID, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activation ID format")
		return
	}

	vm, err := h.service.GetByActivationID(r.Context(), activationID)
	if err != nil {
		if errors.Is(err, domain.ErrActivationNotFound) {
			writeError(w, http.StatusNotFound, "activation not found")
			return
		}
		msg := "ups, couldn't get wallet by activation id this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByActivationID", "activation_id": activationID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, statusFor(vm, http.StatusAccepted), newWalletResponse(vm))
}
