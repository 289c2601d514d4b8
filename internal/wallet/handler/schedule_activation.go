package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type ScheduleActivationResponse struct {
	ActivationID string `json:"activation_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
}

// ScheduleActivation godoc
// @Summary Refresh wallet
// @Description Start a new activation; poll it by ID
// @Tags Wallet
// @Produce json
// @Success 202 {object} ScheduleActivationResponse
// @Router /wallet/activations [post]
func (h *Handler) ScheduleActivation(w http.ResponseWriter, _ *http.Request) {
	activationID := h.service.Activate()
	logrus.WithFields(logrus.Fields{"handler": "ScheduleActivation", "activation_id": activationID}).Info("Wallet activation scheduled")

	writeJSON(w, http.StatusAccepted, ScheduleActivationResponse{
		ActivationID: activationID.String(),
	})
}
