package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"walletfx/internal/domain"

	"github.com/google/uuid"
)

type WalletService interface {
	Activate() uuid.UUID
	Current() domain.ViewModel
	GetByActivationID(ctx context.Context, id uuid.UUID) (domain.ViewModel, error)
	SupportedCodes() []string
}

type Handler struct {
	service WalletService
}

func NewWalletHandler(service WalletService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
