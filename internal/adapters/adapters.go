package adapters

import (
	"context"
	"walletfx/internal/domain"

	"github.com/google/uuid"
)

type RateClient interface {
	GetAllRates(ctx context.Context) ([]domain.RateRecord, error)
}

type ActivationCache interface {
	Get(id uuid.UUID) (domain.ViewSource, bool)
	Set(id uuid.UUID, source domain.ViewSource)
}
