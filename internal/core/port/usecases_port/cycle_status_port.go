package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type CycleStatusUseCase interface {
	Execute(ctx context.Context, listingID string) (*domain.PropertyItem, error)
}
