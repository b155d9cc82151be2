package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type LoadListingsUseCase interface {
	Execute(ctx context.Context) (*domain.LoadReport, error)
}
