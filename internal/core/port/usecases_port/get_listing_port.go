package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type GetListingUseCase interface {
	Execute(ctx context.Context, listingID string) (*domain.PropertyItem, error)
}
