package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type BrowseListingsUseCase interface {
	Execute(ctx context.Context, dealType domain.DealType, limit, offset int) (*domain.ListingPage, error)
}
