package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type AddListingUseCase interface {
	Execute(ctx context.Context, draft domain.ListingDraft) (*domain.PropertyItem, error)
}
