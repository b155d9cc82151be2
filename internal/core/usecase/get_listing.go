package usecase

import (
	"context"
	"fmt"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// GetListingUseCase возвращает карточку объявления по ID.
type GetListingUseCase struct {
	store port.ListingStorePort
}

func NewGetListingUseCase(store port.ListingStorePort) *GetListingUseCase {
	return &GetListingUseCase{store: store}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, listingID string) (*domain.PropertyItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListing",
		"listing_id": listingID,
	})

	item, err := uc.store.GetByID(ctx, listingID)
	if err != nil {
		ucLogger.Debug("Listing not found", port.Fields{"error": err.Error()})
		return nil, fmt.Errorf("failed to get listing %s: %w", listingID, err)
	}

	return item, nil
}
