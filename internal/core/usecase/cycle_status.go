package usecase

import (
	"context"
	"fmt"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// CycleStatusUseCase переключает статус модерации объявления по циклу
// pending -> approved -> rejected -> pending.
type CycleStatusUseCase struct {
	store port.ListingStorePort
}

func NewCycleStatusUseCase(store port.ListingStorePort) *CycleStatusUseCase {
	return &CycleStatusUseCase{store: store}
}

func (uc *CycleStatusUseCase) Execute(ctx context.Context, listingID string) (*domain.PropertyItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "CycleStatus",
		"listing_id": listingID,
	})

	updated, err := uc.store.CycleStatus(ctx, listingID)
	if err != nil {
		ucLogger.Error("Store returned an error during status cycle", err, nil)
		return nil, fmt.Errorf("failed to cycle status of listing %s: %w", listingID, err)
	}

	ucLogger.Info("Listing status cycled", port.Fields{"new_status": updated.Status})
	return updated, nil
}
