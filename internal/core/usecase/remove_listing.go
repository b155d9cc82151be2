package usecase

import (
	"context"
	"fmt"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// RemoveListingUseCase - реальное удаление объявления через явную границу
// подтверждения. В исходной системе кнопка удаления показывала диалог без
// эффекта; здесь операция выполняется, но только после согласия ConfirmationPort.
type RemoveListingUseCase struct {
	store     port.ListingStorePort
	confirmer port.ConfirmationPort
}

func NewRemoveListingUseCase(store port.ListingStorePort, confirmer port.ConfirmationPort) *RemoveListingUseCase {
	return &RemoveListingUseCase{store: store, confirmer: confirmer}
}

func (uc *RemoveListingUseCase) Execute(ctx context.Context, listingID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "RemoveListing",
		"listing_id": listingID,
	})

	item, err := uc.store.GetByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Listing to remove was not found", err, nil)
		return fmt.Errorf("failed to remove listing %s: %w", listingID, err)
	}

	confirmed, err := uc.confirmer.ConfirmRemoval(ctx, *item)
	if err != nil {
		ucLogger.Error("Confirmation port failed", err, nil)
		return fmt.Errorf("failed to confirm removal of listing %s: %w", listingID, err)
	}
	if !confirmed {
		ucLogger.Warn("Removal declined by confirmation boundary", nil)
		return fmt.Errorf("listing %s: %w", listingID, domain.ErrRemovalNotConfirmed)
	}

	if err := uc.store.Remove(ctx, listingID); err != nil {
		ucLogger.Error("Store returned an error during removal", err, nil)
		return fmt.Errorf("failed to remove listing %s: %w", listingID, err)
	}

	ucLogger.Info("Listing removed", nil)
	return nil
}
