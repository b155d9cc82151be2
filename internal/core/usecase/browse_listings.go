package usecase

import (
	"context"
	"fmt"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// BrowseListingsUseCase - постраничная выдача объявлений активной вкладки.
// Вкладки sale/rent - полное разбиение хранилища по типу сделки.
type BrowseListingsUseCase struct {
	store port.ListingStorePort
}

func NewBrowseListingsUseCase(store port.ListingStorePort) *BrowseListingsUseCase {
	return &BrowseListingsUseCase{store: store}
}

func (uc *BrowseListingsUseCase) Execute(ctx context.Context, dealType domain.DealType, limit, offset int) (*domain.ListingPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "BrowseListings",
		"deal_type": dealType,
		"limit":     limit,
		"offset":    offset,
	})

	if !dealType.IsValid() {
		return nil, fmt.Errorf("%q: %w", dealType, domain.ErrInvalidDealType)
	}

	filtered, err := uc.store.FilterByType(ctx, dealType)
	if err != nil {
		ucLogger.Error("Store returned an error during filter", err, nil)
		return nil, fmt.Errorf("failed to filter listings by type %s: %w", dealType, err)
	}

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := &domain.ListingPage{
		Total:    total,
		DealType: dealType,
		Limit:    limit,
		Offset:   offset,
		Items:    filtered[offset:end],
	}

	ucLogger.Debug("Use case finished", port.Fields{"total": total, "items_on_page": len(page.Items)})
	return page, nil
}
