package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// UpstreamSourcePort - контракт источника объявлений.
// Адаптер сам выполняет нормализацию сырых записей апстрима в PropertyItem.
type UpstreamSourcePort interface {
	FetchListings(ctx context.Context) ([]domain.PropertyItem, error)
}
