package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// LoadListingsUseCase - одноразовая загрузка объявлений из апстрима в хранилище.
// Каждый запуск получает монотонный номер; результат устаревшего запуска,
// пришедший после более нового, отбрасывается хранилищем, а не применяется.
type LoadListingsUseCase struct {
	source port.UpstreamSourcePort
	store  port.ListingStorePort

	seq   atomic.Uint64
	nowFn func() time.Time
}

func NewLoadListingsUseCase(source port.UpstreamSourcePort, store port.ListingStorePort) *LoadListingsUseCase {
	return &LoadListingsUseCase{
		source: source,
		store:  store,
		nowFn:  time.Now,
	}
}

// Execute выполняет загрузку. Недоступность апстрима не фатальна:
// в хранилище попадает единственная fallback-запись, а ошибка поднимается
// в отчете (Degraded + Reason), чтобы вызывающая сторона сама решала,
// показывать ли заглушку.
func (uc *LoadListingsUseCase) Execute(ctx context.Context) (*domain.LoadReport, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	seq := uc.seq.Add(1)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoadListings",
		"seq":      seq,
	})

	ucLogger.Info("Use case started: fetching listings from upstream", nil)

	report := &domain.LoadReport{Sequence: seq}

	items, err := uc.source.FetchListings(ctx)
	if err != nil {
		ucLogger.Error("Upstream fetch failed, falling back to placeholder listing", err, nil)
		report.Degraded = true
		report.Reason = err.Error()
		items = []domain.PropertyItem{constants.FallbackListing(uc.nowFn())}
	} else if len(items) == 0 {
		ucLogger.Warn("Upstream returned no renderable listings, falling back to placeholder", nil)
		report.Degraded = true
		report.Reason = "upstream returned no renderable listings"
		items = []domain.PropertyItem{constants.FallbackListing(uc.nowFn())}
	}

	if err := uc.store.Replace(ctx, seq, items); err != nil {
		if errors.Is(err, domain.ErrStaleLoad) {
			// Более свежая загрузка уже применена; наш результат - потраченная
			// впустую работа, но не ошибка корректности
			ucLogger.Warn("Load result discarded as stale", nil)
			report.Stale = true
			report.Loaded = 0
			return report, nil
		}
		ucLogger.Error("Store rejected load result", err, nil)
		return nil, fmt.Errorf("failed to load %d listings into store: %w", len(items), err)
	}

	report.Loaded = len(items)
	ucLogger.Info("Use case finished", port.Fields{
		"loaded": report.Loaded, "degraded": report.Degraded,
	})
	return report, nil
}
