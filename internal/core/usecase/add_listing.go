package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/mmcloughlin/geohash"
	"github.com/oklog/ulid/v2"
)

// AddListingUseCase - локальное создание объявления без обращения к бэкенду.
// ID - ULID с монотонной энтропией: лексикографически сортируем и никогда
// не повторяется в пределах экземпляра.
type AddListingUseCase struct {
	store port.ListingStorePort

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
	nowFn     func() time.Time
}

func NewAddListingUseCase(store port.ListingStorePort) *AddListingUseCase {
	return &AddListingUseCase{
		store:   store,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		nowFn:   time.Now,
	}
}

func (uc *AddListingUseCase) nextID() string {
	uc.entropyMu.Lock()
	defer uc.entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), uc.entropy).String()
}

// Execute присваивает черновику свежий ID и таймстемпы и кладет запись
// в начало хранилища, так что при сортировке по умолчанию она первая.
// Бизнес-валидация выполнена вызывающей стороной; здесь только структурные
// инварианты.
func (uc *AddListingUseCase) Execute(ctx context.Context, draft domain.ListingDraft) (*domain.PropertyItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "AddListing",
		"deal_type": draft.Type,
	})

	if !draft.Type.IsValid() {
		return nil, fmt.Errorf("%q: %w", draft.Type, domain.ErrInvalidDealType)
	}

	now := uc.nowFn()
	currency := draft.Currency
	if currency == "" {
		currency = "USD"
	}
	status := domain.StatusPending // Новые объявления всегда начинают цикл модерации

	item := domain.PropertyItem{
		ID:          uc.nextID(),
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		Currency:    currency,
		Area:        draft.Area,
		Type:        draft.Type,

		PropertyType: draft.PropertyType,
		Images:       draft.Images,
		Videos:       draft.Videos,
		Status:       status,

		OwnerName: draft.OwnerName,
		OwnerID:   draft.OwnerID,
		Agents:    draft.Agents,
		Amenities: draft.Amenities,

		ContactName:   draft.ContactName,
		ContactEmail:  draft.ContactEmail,
		ContactNumber: draft.ContactNumber,

		Address: draft.Address,
		City:    draft.City,
		State:   draft.State,
		Country: draft.Country,

		Bedrooms:      draft.Bedrooms,
		Bathrooms:     draft.Bathrooms,
		ParkingSpaces: draft.ParkingSpaces,
		FloorNumber:   draft.FloorNumber,
		IsFurnished:   draft.IsFurnished,

		AvailableFrom: draft.AvailableFrom,
		Location:      draft.Location,
		Geohash:       geohash.Encode(draft.Location.Latitude(), draft.Location.Longitude()),

		CreatedAt: now,
		UpdatedAt: now,
	}

	ucLogger.Info("Use case started: adding local listing", port.Fields{"listing_id": item.ID})

	saved, err := uc.store.AddLocal(ctx, item)
	if err != nil {
		ucLogger.Error("Store rejected local listing", err, nil)
		return nil, fmt.Errorf("failed to add listing %s: %w", item.ID, err)
	}

	ucLogger.Info("Use case finished: listing added", port.Fields{"listing_id": saved.ID})
	return saved, nil
}
