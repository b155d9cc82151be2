package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// ListingStore - in-memory хранилище объявлений одной сессии просмотра.
// Исходная система держала данные в состоянии экрана без какой-либо защиты;
// здесь REST-поверхность обслуживает параллельные запросы, поэтому доступ
// сериализуется RWMutex-ом.
type ListingStore struct {
	mu sync.RWMutex

	// items хранится в порядке вставки; AddLocal кладет запись в начало,
	// чтобы при сортировке по updatedAt она оказывалась первой
	items []domain.PropertyItem

	// byID - индекс по ID для O(1) поиска
	byID map[string]int

	// lastSeq - номер последней примененной загрузки.
	// Replace с номером не больше lastSeq отбрасывается: медленный старый
	// fetch не должен затирать более свежие данные.
	lastSeq uint64

	logger port.LoggerPort
}

func NewListingStore(logger port.LoggerPort) *ListingStore {
	return &ListingStore{
		items:  []domain.PropertyItem{},
		byID:   make(map[string]int),
		logger: logger.WithFields(port.Fields{"component": "memstore"}),
	}
}

// canonicalize приводит запись к структурным инвариантам хранилища:
// Images/Videos/Agents/Amenities никогда не nil, updatedAt >= createdAt.
func canonicalize(item domain.PropertyItem) domain.PropertyItem {
	if item.Images == nil {
		item.Images = []string{}
	}
	if item.Videos == nil {
		item.Videos = []string{}
	}
	if item.Agents == nil {
		item.Agents = []string{}
	}
	if item.Amenities == nil {
		item.Amenities = []string{}
	}
	if item.UpdatedAt.Before(item.CreatedAt) {
		item.UpdatedAt = item.CreatedAt
	}
	return item
}

// Replace полностью заменяет содержимое хранилища результатом загрузки seq.
func (s *ListingStore) Replace(ctx context.Context, seq uint64, items []domain.PropertyItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.lastSeq {
		s.logger.Warn("Discarding stale load result", port.Fields{
			"seq": seq, "last_applied_seq": s.lastSeq, "trace_id": contextkeys.TraceIDFromContext(ctx),
		})
		return domain.ErrStaleLoad
	}

	next := make([]domain.PropertyItem, 0, len(items))
	nextByID := make(map[string]int, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("memstore: refusing to load listing with empty id")
		}
		if _, exists := nextByID[item.ID]; exists {
			return fmt.Errorf("memstore: listing %q: %w", item.ID, domain.ErrDuplicateListingID)
		}
		item = canonicalize(item)
		nextByID[item.ID] = len(next)
		next = append(next, item)
	}

	s.items = next
	s.byID = nextByID
	s.lastSeq = seq

	s.logger.Info("Store contents replaced", port.Fields{"seq": seq, "count": len(next)})
	return nil
}

// FilterByType возвращает снимок объявлений с совпадающим типом сделки,
// отсортированный по updatedAt по убыванию. Стабильная сортировка сохраняет
// порядок вставки при равных таймстемпах.
func (s *ListingStore) FilterByType(ctx context.Context, dealType domain.DealType) ([]domain.PropertyItem, error) {
	if !dealType.IsValid() {
		return nil, fmt.Errorf("memstore: %q: %w", dealType, domain.ErrInvalidDealType)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.PropertyItem, 0, len(s.items))
	for _, item := range s.items {
		if item.Type == dealType {
			result = append(result, item)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}

// AddLocal добавляет готовую запись в начало хранилища.
func (s *ListingStore) AddLocal(ctx context.Context, item domain.PropertyItem) (*domain.PropertyItem, error) {
	if item.ID == "" {
		return nil, fmt.Errorf("memstore: listing id must be assigned before AddLocal")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[item.ID]; exists {
		return nil, fmt.Errorf("memstore: listing %q: %w", item.ID, domain.ErrDuplicateListingID)
	}

	item = canonicalize(item)

	if twin := s.findByFingerprintLocked(item); twin != nil {
		// Дубликат по содержимому допустим, но подозрителен - только логируем
		s.logger.Warn("New listing looks like a duplicate of an existing one", port.Fields{
			"new_id": item.ID, "existing_id": twin.ID, "fingerprint": buildFingerprint(item),
		})
	}

	s.items = append([]domain.PropertyItem{item}, s.items...)
	s.byID = make(map[string]int, len(s.items))
	for i, it := range s.items {
		s.byID[it.ID] = i
	}

	s.logger.Debug("Listing added locally", port.Fields{"listing_id": item.ID, "deal_type": item.Type})
	return &item, nil
}

// CycleStatus переводит статус записи на следующий по циклу.
// updatedAt не трогаем: в исходной системе это чисто косметический тумблер,
// который не должен менять порядок выдачи.
func (s *ListingStore) CycleStatus(ctx context.Context, id string) (*domain.PropertyItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("memstore: listing %q: %w", id, domain.ErrListingNotFound)
	}

	s.items[idx].Status = s.items[idx].Status.Next()
	updated := s.items[idx]
	return &updated, nil
}

// Remove удаляет запись из хранилища.
func (s *ListingStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("memstore: listing %q: %w", id, domain.ErrListingNotFound)
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.byID, id)
	for i := idx; i < len(s.items); i++ {
		s.byID[s.items[i].ID] = i
	}

	s.logger.Debug("Listing removed", port.Fields{"listing_id": id})
	return nil
}

// GetByID возвращает копию записи по ID.
func (s *ListingStore) GetByID(ctx context.Context, id string) (*domain.PropertyItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("memstore: listing %q: %w", id, domain.ErrListingNotFound)
	}

	item := s.items[idx]
	return &item, nil
}

// Len возвращает текущее количество записей.
func (s *ListingStore) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

var _ port.ListingStorePort = (*ListingStore)(nil)
