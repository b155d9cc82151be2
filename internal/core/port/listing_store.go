package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// ListingStorePort - контракт хранилища объявлений одной сессии просмотра.
// Хранилище отвечает только за структурные инварианты: уникальность ID,
// ненулевой срез Images, updatedAt >= createdAt.
type ListingStorePort interface {
	// Replace полностью заменяет содержимое хранилища.
	// seq - монотонный номер запроса загрузки: результат с номером, не превышающим
	// последний примененный, отбрасывается с ошибкой domain.ErrStaleLoad,
	// чтобы медленный старый fetch не затер более свежие данные.
	Replace(ctx context.Context, seq uint64, items []domain.PropertyItem) error

	// FilterByType возвращает объявления с совпадающим типом сделки,
	// отсортированные по updatedAt по убыванию (при равенстве - порядок вставки).
	// Результат - независимый снимок, хранилище не мутируется.
	FilterByType(ctx context.Context, dealType domain.DealType) ([]domain.PropertyItem, error)

	// AddLocal добавляет готовую запись в начало хранилища.
	// ID и таймстемпы уже присвоены use case-ом.
	AddLocal(ctx context.Context, item domain.PropertyItem) (*domain.PropertyItem, error)

	// CycleStatus переводит статус записи на следующий по циклу.
	// updatedAt намеренно не обновляется: переключение чисто косметическое.
	CycleStatus(ctx context.Context, id string) (*domain.PropertyItem, error)

	// Remove удаляет запись из хранилища
	Remove(ctx context.Context, id string) error

	// GetByID возвращает запись по ID
	GetByID(ctx context.Context, id string) (*domain.PropertyItem, error)

	// Len возвращает текущее количество записей
	Len(ctx context.Context) int
}
