package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-service/internal/adapters/confirm"
	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
)

func newTestConfirmer() *confirm.RequestConfirmer {
	return confirm.NewRequestConfirmer(logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard}))
}

func TestRemoveListingRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	store := newUsecaseTestStore(t)
	require.NoError(t, store.Replace(ctx, 1, []domain.PropertyItem{upstreamItem("doomed", domain.DealTypeSale)}))

	uc := NewRemoveListingUseCase(store, newTestConfirmer())

	// Без явного подтверждения в контексте удаление отклоняется
	err := uc.Execute(ctx, "doomed")
	assert.ErrorIs(t, err, domain.ErrRemovalNotConfirmed)
	assert.Equal(t, 1, store.Len(ctx))

	// Явный отказ тоже отклоняется
	err = uc.Execute(contextkeys.ContextWithConfirmation(ctx, false), "doomed")
	assert.ErrorIs(t, err, domain.ErrRemovalNotConfirmed)
	assert.Equal(t, 1, store.Len(ctx))
}

func TestRemoveListingConfirmedRemoves(t *testing.T) {
	ctx := context.Background()
	store := newUsecaseTestStore(t)
	require.NoError(t, store.Replace(ctx, 1, []domain.PropertyItem{upstreamItem("doomed", domain.DealTypeSale)}))

	uc := NewRemoveListingUseCase(store, newTestConfirmer())

	err := uc.Execute(contextkeys.ContextWithConfirmation(ctx, true), "doomed")
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len(ctx))
}

func TestRemoveListingUnknownID(t *testing.T) {
	ctx := contextkeys.ContextWithConfirmation(context.Background(), true)
	store := newUsecaseTestStore(t)
	uc := NewRemoveListingUseCase(store, newTestConfirmer())

	err := uc.Execute(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestCycleStatusUseCase(t *testing.T) {
	ctx := context.Background()
	store := newUsecaseTestStore(t)
	require.NoError(t, store.Replace(ctx, 1, []domain.PropertyItem{upstreamItem("mod", domain.DealTypeSale)}))

	uc := NewCycleStatusUseCase(store)

	updated, err := uc.Execute(ctx, "mod")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)

	_, err = uc.Execute(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestGetListingUseCase(t *testing.T) {
	ctx := context.Background()
	store := newUsecaseTestStore(t)
	require.NoError(t, store.Replace(ctx, 1, []domain.PropertyItem{upstreamItem("card", domain.DealTypeRent)}))

	uc := NewGetListingUseCase(store)

	item, err := uc.Execute(ctx, "card")
	require.NoError(t, err)
	assert.Equal(t, "card", item.ID)

	_, err = uc.Execute(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
