package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// ConfirmationPort - граница подтверждения необратимых действий.
// В исходной системе подтверждение было диалогом во view-слое без эффекта;
// здесь удаление реально выполняется, но только после согласия этого порта,
// поэтому ядро тестируется независимо от какого-либо UI.
type ConfirmationPort interface {
	ConfirmRemoval(ctx context.Context, item domain.PropertyItem) (bool, error)
}
