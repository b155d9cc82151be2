package contextkeys

import "context"

// Тип для ключа контекста
type confirmationKeyType struct{}

var confirmationKey = confirmationKeyType{}

// ContextWithConfirmation помещает флаг подтверждения необратимого действия
// в контекст запроса
func ContextWithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmationKey, confirmed)
}

// ConfirmationFromContext извлекает флаг подтверждения.
// Отсутствие флага трактуется как отказ.
func ConfirmationFromContext(ctx context.Context) bool {
	if confirmed, ok := ctx.Value(confirmationKey).(bool); ok {
		return confirmed
	}
	return false
}
