package upstream

import "encoding/json"

// productsResponse - структура для разбора всего JSON ответа апстрима.
// Каждая запись парсится в нетипизированную карту: апстрим - недоверенный
// вход, поля извлекаются защитно по одному.
type productsResponse struct {
	Products []json.RawMessage `json:"products"`
}
