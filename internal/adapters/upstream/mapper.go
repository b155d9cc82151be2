package upstream

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/mmcloughlin/geohash"
)

// normalizeProducts разбирает тело ответа апстрима и нормализует каждую
// запись в PropertyItem. Любая другая форма верхнего уровня (не объект с
// массивом products) трактуется как пустой набор. Запись, которая сама
// не является объектом, пропускается.
func normalizeProducts(body []byte, rnd port.RandomSourcePort, now time.Time) []domain.PropertyItem {
	var resp productsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return []domain.PropertyItem{}
	}

	items := make([]domain.PropertyItem, 0, len(resp.Products))
	for idx, raw := range resp.Products {
		var record map[string]interface{}
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		items = append(items, normalizeProduct(record, idx, rnd, now))
	}
	return items
}

// normalizeProduct превращает одну сырую запись апстрима в каноническое
// объявление. Отсутствующие поля добиваются рандомными заполнителями в
// фиксированных диапазонах; вся случайность идет через инжектированный порт.
func normalizeProduct(record map[string]interface{}, idx int, rnd port.RandomSourcePort, now time.Time) domain.PropertyItem {
	dealType := domain.DealTypeRent
	if rnd.Float64() > constants.SaleWeightThreshold {
		dealType = domain.DealTypeSale
	}

	status := domain.StatusPending
	if rnd.Float64() > constants.ApprovedWeightThreshold {
		status = domain.StatusApproved
	}

	agents := []string{}
	if rnd.Float64() > constants.AgentWeightThreshold {
		agents = append(agents, fmt.Sprintf("Agent %d", idx+1))
	}

	price := getFloat(record, "price")
	if price == nil || *price < 0 {
		v := float64(constants.PriceDefaultMin + rnd.IntN(constants.PriceDefaultSpan))
		price = &v
	}

	location := domain.NewGeoPoint(
		constants.LongitudeBase+rnd.Float64()*constants.LongitudeSpan,
		constants.LatitudeBase+rnd.Float64()*constants.LatitudeSpan,
	)

	item := domain.PropertyItem{
		ID:          normalizeID(record, idx),
		Title:       getStringOr(record, "title", fmt.Sprintf("Property %d", idx+1)),
		Description: getStringOr(record, "description", ""),
		Price:       *price,
		Currency:    "USD",
		Area:        float64(constants.AreaDefaultMin + rnd.IntN(constants.AreaDefaultSpan)),
		Type:        dealType,

		PropertyType: "apartment",
		Images:       getStringSlice(record["images"]),
		Videos:       []string{},
		Status:       status,

		OwnerName: fmt.Sprintf("Owner %d", idx+1),
		OwnerID:   fmt.Sprintf("owner-%d", idx+1),
		Agents:    agents,
		Amenities: sampleAmenities(rnd),

		ContactName:   fmt.Sprintf("Contact %d", idx+1),
		ContactEmail:  fmt.Sprintf("contact%d@example.com", idx+1),
		ContactNumber: "+1234567890",

		Address: fmt.Sprintf("%d Demo St", rnd.IntN(999)),
		City:    rnd.Pick(constants.SampleCities),
		State:   "Demo State",
		Country: "USA",

		Bedrooms:      rnd.IntN(constants.BedroomsSpan),
		Bathrooms:     rnd.IntN(constants.BathroomsSpan),
		ParkingSpaces: rnd.IntN(constants.ParkingSpacesSpan),
		FloorNumber:   rnd.IntN(constants.FloorNumberSpan),
		IsFurnished:   rnd.Float64() > constants.FurnishedThreshold,

		AvailableFrom: now.AddDate(0, 0, rnd.IntN(constants.AvailableFromDaysSpan)),
		Location:      location,
		Geohash:       geohash.Encode(location.Latitude(), location.Longitude()),

		CreatedAt: now,
		UpdatedAt: now,
	}

	return item
}

// normalizeID приводит идентификатор апстрима к строке.
// Если идентификатора нет вовсе, используется позиция записи.
func normalizeID(record map[string]interface{}, idx int) string {
	switch v := record["id"].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		// JSON числа всегда float64
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.Itoa(idx)
}

// sampleAmenities семплирует фиксированный словарь удобств без дубликатов.
// Как и в исходнике, результат может быть короче трех элементов.
func sampleAmenities(rnd port.RandomSourcePort) []string {
	seen := make(map[string]bool, constants.AmenitySampleCount)
	result := make([]string, 0, constants.AmenitySampleCount)
	for i := 0; i < constants.AmenitySampleCount; i++ {
		amenity := rnd.Pick(constants.AmenityVocabulary)
		if seen[amenity] {
			continue
		}
		seen[amenity] = true
		result = append(result, amenity)
	}
	return result
}

// getStringOr - хелпер для безопасного получения строки из карты
func getStringOr(record map[string]interface{}, key, fallback string) string {
	if val, ok := record[key].(string); ok && val != "" {
		return val
	}
	return fallback
}

// getFloat - хелпер для безопасного получения *float64 из карты
func getFloat(record map[string]interface{}, key string) *float64 {
	if val, ok := record[key].(float64); ok {
		return &val
	}
	// Иногда апстрим отдает числа как строки
	if val, ok := record[key].(string); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return &f
		}
	}
	return nil
}

func getStringSlice(value interface{}) []string {
	if slice, ok := value.([]interface{}); ok {
		result := make([]string, 0, len(slice))
		for _, item := range slice {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}

	return []string{}
}
