package memstore

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"listing-service/internal/core/domain"

	"github.com/mmcloughlin/geohash"
)

// Точность геохэша ~4.9x4.9 км: достаточно, чтобы два объявления об одном
// объекте попали в одну ячейку
const geohashPrecision = 5

func normalizeAreaToBucket(area float64, bucketSize float64) string {
	if bucketSize <= 0 {
		bucketSize = 1.0
	}
	bucketIndex := int(area / bucketSize)
	return fmt.Sprintf("%d", bucketIndex)
}

// buildFingerprint создает стабильную строку из ключевых полей объявления.
// Совпадающий отпечаток у двух записей - признак дубликата по содержимому.
func buildFingerprint(item domain.PropertyItem) string {
	geohsh := geohash.Encode(item.Location.Latitude(), item.Location.Longitude())

	parts := []string{
		geohsh[:geohashPrecision],
		string(item.Type),
		strings.ToLower(strings.TrimSpace(item.Title)),
		normalizeAreaToBucket(item.Area, 2.0),
		fmt.Sprintf("%d", item.Bedrooms),
	}

	payload := strings.Join(parts, "|")

	h := sha256.New()
	h.Write([]byte(payload))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// findByFingerprintLocked ищет запись с тем же отпечатком содержимого.
// Вызывается только под мьютексом хранилища.
func (s *ListingStore) findByFingerprintLocked(item domain.PropertyItem) *domain.PropertyItem {
	fp := buildFingerprint(item)
	for i := range s.items {
		if s.items[i].ID == item.ID {
			continue
		}
		if buildFingerprint(s.items[i]) == fp {
			return &s.items[i]
		}
	}
	return nil
}
