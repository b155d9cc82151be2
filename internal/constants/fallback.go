package constants

import (
	"listing-service/internal/core/domain"
	"time"
)

// FallbackListing возвращает единственную запись-заглушку.
// Состав полей повторяет оригинальную fallback-запись источника.
func FallbackListing(now time.Time) domain.PropertyItem {
	return domain.PropertyItem{
		ID:            FallbackListingID,
		Title:         "Demo Apartment",
		Description:   "A nice demo apartment fetched fallback.",
		Price:         120000,
		Currency:      "USD",
		Area:          90,
		Type:          domain.DealTypeSale,
		PropertyType:  "apartment",
		Images:        []string{},
		Videos:        []string{},
		Status:        domain.StatusApproved,
		OwnerName:     "Demo Owner",
		OwnerID:       "demo-owner-1",
		Agents:        []string{},
		Amenities:     []string{"Parking", "AC"},
		ContactName:   "John Doe",
		ContactEmail:  "john@example.com",
		ContactNumber: "+1234567890",
		Address:       "1 Demo St",
		City:          "Demo City",
		State:         "Demo State",
		Country:       "Demo Country",
		Bedrooms:      2,
		Bathrooms:     1,
		ParkingSpaces: 1,
		FloorNumber:   3,
		IsFurnished:   true,
		AvailableFrom: now,
		Location:      domain.NewGeoPoint(0, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
