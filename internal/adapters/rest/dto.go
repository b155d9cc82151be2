package rest

import (
	"time"

	"listing-service/internal/core/domain"
)

// CreateListingRequest - DTO тела запроса на создание объявления.
// Поля и обязательность повторяют схему listings/listing-create/v1.json.
type CreateListingRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Area        float64 `json:"area"`
	Type        string  `json:"type"`

	PropertyType string   `json:"property_type"`
	Images       []string `json:"images"`
	Videos       []string `json:"videos"`

	OwnerName string   `json:"owner_name"`
	OwnerID   string   `json:"owner_id"`
	Agents    []string `json:"agents"`
	Amenities []string `json:"amenities"`

	ContactName   string `json:"contact_name"`
	ContactEmail  string `json:"contact_email"`
	ContactNumber string `json:"contact_number"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`

	Bedrooms      int  `json:"bedrooms"`
	Bathrooms     int  `json:"bathrooms"`
	ParkingSpaces int  `json:"parking_spaces"`
	FloorNumber   int  `json:"floor_number"`
	IsFurnished   bool `json:"is_furnished"`

	AvailableFrom string           `json:"available_from"`
	Location      *LocationPayload `json:"location"`
}

// LocationPayload - GeoJSON-точка в теле запроса, координаты [lng, lat]
type LocationPayload struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// toDraft маппит DTO запроса в доменный черновик
func (req CreateListingRequest) toDraft(now time.Time) domain.ListingDraft {
	availableFrom := now
	if req.AvailableFrom != "" {
		if parsed, err := time.Parse(time.RFC3339, req.AvailableFrom); err == nil {
			availableFrom = parsed
		}
	}

	location := domain.NewGeoPoint(0, 0)
	if req.Location != nil {
		location = domain.NewGeoPoint(req.Location.Coordinates[0], req.Location.Coordinates[1])
	}

	return domain.ListingDraft{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Area:        req.Area,
		Type:        domain.DealType(req.Type),

		PropertyType: req.PropertyType,
		Images:       req.Images,
		Videos:       req.Videos,

		OwnerName: req.OwnerName,
		OwnerID:   req.OwnerID,
		Agents:    req.Agents,
		Amenities: req.Amenities,

		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactNumber: req.ContactNumber,

		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,

		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		ParkingSpaces: req.ParkingSpaces,
		FloorNumber:   req.FloorNumber,
		IsFurnished:   req.IsFurnished,

		AvailableFrom: availableFrom,
		Location:      location,
	}
}

// ListingCardResponse - DTO карточки объявления в списке.
type ListingCardResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Area         float64  `json:"area"`
	DealType     string   `json:"deal_type"`
	PropertyType string   `json:"property_type"`
	Images       []string `json:"images"`
	Status       string   `json:"status"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Geohash      string   `json:"geohash"`

	UpdatedAt time.Time `json:"updated_at"`
}

func toCardResponse(item domain.PropertyItem) ListingCardResponse {
	return ListingCardResponse{
		ID:           item.ID,
		Title:        item.Title,
		Price:        item.Price,
		Currency:     item.Currency,
		Area:         item.Area,
		DealType:     string(item.Type),
		PropertyType: item.PropertyType,
		Images:       item.Images,
		Status:       string(item.Status),
		Address:      item.Address,
		City:         item.City,
		Bedrooms:     item.Bedrooms,
		Bathrooms:    item.Bathrooms,
		Geohash:      item.Geohash,
		UpdatedAt:    item.UpdatedAt,
	}
}

// ListingPageResponse - страница карточек активной вкладки
type ListingPageResponse struct {
	Total    int                   `json:"total"`
	DealType string                `json:"deal_type"`
	Limit    int                   `json:"limit"`
	Offset   int                   `json:"offset"`
	Data     []ListingCardResponse `json:"data"`
}

// LoadReportResponse - результат обновления из апстрима
type LoadReportResponse struct {
	Sequence uint64 `json:"sequence"`
	Loaded   int    `json:"loaded"`
	Degraded bool   `json:"degraded"`
	Reason   string `json:"reason,omitempty"`
	Stale    bool   `json:"stale,omitempty"`
}
