package domain

import "time"

// DealType определяет тип сделки (вкладку в UI)
type DealType string

const (
	DealTypeSale DealType = "sale"
	DealTypeRent DealType = "rent"
)

// IsValid проверяет, что тип сделки - одно из двух допустимых значений
func (d DealType) IsValid() bool {
	return d == DealTypeSale || d == DealTypeRent
}

// ListingStatus определяет статус модерации объявления
type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"
	StatusApproved ListingStatus = "approved"
	StatusRejected ListingStatus = "rejected"
)

// Next возвращает следующий статус в цикле pending -> approved -> rejected -> pending.
// Цикл замкнутый, терминального состояния нет.
func (s ListingStatus) Next() ListingStatus {
	switch s {
	case StatusPending:
		return StatusApproved
	case StatusApproved:
		return StatusRejected
	case StatusRejected:
		return StatusPending
	default:
		// Неизвестный статус сбрасываем в начало цикла
		return StatusPending
	}
}

// GeoPoint - точка в формате GeoJSON.
// Coordinates всегда в порядке [долгота, широта].
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewGeoPoint создает точку из долготы и широты
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

// Longitude возвращает долготу точки
func (p GeoPoint) Longitude() float64 { return p.Coordinates[0] }

// Latitude возвращает широту точки
func (p GeoPoint) Latitude() float64 { return p.Coordinates[1] }

// PropertyItem - каноническая запись объявления о недвижимости.
// Все поля заполнены после нормализации: Images и прочие срезы никогда не nil.
type PropertyItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Area        float64  `json:"area"`
	Type        DealType `json:"type"`

	PropertyType string        `json:"property_type"`
	Images       []string      `json:"images"`
	Videos       []string      `json:"videos"`
	Status       ListingStatus `json:"status"`

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

	AvailableFrom time.Time `json:"available_from"`
	Location      GeoPoint  `json:"location"`
	Geohash       string    `json:"geohash"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListingDraft - данные нового объявления до присвоения ID и таймстемпов.
// Бизнес-валидацию (название, адрес, цена, хотя бы одно фото) выполняет
// вызывающая сторона до обращения к ядру.
type ListingDraft struct {
	Title       string
	Description string
	Price       float64
	Currency    string
	Area        float64
	Type        DealType

	PropertyType string
	Images       []string
	Videos       []string

	OwnerName string
	OwnerID   string
	Agents    []string
	Amenities []string

	ContactName   string
	ContactEmail  string
	ContactNumber string

	Address string
	City    string
	State   string
	Country string

	Bedrooms      int
	Bathrooms     int
	ParkingSpaces int
	FloorNumber   int
	IsFurnished   bool

	AvailableFrom time.Time
	Location      GeoPoint
}

// ListingPage - страница отфильтрованной по вкладке выдачи (карусель в UI)
type ListingPage struct {
	Total    int            `json:"total"`
	DealType DealType       `json:"deal_type"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
	Items    []PropertyItem `json:"items"`
}

// LoadReport - результат выполнения загрузки листингов.
// Degraded=true означает, что вместо данных апстрима в стор попала
// единственная fallback-запись; Reason содержит причину.
type LoadReport struct {
	Sequence uint64 `json:"sequence"`
	Loaded   int    `json:"loaded"`
	Degraded bool   `json:"degraded"`
	Reason   string `json:"reason,omitempty"`
	Stale    bool   `json:"stale,omitempty"`
}
