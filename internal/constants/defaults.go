package constants

// Значения по умолчанию для апстрима
const (
	DefaultUpstreamURL        = "https://dummyjson.com/products?limit=12"
	DefaultUpstreamTimeoutSec = 10
	DefaultUpstreamMaxRetries = 3
)

// FallbackListingID - ID единственной записи-заглушки, которая попадает
// в хранилище при недоступности апстрима
const FallbackListingID = "demo-1"

// SampleCities - города для рандомного заполнения пропущенного поля city
var SampleCities = []string{"New York", "Los Angeles", "Chicago", "Austin", "Boston", "Miami"}

// AmenityVocabulary - фиксированный словарь удобств.
// Нормализатор семплирует из него без дубликатов.
var AmenityVocabulary = []string{"Parking", "AC", "Heating", "Gym", "Pool", "Pets allowed"}

// Диапазоны рандомных заполнителей нормализатора
const (
	PriceDefaultMin  = 500
	PriceDefaultSpan = 300000 // цена в [500, 300500)

	AreaDefaultMin  = 20
	AreaDefaultSpan = 250 // площадь в [20, 270)

	BedroomsSpan      = 5
	BathroomsSpan     = 3
	ParkingSpacesSpan = 2
	FloorNumberSpan   = 10

	AvailableFromDaysSpan = 30
)

// Вероятностные веса нормализатора (доля Float64(), выше которой выпадает вариант)
const (
	SaleWeightThreshold     = 0.5 // > 0.5 -> sale, иначе rent
	ApprovedWeightThreshold = 0.7 // > 0.7 -> approved, иначе pending
	AgentWeightThreshold    = 0.6 // > 0.6 -> один агент, иначе пусто
	FurnishedThreshold      = 0.5

	AmenitySampleCount = 3
)

// Базовая точка рандомных координат: долгота в [-122, -112), широта в [37, 43)
const (
	LongitudeBase = -122.0
	LongitudeSpan = 10.0
	LatitudeBase  = 37.0
	LatitudeSpan  = 6.0
)
