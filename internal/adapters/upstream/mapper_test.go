package upstream

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	random_adapter "listing-service/internal/adapters/random"
	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
)

var testNow = time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

func TestNormalizeProductsFillsDefaultsWithinRanges(t *testing.T) {
	body := []byte(`{"products":[
		{"id":7,"title":"Flat A"},
		{"id":"abc-9"},
		{}
	]}`)

	items := normalizeProducts(body, random_adapter.NewSeededSource(42), testNow)
	require.Len(t, items, 3)

	assert.Equal(t, "7", items[0].ID)
	assert.Equal(t, "Flat A", items[0].Title)
	assert.Equal(t, "abc-9", items[1].ID)
	// Запись без идентификатора получает позиционный
	assert.Equal(t, "2", items[2].ID)

	for i, item := range items {
		assert.GreaterOrEqual(t, item.Price, float64(constants.PriceDefaultMin), "item %d", i)
		assert.Less(t, item.Price, float64(constants.PriceDefaultMin+constants.PriceDefaultSpan), "item %d", i)
		assert.GreaterOrEqual(t, item.Area, float64(constants.AreaDefaultMin), "item %d", i)
		assert.Less(t, item.Area, float64(constants.AreaDefaultMin+constants.AreaDefaultSpan), "item %d", i)
		assert.Equal(t, "USD", item.Currency, "item %d", i)
		assert.True(t, item.Type.IsValid(), "item %d", i)
		assert.Contains(t, []domain.ListingStatus{domain.StatusPending, domain.StatusApproved}, item.Status, "item %d", i)
		assert.NotNil(t, item.Images, "item %d", i)
		assert.NotNil(t, item.Agents, "item %d", i)
		assert.Contains(t, constants.SampleCities, item.City, "item %d", i)
		assert.True(t, item.CreatedAt.Equal(testNow), "item %d", i)
		assert.True(t, item.UpdatedAt.Equal(testNow), "item %d", i)
		assert.NotEmpty(t, item.Geohash, "item %d", i)

		lng, lat := item.Location.Longitude(), item.Location.Latitude()
		assert.GreaterOrEqual(t, lng, constants.LongitudeBase, "item %d", i)
		assert.Less(t, lng, constants.LongitudeBase+constants.LongitudeSpan, "item %d", i)
		assert.GreaterOrEqual(t, lat, constants.LatitudeBase, "item %d", i)
		assert.Less(t, lat, constants.LatitudeBase+constants.LatitudeSpan, "item %d", i)
	}
}

func TestNormalizeProductsKeepsUpstreamValues(t *testing.T) {
	body := []byte(`{"products":[{
		"id":"p-1",
		"title":"Loft near park",
		"description":"Sunny loft",
		"price":245000,
		"images":["https://cdn.example.com/1.jpg","https://cdn.example.com/2.jpg"]
	}]}`)

	items := normalizeProducts(body, random_adapter.NewSeededSource(1), testNow)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "p-1", item.ID)
	assert.Equal(t, "Loft near park", item.Title)
	assert.Equal(t, "Sunny loft", item.Description)
	assert.Equal(t, 245000.0, item.Price)
	assert.Equal(t, []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}, item.Images)
}

func TestNormalizeProductsNegativePriceGetsDefault(t *testing.T) {
	body := []byte(`{"products":[{"id":"neg","price":-1}]}`)

	items := normalizeProducts(body, random_adapter.NewSeededSource(3), testNow)
	require.Len(t, items, 1)
	assert.GreaterOrEqual(t, items[0].Price, float64(constants.PriceDefaultMin))
}

func TestNormalizeProductsStringPrice(t *testing.T) {
	body := []byte(`{"products":[{"id":"str","price":"1500.5"}]}`)

	items := normalizeProducts(body, random_adapter.NewSeededSource(3), testNow)
	require.Len(t, items, 1)
	assert.Equal(t, 1500.5, items[0].Price)
}

func TestNormalizeProductsMalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"not json":      `garbage`,
		"array":         `[1,2,3]`,
		"string":        `"hello"`,
		"null products": `{"products":null}`,
		"empty object":  `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			items := normalizeProducts([]byte(body), random_adapter.NewSeededSource(1), testNow)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestNormalizeProductsSkipsNonObjectRecords(t *testing.T) {
	body := []byte(`{"products":[{"id":"ok"},42,"junk",null,{"id":"ok2"}]}`)

	items := normalizeProducts(body, random_adapter.NewSeededSource(1), testNow)
	require.Len(t, items, 2)
	assert.Equal(t, "ok", items[0].ID)
	assert.Equal(t, "ok2", items[1].ID)
}

func TestNormalizeProductsDeterministicWithSeed(t *testing.T) {
	body := []byte(`{"products":[{"id":1},{"id":2},{"id":3}]}`)

	first := normalizeProducts(body, random_adapter.NewSeededSource(99), testNow)
	second := normalizeProducts(body, random_adapter.NewSeededSource(99), testNow)
	assert.Equal(t, first, second)
}

func TestSampleAmenitiesNoDuplicates(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		amenities := sampleAmenities(random_adapter.NewSeededSource(seed))
		assert.LessOrEqual(t, len(amenities), constants.AmenitySampleCount, "seed %d", seed)
		assert.GreaterOrEqual(t, len(amenities), 1, "seed %d", seed)

		seen := map[string]bool{}
		for _, a := range amenities {
			assert.Contains(t, constants.AmenityVocabulary, a, "seed %d", seed)
			assert.False(t, seen[a], "seed %d: duplicate amenity %s", seed, a)
			seen[a] = true
		}
	}
}

func TestGetStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, getStringSlice([]interface{}{"a", "b"}))
	// Нестроковые элементы отбрасываются
	assert.Equal(t, []string{"a"}, getStringSlice([]interface{}{"a", 5, true}))
	assert.Equal(t, []string{}, getStringSlice("not a slice"))
	assert.Equal(t, []string{}, getStringSlice(nil))
}

func TestNormalizeIDNumericFormats(t *testing.T) {
	for _, tc := range []struct {
		raw  interface{}
		want string
	}{
		{float64(7), "7"},
		{float64(1024), "1024"},
		{"ext-55", "ext-55"},
		{"", "4"},
		{nil, "4"},
		{true, "4"},
	} {
		record := map[string]interface{}{}
		if tc.raw != nil {
			record["id"] = tc.raw
		}
		assert.Equal(t, tc.want, normalizeID(record, 4), fmt.Sprintf("raw=%v", tc.raw))
	}
}
