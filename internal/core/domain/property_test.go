package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingStatusNext(t *testing.T) {
	assert.Equal(t, StatusApproved, StatusPending.Next())
	assert.Equal(t, StatusRejected, StatusApproved.Next())
	assert.Equal(t, StatusPending, StatusRejected.Next())
}

func TestListingStatusCycleIsPureRotation(t *testing.T) {
	for _, start := range []ListingStatus{StatusPending, StatusApproved, StatusRejected} {
		assert.Equal(t, start, start.Next().Next().Next(), "three steps must return to %s", start)
	}
}

func TestDealTypeIsValid(t *testing.T) {
	assert.True(t, DealTypeSale.IsValid())
	assert.True(t, DealTypeRent.IsValid())
	assert.False(t, DealType("lease").IsValid())
	assert.False(t, DealType("").IsValid())
}

func TestGeoPointOrder(t *testing.T) {
	// Порядок координат GeoJSON: [долгота, широта]
	p := NewGeoPoint(-115.3, 39.7)
	assert.Equal(t, "Point", p.Type)
	assert.Equal(t, -115.3, p.Longitude())
	assert.Equal(t, 39.7, p.Latitude())
}
