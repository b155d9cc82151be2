package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const validListingBody = `{
	"title": "Two bedroom flat",
	"address": "8 Oak Ave",
	"price": 180000,
	"currency": "USD",
	"images": ["https://example.com/1.jpg"],
	"type": "rent",
	"location": {"type": "Point", "coordinates": [-118.2, 34.0]}
}`

func TestValidateRequestAcceptsValidBody(t *testing.T) {
	err := ValidateRequest("ListingCreateRequest", "1.0.0", []byte(validListingBody))
	assert.NoError(t, err)
}

func TestValidateRequestRejectsInvalidBody(t *testing.T) {
	for name, body := range map[string]string{
		"missing required": `{"title":"x"}`,
		"broken json":      `{"title":`,
		"wrong enum":       `{"title":"x","address":"y","price":1,"images":["i"],"type":"swap"}`,
		"empty images":     `{"title":"x","address":"y","price":1,"images":[],"type":"sale"}`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidateRequest("ListingCreateRequest", "1.0.0", []byte(body)))
		})
	}
}

func TestValidateRequestUnknownSchema(t *testing.T) {
	err := ValidateRequest("NoSuchRequest", "1.0.0", []byte(`{}`))
	assert.Error(t, err)
}

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "ListingCreateRequest/1.0.0", generateKeyFromPath("listings/listing-create/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("listings/garbage.json"))
}
