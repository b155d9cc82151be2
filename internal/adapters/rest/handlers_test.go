package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-service/internal/adapters/confirm"
	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/memstore"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
)

// fakeUpstream отдает фиксированный набор записей вместо сетевого вызова
type fakeUpstream struct {
	items []domain.PropertyItem
	err   error
}

func (f *fakeUpstream) FetchListings(ctx context.Context) ([]domain.PropertyItem, error) {
	return f.items, f.err
}

type testEnv struct {
	router http.Handler
	store  *memstore.ListingStore
}

func newTestEnv(t *testing.T, source port.UpstreamSourcePort) *testEnv {
	t.Helper()

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
	store := memstore.NewListingStore(logger)

	handler := NewListingHandler(
		usecase.NewLoadListingsUseCase(source, store),
		usecase.NewBrowseListingsUseCase(store),
		usecase.NewGetListingUseCase(store),
		usecase.NewAddListingUseCase(store),
		usecase.NewCycleStatusUseCase(store),
		usecase.NewRemoveListingUseCase(store, confirm.NewRequestConfirmer(logger)),
	)

	return &testEnv{
		router: newRouter(handler, []string{"*"}, logger),
		store:  store,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func seedItem(id string, dealType domain.DealType) domain.PropertyItem {
	now := time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)
	return domain.PropertyItem{
		ID:        id,
		Title:     "Listing " + id,
		Price:     75000,
		Currency:  "USD",
		Area:      48,
		Type:      dealType,
		Status:    domain.StatusPending,
		Images:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRefreshListingsEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{items: []domain.PropertyItem{
		seedItem("u1", domain.DealTypeSale),
		seedItem("u2", domain.DealTypeRent),
	}})

	rec := env.do(t, http.MethodPost, "/api/v1/listings/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report LoadReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Loaded)
	assert.False(t, report.Degraded)
}

func TestRefreshListingsDegradedOnUpstreamFailure(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{err: domain.ErrUpstreamUnavailable})

	rec := env.do(t, http.MethodPost, "/api/v1/listings/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code, "degraded load is still a successful refresh")

	var report LoadReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Degraded)
	assert.Equal(t, 1, report.Loaded)
	assert.NotEmpty(t, report.Reason)
}

func TestBrowseListingsEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{items: []domain.PropertyItem{
		seedItem("s1", domain.DealTypeSale),
		seedItem("s2", domain.DealTypeSale),
		seedItem("r1", domain.DealTypeRent),
	}})
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/listings/refresh", nil).Code)

	rec := env.do(t, http.MethodGet, "/api/v1/listings?type=sale", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page ListingPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "sale", page.DealType)
	assert.Len(t, page.Data, 2)

	rec = env.do(t, http.MethodGet, "/api/v1/listings?type=rent", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)
}

func TestBrowseListingsValidation(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{})

	// тип обязателен и должен быть sale или rent
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/listings", nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/listings?type=lease", nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/listings?type=sale&limit=abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/api/v1/listings?type=sale&offset=x", nil).Code)
}

func TestGetListingEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{items: []domain.PropertyItem{seedItem("known", domain.DealTypeSale)}})
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/listings/refresh", nil).Code)

	rec := env.do(t, http.MethodGet, "/api/v1/listings/known", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var item domain.PropertyItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "known", item.ID)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/listings/ghost", nil).Code)
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"title":   "New flat",
		"address": "5 River Rd",
		"price":   99000,
		"images":  []string{"https://example.com/flat.jpg"},
		"type":    "sale",
	}
}

func TestCreateListingEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{})

	body, _ := json.Marshal(validCreateBody())
	rec := env.do(t, http.MethodPost, "/api/v1/listings", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.PropertyItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)

	// Свежесозданное объявление видно в выдаче и доступно по ID
	rec = env.do(t, http.MethodGet, "/api/v1/listings?type=sale", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page ListingPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, created.ID, page.Data[0].ID)

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/listings/"+created.ID, nil).Code)
}

func TestCreateListingSchemaValidation(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{})

	cases := map[string]func(m map[string]interface{}){
		"missing title":        func(m map[string]interface{}) { delete(m, "title") },
		"missing address":      func(m map[string]interface{}) { delete(m, "address") },
		"missing images":       func(m map[string]interface{}) { delete(m, "images") },
		"empty images":         func(m map[string]interface{}) { m["images"] = []string{} },
		"zero price":           func(m map[string]interface{}) { m["price"] = 0 },
		"negative price":       func(m map[string]interface{}) { m["price"] = -5 },
		"bad deal type":        func(m map[string]interface{}) { m["type"] = "auction" },
		"bad currency":         func(m map[string]interface{}) { m["currency"] = "dollars" },
		"unknown extra field":  func(m map[string]interface{}) { m["color"] = "red" },
		"non-string image url": func(m map[string]interface{}) { m["images"] = []interface{}{42} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			payload := validCreateBody()
			mutate(payload)
			body, _ := json.Marshal(payload)
			rec := env.do(t, http.MethodPost, "/api/v1/listings", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/api/v1/listings", []byte("not json")).Code)
}

func TestCycleListingStatusEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{items: []domain.PropertyItem{seedItem("mod", domain.DealTypeSale)}})
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/listings/refresh", nil).Code)

	rec := env.do(t, http.MethodPost, "/api/v1/listings/mod/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var item domain.PropertyItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, domain.StatusApproved, item.Status)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPost, "/api/v1/listings/ghost/status", nil).Code)
}

func TestRemoveListingEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{items: []domain.PropertyItem{seedItem("doomed", domain.DealTypeSale)}})
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/listings/refresh", nil).Code)

	// Без confirm=true удаление отклоняется и запись остается
	assert.Equal(t, http.StatusConflict, env.do(t, http.MethodDelete, "/api/v1/listings/doomed", nil).Code)
	assert.Equal(t, 1, env.store.Len(context.Background()))

	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/api/v1/listings/doomed?confirm=true", nil).Code)
	assert.Equal(t, 0, env.store.Len(context.Background()))

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/api/v1/listings/doomed?confirm=true", nil).Code)
}
