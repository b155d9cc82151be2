package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ListingHandler struct {
	loadListingsUC   usecases_port.LoadListingsUseCase
	browseListingsUC usecases_port.BrowseListingsUseCase
	getListingUC     usecases_port.GetListingUseCase
	addListingUC     usecases_port.AddListingUseCase
	cycleStatusUC    usecases_port.CycleStatusUseCase
	removeListingUC  usecases_port.RemoveListingUseCase
}

func NewListingHandler(
	loadListingsUC usecases_port.LoadListingsUseCase,
	browseListingsUC usecases_port.BrowseListingsUseCase,
	getListingUC usecases_port.GetListingUseCase,
	addListingUC usecases_port.AddListingUseCase,
	cycleStatusUC usecases_port.CycleStatusUseCase,
	removeListingUC usecases_port.RemoveListingUseCase) *ListingHandler {
	return &ListingHandler{
		loadListingsUC:   loadListingsUC,
		browseListingsUC: browseListingsUC,
		getListingUC:     getListingUC,
		addListingUC:     addListingUC,
		cycleStatusUC:    cycleStatusUC,
		removeListingUC:  removeListingUC,
	}
}

// RefreshListings обрабатывает POST /api/v1/listings/refresh
func (h *ListingHandler) RefreshListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "RefreshListings"})
	handlerLogger.Debug("Processing request to refresh listings", nil)

	report, err := h.loadListingsUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to refresh listings")
		return
	}

	RespondWithJSON(w, http.StatusOK, LoadReportResponse{
		Sequence: report.Sequence,
		Loaded:   report.Loaded,
		Degraded: report.Degraded,
		Reason:   report.Reason,
		Stale:    report.Stale,
	})
}

// BrowseListings обрабатывает GET /api/v1/listings?type=sale&limit=&offset=
func (h *ListingHandler) BrowseListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	dealType := domain.DealType(r.URL.Query().Get("type"))
	if !dealType.IsValid() {
		logger.Warn("Invalid deal type in query", port.Fields{"type": string(dealType)})
		WriteJSONError(w, http.StatusBadRequest, "Query parameter 'type' must be 'sale' or 'rent'")
		return
	}

	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'limit' parameter")
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'offset' parameter")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "BrowseListings",
		"deal_type": dealType,
	})
	handlerLogger.Debug("Processing request to browse listings", nil)

	page, err := h.browseListingsUC.Execute(r.Context(), dealType, limit, offset)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to browse listings")
		return
	}

	response := ListingPageResponse{
		Total:    page.Total,
		DealType: string(page.DealType),
		Limit:    page.Limit,
		Offset:   page.Offset,
		Data:     make([]ListingCardResponse, len(page.Items)),
	}
	for i, item := range page.Items {
		response.Data[i] = toCardResponse(item)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetListing обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	listingID := chi.URLParam(r, "listingID")

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "GetListing",
		"listing_id": listingID,
	})
	handlerLogger.Debug("Processing request to get listing details", nil)

	item, err := h.getListingUC.Execute(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get listing")
		return
	}

	RespondWithJSON(w, http.StatusOK, item)
}

// CreateListing обрабатывает POST /api/v1/listings.
// Бизнес-валидация (обязательные поля, хотя бы одно фото) выполняется здесь,
// на границе, по JSON-схеме - до обращения к ядру.
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "CreateListing"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidateRequest("ListingCreateRequest", "1.0.0", body); err != nil {
		handlerLogger.Warn("Create listing payload failed validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CreateListingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := h.addListingUC.Execute(r.Context(), req.toDraft(time.Now()))
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create listing")
		return
	}

	handlerLogger.Info("Listing created", port.Fields{"listing_id": item.ID})
	RespondWithJSON(w, http.StatusCreated, item)
}

// CycleListingStatus обрабатывает POST /api/v1/listings/{listingID}/status
func (h *ListingHandler) CycleListingStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	listingID := chi.URLParam(r, "listingID")

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "CycleListingStatus",
		"listing_id": listingID,
	})
	handlerLogger.Debug("Processing request to cycle listing status", nil)

	item, err := h.cycleStatusUC.Execute(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to cycle listing status")
		return
	}

	RespondWithJSON(w, http.StatusOK, item)
}

// RemoveListing обрабатывает DELETE /api/v1/listings/{listingID}?confirm=true
func (h *ListingHandler) RemoveListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	listingID := chi.URLParam(r, "listingID")

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "RemoveListing",
		"listing_id": listingID,
	})
	handlerLogger.Debug("Processing request to remove listing", nil)

	confirmed := r.URL.Query().Get("confirm") == "true"
	ctx := contextkeys.ContextWithConfirmation(r.Context(), confirmed)

	if err := h.removeListingUC.Execute(ctx, listingID); err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
		case errors.Is(err, domain.ErrRemovalNotConfirmed):
			WriteJSONError(w, http.StatusConflict, "Removal requires confirmation (confirm=true)")
		default:
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to remove listing")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
