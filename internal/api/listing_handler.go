// Package api implements the HTTP handlers for the service. Each handler
// method maps one route to exactly one store operation; there is no service
// layer in between because no route needs one.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fellowtravellers/apartments-api/internal/api/shared"
	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// ListingHandler handles apartment-listing API requests.
type ListingHandler struct {
	listings store.ListingStore
}

// NewListingHandler creates a new ListingHandler with the given dependencies.
func NewListingHandler(listings store.ListingStore) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// Create handles POST /addEvent requests. The whole body is stored as the
// listing document; nothing is sent back beyond the status.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var listing domain.Listing
	if err := shared.DecodeJSON(r, &listing); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.listings.Create(r.Context(), &listing); err != nil {
		slog.Error("failed to create listing", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create listing")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// List handles GET /allPackages requests.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.List(r.Context())
	if err != nil {
		slog.Error("failed to list listings", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load listings")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listings)
}

// Search handles GET /searchPackages requests, matching the "search" query
// parameter as a substring pattern against listing titles.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("search")

	listings, err := h.listings.SearchByTitle(r.Context(), pattern)
	if err != nil {
		slog.Error("failed to search listings", "error", err, "pattern", pattern)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to search listings")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listings)
}

// Details handles GET /packageDetails/{id} requests. A miss responds with a
// JSON null body, not a 404.
func (h *ListingHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid listing id")
		return
	}

	listing, err := h.listings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrListingNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		slog.Error("failed to get listing", "error", err, "listing_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load listing")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listing)
}

// Delete handles DELETE /deletePackage/{id} requests and returns the store's
// deletion result.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid listing id")
		return
	}

	result, err := h.listings.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete listing", "error", err, "listing_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete listing")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
