package api

import (
	"log/slog"
	"net/http"

	"github.com/fellowtravellers/apartments-api/internal/api/shared"
	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// ReviewHandler handles review API requests.
type ReviewHandler struct {
	reviews store.ReviewStore
}

// NewReviewHandler creates a new ReviewHandler with the given dependencies.
func NewReviewHandler(reviews store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create handles POST /addReviews requests.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := shared.DecodeJSON(r, &review); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.reviews.Create(r.Context(), &review); err != nil {
		slog.Error("failed to create review", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create review")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// List handles GET /allReviews requests.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.List(r.Context())
	if err != nil {
		slog.Error("failed to list reviews", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviews)
}
