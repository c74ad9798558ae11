package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fellowtravellers/apartments-api/internal/api/shared"
	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// BookingHandler handles booking API requests.
type BookingHandler struct {
	bookings store.BookingStore
}

// NewBookingHandler creates a new BookingHandler with the given dependencies.
func NewBookingHandler(bookings store.BookingStore) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /addNewBooking requests.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var booking domain.Booking
	if err := shared.DecodeJSON(r, &booking); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.bookings.Create(r.Context(), &booking); err != nil {
		slog.Error("failed to create booking", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// List handles GET /allBookings requests.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		slog.Error("failed to list bookings", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load bookings")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookings)
}

// ListByEmail handles GET and POST /myBookings/{email} requests. Both verbs
// are registered for client compatibility and behave identically.
func (h *BookingHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	bookings, err := h.bookings.ListByEmail(r.Context(), email)
	if err != nil {
		slog.Error("failed to list bookings by email", "error", err, "email", email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load bookings")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookings)
}

// Approve handles PUT /updateStatus/{id} requests, setting the booking's
// status to "Approved". Approving twice leaves the same final state.
func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid booking id")
		return
	}

	result, err := h.bookings.Approve(r.Context(), id)
	if err != nil {
		slog.Error("failed to approve booking", "error", err, "booking_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update booking status")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Delete handles DELETE /deleteBooking/{id} requests.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid booking id")
		return
	}

	result, err := h.bookings.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete booking", "error", err, "booking_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
