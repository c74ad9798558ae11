package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fellowtravellers/apartments-api/internal/api"
	apiMiddleware "github.com/fellowtravellers/apartments-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The route paths predate this implementation and are kept
// verbatim for the deployed clients, duplicate /myBookings verbs included.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Bound every request, store calls included, so a stuck store operation
	// cannot leave a response pending forever.
	r.Use(middleware.Timeout(time.Duration(app.config.Server.RequestTimeoutSeconds) * time.Second))

	// Identity annotation is fail-open and applies to the whole tree; only
	// the admin-promotion handler reads the result.
	identity := apiMiddleware.NewIdentityMiddleware(app.tokenVerifier)
	r.Use(identity.Annotate)

	listingHandler := api.NewListingHandler(app.listingStore)
	bookingHandler := api.NewBookingHandler(app.bookingStore)
	reviewHandler := api.NewReviewHandler(app.reviewStore)
	userHandler := api.NewUserHandler(app.userStore)

	// Listings
	r.Post("/addEvent", listingHandler.Create)
	r.Get("/allPackages", listingHandler.List)
	r.Get("/searchPackages", listingHandler.Search)
	r.Get("/packageDetails/{id}", listingHandler.Details)
	r.Delete("/deletePackage/{id}", listingHandler.Delete)

	// Bookings
	r.Post("/addNewBooking", bookingHandler.Create)
	r.Get("/allBookings", bookingHandler.List)
	r.Get("/myBookings/{email}", bookingHandler.ListByEmail)
	r.Post("/myBookings/{email}", bookingHandler.ListByEmail)
	r.Put("/updateStatus/{id}", bookingHandler.Approve)
	r.Delete("/deleteBooking/{id}", bookingHandler.Delete)

	// Reviews
	r.Post("/addReviews", reviewHandler.Create)
	r.Get("/allReviews", reviewHandler.List)

	// Users
	r.Post("/users", userHandler.Create)
	r.Put("/users", userHandler.Upsert)
	r.Put("/users/admin", userHandler.PromoteAdmin)
	r.Get("/users/{email}", userHandler.AdminStatus)

	// Liveness endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Fellow Travellers server is running")); err != nil {
			app.logger.Error("failed to write liveness response", "error", err)
		}
	})

	return r
}
