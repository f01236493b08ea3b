// Package server exposes the administration API over HTTP: role-routed
// CRUD for every entity of the bookings schema, the report whitelist, and
// the view registry that drives the generic admin frontend.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aerosys-mx/bookings-admin/internal/database"
	"github.com/aerosys-mx/bookings-admin/internal/export"
	"github.com/aerosys-mx/bookings-admin/internal/logger"
)

// Server holds the handler dependencies. archiver is optional: when nil the
// report export endpoint is not mounted.
type Server struct {
	store    database.Store
	log      *logger.Logger
	archiver *export.Archiver
}

// New creates a Server over store. Pass a nil archiver to disable report
// exports.
func New(store database.Store, log *logger.Logger, archiver *export.Archiver) *Server {
	return &Server{store: store, log: log, archiver: archiver}
}

// Router builds the full route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(s.requestLogger)
	r.Use(roleMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Get("/stats", s.handleStats)
		r.Get("/ui/views", s.handleUIViews)

		r.Route("/refs", func(r chi.Router) {
			r.Get("/airports", s.handleRefAirports)
			r.Get("/aircrafts", s.handleRefAircrafts)
			r.Get("/seats", s.handleRefSeats)
			r.Get("/flights", s.handleRefFlights)
		})

		r.Route("/airports", func(r chi.Router) {
			r.Get("/", s.handleAirportsList)
			r.Post("/", s.handleAirportsCreate)
			r.Get("/{code}", s.handleAirportsGet)
			r.Put("/{code}/timezone", s.handleAirportsUpdateTimezone)
			r.Delete("/{code}", s.handleAirportsDelete)
		})

		r.Route("/aircrafts", func(r chi.Router) {
			r.Get("/", s.handleAircraftsList)
			r.Post("/", s.handleAircraftsCreate)
			r.Get("/{code}", s.handleAircraftsGet)
			r.Put("/{code}/range", s.handleAircraftsUpdateRange)
			r.Delete("/{code}", s.handleAircraftsDelete)
		})

		r.Route("/flights", func(r chi.Router) {
			r.Get("/", s.handleFlightsList)
			r.Post("/", s.handleFlightsCreate)
			r.Get("/{flight_id}", s.handleFlightsGet)
			r.Put("/{flight_id}", s.handleFlightsUpdate)
			r.Delete("/{flight_id}", s.handleFlightsDelete)
		})

		r.Route("/seats", func(r chi.Router) {
			r.Get("/", s.handleSeatsList)
			r.Post("/", s.handleSeatsCreate)
			r.Delete("/{aircraft_code}/{seat_no}", s.handleSeatsDelete)
		})

		r.Route("/ticket_flights", func(r chi.Router) {
			r.Get("/", s.handleTicketFlightsList)
			r.Delete("/{ticket_no}/{flight_id}", s.handleTicketFlightsDelete)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", s.handleBookingsList)
			r.Post("/", s.handleBookingsCreate)
			r.Get("/{ref}", s.handleBookingsGet)
			r.Put("/{ref}", s.handleBookingsUpdateTotal)
			r.Delete("/{ref}", s.handleBookingsDelete)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", s.handleTicketsList)
			r.Post("/", s.handleTicketsCreate)
			r.Get("/{ticket_no}", s.handleTicketsGet)
			r.Put("/{ticket_no}", s.handleTicketsUpdate)
			r.Delete("/{ticket_no}", s.handleTicketsDelete)
		})

		r.Route("/boarding", func(r chi.Router) {
			r.Get("/", s.handleBoardingList)
			r.Post("/", s.handleBoardingCreate)
			r.Get("/{ticket_no}", s.handleBoardingGet)
			r.Put("/{ticket_no}", s.handleBoardingUpdate)
			r.Delete("/{ticket_no}", s.handleBoardingDelete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/{view}", s.handleReport)
			if s.archiver != nil {
				r.Post("/{view}/export", s.handleReportExport)
			}
		})
	})

	return r
}
