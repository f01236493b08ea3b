package server

import (
	"net/http"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

// Reference lists: compact read-only lookups the frontend uses to populate
// selectors. Capped harder than the full entity lists.

func (s *Server) listQuery(w http.ResponseWriter, r *http.Request, b *database.SelectBuilder) {
	sql, args, err := b.Build()
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	rows, err := s.store.Query(r.Context(), roleFrom(r.Context()), sql, args...)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondRows(w, rows)
}

func (s *Server) handleRefAirports(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.airports_data").
		OrderBy("airport_code", database.Asc).
		Limit(100))
}

func (s *Server) handleRefAircrafts(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.aircrafts_data").
		OrderBy("aircraft_code", database.Asc).
		Limit(100))
}

func (s *Server) handleRefSeats(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.seats").
		OrderBy("aircraft_code", database.Asc).
		OrderBy("seat_no", database.Asc).
		Limit(100))
}

func (s *Server) handleRefFlights(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.flights").
		Columns("flight_id", "flight_no", "scheduled_departure", "status").
		OrderBy("scheduled_departure", database.Desc).
		OrderBy("flight_id", database.Desc).
		Limit(50))
}
