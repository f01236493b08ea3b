package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

// Seats carry a composite key (aircraft_code, seat_no): rows are created
// and deleted, never edited in place.

func (s *Server) handleSeatsList(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.seats").
		Columns("aircraft_code", "seat_no", "fare_conditions").
		OrderBy("aircraft_code", database.Asc).
		OrderBy("seat_no", database.Asc).
		Limit(500))
}

func (s *Server) handleSeatsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AircraftCode   string `json:"aircraft_code"`
		SeatNo         string `json:"seat_no"`
		FareConditions string `json:"fare_conditions"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	sql := `INSERT INTO bookings.seats (aircraft_code, seat_no, fare_conditions)
		VALUES ($1, $2, $3)`
	_, err := s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.AircraftCode, body.SeatNo, body.FareConditions)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleSeatsDelete(w http.ResponseWriter, r *http.Request) {
	affected, err := s.store.Exec(r.Context(), roleFrom(r.Context()),
		"DELETE FROM bookings.seats WHERE aircraft_code = $1 AND seat_no = $2",
		chi.URLParam(r, "aircraft_code"), chi.URLParam(r, "seat_no"))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	if affected == 0 {
		respondNotFound(w)
		return
	}
	respondSuccess(w)
}
