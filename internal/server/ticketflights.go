package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

// Flight segments are written by the booking procedures; the API only
// lists and deletes them.

func (s *Server) handleTicketFlightsList(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.ticket_flights").
		Columns("ticket_no", "flight_id", "fare_conditions", "amount").
		OrderBy("flight_id", database.Desc).
		OrderBy("ticket_no", database.Desc).
		Limit(200))
}

func (s *Server) handleTicketFlightsDelete(w http.ResponseWriter, r *http.Request) {
	affected, err := s.store.Exec(r.Context(), roleFrom(r.Context()),
		"DELETE FROM bookings.ticket_flights WHERE ticket_no = $1 AND flight_id = $2",
		chi.URLParam(r, "ticket_no"), chi.URLParam(r, "flight_id"))
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
