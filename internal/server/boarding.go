package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

func (s *Server) handleBoardingList(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.boarding_passes").
		OrderBy("flight_id", database.Desc).
		OrderBy("boarding_no", database.Asc).
		Limit(50))
}

func (s *Server) handleBoardingGet(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Query(r.Context(), roleFrom(r.Context()),
		"SELECT * FROM bookings.boarding_passes WHERE ticket_no = $1",
		chi.URLParam(r, "ticket_no"))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	if len(rows) == 0 {
		respondNotFound(w)
		return
	}
	respondRow(w, rows[0])
}

func (s *Server) handleBoardingCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TicketNo   string `json:"ticket_no"`
		FlightID   *int   `json:"flight_id"`
		BoardingNo *int   `json:"boarding_no"`
		SeatNo     string `json:"seat_no"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	sql := `INSERT INTO bookings.boarding_passes (ticket_no, flight_id, boarding_no, seat_no)
		VALUES ($1, $2, $3, $4)`
	_, err := s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.TicketNo, body.FlightID, body.BoardingNo, body.SeatNo)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleBoardingUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FlightID   *int   `json:"flight_id"`
		BoardingNo *int   `json:"boarding_no"`
		SeatNo     string `json:"seat_no"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	sql := `UPDATE bookings.boarding_passes
		SET flight_id = $1,
		    boarding_no = $2,
		    seat_no = $3
		WHERE ticket_no = $4`
	_, err := s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.FlightID, body.BoardingNo, body.SeatNo, chi.URLParam(r, "ticket_no"))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleBoardingDelete(w http.ResponseWriter, r *http.Request) {
	affected, err := s.store.Exec(r.Context(), roleFrom(r.Context()),
		"DELETE FROM bookings.boarding_passes WHERE ticket_no = $1",
		chi.URLParam(r, "ticket_no"))
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
