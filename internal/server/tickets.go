package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

func (s *Server) handleTicketsList(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.tickets").
		OrderBy("ticket_no", database.Desc).
		Limit(50))
}

func (s *Server) handleTicketsGet(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Query(r.Context(), roleFrom(r.Context()),
		"SELECT * FROM bookings.tickets WHERE ticket_no = $1",
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

func (s *Server) handleTicketsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TicketNo      string `json:"ticket_no"`
		BookRef       string `json:"book_ref"`
		PassengerID   string `json:"passenger_id"`
		PassengerName string `json:"passenger_name"`
		ContactData   any    `json:"contact_data"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	sql := `INSERT INTO bookings.tickets (ticket_no, book_ref, passenger_id, passenger_name, contact_data)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.TicketNo, body.BookRef, body.PassengerID, body.PassengerName,
		jsonbParam(body.ContactData))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleTicketsUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		BookRef       string `json:"book_ref"`
		PassengerID   string `json:"passenger_id"`
		PassengerName string `json:"passenger_name"`
		ContactData   any    `json:"contact_data"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	sql := `UPDATE bookings.tickets
		SET book_ref = $1,
		    passenger_id = $2,
		    passenger_name = $3,
		    contact_data = $4
		WHERE ticket_no = $5`
	_, err := s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.BookRef, body.PassengerID, body.PassengerName,
		jsonbParam(body.ContactData), chi.URLParam(r, "ticket_no"))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleTicketsDelete(w http.ResponseWriter, r *http.Request) {
	affected, err := s.store.Exec(r.Context(), roleFrom(r.Context()),
		"DELETE FROM bookings.tickets WHERE ticket_no = $1",
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
