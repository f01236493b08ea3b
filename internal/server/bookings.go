package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

func (s *Server) handleBookingsList(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.bookings").
		OrderBy("book_date", database.Desc).
		OrderBy("book_ref", database.Desc).
		Limit(50))
}

func (s *Server) handleBookingsGet(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Query(r.Context(), roleFrom(r.Context()),
		"SELECT * FROM bookings.bookings WHERE book_ref = $1",
		chi.URLParam(r, "ref"))
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

func (s *Server) handleBookingsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		BookRef     string   `json:"book_ref"`
		TotalAmount *float64 `json:"total_amount"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	// book_date is stamped server-side at creation
	err := s.store.CallProc(r.Context(), roleFrom(r.Context()),
		"bookings.sp_bookings_insert", body.BookRef, time.Now(), body.TotalAmount)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleBookingsUpdateTotal(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TotalAmount *float64 `json:"total_amount"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	err := s.store.CallProc(r.Context(), roleFrom(r.Context()),
		"bookings.sp_bookings_update_total", chi.URLParam(r, "ref"), body.TotalAmount)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleBookingsDelete(w http.ResponseWriter, r *http.Request) {
	err := s.store.CallProc(r.Context(), roleFrom(r.Context()),
		"bookings.sp_bookings_delete", chi.URLParam(r, "ref"))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}
