package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

func (s *Server) handleAircraftsList(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.aircrafts_data").
		OrderBy("aircraft_code", database.Asc).
		Limit(100))
}

func (s *Server) handleAircraftsGet(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Query(r.Context(), roleFrom(r.Context()),
		"SELECT * FROM bookings.aircrafts_data WHERE aircraft_code = $1",
		chi.URLParam(r, "code"))
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

func (s *Server) handleAircraftsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AircraftCode string `json:"aircraft_code"`
		Model        any    `json:"model"`
		Range        *int   `json:"range"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	sql := "CALL bookings.sp_aircrafts_insert($1, $2::jsonb, $3);"
	_, err := s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.AircraftCode, localizedJSON(body.Model), body.Range)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleAircraftsUpdateRange(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NewRange *int `json:"new_range"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	err := s.store.CallProc(r.Context(), roleFrom(r.Context()),
		"bookings.sp_aircrafts_update_range", chi.URLParam(r, "code"), body.NewRange)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleAircraftsDelete(w http.ResponseWriter, r *http.Request) {
	err := s.store.CallProc(r.Context(), roleFrom(r.Context()),
		"bookings.sp_aircrafts_delete", chi.URLParam(r, "code"))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}
