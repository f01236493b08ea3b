package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

// Airports are mutated exclusively through the catalog procedures, so the
// database owns every consistency rule.

func (s *Server) handleAirportsList(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.airports_data").
		OrderBy("airport_code", database.Asc).
		Limit(200))
}

func (s *Server) handleAirportsGet(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Query(r.Context(), roleFrom(r.Context()),
		"SELECT * FROM bookings.airports_data WHERE airport_code = $1",
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

func (s *Server) handleAirportsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AirportCode string `json:"airport_code"`
		AirportName any    `json:"airport_name"`
		City        any    `json:"city"`
		Coordinates struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		} `json:"coordinates"`
		Timezone string `json:"timezone"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	// point() is built server-side from the coordinate pair
	sql := "CALL bookings.sp_airports_insert($1, $2::jsonb, $3::jsonb, point($4,$5), $6);"
	_, err := s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.AirportCode,
		localizedJSON(body.AirportName),
		localizedJSON(body.City),
		body.Coordinates.X,
		body.Coordinates.Y,
		body.Timezone,
	)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleAirportsUpdateTimezone(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Timezone string `json:"timezone"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	err := s.store.CallProc(r.Context(), roleFrom(r.Context()),
		"bookings.sp_airports_update_timezone", chi.URLParam(r, "code"), body.Timezone)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleAirportsDelete(w http.ResponseWriter, r *http.Request) {
	err := s.store.CallProc(r.Context(), roleFrom(r.Context()),
		"bookings.sp_airports_delete", chi.URLParam(r, "code"))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}
