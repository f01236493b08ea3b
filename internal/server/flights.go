package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

// Flights are plain DML: the operational table has no procedures, so the
// handlers validate timestamps up front and let table constraints handle
// the rest.

func (s *Server) handleFlightsList(w http.ResponseWriter, r *http.Request) {
	s.listQuery(w, r, database.Select("bookings.flights").
		Columns(
			"flight_id", "flight_no", "scheduled_departure", "scheduled_arrival",
			"status", "departure_airport", "arrival_airport", "aircraft_code",
			"actual_departure", "actual_arrival",
		).
		OrderBy("scheduled_departure", database.Desc).
		OrderBy("flight_id", database.Desc).
		Limit(200))
}

func (s *Server) handleFlightsGet(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Query(r.Context(), roleFrom(r.Context()),
		"SELECT * FROM bookings.flights WHERE flight_id = $1",
		chi.URLParam(r, "flight_id"))
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

// flightInput is the shared create/update body.
type flightInput struct {
	FlightNo           string `json:"flight_no"`
	ScheduledDeparture any    `json:"scheduled_departure"`
	ScheduledArrival   any    `json:"scheduled_arrival"`
	DepartureAirport   string `json:"departure_airport"`
	ArrivalAirport     string `json:"arrival_airport"`
	Status             string `json:"status"`
	AircraftCode       string `json:"aircraft_code"`
}

// timestamps validates both scheduled fields, returning the parsed values.
func (in *flightInput) timestamps() (dep, arr any, err error) {
	dep, err = parseTimestamp(in.ScheduledDeparture, "scheduled_departure")
	if err != nil {
		return nil, nil, err
	}
	arr, err = parseTimestamp(in.ScheduledArrival, "scheduled_arrival")
	if err != nil {
		return nil, nil, err
	}
	return dep, arr, nil
}

func (s *Server) handleFlightsCreate(w http.ResponseWriter, r *http.Request) {
	var body flightInput
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}
	dep, arr, err := body.timestamps()
	if err != nil {
		s.respondDBError(w, err)
		return
	}

	sql := `INSERT INTO bookings.flights
		(flight_no, scheduled_departure, scheduled_arrival, departure_airport, arrival_airport, status, aircraft_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.FlightNo, dep, arr,
		body.DepartureAirport, body.ArrivalAirport, body.Status, body.AircraftCode)
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleFlightsUpdate(w http.ResponseWriter, r *http.Request) {
	var body flightInput
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}
	dep, arr, err := body.timestamps()
	if err != nil {
		s.respondDBError(w, err)
		return
	}

	sql := `UPDATE bookings.flights
		SET flight_no = $1,
		    scheduled_departure = $2,
		    scheduled_arrival = $3,
		    departure_airport = $4,
		    arrival_airport = $5,
		    status = $6,
		    aircraft_code = $7
		WHERE flight_id = $8`
	_, err = s.store.Exec(r.Context(), roleFrom(r.Context()), sql,
		body.FlightNo, dep, arr,
		body.DepartureAirport, body.ArrivalAirport, body.Status, body.AircraftCode,
		chi.URLParam(r, "flight_id"))
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondSuccess(w)
}

func (s *Server) handleFlightsDelete(w http.ResponseWriter, r *http.Request) {
	affected, err := s.store.Exec(r.Context(), roleFrom(r.Context()),
		"DELETE FROM bookings.flights WHERE flight_id = $1",
		chi.URLParam(r, "flight_id"))
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
