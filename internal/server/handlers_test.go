package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportsGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := &fakeStore{rows: []map[string]any{{
			"airport_code": "MEX",
			"timezone":     "America/Mexico_City",
		}}}
		w := doJSON(newTestRouter(store), http.MethodGet, "/api/airports/MEX", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		out := decodeMap(t, w)
		assert.Equal(t, "MEX", out["airport_code"])

		call := store.lastCall(t)
		assert.Contains(t, call.sql, "WHERE airport_code = $1")
		assert.Equal(t, []any{"MEX"}, call.args)
	})

	t.Run("missing", func(t *testing.T) {
		w := doJSON(newTestRouter(&fakeStore{}), http.MethodGet, "/api/airports/ZZZ", "", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		out := decodeMap(t, w)
		assert.Equal(t, "No encontrado", out["error"])
		_, hasDB := out["db"]
		assert.False(t, hasDB)
	})
}

func TestAirportsCreateNormalizesJSONB(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
	}{
		{
			name:     "plain string wrapped",
			body:     `{"airport_code":"MEX","airport_name":"AICM","city":"CDMX","coordinates":{"x":-99.07,"y":19.43},"timezone":"America/Mexico_City"}`,
			wantName: `{"es":"AICM"}`,
		},
		{
			name:     "object passes through",
			body:     `{"airport_code":"MEX","airport_name":{"es":"AICM","en":"Mexico City"},"city":"CDMX","coordinates":{"x":-99.07,"y":19.43},"timezone":"America/Mexico_City"}`,
			wantName: `{"en":"Mexico City","es":"AICM"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			w := doJSON(newTestRouter(store), http.MethodPost, "/api/airports", "rol_administracion", tt.body)
			require.Equal(t, http.StatusOK, w.Code)

			call := store.lastCall(t)
			assert.Contains(t, call.sql, "CALL bookings.sp_airports_insert")
			assert.Contains(t, call.sql, "point($4,$5)")
			require.Len(t, call.args, 6)
			assert.Equal(t, "MEX", call.args[0])
			assert.JSONEq(t, tt.wantName, call.args[1].(string))
			assert.JSONEq(t, `{"es":"CDMX"}`, call.args[2].(string))
		})
	}
}

func TestAirportsUpdateTimezone(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodPut, "/api/airports/MEX/timezone",
		"rol_administracion", `{"timezone":"America/Cancun"}`)
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	assert.Equal(t, "call", call.kind)
	assert.Equal(t, "bookings.sp_airports_update_timezone", call.sql)
	assert.Equal(t, []any{"MEX", "America/Cancun"}, call.args)
}

func TestAircraftsCreate(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodPost, "/api/aircrafts",
		"rol_administracion", `{"aircraft_code":"320","model":"Airbus A320","range":6100}`)
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	assert.Contains(t, call.sql, "CALL bookings.sp_aircrafts_insert($1, $2::jsonb, $3);")
	require.Len(t, call.args, 3)
	assert.JSONEq(t, `{"es":"Airbus A320"}`, call.args[1].(string))
	rng := call.args[2].(*int)
	assert.Equal(t, 6100, *rng)
}

func TestAircraftsDeleteUsesProcedure(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodDelete, "/api/aircrafts/320", "rol_administracion", "")
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	assert.Equal(t, "call", call.kind)
	assert.Equal(t, "bookings.sp_aircrafts_delete", call.sql)
	assert.Equal(t, []any{"320"}, call.args)
	assert.Equal(t, true, decodeMap(t, w)["success"])
}

func TestFlightsList(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodGet, "/api/flights", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	call := store.lastCall(t)
	assert.Contains(t, call.sql, `"actual_departure"`)
	assert.Contains(t, call.sql, `ORDER BY "scheduled_departure" DESC, "flight_id" DESC`)
	assert.Equal(t, []any{200}, call.args)
}

func TestFlightsCreateRejectsBadTimestamp(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodPost, "/api/flights", "rol_operaciones",
		`{"flight_no":"PG0404","scheduled_departure":"no-es-fecha","scheduled_arrival":"2026-02-04T14:10:00Z"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	out := decodeMap(t, w)
	db := out["db"].(map[string]any)
	assert.Equal(t, "22P02", db["code"])
	assert.Contains(t, out["error"], "scheduled_departure")

	// rejected before any statement was issued
	assert.Empty(t, store.calls)
}

func TestFlightsGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := &fakeStore{rows: []map[string]any{{"flight_id": int64(42), "flight_no": "PG0404"}}}
		w := doJSON(newTestRouter(store), http.MethodGet, "/api/flights/42", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "PG0404", decodeMap(t, w)["flight_no"])
		assert.Equal(t, []any{"42"}, store.lastCall(t).args)
	})

	t.Run("missing", func(t *testing.T) {
		w := doJSON(newTestRouter(&fakeStore{}), http.MethodGet, "/api/flights/999", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlightsUpdate(t *testing.T) {
	store := &fakeStore{affected: 1}
	w := doJSON(newTestRouter(store), http.MethodPut, "/api/flights/42", "rol_operaciones",
		`{"flight_no":"PG0404","scheduled_departure":"2026-02-04T12:30:00Z","scheduled_arrival":"2026-02-04T14:10:00Z","departure_airport":"MEX","arrival_airport":"CUN","status":"Delayed","aircraft_code":"320"}`)
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	assert.Contains(t, call.sql, "UPDATE bookings.flights")
	assert.Contains(t, call.sql, "WHERE flight_id = $8")
	require.Len(t, call.args, 8)
	assert.Equal(t, "42", call.args[7])
}

func TestDirectDeleteMissingRowIs404(t *testing.T) {
	paths := []string{
		"/api/flights/999",
		"/api/tickets/0000000000000",
		"/api/boarding/0000000000000",
		"/api/seats/320/99Z",
		"/api/ticket_flights/0000000000000/999",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			store := &fakeStore{affected: 0}
			w := doJSON(newTestRouter(store), http.MethodDelete, path, "rol_administracion", "")

			require.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "No encontrado", decodeMap(t, w)["error"])
		})
	}
}

func TestSeatsDeleteCompositeKey(t *testing.T) {
	store := &fakeStore{affected: 1}
	w := doJSON(newTestRouter(store), http.MethodDelete, "/api/seats/320/12A", "rol_administracion", "")
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	assert.Contains(t, call.sql, "WHERE aircraft_code = $1 AND seat_no = $2")
	assert.Equal(t, []any{"320", "12A"}, call.args)
}

func TestTicketFlightsDeleteCompositeKey(t *testing.T) {
	store := &fakeStore{affected: 1}
	w := doJSON(newTestRouter(store), http.MethodDelete,
		"/api/ticket_flights/0005432000987/42", "rol_administracion", "")
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	assert.Contains(t, call.sql, "WHERE ticket_no = $1 AND flight_id = $2")
	assert.Equal(t, []any{"0005432000987", "42"}, call.args)
}

func TestBookingsCreateStampsBookDate(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodPost, "/api/bookings",
		"rol_administracion", `{"book_ref":"ABC123","total_amount":1500}`)
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	assert.Equal(t, "bookings.sp_bookings_insert", call.sql)
	require.Len(t, call.args, 3)
	assert.Equal(t, "ABC123", call.args[0])
	assert.NotNil(t, call.args[1])
	amount := call.args[2].(*float64)
	assert.Equal(t, 1500.0, *amount)
}

func TestTicketsCreateContactData(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "object serialized",
			body: `{"ticket_no":"0005432000000","book_ref":"ABC123","passenger_id":"1234 567890","passenger_name":"Juan Pérez","contact_data":{"email":"test@test.com"}}`,
			want: `{"email":"test@test.com"}`,
		},
		{
			name: "json text passes through",
			body: `{"ticket_no":"0005432000000","book_ref":"ABC123","passenger_id":"1234 567890","passenger_name":"Juan Pérez","contact_data":"{\"phone\":\"+52 555\"}"}`,
			want: `{"phone":"+52 555"}`,
		},
		{
			name: "plain text becomes json string",
			body: `{"ticket_no":"0005432000000","book_ref":"ABC123","passenger_id":"1234 567890","passenger_name":"Juan Pérez","contact_data":"sin contacto"}`,
			want: `"sin contacto"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			w := doJSON(newTestRouter(store), http.MethodPost, "/api/tickets", "rol_administracion", tt.body)
			require.Equal(t, http.StatusOK, w.Code)

			call := store.lastCall(t)
			require.Len(t, call.args, 5)
			got := call.args[4].(*string)
			require.NotNil(t, got)
			assert.JSONEq(t, tt.want, *got)
		})
	}
}

func TestTicketsCreateNilContactData(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodPost, "/api/tickets", "rol_administracion",
		`{"ticket_no":"0005432000000","book_ref":"ABC123","passenger_id":"1234 567890","passenger_name":"Juan Pérez"}`)
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	require.Len(t, call.args, 5)
	assert.Nil(t, call.args[4].(*string))
}

func TestBoardingUpdate(t *testing.T) {
	store := &fakeStore{affected: 1}
	w := doJSON(newTestRouter(store), http.MethodPut, "/api/boarding/0005432000000",
		"rol_operaciones", `{"flight_id":42,"boarding_no":7,"seat_no":"12A"}`)
	require.Equal(t, http.StatusOK, w.Code)

	call := store.lastCall(t)
	assert.Contains(t, call.sql, "UPDATE bookings.boarding_passes")
	require.Len(t, call.args, 4)
	assert.Equal(t, "0005432000000", call.args[3])
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodPost, "/api/seats", "rol_operaciones", `{"aircraft`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	db := decodeMap(t, w)["db"].(map[string]any)
	assert.Equal(t, "22P02", db["code"])
	assert.Empty(t, store.calls)
}
