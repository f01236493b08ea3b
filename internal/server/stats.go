package server

import (
	"net/http"
)

// handleStats serves the dashboard counters. Four independent aggregates;
// any failure aborts the whole response.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx, role := r.Context(), roleFrom(r.Context())

	queries := []struct {
		key string
		sql string
		col string
	}{
		{"bookings", "SELECT count(*) FROM bookings.bookings", "count"},
		{"flights", "SELECT count(*) FROM bookings.flights", "count"},
		{"passengers", "SELECT count(*) FROM bookings.tickets", "count"},
		{"income", "SELECT sum(total_amount) FROM bookings.bookings", "sum"},
	}

	out := make(map[string]any, len(queries))
	for _, q := range queries {
		rows, err := s.store.Query(ctx, role, q.sql)
		if err != nil {
			s.respondDBError(w, err)
			return
		}
		if len(rows) > 0 {
			out[q.key] = rows[0][q.col]
		}
	}

	writeJSON(w, http.StatusOK, out)
}
