package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

type reportOrder struct {
	column string
	dir    database.SortDirection
}

// reportSpec binds a public report key to its backing view and the stable
// ordering its consumers expect.
type reportSpec struct {
	view    string
	orderBy []reportOrder
}

// reportViews is the whitelist: only these keys reach the database.
var reportViews = map[string]reportSpec{
	"itinerario": {
		view:    "bookings.v_itinerario_publico",
		orderBy: []reportOrder{{"scheduled_departure", database.Desc}, {"flight_id", database.Desc}},
	},
	"abordaje": {
		view:    "bookings.v_lista_abordaje",
		orderBy: []reportOrder{{"flight_no", database.Asc}, {"boarding_no", database.Asc}},
	},
	"gestion": {
		view:    "bookings.v_gestion_vuelos",
		orderBy: []reportOrder{{"scheduled_departure", database.Desc}, {"flight_id", database.Desc}},
	},
	"flota": {
		view:    "bookings.v_control_flota",
		orderBy: []reportOrder{{"aircraft_code", database.Asc}},
	},
	"ingresos": {
		view:    "bookings.v_analisis_ingresos",
		orderBy: []reportOrder{{"fecha_compra", database.Desc}},
	},
}

// reportRows resolves the key against the whitelist and fetches the rows.
// The bool result reports whether the key exists; unknown keys never touch
// the database.
func (s *Server) reportRows(r *http.Request, key string) ([]map[string]any, bool, error) {
	spec, ok := reportViews[key]
	if !ok {
		return nil, false, nil
	}

	b := database.Select(spec.view)
	for _, o := range spec.orderBy {
		b.OrderBy(o.column, o.dir)
	}
	sql, args, err := b.Limit(100).Build()
	if err != nil {
		return nil, true, err
	}

	rows, err := s.store.Query(r.Context(), roleFrom(r.Context()), sql, args...)
	return rows, true, err
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rows, known, err := s.reportRows(r, chi.URLParam(r, "view"))
	if !known {
		writeJSON(w, http.StatusNotFound, failureEnvelope{Error: "Vista no encontrada"})
		return
	}
	if err != nil {
		s.respondDBError(w, err)
		return
	}
	respondRows(w, rows)
}

// handleReportExport archives a snapshot of the report to object storage.
// Administration only: exports create durable artifacts.
func (s *Server) handleReportExport(w http.ResponseWriter, r *http.Request) {
	if roleFrom(r.Context()) != database.RoleAdmin {
		writeJSON(w, http.StatusForbidden, failureEnvelope{Error: "Permisos insuficientes"})
		return
	}

	key := chi.URLParam(r, "view")
	rows, known, err := s.reportRows(r, key)
	if !known {
		writeJSON(w, http.StatusNotFound, failureEnvelope{Error: "Vista no encontrada"})
		return
	}
	if err != nil {
		s.respondDBError(w, err)
		return
	}

	object, err := s.archiver.ArchiveReport(r.Context(), key, rows)
	if err != nil {
		s.log.ErrorWith("report export failed", err, map[string]any{"report": key})
		writeJSON(w, http.StatusInternalServerError, failureEnvelope{Error: "No se pudo exportar el reporte"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"object":  object,
		"rows":    len(rows),
	})
}
