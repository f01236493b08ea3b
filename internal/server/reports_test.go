package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerosys-mx/bookings-admin/internal/export"
	"github.com/aerosys-mx/bookings-admin/internal/filestore"
)

func TestReportWhitelist(t *testing.T) {
	tests := []struct {
		key     string
		from    string
		orderBy string
	}{
		{"itinerario", `FROM "bookings"."v_itinerario_publico"`, `ORDER BY "scheduled_departure" DESC, "flight_id" DESC`},
		{"abordaje", `FROM "bookings"."v_lista_abordaje"`, `ORDER BY "flight_no" ASC, "boarding_no" ASC`},
		{"gestion", `FROM "bookings"."v_gestion_vuelos"`, `ORDER BY "scheduled_departure" DESC, "flight_id" DESC`},
		{"flota", `FROM "bookings"."v_control_flota"`, `ORDER BY "aircraft_code" ASC`},
		{"ingresos", `FROM "bookings"."v_analisis_ingresos"`, `ORDER BY "fecha_compra" DESC`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store := &fakeStore{rows: []map[string]any{{"x": 1}}}
			w := doJSON(newTestRouter(store), http.MethodGet, "/api/reports/"+tt.key, "rol_consulta", "")
			require.Equal(t, http.StatusOK, w.Code)

			call := store.lastCall(t)
			assert.Contains(t, call.sql, tt.from)
			assert.Contains(t, call.sql, tt.orderBy)
			assert.Equal(t, []any{100}, call.args)

			var rows []map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
			assert.Len(t, rows, 1)
		})
	}
}

func TestReportUnknownKey(t *testing.T) {
	store := &fakeStore{}
	w := doJSON(newTestRouter(store), http.MethodGet, "/api/reports/nomina", "rol_consulta", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Vista no encontrada", decodeMap(t, w)["error"])
	// the key never reaches the database
	assert.Empty(t, store.calls)
}

// archiveStore is a minimal filestore.Store for export tests.
type archiveStore struct {
	key  string
	body []byte
}

func (a *archiveStore) Ping(context.Context) error { return nil }
func (a *archiveStore) Close() error               { return nil }

func (a *archiveStore) PutObject(_ context.Context, _, key string, r io.Reader, _ int64, _ string) (*filestore.ObjectInfo, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	a.key, a.body = key, body
	return &filestore.ObjectInfo{Key: key, Size: int64(len(body))}, nil
}

func (a *archiveStore) StatObject(_ context.Context, _, key string) (*filestore.ObjectInfo, error) {
	return &filestore.ObjectInfo{Key: key}, nil
}

func newExportRouter(store *fakeStore, objects *archiveStore) http.Handler {
	log := testLogger()
	archiver := export.New(objects, "aerosys-reports", log)
	return New(store, log, archiver).Router()
}

func TestReportExport(t *testing.T) {
	t.Run("admin archives snapshot", func(t *testing.T) {
		objects := &archiveStore{}
		store := &fakeStore{rows: []map[string]any{{"flight_no": "PG0404"}}}
		w := doJSON(newExportRouter(store, objects), http.MethodPost,
			"/api/reports/itinerario/export", "rol_administracion", "")

		require.Equal(t, http.StatusOK, w.Code)
		out := decodeMap(t, w)
		assert.Equal(t, true, out["success"])
		assert.Equal(t, float64(1), out["rows"])
		assert.Equal(t, out["object"], objects.key)
		assert.Contains(t, objects.key, "reports/itinerario/")
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		store := &fakeStore{}
		w := doJSON(newExportRouter(store, &archiveStore{}), http.MethodPost,
			"/api/reports/itinerario/export", "rol_operaciones", "")

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.calls)
	})

	t.Run("unknown report", func(t *testing.T) {
		w := doJSON(newExportRouter(&fakeStore{}, &archiveStore{}), http.MethodPost,
			"/api/reports/nomina/export", "rol_administracion", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("not mounted without archiver", func(t *testing.T) {
		w := doJSON(newTestRouter(&fakeStore{}), http.MethodPost,
			"/api/reports/itinerario/export", "rol_administracion", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUIViews(t *testing.T) {
	t.Run("viewer gets read-only flag", func(t *testing.T) {
		w := doJSON(newTestRouter(&fakeStore{}), http.MethodGet, "/api/ui/views", "rol_consulta", "")
		require.Equal(t, http.StatusOK, w.Code)

		out := decodeMap(t, w)
		assert.Equal(t, true, out["readOnly"])
		assert.Len(t, out["views"], 8)
		assert.Len(t, out["reports"], 5)
	})

	t.Run("admin is not read-only", func(t *testing.T) {
		w := doJSON(newTestRouter(&fakeStore{}), http.MethodGet, "/api/ui/views", "rol_administracion", "")
		out := decodeMap(t, w)
		assert.Equal(t, false, out["readOnly"])
	})
}
