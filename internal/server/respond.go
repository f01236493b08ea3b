package server

import (
	"encoding/json"
	"net/http"

	"github.com/aerosys-mx/bookings-admin/internal/pgerr"
)

// failureEnvelope is the body of every failed mutation or query.
// DB is present only when a database error carries structured metadata.
type failureEnvelope struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	DB      *pgerr.Normalized `json:"db,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondRows serializes a row set as a bare JSON array.
func respondRows(w http.ResponseWriter, rows []map[string]any) {
	writeJSON(w, http.StatusOK, rows)
}

// respondRow serializes a single row as a bare JSON object.
func respondRow(w http.ResponseWriter, row map[string]any) {
	writeJSON(w, http.StatusOK, row)
}

// respondSuccess acknowledges a completed mutation.
func respondSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// respondNotFound reports a missing resource. No db payload: nothing failed
// at the database level.
func respondNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, failureEnvelope{Error: "No encontrado"})
}

// respondDBError normalizes a database error into the structured failure
// envelope and maps its SQLSTATE to the response status.
func (s *Server) respondDBError(w http.ResponseWriter, err error) {
	n := pgerr.Normalize(err)
	writeJSON(w, pgerr.StatusFor(n), failureEnvelope{Error: n.Message, DB: &n})
}

// respondBadBody reports an unreadable request body through the same
// class-22 path as any other malformed input.
func (s *Server) respondBadBody(w http.ResponseWriter) {
	s.respondDBError(w, pgerr.DataException("Cuerpo JSON inválido"))
}
