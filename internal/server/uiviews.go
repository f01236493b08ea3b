package server

import (
	"net/http"

	"github.com/aerosys-mx/bookings-admin/internal/adminview"
	"github.com/aerosys-mx/bookings-admin/internal/database"
)

// handleUIViews serves the registry driving the generic frontend. readOnly
// tells the renderer to hide every mutation control for the viewer role;
// the database grants enforce the same boundary server-side.
func (s *Server) handleUIViews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"views":    adminview.Views(),
		"reports":  adminview.Reports(),
		"readOnly": roleFrom(r.Context()) == database.RoleViewer,
	})
}
