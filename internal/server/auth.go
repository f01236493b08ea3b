package server

import (
	"net/http"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

// account maps one demo login to its database role and display name.
type account struct {
	password string
	role     database.Role
	name     string
}

// accounts is the fixed credential table of the demo deployment. The real
// privilege boundary is the per-role database grants, not this table.
var accounts = map[string]account{
	"usuario_admin":       {password: "admin123", role: database.RoleAdmin, name: "Administrador Total"},
	"usuario_operaciones": {password: "operaciones123", role: database.RoleOperator, name: "Operador de Vuelo"},
	"usuario_consulta":    {password: "consulta123", role: database.RoleViewer, name: "Visitante"},
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondBadBody(w)
		return
	}

	acc, ok := accounts[body.Username]
	if !ok || acc.password != body.Password {
		s.log.InfoWith("login failed", map[string]any{"username": body.Username})
		writeJSON(w, http.StatusUnauthorized, failureEnvelope{Error: "Credenciales inválidas"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]any{
			"username": body.Username,
			"role":     acc.role,
			"name":     acc.name,
		},
	})
}
