package database

// Role is a named privilege tier bound to one database credential set.
// The values are the PostgreSQL role names of the demo schema.
type Role string

const (
	RoleViewer   Role = "rol_consulta"
	RoleOperator Role = "rol_operaciones"
	RoleAdmin    Role = "rol_administracion"
)

// ParseRole maps a caller-supplied role token onto a known Role.
// Unknown, empty, or absent tokens resolve to RoleViewer: role selection
// fails safe toward least privilege, never open toward elevated access and
// never with an error that would block read-only operations.
func ParseRole(token string) Role {
	switch Role(token) {
	case RoleViewer, RoleOperator, RoleAdmin:
		return Role(token)
	default:
		return RoleViewer
	}
}

// Roles returns every known role, lowest privilege first.
func Roles() []Role {
	return []Role{RoleViewer, RoleOperator, RoleAdmin}
}
