package adminview

import (
	"fmt"
	"strings"

	"github.com/aerosys-mx/bookings-admin/internal/pgerr"
)

// ComposeError builds the multi-line text shown to the operator when a
// mutation fails. The first line identifies the failing constraint when the
// database reported one, otherwise the SQLSTATE code; the following lines
// carry the raw message plus whatever detail, table and column the server
// included. Lines with no data are omitted.
func ComposeError(base string, db *pgerr.Normalized) string {
	if db == nil {
		return base
	}

	var lines []string

	switch {
	case db.Constraint != nil && *db.Constraint != "":
		lines = append(lines, fmt.Sprintf("Restricción violada: %s", *db.Constraint))
	case db.Code != nil && *db.Code != "":
		lines = append(lines, fmt.Sprintf("Código SQL: %s", *db.Code))
	}

	if db.Message != "" {
		lines = append(lines, db.Message)
	}
	if db.Detail != nil && *db.Detail != "" {
		lines = append(lines, fmt.Sprintf("Detalle: %s", *db.Detail))
	}
	if db.Table != nil && *db.Table != "" {
		lines = append(lines, fmt.Sprintf("Tabla: %s", *db.Table))
	}
	if db.Column != nil && *db.Column != "" {
		lines = append(lines, fmt.Sprintf("Columna: %s", *db.Column))
	}

	if len(lines) == 0 {
		return base
	}
	return strings.Join(lines, "\n")
}
