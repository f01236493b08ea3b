package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aerosys-mx/bookings-admin/internal/pgerr"
)

// decodeBody parses the JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// normalizeLocalized shapes a value for a localized jsonb column: plain
// strings become {"es": s}, objects pass through, other scalars are
// stringified into {"es": ...}. nil stays nil.
func normalizeLocalized(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return map[string]any{"es": x}
	case map[string]any:
		return x
	default:
		return map[string]any{"es": fmt.Sprint(x)}
	}
}

// localizedJSON renders the normalized value as jsonb input text.
func localizedJSON(v any) string {
	b, err := json.Marshal(normalizeLocalized(v))
	if err != nil {
		return "null"
	}
	return string(b)
}

// jsonbParam shapes a free-form value for a jsonb column: nil maps to NULL,
// objects and arrays are serialized, valid JSON text passes through, and
// any other string is stored as a JSON string.
func jsonbParam(v any) *string {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		if json.Valid([]byte(s)) {
			return &s
		}
		quoted, err := json.Marshal(s)
		if err != nil {
			return nil
		}
		out := string(quoted)
		return &out
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	out := string(b)
	return &out
}

// emptyToNull maps nil and blank strings to nil, trimming everything else.
func emptyToNull(v any) any {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return nil
	}
	return s
}

// timestampLayouts are the accepted input formats, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp validates an optional ISO timestamp. Blank input maps to
// nil; anything unparseable raises a class-22 data exception so the caller
// sees the same failure shape as a native type error.
func parseTimestamp(v any, field string) (any, error) {
	x := emptyToNull(v)
	if x == nil {
		return nil, nil
	}
	s := x.(string)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, pgerr.DataException(
		fmt.Sprintf("Formato inválido para %s. Usa ISO: 2026-02-04T12:30:00Z", field))
}
