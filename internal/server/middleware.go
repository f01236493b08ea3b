package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/aerosys-mx/bookings-admin/internal/database"
)

type ctxKey int

const roleKey ctxKey = iota

// roleMiddleware resolves the caller's database role from the X-Role header
// and stores it in the request context. Absent or unknown values fall back
// to the read-only role inside ParseRole.
func roleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := database.ParseRole(r.Header.Get("X-Role"))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), roleKey, role)))
	})
}

// roleFrom returns the role stored by roleMiddleware, falling back to the
// read-only role when the middleware did not run (direct handler tests).
func roleFrom(ctx context.Context) database.Role {
	if role, ok := ctx.Value(roleKey).(database.Role); ok {
		return role
	}
	return database.RoleViewer
}

// corsMiddleware allows the browser frontend, served from another origin,
// to call the API with the custom X-Role header.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Role")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request with method, path, role, status
// and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.InfoWith("request", map[string]any{
			"method":   r.Method,
			"path":     r.URL.Path,
			"role":     r.Header.Get("X-Role"),
			"status":   ww.Status(),
			"duration": time.Since(start).String(),
		})
	})
}
