package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(&Config{Level: "info", Format: "json", Output: buf})

	log.Info("servidor iniciado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "servidor iniciado", entry["message"])
	assert.NotEmpty(t, entry["time"])
}

func TestLogger_ChildFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(&Config{Level: "info", Format: "json", Output: buf})

	child := log.With().
		Str("role", "rol_consulta").
		Int("status", 200).
		Logger()
	child.Info("request handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "rol_consulta", entry["role"])
	assert.Equal(t, float64(200), entry["status"])
}

func TestLogger_ErrorWith(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(&Config{Level: "error", Format: "json", Output: buf})

	log.ErrorWith("db error", errors.New("fk violation"), map[string]any{
		"sql": "DELETE FROM bookings.flights WHERE flight_id = $1",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "fk violation", entry["error"])
	assert.Contains(t, entry["sql"], "DELETE FROM")
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		logFunc func(*Logger)
		want    bool
	}{
		{"debug level logs debug", "debug", func(l *Logger) { l.Debug("d") }, true},
		{"info level skips debug", "info", func(l *Logger) { l.Debug("d") }, false},
		{"error level skips info", "error", func(l *Logger) { l.Info("i") }, false},
		{"error level logs error", "error", func(l *Logger) { l.Error("e") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.logFunc(New(&Config{Level: tt.level, Format: "json", Output: buf}))

			if tt.want {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_NilConfig(t *testing.T) {
	assert.NotNil(t, New(nil))
}
