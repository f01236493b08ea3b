package adminview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewByName(t *testing.T, name string) View {
	t.Helper()
	for _, v := range Views() {
		if v.Name == name {
			return v
		}
	}
	t.Fatalf("view %q not registered", name)
	return View{}
}

func TestViewsRegistryComplete(t *testing.T) {
	views := Views()
	require.Len(t, views, 8)

	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{
		"airports", "aircrafts", "flights", "seats",
		"ticket_flights", "bookings", "tickets", "boarding",
	}, names)
}

func TestViewsAreWellFormed(t *testing.T) {
	for _, v := range Views() {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			assert.NotEmpty(t, v.Title)
			assert.NotEmpty(t, v.Endpoint)
			assert.NotEmpty(t, v.Columns)
			assert.NotEmpty(t, v.PrimaryKey)

			// every key column must be visible in the table
			for _, k := range v.PrimaryKey {
				assert.Contains(t, v.Columns, k)
			}

			// a creatable entity needs form fields to render
			if v.CanCreate {
				assert.NotEmpty(t, v.Fields)
			}
		})
	}
}

func TestCompositeKeyViews(t *testing.T) {
	seats := viewByName(t, "seats")
	assert.Equal(t, []string{"aircraft_code", "seat_no"}, seats.PrimaryKey)
	assert.False(t, seats.CanEdit)

	tf := viewByName(t, "ticket_flights")
	assert.Equal(t, []string{"ticket_no", "flight_id"}, tf.PrimaryKey)
	assert.False(t, tf.CanCreate)
	assert.False(t, tf.CanEdit)
}

func TestNarrowedUpdateSurfaces(t *testing.T) {
	airports := viewByName(t, "airports")
	assert.Equal(t, "/api/airports/{key}/timezone", airports.UpdatePath)
	assert.Equal(t, map[string]string{"timezone": "timezone"}, airports.UpdateBody)

	aircrafts := viewByName(t, "aircrafts")
	assert.Equal(t, "/api/aircrafts/{key}/range", aircrafts.UpdatePath)
	assert.Equal(t, map[string]string{"new_range": "range"}, aircrafts.UpdateBody)

	bookings := viewByName(t, "bookings")
	assert.Empty(t, bookings.UpdatePath)
	assert.Equal(t, map[string]string{"total_amount": "total_amount"}, bookings.UpdateBody)
}

func TestImmutableAndJSONFields(t *testing.T) {
	airports := viewByName(t, "airports")

	byName := make(map[string]Field)
	for _, f := range airports.Fields {
		byName[f.Name] = f
	}

	assert.True(t, byName["airport_name"].Immutable)
	assert.True(t, byName["airport_name"].JSON)
	assert.True(t, byName["coordinates"].Immutable)
	assert.False(t, byName["timezone"].Immutable)
	assert.False(t, byName["airport_code"].Immutable)
}

func TestReportsRegistry(t *testing.T) {
	reports := Reports()
	require.Len(t, reports, 5)

	keys := make([]string, 0, len(reports))
	for _, r := range reports {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"itinerario", "abordaje", "gestion", "flota", "ingresos"}, keys)
}
