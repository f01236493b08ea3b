// Package adminview owns the configuration that drives the generic
// table+form renderer of the admin frontend: per-entity column lists,
// primary-key descriptors, form-field specs, and the URL/body mappings for
// entities whose update surface is narrowed to a single attribute.
//
// The renderer is fully generic: given one View it can list, create, edit
// and delete an entity without entity-specific code.
package adminview

// Field describes one input of the generic CRUD form.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Kind        string `json:"kind"` // text, number, datetime
	Placeholder string `json:"placeholder,omitempty"`

	// Immutable marks fields locked while editing: the attribute cannot
	// change after creation, so the form must disable the input.
	Immutable bool `json:"immutable,omitempty"`

	// JSON marks fields that accept either plain text or a JSON object
	// (localized jsonb columns, contact data).
	JSON bool `json:"json,omitempty"`
}

// View drives the generic renderer for one entity.
type View struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Endpoint string `json:"endpoint"` // route group under /api

	Columns []string `json:"columns"`

	// PrimaryKey lists the key columns in URL order. A single entry means a
	// simple key; multiple entries form the composite key, and item URLs are
	// built by appending each value in order: /api/{endpoint}/{k1}/{k2}.
	PrimaryKey []string `json:"primary_key"`

	Fields []Field `json:"fields"`

	CanCreate bool `json:"can_create"`
	CanEdit   bool `json:"can_edit"`

	// UpdatePath overrides the default PUT URL ({key} is the primary key)
	// for entities whose update is narrowed to a single mutable attribute.
	UpdatePath string `json:"update_path,omitempty"`

	// UpdateBody maps request-body keys to form-field names for PUT.
	// Empty means: submit the raw form fields.
	UpdateBody map[string]string `json:"update_body,omitempty"`
}

// Report is one whitelisted read-only view exposed under a short key.
type Report struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Views returns the full registry, one View per entity, in navigation order.
func Views() []View {
	return []View{
		{
			Name:       "airports",
			Title:      "Catálogo de Aeropuertos",
			Endpoint:   "airports",
			Columns:    []string{"airport_code", "airport_name", "city", "coordinates", "timezone"},
			PrimaryKey: []string{"airport_code"},
			Fields: []Field{
				{Name: "airport_code", Label: "Código aeropuerto (3 letras)", Kind: "text", Placeholder: "MEX"},
				{Name: "airport_name", Label: "Nombre aeropuerto (texto o JSON)", Kind: "text", Placeholder: `Ej. "AICM" o {"es":"AICM"}`, Immutable: true, JSON: true},
				{Name: "city", Label: "Ciudad (texto o JSON)", Kind: "text", Placeholder: `Ej. "CDMX" o {"es":"CDMX"}`, Immutable: true, JSON: true},
				{Name: "coordinates", Label: "Coordenadas (JSON)", Kind: "text", Placeholder: `{"x":-99.072,"y":19.436}`, Immutable: true, JSON: true},
				{Name: "timezone", Label: "Zona horaria", Kind: "text", Placeholder: "America/Mexico_City"},
			},
			CanCreate:  true,
			CanEdit:    true,
			UpdatePath: "/api/airports/{key}/timezone",
			UpdateBody: map[string]string{"timezone": "timezone"},
		},
		{
			Name:       "aircrafts",
			Title:      "Catálogo de Aeronaves",
			Endpoint:   "aircrafts",
			Columns:    []string{"aircraft_code", "model", "range"},
			PrimaryKey: []string{"aircraft_code"},
			Fields: []Field{
				{Name: "aircraft_code", Label: "Código aeronave (3)", Kind: "text", Placeholder: "320"},
				{Name: "model", Label: "Modelo (texto o JSON)", Kind: "text", Placeholder: `Ej. "Airbus A320" o {"es":"A320"}`, Immutable: true, JSON: true},
				{Name: "range", Label: "Alcance (km)", Kind: "number", Placeholder: "6100"},
			},
			CanCreate:  true,
			CanEdit:    true,
			UpdatePath: "/api/aircrafts/{key}/range",
			UpdateBody: map[string]string{"new_range": "range"},
		},
		{
			Name:     "flights",
			Title:    "Vuelos",
			Endpoint: "flights",
			Columns: []string{
				"flight_id", "flight_no", "scheduled_departure", "scheduled_arrival",
				"status", "departure_airport", "arrival_airport", "aircraft_code",
			},
			PrimaryKey: []string{"flight_id"},
			Fields: []Field{
				{Name: "flight_no", Label: "No. vuelo", Kind: "text", Placeholder: "PG0404"},
				{Name: "scheduled_departure", Label: "Salida programada (ISO)", Kind: "datetime", Placeholder: "2026-02-04T12:30:00Z"},
				{Name: "scheduled_arrival", Label: "Llegada programada (ISO)", Kind: "datetime", Placeholder: "2026-02-04T14:10:00Z"},
				{Name: "departure_airport", Label: "Aeropuerto salida", Kind: "text", Placeholder: "MEX"},
				{Name: "arrival_airport", Label: "Aeropuerto llegada", Kind: "text", Placeholder: "CUN"},
				{Name: "status", Label: "Estatus", Kind: "text", Placeholder: "Scheduled / On Time / Delayed / Departed / Arrived / Cancelled"},
				{Name: "aircraft_code", Label: "Código aeronave", Kind: "text", Placeholder: "320"},
			},
			CanCreate: true,
			CanEdit:   true,
		},
		{
			Name:       "seats",
			Title:      "Asientos",
			Endpoint:   "seats",
			Columns:    []string{"aircraft_code", "seat_no", "fare_conditions"},
			PrimaryKey: []string{"aircraft_code", "seat_no"},
			Fields: []Field{
				{Name: "aircraft_code", Label: "Código aeronave", Kind: "text", Placeholder: "320"},
				{Name: "seat_no", Label: "Asiento", Kind: "text", Placeholder: "12A"},
				{Name: "fare_conditions", Label: "Clase", Kind: "text", Placeholder: "Economy / Comfort / Business"},
			},
			CanCreate: true,
			// Composite-key rows are deleted and recreated, never edited.
			CanEdit: false,
		},
		{
			Name:       "ticket_flights",
			Title:      "Segmentos de vuelo",
			Endpoint:   "ticket_flights",
			Columns:    []string{"ticket_no", "flight_id", "fare_conditions", "amount"},
			PrimaryKey: []string{"ticket_no", "flight_id"},
			// Segments are written by the booking procedures only; the admin
			// panel may inspect and delete them but never create or edit.
			CanCreate: false,
			CanEdit:   false,
		},
		{
			Name:       "bookings",
			Title:      "Gestión de Reservas",
			Endpoint:   "bookings",
			Columns:    []string{"book_ref", "book_date", "total_amount"},
			PrimaryKey: []string{"book_ref"},
			Fields: []Field{
				{Name: "book_ref", Label: "Referencia (6 caracteres)", Kind: "text", Placeholder: "XXXXXX"},
				{Name: "total_amount", Label: "Importe total", Kind: "number", Placeholder: "Ej. 1500"},
			},
			CanCreate:  true,
			CanEdit:    true,
			UpdateBody: map[string]string{"total_amount": "total_amount"},
		},
		{
			Name:       "tickets",
			Title:      "Gestión de Boletos",
			Endpoint:   "tickets",
			Columns:    []string{"ticket_no", "book_ref", "passenger_name", "passenger_id", "contact_data"},
			PrimaryKey: []string{"ticket_no"},
			Fields: []Field{
				{Name: "ticket_no", Label: "No. de boleto (13 dígitos)", Kind: "text", Placeholder: "0005432000000"},
				{Name: "book_ref", Label: "Referencia de reserva", Kind: "text"},
				{Name: "passenger_id", Label: "ID pasajero", Kind: "text", Placeholder: "1234 567890"},
				{Name: "passenger_name", Label: "Nombre completo", Kind: "text", Placeholder: "Juan Pérez"},
				{Name: "contact_data", Label: "Contacto (JSON)", Kind: "text", Placeholder: `{"email":"test@test.com"}`, JSON: true},
			},
			CanCreate: true,
			CanEdit:   true,
		},
		{
			Name:       "boarding",
			Title:      "Pases de Abordar",
			Endpoint:   "boarding",
			Columns:    []string{"ticket_no", "flight_id", "boarding_no", "seat_no"},
			PrimaryKey: []string{"ticket_no"},
			Fields: []Field{
				{Name: "ticket_no", Label: "No. de boleto", Kind: "text"},
				{Name: "flight_id", Label: "ID vuelo", Kind: "number"},
				{Name: "boarding_no", Label: "No. de abordaje", Kind: "number"},
				{Name: "seat_no", Label: "Asiento", Kind: "text", Placeholder: "12A"},
			},
			CanCreate: true,
			CanEdit:   true,
		},
	}
}

// Reports returns the whitelisted read-only reports in navigation order.
func Reports() []Report {
	return []Report{
		{Key: "itinerario", Title: "Reporte: Itinerario público"},
		{Key: "abordaje", Title: "Reporte: Lista de abordaje"},
		{Key: "gestion", Title: "Reporte: Gestión operativa de vuelos"},
		{Key: "flota", Title: "Reporte: Control de flota"},
		{Key: "ingresos", Title: "Reporte: Análisis de ingresos"},
	}
}
