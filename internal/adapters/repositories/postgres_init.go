package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVehicleTypesQuery := `
	CREATE TABLE IF NOT EXISTS vehicle_types (
		vehicle_type_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		max_weight_kg DOUBLE PRECISION,
		max_volume_m3 DOUBLE PRECISION,
		length_m DOUBLE PRECISION,
		width_m DOUBLE PRECISION,
		height_m DOUBLE PRECISION,
		diesel BOOLEAN NOT NULL DEFAULT false,
		hybrid BOOLEAN NOT NULL DEFAULT false,
		electric BOOLEAN NOT NULL DEFAULT false,
		diesel_l_per_km DOUBLE PRECISION,
		energy_kwh_per_km DOUBLE PRECISION,
		emission_factor_kg_per_km DOUBLE PRECISION,
		cost_per_km DOUBLE PRECISION,
		average_speed_kmh DOUBLE PRECISION,
		is_active BOOLEAN NOT NULL DEFAULT true,
		description TEXT
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id SERIAL PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		customer_name TEXT,
		requested_delivery_date DATE NOT NULL,
		origin_country TEXT NOT NULL DEFAULT '',
		origin_region TEXT NOT NULL DEFAULT '',
		destination_country TEXT NOT NULL DEFAULT '',
		destination_region TEXT NOT NULL DEFAULT '',
		gross_weight_kg DOUBLE PRECISION,
		net_weight_kg DOUBLE PRECISION,
		total_width DOUBLE PRECISION,
		delivery_method INTEGER,
		vehicle_type_id INTEGER REFERENCES vehicle_types(vehicle_type_id),
		status TEXT NOT NULL DEFAULT 'pending',
		load_date DATE,
		lead_time_days INTEGER,
		estimated_arrival DATE,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createTracksQuery := `
	CREATE TABLE IF NOT EXISTS destination_tracks (
		track_id SERIAL PRIMARY KEY,
		origin_country TEXT NOT NULL,
		origin_city TEXT NOT NULL,
		destination_country TEXT NOT NULL,
		destination_city TEXT NOT NULL,
		distance_km DOUBLE PRECISION,
		origin_temp_mean DOUBLE PRECISION,
		dest_temp_mean DOUBLE PRECISION
	);
	`

	createPredictionsQuery := `
	CREATE TABLE IF NOT EXISTS order_predictions (
		prediction_id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		recommended_vehicle_type_id INTEGER REFERENCES vehicle_types(vehicle_type_id),
		destination_track_id INTEGER REFERENCES destination_tracks(track_id),
		expected_lead_time_days DOUBLE PRECISION,
		predicted_co2_kg DOUBLE PRECISION,
		confidence DOUBLE PRECISION,
		recommended_booking_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQueries := `
	CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
	CREATE INDEX IF NOT EXISTS idx_tracks_route ON destination_tracks(origin_city, destination_city);
	CREATE INDEX IF NOT EXISTS idx_predictions_order_created ON order_predictions(order_id, created_at DESC);
	`

	statements := []string{
		createVehicleTypesQuery,
		createOrdersQuery,
		createTracksQuery,
		createPredictionsQuery,
		createIndexQueries,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
