package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type VehicleTypeSeed struct {
	Name                  string   `json:"name"`
	MaxWeightKg           *float64 `json:"max_weight_kg"`
	MaxVolumeM3           *float64 `json:"max_volume_m3"`
	Diesel                bool     `json:"diesel"`
	Hybrid                bool     `json:"hybrid"`
	Electric              bool     `json:"electric"`
	DieselLPerKm          *float64 `json:"diesel_l_per_km"`
	EnergyKWhPerKm        *float64 `json:"energy_kwh_per_km"`
	EmissionFactorKgPerKm *float64 `json:"emission_factor_kg_per_km"`
	CostPerKm             *float64 `json:"cost_per_km"`
	AverageSpeedKmh       *float64 `json:"average_speed_kmh"`
	IsActive              bool     `json:"is_active"`
	Description           string   `json:"description"`
}

// Populate the vehicle type catalog from a JSON file. Existing names are
// left untouched so reseeding is safe.
func SeedVehicleTypesFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed vehicle types: read %q: %w", jsonPath, err)
	}

	var data []VehicleTypeSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed vehicle types: parse json: %w", err)
	}

	query := `
	INSERT INTO vehicle_types (
		name, max_weight_kg, max_volume_m3, diesel, hybrid, electric,
		diesel_l_per_km, energy_kwh_per_km, emission_factor_kg_per_km,
		cost_per_km, average_speed_kmh, is_active, description
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (name) DO NOTHING;`

	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed vehicle types: empty name at index %d", i)
		}

		_, err := db.Exec(query,
			name, nullFloat(item.MaxWeightKg), nullFloat(item.MaxVolumeM3),
			item.Diesel, item.Hybrid, item.Electric,
			nullFloat(item.DieselLPerKm), nullFloat(item.EnergyKWhPerKm), nullFloat(item.EmissionFactorKgPerKm),
			nullFloat(item.CostPerKm), nullFloat(item.AverageSpeedKmh), item.IsActive, item.Description,
		)
		if err != nil {
			return fmt.Errorf("seed vehicle types: insert %q: %w", name, err)
		}
	}

	return nil
}

type TrackSeed struct {
	OriginCountry      string   `json:"origin_country"`
	OriginCity         string   `json:"origin_city"`
	DestinationCountry string   `json:"destination_country"`
	DestinationCity    string   `json:"destination_city"`
	DistanceKm         *float64 `json:"distance_km"`
	OriginTempMean     *float64 `json:"origin_temp_mean"`
	DestTempMean       *float64 `json:"dest_temp_mean"`
}

// Populate the route atlas from a JSON file.
func SeedTracksFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed tracks: read %q: %w", jsonPath, err)
	}

	var data []TrackSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed tracks: parse json: %w", err)
	}

	query := `
	INSERT INTO destination_tracks (
		origin_country, origin_city, destination_country, destination_city,
		distance_km, origin_temp_mean, dest_temp_mean
	)
	SELECT $1, $2, $3, $4, $5, $6, $7
	WHERE NOT EXISTS (
		SELECT 1 FROM destination_tracks WHERE origin_city = $2 AND destination_city = $4
	);`

	for i, item := range data {
		if strings.TrimSpace(item.OriginCity) == "" || strings.TrimSpace(item.DestinationCity) == "" {
			return fmt.Errorf("seed tracks: missing route key at index %d", i)
		}

		_, err := db.Exec(query,
			item.OriginCountry, item.OriginCity, item.DestinationCountry, item.DestinationCity,
			nullFloat(item.DistanceKm), nullFloat(item.OriginTempMean), nullFloat(item.DestTempMean),
		)
		if err != nil {
			return fmt.Errorf("seed tracks: insert %q -> %q: %w", item.OriginCity, item.DestinationCity, err)
		}
	}

	return nil
}
