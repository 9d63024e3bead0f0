package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

// Postgres-backed implementation of the VehicleTypeRepository port.
type PostgresVehicleTypeRepository struct{ DB *sql.DB }

func NewPostgresVehicleTypeRepository(db *sql.DB) *PostgresVehicleTypeRepository {
	return &PostgresVehicleTypeRepository{DB: db}
}

const vehicleTypeColumns = `
	vehicle_type_id, name, max_weight_kg, max_volume_m3,
	length_m, width_m, height_m,
	diesel, hybrid, electric,
	diesel_l_per_km, energy_kwh_per_km, emission_factor_kg_per_km,
	cost_per_km, average_speed_kmh, is_active, description`

func scanVehicleType(s interface{ Scan(...any) error }) (*domain.VehicleType, error) {
	var (
		v                                    domain.VehicleType
		maxWeight, maxVolume                 sql.NullFloat64
		length, width, height                sql.NullFloat64
		dieselLPerKm, energyKWh, emissionFct sql.NullFloat64
		costPerKm, avgSpeed                  sql.NullFloat64
		description                          sql.NullString
	)

	err := s.Scan(
		&v.VehicleTypeID, &v.Name, &maxWeight, &maxVolume,
		&length, &width, &height,
		&v.Diesel, &v.Hybrid, &v.Electric,
		&dieselLPerKm, &energyKWh, &emissionFct,
		&costPerKm, &avgSpeed, &v.IsActive, &description,
	)
	if err != nil {
		return nil, err
	}

	v.MaxWeightKg = floatPtr(maxWeight)
	v.MaxVolumeM3 = floatPtr(maxVolume)
	v.LengthM = floatPtr(length)
	v.WidthM = floatPtr(width)
	v.HeightM = floatPtr(height)
	v.DieselLPerKm = floatPtr(dieselLPerKm)
	v.EnergyKWhPerKm = floatPtr(energyKWh)
	v.EmissionFactorKgPerKm = floatPtr(emissionFct)
	v.CostPerKm = floatPtr(costPerKm)
	v.AverageSpeedKmh = floatPtr(avgSpeed)
	v.Description = description.String
	return &v, nil
}

func (r *PostgresVehicleTypeRepository) ListVehicleTypes(ctx context.Context, activeOnly bool) ([]*domain.VehicleType, error) {
	if r.DB == nil {
		return nil, errors.New("vehicle type repository: DB is nil")
	}

	query := `SELECT` + vehicleTypeColumns + `
	FROM vehicle_types
	WHERE ($1 = false OR is_active)
	ORDER BY name;`

	rows, err := r.DB.QueryContext(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list vehicle types: query vehicle_types table: %w", err)
	}
	defer rows.Close()

	types := make([]*domain.VehicleType, 0, 16)
	for rows.Next() {
		v, err := scanVehicleType(rows)
		if err != nil {
			return nil, fmt.Errorf("list vehicle types: scan row: %w", err)
		}
		types = append(types, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicle types: row iteration: %w", err)
	}
	return types, nil
}

func (r *PostgresVehicleTypeRepository) GetVehicleType(ctx context.Context, vehicleTypeID int) (*domain.VehicleType, error) {
	query := `SELECT` + vehicleTypeColumns + ` FROM vehicle_types WHERE vehicle_type_id = $1;`

	v, err := scanVehicleType(r.DB.QueryRowContext(ctx, query, vehicleTypeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get vehicle type %d: %w", vehicleTypeID, err)
	}
	return v, nil
}

func (r *PostgresVehicleTypeRepository) GetVehicleTypeByName(ctx context.Context, name string) (*domain.VehicleType, error) {
	query := `SELECT` + vehicleTypeColumns + ` FROM vehicle_types WHERE name = $1;`

	v, err := scanVehicleType(r.DB.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get vehicle type by name %q: %w", name, err)
	}
	return v, nil
}

func (r *PostgresVehicleTypeRepository) CreateVehicleType(ctx context.Context, vt *domain.VehicleType) (*domain.VehicleType, error) {
	query := `
	INSERT INTO vehicle_types (
		name, max_weight_kg, max_volume_m3, length_m, width_m, height_m,
		diesel, hybrid, electric,
		diesel_l_per_km, energy_kwh_per_km, emission_factor_kg_per_km,
		cost_per_km, average_speed_kmh, is_active, description
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	RETURNING vehicle_type_id;`

	err := r.DB.QueryRowContext(ctx, query,
		vt.Name, nullFloat(vt.MaxWeightKg), nullFloat(vt.MaxVolumeM3),
		nullFloat(vt.LengthM), nullFloat(vt.WidthM), nullFloat(vt.HeightM),
		vt.Diesel, vt.Hybrid, vt.Electric,
		nullFloat(vt.DieselLPerKm), nullFloat(vt.EnergyKWhPerKm), nullFloat(vt.EmissionFactorKgPerKm),
		nullFloat(vt.CostPerKm), nullFloat(vt.AverageSpeedKmh), vt.IsActive, vt.Description,
	).Scan(&vt.VehicleTypeID)
	if err != nil {
		return nil, fmt.Errorf("create vehicle type %q: %w", vt.Name, err)
	}
	return vt, nil
}

func (r *PostgresVehicleTypeRepository) UpdateVehicleType(ctx context.Context, vt *domain.VehicleType) (*domain.VehicleType, error) {
	query := `
	UPDATE vehicle_types SET
		name = $2, max_weight_kg = $3, max_volume_m3 = $4,
		length_m = $5, width_m = $6, height_m = $7,
		diesel = $8, hybrid = $9, electric = $10,
		diesel_l_per_km = $11, energy_kwh_per_km = $12, emission_factor_kg_per_km = $13,
		cost_per_km = $14, average_speed_kmh = $15, is_active = $16, description = $17
	WHERE vehicle_type_id = $1;`

	res, err := r.DB.ExecContext(ctx, query,
		vt.VehicleTypeID, vt.Name, nullFloat(vt.MaxWeightKg), nullFloat(vt.MaxVolumeM3),
		nullFloat(vt.LengthM), nullFloat(vt.WidthM), nullFloat(vt.HeightM),
		vt.Diesel, vt.Hybrid, vt.Electric,
		nullFloat(vt.DieselLPerKm), nullFloat(vt.EnergyKWhPerKm), nullFloat(vt.EmissionFactorKgPerKm),
		nullFloat(vt.CostPerKm), nullFloat(vt.AverageSpeedKmh), vt.IsActive, vt.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("update vehicle type %d: %w", vt.VehicleTypeID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update vehicle type %d: rows affected: %w", vt.VehicleTypeID, err)
	}
	if n == 0 {
		return nil, ports.ErrNotFound
	}
	return vt, nil
}

func (r *PostgresVehicleTypeRepository) DeleteVehicleType(ctx context.Context, vehicleTypeID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM vehicle_types WHERE vehicle_type_id = $1;`, vehicleTypeID)
	if err != nil {
		return fmt.Errorf("delete vehicle type %d: %w", vehicleTypeID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vehicle type %d: rows affected: %w", vehicleTypeID, err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}
