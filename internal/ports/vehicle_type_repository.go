package ports

import (
	"context"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

// Port: a boundary for the vehicle type catalog.
type VehicleTypeRepository interface {
	// Retrieve vehicle types ordered by name. When activeOnly is set,
	// inactive entries are excluded.
	ListVehicleTypes(ctx context.Context, activeOnly bool) ([]*domain.VehicleType, error)

	// Retrieve one vehicle type by identifier.
	GetVehicleType(ctx context.Context, vehicleTypeID int) (*domain.VehicleType, error)

	// Retrieve one vehicle type by its unique name.
	GetVehicleTypeByName(ctx context.Context, name string) (*domain.VehicleType, error)

	// Persist a new vehicle type.
	CreateVehicleType(ctx context.Context, vt *domain.VehicleType) (*domain.VehicleType, error)

	// Persist changes to an existing vehicle type.
	UpdateVehicleType(ctx context.Context, vt *domain.VehicleType) (*domain.VehicleType, error)

	// Remove a vehicle type permanently.
	DeleteVehicleType(ctx context.Context, vehicleTypeID int) error
}
