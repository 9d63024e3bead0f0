package domain

// Catalog entry describing one class of vehicle. Capacity and consumption
// fields are nullable reference data: an unset capacity means "no declared
// limit" and an unset consumption rate falls back to per-propulsion defaults
// in the emissions estimator.
type VehicleType struct {
	VehicleTypeID         int
	Name                  string
	MaxWeightKg           *float64
	MaxVolumeM3           *float64
	LengthM               *float64
	WidthM                *float64
	HeightM               *float64
	Diesel                bool
	Hybrid                bool
	Electric              bool
	DieselLPerKm          *float64
	EnergyKWhPerKm        *float64
	EmissionFactorKgPerKm *float64
	CostPerKm             *float64
	AverageSpeedKmh       *float64
	IsActive              bool
	Description           string
}

// Fits reports whether the vehicle can carry the requested weight and
// volume. An unset capacity never disqualifies, and an unset requirement
// is satisfied by every vehicle.
func (v *VehicleType) Fits(weightKg, volumeM3 *float64) bool {
	fitsWeight := v.MaxWeightKg == nil || weightKg == nil || *v.MaxWeightKg >= *weightKg
	fitsVolume := v.MaxVolumeM3 == nil || volumeM3 == nil || *v.MaxVolumeM3 >= *volumeM3
	return fitsWeight && fitsVolume
}
