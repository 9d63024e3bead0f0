package dto

import "github.com/master-racoon/hackathon-last-mile/internal/domain"

type VehicleTypeRequest struct {
	Name                  string   `json:"name"`
	MaxWeightKg           *float64 `json:"max_weight_kg"`
	MaxVolumeM3           *float64 `json:"max_volume_m3"`
	LengthM               *float64 `json:"length_m"`
	WidthM                *float64 `json:"width_m"`
	HeightM               *float64 `json:"height_m"`
	Diesel                bool     `json:"diesel"`
	Hybrid                bool     `json:"hybrid"`
	Electric              bool     `json:"electric"`
	DieselLPerKm          *float64 `json:"diesel_l_per_km"`
	EnergyKWhPerKm        *float64 `json:"energy_kwh_per_km"`
	EmissionFactorKgPerKm *float64 `json:"emission_factor_kg_per_km"`
	CostPerKm             *float64 `json:"cost_per_km"`
	AverageSpeedKmh       *float64 `json:"average_speed_kmh"`
	IsActive              *bool    `json:"is_active"`
	Description           string   `json:"description"`
}

// ToDomain converts the request; an omitted is_active defaults to true so
// new catalog entries are usable immediately.
func (r *VehicleTypeRequest) ToDomain() *domain.VehicleType {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.VehicleType{
		Name:                  r.Name,
		MaxWeightKg:           r.MaxWeightKg,
		MaxVolumeM3:           r.MaxVolumeM3,
		LengthM:               r.LengthM,
		WidthM:                r.WidthM,
		HeightM:               r.HeightM,
		Diesel:                r.Diesel,
		Hybrid:                r.Hybrid,
		Electric:              r.Electric,
		DieselLPerKm:          r.DieselLPerKm,
		EnergyKWhPerKm:        r.EnergyKWhPerKm,
		EmissionFactorKgPerKm: r.EmissionFactorKgPerKm,
		CostPerKm:             r.CostPerKm,
		AverageSpeedKmh:       r.AverageSpeedKmh,
		IsActive:              active,
		Description:           r.Description,
	}
}

type VehicleTypeResponse struct {
	VehicleTypeID         int      `json:"vehicle_type_id"`
	Name                  string   `json:"name"`
	MaxWeightKg           *float64 `json:"max_weight_kg"`
	MaxVolumeM3           *float64 `json:"max_volume_m3"`
	LengthM               *float64 `json:"length_m"`
	WidthM                *float64 `json:"width_m"`
	HeightM               *float64 `json:"height_m"`
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

func VehicleTypeFromDomain(v *domain.VehicleType) VehicleTypeResponse {
	return VehicleTypeResponse{
		VehicleTypeID:         v.VehicleTypeID,
		Name:                  v.Name,
		MaxWeightKg:           v.MaxWeightKg,
		MaxVolumeM3:           v.MaxVolumeM3,
		LengthM:               v.LengthM,
		WidthM:                v.WidthM,
		HeightM:               v.HeightM,
		Diesel:                v.Diesel,
		Hybrid:                v.Hybrid,
		Electric:              v.Electric,
		DieselLPerKm:          v.DieselLPerKm,
		EnergyKWhPerKm:        v.EnergyKWhPerKm,
		EmissionFactorKgPerKm: v.EmissionFactorKgPerKm,
		CostPerKm:             v.CostPerKm,
		AverageSpeedKmh:       v.AverageSpeedKmh,
		IsActive:              v.IsActive,
		Description:           v.Description,
	}
}

type ListVehicleTypesResponse struct {
	VehicleTypes []VehicleTypeResponse `json:"vehicle_types"`
}
