package dto

type EmissionsEstimateRequest struct {
	VehicleTypeID int      `json:"vehicle_type_id"`
	DistanceKm    float64  `json:"distance_km"`
	WeightKg      *float64 `json:"weight_kg"`
	AmbientTempC  *float64 `json:"ambient_temp_c"`
}

type EmissionsEstimateResponse struct {
	VehicleTypeID         int     `json:"vehicle_type_id"`
	VehicleTypeName       string  `json:"vehicle_type_name"`
	DistanceKm            float64 `json:"distance_km"`
	WeightKg              float64 `json:"weight_kg"`
	AmbientTempC          float64 `json:"ambient_temp_c"`
	EmissionFactorKgPerKm float64 `json:"emission_factor_kg_per_km"`
	EstimatedCO2Kg        float64 `json:"estimated_co2_kg"`
}
