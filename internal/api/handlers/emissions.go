package handlers

import (
	"net/http"

	"github.com/master-racoon/hackathon-last-mile/internal/api/dto"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
	"github.com/master-racoon/hackathon-last-mile/internal/services"
)

type EmissionsHandler struct {
	Vehicles ports.VehicleTypeRepository
}

// Estimate computes a what-if CO2 estimate for a vehicle type and trip.
// Weight and ambient temperature are optional; omitted values use the
// model's neutral defaults.
func (h *EmissionsHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req dto.EmissionsEstimateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.VehicleTypeID < 1 {
		writeError(w, r, http.StatusBadRequest, "vehicle_type_id must be a positive integer")
		return
	}
	if req.DistanceKm < 0 {
		writeError(w, r, http.StatusBadRequest, "distance_km must be non-negative")
		return
	}
	if req.WeightKg != nil && *req.WeightKg < 0 {
		writeError(w, r, http.StatusBadRequest, "weight_kg must be non-negative")
		return
	}

	vt, err := h.Vehicles.GetVehicleType(r.Context(), req.VehicleTypeID)
	if err != nil {
		writeRepoError(w, r, err, "vehicle type not found")
		return
	}

	weight := 0.0
	if req.WeightKg != nil {
		weight = *req.WeightKg
	}
	temp := services.BaselineTempC
	if req.AmbientTempC != nil {
		temp = *req.AmbientTempC
	}

	factor := services.EmissionFactorKgPerKm(vt)
	co2 := services.EstimateCO2Kg(req.DistanceKm, weight, temp, factor)

	writeJSON(w, r, http.StatusOK, dto.EmissionsEstimateResponse{
		VehicleTypeID:         vt.VehicleTypeID,
		VehicleTypeName:       vt.Name,
		DistanceKm:            req.DistanceKm,
		WeightKg:              weight,
		AmbientTempC:          temp,
		EmissionFactorKgPerKm: factor,
		EstimatedCO2Kg:        co2,
	})
}
