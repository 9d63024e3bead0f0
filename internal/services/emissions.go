package services

import "github.com/master-racoon/hackathon-last-mile/internal/domain"

const (
	// Combustion of one liter of diesel releases ~2.68 kg of CO2.
	dieselKgCO2PerLiter = 2.68
	// Regional grid carbon intensity in kg CO2 per kWh.
	gridKgCO2PerKWh = 0.95

	defaultDieselFactorKgPerKm   = 0.27
	defaultElectricFactorKgPerKm = 0.08
	defaultHybridFactorKgPerKm   = 0.175
	defaultFactorKgPerKm         = 0.20

	// BaselineTempC is the ambient temperature at which the temperature
	// adjustment is a no-op. Missing route temperatures default to it.
	BaselineTempC = 25.0
)

// EmissionFactorKgPerKm returns the per-km CO2 factor for a vehicle type.
// A declared factor wins; otherwise the factor is derived from the
// propulsion profile, falling back to flat defaults when consumption rates
// are unknown.
func EmissionFactorKgPerKm(vt *domain.VehicleType) float64 {
	if vt.EmissionFactorKgPerKm != nil {
		return *vt.EmissionFactorKgPerKm
	}
	switch {
	case vt.Diesel:
		if vt.DieselLPerKm != nil {
			return *vt.DieselLPerKm * dieselKgCO2PerLiter
		}
		return defaultDieselFactorKgPerKm
	case vt.Electric:
		if vt.EnergyKWhPerKm != nil {
			return *vt.EnergyKWhPerKm * gridKgCO2PerKWh
		}
		return defaultElectricFactorKgPerKm
	case vt.Hybrid:
		// Midpoint of the diesel and electric defaults.
		return defaultHybridFactorKgPerKm
	}
	return defaultFactorKgPerKm
}

// EstimateCO2Kg computes trip emissions with a three-stage multiplicative
// model:
//
//	base     = distanceKm * emissionFactorKgPerKm
//	weighted = base * (1 + 0.1 * weightKg/100)       10% per extra 100 kg
//	final    = weighted * (1 + 0.01 * (tempC - 25))  1% per degree above 25C
//
// Temperatures below the baseline yield a symmetric discount.
func EstimateCO2Kg(distanceKm, weightKg, ambientTempC, emissionFactorKgPerKm float64) float64 {
	base := distanceKm * emissionFactorKgPerKm
	weighted := base * (1 + 0.1*weightKg/100)
	return weighted * (1 + 0.01*(ambientTempC-BaselineTempC))
}
