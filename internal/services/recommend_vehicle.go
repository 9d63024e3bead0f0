package services

import (
	"math"
	"slices"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

// RecommendVehicle selects the best-fit vehicle type for a shipment: the
// smallest vehicle whose declared capacities still cover the requested
// weight and volume.
//
// Among fitting candidates the (maxWeightKg, maxVolumeM3) pair is compared
// lexicographically with an unset capacity treated as infinite, so vehicles
// without declared capacity are only chosen when nothing else fits.
// Remaining ties keep input order (stable sort). Cost, speed and emissions
// play no role here; emissions are evaluated downstream on the selected
// vehicle. Returns nil when no candidate fits.
func RecommendVehicle(candidates []*domain.VehicleType, weightKg, volumeM3 *float64) *domain.VehicleType {
	fit := make([]*domain.VehicleType, 0, len(candidates))
	for _, v := range candidates {
		if v.Fits(weightKg, volumeM3) {
			fit = append(fit, v)
		}
	}
	if len(fit) == 0 {
		return nil
	}

	slices.SortStableFunc(fit, func(a, b *domain.VehicleType) int {
		aw, bw := capacityOrInf(a.MaxWeightKg), capacityOrInf(b.MaxWeightKg)
		if aw != bw {
			if aw < bw {
				return -1
			}
			return 1
		}
		av, bv := capacityOrInf(a.MaxVolumeM3), capacityOrInf(b.MaxVolumeM3)
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
		return 0
	})

	return fit[0]
}

func capacityOrInf(capacity *float64) float64 {
	if capacity == nil {
		return math.Inf(1)
	}
	return *capacity
}
