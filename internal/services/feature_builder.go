package services

import (
	"strconv"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

// CurrentFeatureSchema returns the feature schema this service builds rows
// for. The deployed model artifact must declare the same schema; the
// prediction engine refuses to start otherwise.
//
// Several fields (vessel, flight_voyage, unit qualifiers, volume,
// precipitation, temperature extremes) existed in the training data but
// cannot be populated from the current order and track records. They are
// kept in the schema so column positions stay aligned with the artifact,
// and are always defaulted.
func CurrentFeatureSchema() ports.FeatureSchema {
	return ports.FeatureSchema{
		Version: "v1",
		Categorical: []string{
			"origin_country", "origin_city", "destination_country", "destination_city",
			"ship_dow", "vessel", "flight_voyage", "weight_uq", "volume_uq",
		},
		Numeric: []string{
			"ship_year", "ship_month", "ship_week",
			"distance_km", "leadtime_expected_days", "average_distance_per_day",
			"weight", "volume",
			"origin_temp_mean", "origin_temp_max", "origin_temp_min", "origin_precip_mm",
			"dest_temp_mean", "dest_temp_max", "dest_temp_min", "dest_precip_mm",
		},
		NumericFill: 0,
	}
}

// BuildFeatureRow derives the flat feature vector for one order, aligned to
// the given schema. track may be nil when no route matched.
//
// The builder never fails: every field has a defined default ("" for
// categorical, nil for numeric, filled at inference time) so the output
// shape is always complete and stable. Building the same order/track pair
// twice yields identical rows.
func BuildFeatureRow(schema ports.FeatureSchema, order *domain.Order, track *domain.DestinationTrack) ports.FeatureRow {
	cats := map[string]string{
		"origin_country": order.OriginCountry,
		// Region codes stand in for cities; they are the same key the
		// route atlas is indexed by.
		"origin_city":         order.OriginRegion,
		"destination_country": order.DestinationCountry,
		"destination_city":    order.DestinationRegion,
	}
	nums := map[string]*float64{
		"weight": order.GrossWeightKg,
	}

	if order.LoadDate != nil {
		load := *order.LoadDate
		// Monday-indexed day of week, matching the training data.
		cats["ship_dow"] = strconv.Itoa((int(load.Weekday()) + 6) % 7)
		isoYear, isoWeek := load.ISOWeek()
		nums["ship_year"] = floatPtr(float64(isoYear))
		nums["ship_month"] = floatPtr(float64(load.Month()))
		nums["ship_week"] = floatPtr(float64(isoWeek))
	}

	if order.LeadTimeDays != nil {
		nums["leadtime_expected_days"] = floatPtr(float64(*order.LeadTimeDays))
	}

	if track != nil {
		nums["distance_km"] = track.DistanceKm
		nums["origin_temp_mean"] = track.OriginTempMean
		nums["dest_temp_mean"] = track.DestTempMean
	}

	row := ports.FeatureRow{
		Cats: make([]string, len(schema.Categorical)),
		Nums: make([]*float64, len(schema.Numeric)),
	}
	for i, name := range schema.Categorical {
		row.Cats[i] = cats[name]
		if row.Cats[i] == "" {
			row.DefaultedFields++
		}
	}
	for i, name := range schema.Numeric {
		row.Nums[i] = nums[name]
		if row.Nums[i] == nil {
			row.DefaultedFields++
		}
	}
	return row
}

func floatPtr(v float64) *float64 { return &v }
