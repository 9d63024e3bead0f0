package domain

import "time"

// One prediction run result for one order. Predictions are append-only
// history: a new run inserts a new row, and "current" means the most
// recently created one for the order.
//
// ExpectedLeadTimeDays carries one-sided 95% upper-bound semantics, not the
// raw model mean. Confidence is always unset today because the duration
// oracle exposes no native confidence signal.
type Prediction struct {
	PredictionID             int
	OrderID                  int
	RecommendedVehicleTypeID *int
	DestinationTrackID       *int
	ExpectedLeadTimeDays     *float64
	PredictedCO2Kg           *float64
	Confidence               *float64
	RecommendedBookingDate   *time.Time
	CreatedAt                time.Time
}
