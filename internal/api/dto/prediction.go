package dto

import (
	"time"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

type PredictionResponse struct {
	PredictionID             int        `json:"prediction_id"`
	OrderID                  int        `json:"order_id"`
	RecommendedVehicleTypeID *int       `json:"recommended_vehicle_type_id"`
	DestinationTrackID       *int       `json:"destination_track_id"`
	ExpectedLeadTimeDays     *float64   `json:"expected_lead_time_days"`
	PredictedCO2Kg           *float64   `json:"predicted_co2_kg"`
	Confidence               *float64   `json:"confidence"`
	RecommendedBookingDate   *time.Time `json:"recommended_booking_date"`
	CreatedAt                time.Time  `json:"created_at"`
}

func PredictionFromDomain(p *domain.Prediction) PredictionResponse {
	return PredictionResponse{
		PredictionID:             p.PredictionID,
		OrderID:                  p.OrderID,
		RecommendedVehicleTypeID: p.RecommendedVehicleTypeID,
		DestinationTrackID:       p.DestinationTrackID,
		ExpectedLeadTimeDays:     p.ExpectedLeadTimeDays,
		PredictedCO2Kg:           p.PredictedCO2Kg,
		Confidence:               p.Confidence,
		RecommendedBookingDate:   p.RecommendedBookingDate,
		CreatedAt:                p.CreatedAt,
	}
}

type ListPredictionsResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

type RunPredictionsResponse struct {
	Status          string `json:"status"`
	OrdersProcessed int    `json:"orders_processed"`
}

// RecommendationResponse joins an order with its latest prediction and the
// recommended vehicle's catalog entry, when one was recommended.
type RecommendationResponse struct {
	Order              OrderResponse        `json:"order"`
	Prediction         PredictionResponse   `json:"prediction"`
	RecommendedVehicle *VehicleTypeResponse `json:"recommended_vehicle,omitempty"`
}
