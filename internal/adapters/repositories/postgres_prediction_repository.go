package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

// Postgres-backed implementation of the PredictionRepository port.
// Predictions are append-only: the repository exposes no update or delete.
type PostgresPredictionRepository struct{ DB *sql.DB }

func NewPostgresPredictionRepository(db *sql.DB) *PostgresPredictionRepository {
	return &PostgresPredictionRepository{DB: db}
}

const predictionColumns = `
	prediction_id, order_id, recommended_vehicle_type_id, destination_track_id,
	expected_lead_time_days, predicted_co2_kg, confidence,
	recommended_booking_date, created_at`

func scanPrediction(s interface{ Scan(...any) error }) (*domain.Prediction, error) {
	var (
		p           domain.Prediction
		vehicleID   sql.NullInt64
		trackID     sql.NullInt64
		leadTime    sql.NullFloat64
		co2         sql.NullFloat64
		confidence  sql.NullFloat64
		bookingDate sql.NullTime
	)

	err := s.Scan(
		&p.PredictionID, &p.OrderID, &vehicleID, &trackID,
		&leadTime, &co2, &confidence, &bookingDate, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.RecommendedVehicleTypeID = intPtr(vehicleID)
	p.DestinationTrackID = intPtr(trackID)
	p.ExpectedLeadTimeDays = floatPtr(leadTime)
	p.PredictedCO2Kg = floatPtr(co2)
	p.Confidence = floatPtr(confidence)
	p.RecommendedBookingDate = timePtr(bookingDate)
	return &p, nil
}

func (r *PostgresPredictionRepository) CreatePrediction(ctx context.Context, p *domain.Prediction) (*domain.Prediction, error) {
	query := `
	INSERT INTO order_predictions (
		order_id, recommended_vehicle_type_id, destination_track_id,
		expected_lead_time_days, predicted_co2_kg, confidence, recommended_booking_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING prediction_id, created_at;`

	err := r.DB.QueryRowContext(ctx, query,
		p.OrderID, nullInt(p.RecommendedVehicleTypeID), nullInt(p.DestinationTrackID),
		nullFloat(p.ExpectedLeadTimeDays), nullFloat(p.PredictedCO2Kg), nullFloat(p.Confidence),
		nullTime(p.RecommendedBookingDate),
	).Scan(&p.PredictionID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create prediction for order %d: %w", p.OrderID, err)
	}
	return p, nil
}

func (r *PostgresPredictionRepository) GetLatestPrediction(ctx context.Context, orderID int) (*domain.Prediction, error) {
	query := `SELECT` + predictionColumns + `
	FROM order_predictions
	WHERE order_id = $1
	ORDER BY created_at DESC, prediction_id DESC
	LIMIT 1;`

	p, err := scanPrediction(r.DB.QueryRowContext(ctx, query, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get latest prediction for order %d: %w", orderID, err)
	}
	return p, nil
}

func (r *PostgresPredictionRepository) ListPredictions(ctx context.Context, orderID int) ([]*domain.Prediction, error) {
	query := `SELECT` + predictionColumns + `
	FROM order_predictions
	WHERE order_id = $1
	ORDER BY created_at DESC, prediction_id DESC;`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list predictions for order %d: %w", orderID, err)
	}
	defer rows.Close()

	preds := make([]*domain.Prediction, 0, 8)
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("list predictions: scan row: %w", err)
		}
		preds = append(preds, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list predictions: row iteration: %w", err)
	}
	return preds, nil
}
