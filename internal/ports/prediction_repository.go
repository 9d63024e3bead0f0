package ports

import (
	"context"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

// Port: append-only storage for prediction results. Rows are never updated
// or deleted; history is kept for audit.
type PredictionRepository interface {
	// Append a new prediction row and return it with identifiers populated.
	CreatePrediction(ctx context.Context, p *domain.Prediction) (*domain.Prediction, error)

	// Retrieve the most recently created prediction for an order.
	GetLatestPrediction(ctx context.Context, orderID int) (*domain.Prediction, error)

	// Retrieve all predictions for an order, newest first.
	ListPredictions(ctx context.Context, orderID int) ([]*domain.Prediction, error)
}
