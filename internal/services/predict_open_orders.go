package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/platform/obs"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

// PredictionEngine runs the shipment prediction pipeline over all open
// orders: feature building, one batched oracle call, lead-time expansion,
// vehicle recommendation, emissions estimate and booking-date
// back-calculation, appending one Prediction row per order.
type PredictionEngine struct {
	orders      ports.OrderRepository
	vehicles    ports.VehicleTypeRepository
	tracks      ports.TrackFinder
	predictions ports.PredictionRepository
	oracle      ports.DurationOracle
	metrics     *obs.PredictionMetrics
	log         zerolog.Logger
}

// NewPredictionEngine wires the engine and verifies that the oracle's
// artifact was trained on the feature schema this service builds rows for.
// A mismatch is a deployment error and is rejected up front.
func NewPredictionEngine(
	orders ports.OrderRepository,
	vehicles ports.VehicleTypeRepository,
	tracks ports.TrackFinder,
	predictions ports.PredictionRepository,
	oracle ports.DurationOracle,
	metrics *obs.PredictionMetrics,
	log zerolog.Logger,
) (*PredictionEngine, error) {
	if err := oracle.Schema().Validate(CurrentFeatureSchema()); err != nil {
		return nil, fmt.Errorf("new prediction engine: %w", err)
	}
	return &PredictionEngine{
		orders:      orders,
		vehicles:    vehicles,
		tracks:      tracks,
		predictions: predictions,
		oracle:      oracle,
		metrics:     metrics,
		log:         log,
	}, nil
}

// Run predicts all open orders and returns the number of orders processed.
//
// Missing feature inputs, unmatched routes and unfit catalogs degrade
// per-order output (defaults, nil recommendation, unset CO2) without
// aborting; repository and oracle failures abort the whole run.
func (e *PredictionEngine) Run(ctx context.Context) (int, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := e.log.With().Str("run_id", runID).Logger()

	n, defaulted, err := e.run(ctx, log)
	status := "ok"
	if err != nil {
		status = "error"
	}
	e.metrics.RecordRun(status, time.Since(start).Seconds(), n, defaulted)
	if err != nil {
		log.Error().Err(err).Msg("prediction run failed")
		return 0, err
	}
	log.Info().Int("orders", n).Int("defaulted_fields", defaulted).
		Int64("dur_ms", time.Since(start).Milliseconds()).Msg("prediction run completed")
	return n, nil
}

func (e *PredictionEngine) run(ctx context.Context, log zerolog.Logger) (processed, defaulted int, _ error) {
	orders, err := e.orders.ListOpenOrders(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("prediction run: list open orders: %w", err)
	}
	if len(orders) == 0 {
		log.Info().Msg("no open orders")
		return 0, 0, nil
	}

	catalog, err := e.vehicles.ListVehicleTypes(ctx, true)
	if err != nil {
		return 0, 0, fmt.Errorf("prediction run: list vehicle types: %w", err)
	}

	schema := e.oracle.Schema()
	rows := make([]ports.FeatureRow, len(orders))
	tracks := make([]*domain.DestinationTrack, len(orders))
	for i, o := range orders {
		track, err := e.tracks.FindTrack(ctx, o.OriginRegion, o.DestinationRegion)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return 0, 0, fmt.Errorf("prediction run: find track for order %s: %w", o.OrderNumber, err)
		}
		tracks[i] = track

		rows[i] = BuildFeatureRow(schema, o, track)
		defaulted += rows[i].DefaultedFields
	}

	// One batched inference call per run; the per-call cost of the model
	// dwarfs the per-row cost.
	estimates, err := e.oracle.Predict(ctx, rows)
	if err != nil {
		return 0, defaulted, fmt.Errorf("prediction run: predict: %w", err)
	}
	if len(estimates) != len(orders) {
		return 0, defaulted, fmt.Errorf("prediction run: oracle returned %d estimates for %d orders", len(estimates), len(orders))
	}

	for i, o := range orders {
		pred := e.assemble(o, tracks[i], estimates[i], catalog)
		if _, err := e.predictions.CreatePrediction(ctx, pred); err != nil {
			return processed, defaulted, fmt.Errorf("prediction run: save prediction for order %s: %w", o.OrderNumber, err)
		}
		processed++
	}

	return processed, defaulted, nil
}

// assemble joins the per-order pipeline outputs into one Prediction row.
func (e *PredictionEngine) assemble(
	order *domain.Order,
	track *domain.DestinationTrack,
	pointEstimateDays float64,
	catalog []*domain.VehicleType,
) *domain.Prediction {
	leadTime := ExpectedLeadTimeDays(pointEstimateDays)

	pred := &domain.Prediction{
		OrderID:              order.OrderID,
		ExpectedLeadTimeDays: &leadTime,
		// The oracle exposes no native confidence signal; the column
		// stays unset.
		Confidence: nil,
	}

	// Volume is not tracked on orders today, so recommendation is by
	// weight only.
	vehicle := RecommendVehicle(catalog, order.GrossWeightKg, nil)
	if vehicle != nil {
		pred.RecommendedVehicleTypeID = &vehicle.VehicleTypeID
	}

	if track != nil {
		pred.DestinationTrackID = &track.TrackID
	}

	// Emissions need both a recommended vehicle and a matched route with
	// a known distance. Anything less leaves CO2 unset rather than
	// guessed.
	if vehicle != nil && track != nil && track.DistanceKm != nil {
		temp := BaselineTempC
		if track.DestTempMean != nil {
			temp = *track.DestTempMean
		}
		weight := 0.0
		if order.GrossWeightKg != nil {
			weight = *order.GrossWeightKg
		}
		co2 := EstimateCO2Kg(*track.DistanceKm, weight, temp, EmissionFactorKgPerKm(vehicle))
		pred.PredictedCO2Kg = &co2
	}

	pred.RecommendedBookingDate = RecommendedBookingDate(&order.RequestedDeliveryDate, &leadTime)

	return pred
}
