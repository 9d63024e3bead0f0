package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

type fakeOrderRepo struct {
	ports.OrderRepository
	open []*domain.Order
	err  error
}

func (r *fakeOrderRepo) ListOpenOrders(ctx context.Context) ([]*domain.Order, error) {
	return r.open, r.err
}

type fakeVehicleRepo struct {
	ports.VehicleTypeRepository
	catalog []*domain.VehicleType
}

func (r *fakeVehicleRepo) ListVehicleTypes(ctx context.Context, activeOnly bool) ([]*domain.VehicleType, error) {
	return r.catalog, nil
}

type fakeTrackFinder struct {
	tracks map[string]*domain.DestinationTrack
}

func (r *fakeTrackFinder) FindTrack(ctx context.Context, originCity, destinationCity string) (*domain.DestinationTrack, error) {
	t, ok := r.tracks[originCity+"|"+destinationCity]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return t, nil
}

type fakePredictionRepo struct {
	ports.PredictionRepository
	created []*domain.Prediction
	err     error
}

func (r *fakePredictionRepo) CreatePrediction(ctx context.Context, p *domain.Prediction) (*domain.Prediction, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created = append(r.created, p)
	return p, nil
}

// stubOracle returns a fixed estimate per row.
type stubOracle struct {
	schema   ports.FeatureSchema
	estimate float64
	err      error
	rowsSeen [][]ports.FeatureRow
}

func (o *stubOracle) Schema() ports.FeatureSchema { return o.schema }

func (o *stubOracle) Predict(ctx context.Context, rows []ports.FeatureRow) ([]float64, error) {
	if o.err != nil {
		return nil, o.err
	}
	o.rowsSeen = append(o.rowsSeen, rows)
	out := make([]float64, len(rows))
	for i := range out {
		out[i] = o.estimate
	}
	return out, nil
}

func newTestEngine(t *testing.T, orders *fakeOrderRepo, preds *fakePredictionRepo, oracle *stubOracle) *PredictionEngine {
	t.Helper()

	vehicles := &fakeVehicleRepo{catalog: []*domain.VehicleType{
		tonner(1, "1 TONNER", 1000),
		tonner(2, "4 TONNER", 4000),
		tonner(3, "8 TONNER", 8000),
	}}
	tracks := &fakeTrackFinder{tracks: map[string]*domain.DestinationTrack{
		"JNB|CPT": testTrack(),
	}}

	eng, err := NewPredictionEngine(orders, vehicles, tracks, preds, oracle, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return eng
}

func TestPredictionEngineRun(t *testing.T) {
	orders := &fakeOrderRepo{open: []*domain.Order{testOrder()}}
	preds := &fakePredictionRepo{}
	oracle := &stubOracle{schema: CurrentFeatureSchema(), estimate: 10.0}

	eng := newTestEngine(t, orders, preds, oracle)

	n, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("processed = %d, want 1", n)
	}
	if len(preds.created) != 1 {
		t.Fatalf("created %d predictions, want 1", len(preds.created))
	}

	p := preds.created[0]
	if p.ExpectedLeadTimeDays == nil || *p.ExpectedLeadTimeDays != 13.29 {
		t.Errorf("lead time = %v, want 13.29", p.ExpectedLeadTimeDays)
	}
	if p.RecommendedVehicleTypeID == nil || *p.RecommendedVehicleTypeID != 3 {
		t.Errorf("recommended vehicle = %v, want 3 (8 TONNER for 5500kg)", p.RecommendedVehicleTypeID)
	}
	if p.DestinationTrackID == nil || *p.DestinationTrackID != 7 {
		t.Errorf("track = %v, want 7", p.DestinationTrackID)
	}
	if p.PredictedCO2Kg == nil {
		t.Error("expected a CO2 estimate with vehicle and track present")
	}
	if p.Confidence != nil {
		t.Error("confidence should stay unset")
	}
	if p.RecommendedBookingDate != nil {
		t.Error("no requested delivery date means no booking date")
	}
}

func TestPredictionEngineRunBookingDate(t *testing.T) {
	order := testOrder()
	order.RequestedDeliveryDate = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	orders := &fakeOrderRepo{open: []*domain.Order{order}}
	preds := &fakePredictionRepo{}
	oracle := &stubOracle{schema: CurrentFeatureSchema(), estimate: 10.0}

	eng := newTestEngine(t, orders, preds, oracle)
	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := preds.created[0].RecommendedBookingDate
	want := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("booking date = %v, want %v", got, want)
	}
}

func TestPredictionEngineRunBatchesInference(t *testing.T) {
	open := []*domain.Order{testOrder(), testOrder(), testOrder()}
	orders := &fakeOrderRepo{open: open}
	preds := &fakePredictionRepo{}
	oracle := &stubOracle{schema: CurrentFeatureSchema(), estimate: 5.0}

	eng := newTestEngine(t, orders, preds, oracle)
	n, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("processed = %d, want 3", n)
	}
	if len(oracle.rowsSeen) != 1 {
		t.Fatalf("oracle called %d times, want 1 batched call", len(oracle.rowsSeen))
	}
	if len(oracle.rowsSeen[0]) != 3 {
		t.Fatalf("batch size = %d, want 3", len(oracle.rowsSeen[0]))
	}
}

func TestPredictionEngineRunDegradesWithoutRouteOrVehicle(t *testing.T) {
	order := testOrder()
	order.OriginRegion = "XXX" // no track for this route
	order.GrossWeightKg = f(50000)

	orders := &fakeOrderRepo{open: []*domain.Order{order}}
	preds := &fakePredictionRepo{}
	oracle := &stubOracle{schema: CurrentFeatureSchema(), estimate: 10.0}

	eng := newTestEngine(t, orders, preds, oracle)
	n, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("route and catalog misses must not abort the run: %v", err)
	}
	if n != 1 {
		t.Fatalf("processed = %d, want 1", n)
	}

	p := preds.created[0]
	if p.RecommendedVehicleTypeID != nil {
		t.Error("no vehicle fits 50000kg, recommendation should be nil")
	}
	if p.DestinationTrackID != nil {
		t.Error("unmatched route should leave track unset")
	}
	if p.PredictedCO2Kg != nil {
		t.Error("CO2 should stay unset instead of guessed")
	}
	if p.ExpectedLeadTimeDays == nil {
		t.Error("lead time should still be predicted")
	}
}

func TestPredictionEngineRunNoOpenOrders(t *testing.T) {
	orders := &fakeOrderRepo{}
	preds := &fakePredictionRepo{}
	oracle := &stubOracle{schema: CurrentFeatureSchema()}

	eng := newTestEngine(t, orders, preds, oracle)
	n, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 || len(preds.created) != 0 {
		t.Fatalf("empty batch should write nothing, got n=%d created=%d", n, len(preds.created))
	}
}

func TestPredictionEngineRunOracleFailureAborts(t *testing.T) {
	orders := &fakeOrderRepo{open: []*domain.Order{testOrder()}}
	preds := &fakePredictionRepo{}
	oracle := &stubOracle{schema: CurrentFeatureSchema(), err: errors.New("artifact gone")}

	eng := newTestEngine(t, orders, preds, oracle)
	if _, err := eng.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(preds.created) != 0 {
		t.Fatalf("failed run must not write predictions, wrote %d", len(preds.created))
	}
}

func TestNewPredictionEngineRejectsSchemaMismatch(t *testing.T) {
	schema := CurrentFeatureSchema()
	schema.Version = "v0"
	oracle := &stubOracle{schema: schema}

	_, err := NewPredictionEngine(&fakeOrderRepo{}, &fakeVehicleRepo{}, &fakeTrackFinder{}, &fakePredictionRepo{}, oracle, nil, zerolog.Nop())
	if err == nil {
		t.Fatal("expected schema mismatch error")
	}
}
