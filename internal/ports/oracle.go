package ports

import (
	"context"
	"fmt"
	"slices"
)

// FeatureSchema is the ordered field list shared between offline model
// training and online inference. The artifact carries the schema it was
// trained on, and callers check it against the schema they build rows for,
// turning positional-column drift into a hard precondition failure instead
// of silently degraded predictions.
type FeatureSchema struct {
	Version     string   `json:"version"`
	Categorical []string `json:"categorical"`
	Numeric     []string `json:"numeric"`
	// NumericFill substitutes missing numeric values right before
	// inference. Training used median fill; inference historically used
	// zero fill. The value is pinned in the artifact so the asymmetry is
	// explicit and testable rather than implied.
	NumericFill float64 `json:"numeric_fill"`
}

// Validate checks the schema against an expected one, field order included.
func (s FeatureSchema) Validate(expected FeatureSchema) error {
	if s.Version != expected.Version {
		return fmt.Errorf("feature schema: version %q does not match expected %q", s.Version, expected.Version)
	}
	if !slices.Equal(s.Categorical, expected.Categorical) {
		return fmt.Errorf("feature schema: categorical fields differ from expected (version %s)", expected.Version)
	}
	if !slices.Equal(s.Numeric, expected.Numeric) {
		return fmt.Errorf("feature schema: numeric fields differ from expected (version %s)", expected.Version)
	}
	return nil
}

// FeatureRow is one order's feature vector, aligned to a FeatureSchema.
// Cats[i] corresponds to Schema.Categorical[i] with "" meaning unset;
// Nums[i] corresponds to Schema.Numeric[i] with nil meaning missing.
type FeatureRow struct {
	Cats []string
	Nums []*float64
	// DefaultedFields counts inputs that fell back to a default. Missing
	// features degrade prediction quality silently, so the count is
	// surfaced in logs and metrics.
	DefaultedFields int
}

// Port: the trained transit-duration regression model.
//
// Implementations load a versioned artifact once at startup and expose pure
// batched inference. A missing or unreadable artifact must fail loading,
// never Predict.
type DurationOracle interface {
	// Schema returns the feature schema the model was trained on.
	Schema() FeatureSchema

	// Predict returns one predicted transit duration in days per row, in
	// input order.
	Predict(ctx context.Context, rows []FeatureRow) ([]float64, error)
}
