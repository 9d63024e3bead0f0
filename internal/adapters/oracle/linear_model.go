package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

// Artifact is the on-disk form of a trained transit-duration model: a
// linear regression over the numeric features plus additive per-category
// offsets, exported by the offline training job as versioned JSON. The
// feature schema travels inside the artifact so inference can verify it is
// building the columns the model was trained on.
type Artifact struct {
	ModelVersion   string                        `json:"model_version"`
	Schema         ports.FeatureSchema           `json:"schema"`
	Bias           float64                       `json:"bias"`
	NumericWeights map[string]float64            `json:"numeric_weights"`
	CatWeights     map[string]map[string]float64 `json:"categorical_weights"`
}

// LinearModel is the DurationOracle backed by a loaded artifact. Inference
// is a pure function; the model is immutable after Load.
type LinearModel struct {
	version string
	schema  ports.FeatureSchema
	bias    float64
	// weights aligned to schema.Numeric order.
	weights *mat.VecDense
	// catWeights[i][value] is the offset for schema.Categorical[i].
	catWeights []map[string]float64
}

// Load reads and validates a model artifact. The artifact is loaded once
// per process; a missing or unreadable file is a fatal error for any run
// that needs predictions.
func Load(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load model: artifact not found at %s", path)
		}
		return nil, fmt.Errorf("load model: read %s: %w", path, err)
	}

	var art Artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("load model: parse artifact %s: %w", path, err)
	}

	return New(art)
}

// New builds a LinearModel from an already-decoded artifact.
func New(art Artifact) (*LinearModel, error) {
	if art.ModelVersion == "" {
		return nil, errors.New("load model: artifact has no model_version")
	}
	if len(art.Schema.Numeric) == 0 && len(art.Schema.Categorical) == 0 {
		return nil, fmt.Errorf("load model: artifact %s declares an empty feature schema", art.ModelVersion)
	}

	numericSet := make(map[string]struct{}, len(art.Schema.Numeric))
	for _, name := range art.Schema.Numeric {
		numericSet[name] = struct{}{}
	}
	for name := range art.NumericWeights {
		if _, ok := numericSet[name]; !ok {
			return nil, fmt.Errorf("load model: weight for %q is not in the numeric schema", name)
		}
	}

	weights := mat.NewVecDense(len(art.Schema.Numeric), nil)
	for i, name := range art.Schema.Numeric {
		weights.SetVec(i, art.NumericWeights[name])
	}

	catWeights := make([]map[string]float64, len(art.Schema.Categorical))
	for i, name := range art.Schema.Categorical {
		if w, ok := art.CatWeights[name]; ok {
			catWeights[i] = w
		}
	}

	return &LinearModel{
		version:    art.ModelVersion,
		schema:     art.Schema,
		bias:       art.Bias,
		weights:    weights,
		catWeights: catWeights,
	}, nil
}

// Version returns the artifact's model version string.
func (m *LinearModel) Version() string { return m.version }

// Schema returns the feature schema the model was trained on.
func (m *LinearModel) Schema() ports.FeatureSchema { return m.schema }

// Predict runs batched inference and returns one predicted transit
// duration in days per row, in input order. Missing numeric values are
// substituted with the schema's fill value right before the matrix
// multiply; missing categoricals contribute no offset.
func (m *LinearModel) Predict(ctx context.Context, rows []ports.FeatureRow) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	d := len(m.schema.Numeric)
	x := mat.NewDense(len(rows), d, nil)
	for i, row := range rows {
		if len(row.Nums) != d || len(row.Cats) != len(m.schema.Categorical) {
			return nil, fmt.Errorf("predict: row %d has %d/%d fields, schema %s wants %d/%d",
				i, len(row.Cats), len(row.Nums), m.schema.Version, len(m.schema.Categorical), d)
		}
		for j, v := range row.Nums {
			if v == nil {
				x.Set(i, j, m.schema.NumericFill)
				continue
			}
			x.Set(i, j, *v)
		}
	}

	var y mat.VecDense
	y.MulVec(x, m.weights)

	out := make([]float64, len(rows))
	for i, row := range rows {
		est := m.bias + y.AtVec(i)
		for j, value := range row.Cats {
			if m.catWeights[j] == nil || value == "" {
				continue
			}
			est += m.catWeights[j][value]
		}
		out[i] = est
	}
	return out, nil
}
