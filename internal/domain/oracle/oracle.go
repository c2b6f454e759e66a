package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/coachos/pitchpilot/pkg/logger"
	"github.com/coachos/pitchpilot/pkg/metrics"
)

// Oracle wraps one probability model. A zero-value or unloaded Oracle is
// valid: every prediction reports absent rather than erroring, and the
// caller falls back to heuristic scoring.
type Oracle struct {
	name  string
	model *logisticModel
	log   logger.Logger
}

// NewLogistic builds an oracle around explicit logistic coefficients.
// Intended for wiring pre-tuned models in tests and tooling.
func NewLogistic(name string, weights []float64, intercept float64, log logger.Logger) *Oracle {
	if log == nil {
		log = logger.Nop()
	}
	return &Oracle{
		name:  name,
		model: &logisticModel{Weights: weights, Intercept: intercept},
		log:   log,
	}
}

// Name returns the oracle's identifier (pass, shot or win).
func (o *Oracle) Name() string { return o.name }

// Loaded reports whether a model backs this oracle.
func (o *Oracle) Loaded() bool { return o != nil && o.model != nil }

// Predict evaluates the model on the given feature vector. The boolean is
// false when the oracle is unloaded or the vector does not match the model
// shape; such faults are logged at this boundary and never propagate.
func (o *Oracle) Predict(ctx context.Context, features []float64) (float64, bool) {
	if !o.Loaded() {
		metrics.RecordOracleFallback(o.safeName())
		return 0, false
	}
	p, err := o.model.probability(features)
	if err != nil {
		o.log.Warn(ctx, "oracle prediction failed; degrading to heuristic",
			logger.String("oracle", o.name), logger.Error(err))
		metrics.RecordOracleFallback(o.name)
		return 0, false
	}
	metrics.RecordOraclePrediction(o.name)
	return p, true
}

func (o *Oracle) safeName() string {
	if o == nil {
		return "unknown"
	}
	return o.name
}

// logisticModel is a pre-trained logistic regression: probability =
// sigmoid(weights . x + intercept). Training happens offline; this package
// only evaluates shipped coefficients.
type logisticModel struct {
	Features  []string  `json:"features"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func (m *logisticModel) probability(x []float64) (float64, error) {
	if len(x) != len(m.Weights) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(x), len(m.Weights))
	}
	z := m.Intercept
	for i, w := range m.Weights {
		z += w * x[i]
	}
	return 1.0 / (1.0 + math.Exp(-z)), nil
}

func loadModel(path string) (*logisticModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m logisticModel
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model %s has no weights", path)
	}
	return &m, nil
}
