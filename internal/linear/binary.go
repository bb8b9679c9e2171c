// Package linear implements the small set of linear classifiers the
// pipeline trains: binary logistic regression for one-vs-rest principle
// tagging and multinomial (softmax) regression for verdicts. Training is
// full-batch gradient descent with no internal randomness, so identical
// inputs always produce identical models.
package linear

import (
	"math"

	"github.com/mgrindal/ethica/internal/textvec"
)

// BinaryConfig tunes binary logistic regression training.
type BinaryConfig struct {
	LearningRate float64
	Epochs       int
	L2           float64
}

// DefaultBinaryConfig returns the training defaults. The corpus is small
// and the features are L2-normalized TF-IDF, so a large learning rate
// and a generous epoch count converge quickly and deterministically.
func DefaultBinaryConfig() BinaryConfig {
	return BinaryConfig{
		LearningRate: 2.0,
		Epochs:       2000,
		L2:           1e-4,
	}
}

// Binary is a trained binary logistic regression model.
type Binary struct {
	weights []float64
	bias    float64
}

// TrainBinary fits a binary logistic regression on sparse vectors with
// boolean labels. If every label is identical the returned model is a
// constant prior rather than an error; one-vs-rest training routinely
// produces single-class slices for rare labels.
func TrainBinary(vecs []textvec.Vector, labels []bool, numFeatures int, cfg BinaryConfig) *Binary {
	pos := 0
	for _, y := range labels {
		if y {
			pos++
		}
	}
	if pos == 0 || pos == len(labels) {
		return constantBinary(pos, len(labels), numFeatures)
	}

	m := &Binary{weights: make([]float64, numFeatures)}
	n := float64(len(vecs))
	gradW := make([]float64, numFeatures)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for i := range gradW {
			gradW[i] = 0
		}
		var gradB float64
		for i, v := range vecs {
			p := sigmoid(m.DecisionScore(v))
			err := p
			if labels[i] {
				err = p - 1
			}
			for k, idx := range v.Indices {
				gradW[idx] += err * v.Values[k]
			}
			gradB += err
		}
		for i := range m.weights {
			m.weights[i] -= cfg.LearningRate * (gradW[i]/n + cfg.L2*m.weights[i])
		}
		m.bias -= cfg.LearningRate * gradB / n
	}
	return m
}

// constantBinary builds a prior-only model from a degenerate label set,
// with Laplace smoothing so the probability never saturates to 0 or 1.
// Weights are allocated at full dimensionality so scoring any
// in-vocabulary vector stays in bounds.
func constantBinary(pos, total, numFeatures int) *Binary {
	p := (float64(pos) + 1) / (float64(total) + 2)
	return &Binary{
		weights: make([]float64, numFeatures),
		bias:    math.Log(p / (1 - p)),
	}
}

// DecisionScore returns the raw margin w·x + b.
func (m *Binary) DecisionScore(v textvec.Vector) float64 {
	return v.Dot(m.weights) + m.bias
}

// Probability returns the logistic probability of the positive class.
func (m *Binary) Probability(v textvec.Vector) float64 {
	return sigmoid(m.DecisionScore(v))
}

// sigmoid is the standard logistic function.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
