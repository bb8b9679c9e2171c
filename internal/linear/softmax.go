package linear

import (
	"math"

	"github.com/mgrindal/ethica/internal/textvec"
)

// SoftmaxConfig tunes multinomial regression training.
type SoftmaxConfig struct {
	LearningRate float64
	Epochs       int
	L2           float64
}

// DefaultSoftmaxConfig returns the training defaults for the verdict model.
func DefaultSoftmaxConfig() SoftmaxConfig {
	return SoftmaxConfig{
		LearningRate: 2.0,
		Epochs:       2000,
		L2:           1e-4,
	}
}

// Softmax is a trained multinomial logistic regression model.
type Softmax struct {
	weights [][]float64 // [class][feature]
	bias    []float64
}

// TrainSoftmax fits a multinomial regression on sparse vectors with
// integer class labels in [0, numClasses). Each class contributes to the
// loss in inverse proportion to its frequency, so rare classes are not
// systematically under-predicted on a skewed corpus.
func TrainSoftmax(vecs []textvec.Vector, labels []int, numClasses, numFeatures int, cfg SoftmaxConfig) *Softmax {
	m := &Softmax{
		weights: make([][]float64, numClasses),
		bias:    make([]float64, numClasses),
	}
	for c := range m.weights {
		m.weights[c] = make([]float64, numFeatures)
	}

	classWeights := balancedClassWeights(labels, numClasses)
	n := float64(len(vecs))

	gradW := make([][]float64, numClasses)
	for c := range gradW {
		gradW[c] = make([]float64, numFeatures)
	}
	gradB := make([]float64, numClasses)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for c := range gradW {
			for i := range gradW[c] {
				gradW[c][i] = 0
			}
			gradB[c] = 0
		}
		for i, v := range vecs {
			probs := m.Probabilities(v)
			cw := classWeights[labels[i]]
			for c := 0; c < numClasses; c++ {
				err := probs[c]
				if c == labels[i] {
					err -= 1
				}
				err *= cw
				for k, idx := range v.Indices {
					gradW[c][idx] += err * v.Values[k]
				}
				gradB[c] += err
			}
		}
		for c := 0; c < numClasses; c++ {
			for i := range m.weights[c] {
				m.weights[c][i] -= cfg.LearningRate * (gradW[c][i]/n + cfg.L2*m.weights[c][i])
			}
			m.bias[c] -= cfg.LearningRate * gradB[c] / n
		}
	}
	return m
}

// balancedClassWeights computes n / (numClasses * count(c)) per class,
// mirroring the usual "balanced" weighting. Classes absent from labels
// get weight 0; they can never be sampled anyway.
func balancedClassWeights(labels []int, numClasses int) []float64 {
	counts := make([]int, numClasses)
	for _, y := range labels {
		counts[y]++
	}
	weights := make([]float64, numClasses)
	n := float64(len(labels))
	for c, cnt := range counts {
		if cnt > 0 {
			weights[c] = n / (float64(numClasses) * float64(cnt))
		}
	}
	return weights
}

// Probabilities returns the softmax distribution over classes.
func (m *Softmax) Probabilities(v textvec.Vector) []float64 {
	scores := make([]float64, len(m.weights))
	maxScore := math.Inf(-1)
	for c := range m.weights {
		scores[c] = v.Dot(m.weights[c]) + m.bias[c]
		if scores[c] > maxScore {
			maxScore = scores[c]
		}
	}
	var sum float64
	for c, s := range scores {
		scores[c] = math.Exp(s - maxScore)
		sum += scores[c]
	}
	for c := range scores {
		scores[c] /= sum
	}
	return scores
}

// Predict returns the arg-max class. Ties resolve to the lowest class
// index so prediction stays deterministic.
func (m *Softmax) Predict(v textvec.Vector) int {
	probs := m.Probabilities(v)
	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return best
}
