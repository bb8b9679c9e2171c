package linear

import "github.com/mgrindal/ethica/internal/textvec"

// DecisionScorer is the minimum capability a per-label classifier must
// offer: a raw, unbounded decision margin.
type DecisionScorer interface {
	DecisionScore(v textvec.Vector) float64
}

// ProbabilityEstimator is the optional capability of producing a genuine
// probability for the positive class.
type ProbabilityEstimator interface {
	Probability(v textvec.Vector) float64
}

// Scorer maps a feature vector to a confidence in [0,1].
type Scorer interface {
	Confidence(v textvec.Vector) float64
}

// NewScorer picks the confidence strategy for a model once, at
// construction: the model's own probability when it exposes one,
// otherwise the logistic transform of its decision score. Callers never
// see the difference.
func NewScorer(m DecisionScorer) Scorer {
	if pe, ok := m.(ProbabilityEstimator); ok {
		return probabilityScorer{pe}
	}
	return sigmoidScorer{m}
}

type probabilityScorer struct {
	model ProbabilityEstimator
}

func (s probabilityScorer) Confidence(v textvec.Vector) float64 {
	return s.model.Probability(v)
}

type sigmoidScorer struct {
	model DecisionScorer
}

func (s sigmoidScorer) Confidence(v textvec.Vector) float64 {
	return sigmoid(s.model.DecisionScore(v))
}
