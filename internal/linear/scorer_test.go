package linear

import (
	"math"
	"testing"

	"github.com/mgrindal/ethica/internal/textvec"
)

// marginOnly exposes a decision score but no probability, standing in
// for classifier implementations without native probability support.
type marginOnly struct {
	score float64
}

func (m marginOnly) DecisionScore(textvec.Vector) float64 { return m.score }

func TestNewScorer_NativeProbability(t *testing.T) {
	docs := []string{"alpha beta", "gamma delta"}
	vecs, nf := fitVectors(t, docs)
	m := TrainBinary(vecs, []bool{true, false}, nf, DefaultBinaryConfig())

	s := NewScorer(m)
	if _, ok := s.(probabilityScorer); !ok {
		t.Fatalf("scorer for *Binary is %T, want probabilityScorer", s)
	}
	if got, want := s.Confidence(vecs[0]), m.Probability(vecs[0]); got != want {
		t.Errorf("Confidence = %f, want %f", got, want)
	}
}

func TestNewScorer_SigmoidFallback(t *testing.T) {
	s := NewScorer(marginOnly{score: 2})
	if _, ok := s.(sigmoidScorer); !ok {
		t.Fatalf("scorer for margin-only model is %T, want sigmoidScorer", s)
	}
	got := s.Confidence(textvec.Vector{})
	if want := sigmoid(2); math.Abs(got-want) > 1e-12 {
		t.Errorf("Confidence = %f, want sigmoid(2) = %f", got, want)
	}
}

func TestScorer_ConfidenceInUnitInterval(t *testing.T) {
	for _, score := range []float64{-100, -1, 0, 1, 100} {
		c := NewScorer(marginOnly{score: score}).Confidence(textvec.Vector{})
		if c < 0 || c > 1 {
			t.Errorf("score %f gave confidence %f outside [0,1]", score, c)
		}
	}
}
