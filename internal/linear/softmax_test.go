package linear

import (
	"math"
	"testing"

	"github.com/mgrindal/ethica/internal/textvec"
)

func TestTrainSoftmax_SeparatesClasses(t *testing.T) {
	docs := []string{
		"users control their own data fully",
		"people manage their own data freely",
		"system secretly harvests biometric data",
		"platform secretly tracks every user",
		"monitoring students raises open questions",
		"workplace surveillance raises open questions",
	}
	labels := []int{0, 0, 1, 1, 2, 2}

	vecs, nf := fitVectors(t, docs)
	m := TrainSoftmax(vecs, labels, 3, nf, DefaultSoftmaxConfig())

	for i, v := range vecs {
		if got := m.Predict(v); got != labels[i] {
			t.Errorf("example %d predicted class %d, want %d", i, got, labels[i])
		}
	}
}

func TestSoftmax_ProbabilitiesSumToOne(t *testing.T) {
	docs := []string{"alpha beta", "gamma delta", "epsilon zeta"}
	vecs, nf := fitVectors(t, docs)
	m := TrainSoftmax(vecs, []int{0, 1, 2}, 3, nf, DefaultSoftmaxConfig())

	probs := m.Probabilities(vecs[0])
	var sum float64
	for _, p := range probs {
		if p < 0 || p > 1 {
			t.Errorf("probability %f out of [0,1]", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %f, want 1", sum)
	}
}

func TestTrainSoftmax_RareClassStillPredicted(t *testing.T) {
	// Class 1 has a single example on distinctive vocabulary. Balanced
	// class weighting must keep it predictable despite the imbalance.
	docs := []string{
		"scoring model ranks loan applications",
		"scoring model ranks credit applications",
		"scoring model ranks mortgage applications",
		"scoring model ranks insurance applications",
		"chatbot impersonates a human nurse",
	}
	labels := []int{0, 0, 0, 0, 1}

	vecs, nf := fitVectors(t, docs)
	m := TrainSoftmax(vecs, labels, 2, nf, DefaultSoftmaxConfig())

	if got := m.Predict(vecs[4]); got != 1 {
		t.Errorf("rare-class example predicted %d, want 1", got)
	}
}

func TestBalancedClassWeights(t *testing.T) {
	weights := balancedClassWeights([]int{0, 0, 0, 1}, 3)
	if math.Abs(weights[0]-4.0/(3*3)) > 1e-12 {
		t.Errorf("weights[0] = %f, want %f", weights[0], 4.0/9)
	}
	if math.Abs(weights[1]-4.0/3) > 1e-12 {
		t.Errorf("weights[1] = %f, want %f", weights[1], 4.0/3)
	}
	if weights[2] != 0 {
		t.Errorf("weights[2] = %f, want 0 for an absent class", weights[2])
	}
	if weights[0] >= weights[1] {
		t.Error("frequent class outweighs rare class")
	}
}

func TestSoftmax_PredictDeterministicTie(t *testing.T) {
	// Untrained-equivalent model: uniform scores. Arg-max must resolve to
	// the lowest class index every time.
	m := &Softmax{
		weights: [][]float64{make([]float64, 3), make([]float64, 3)},
		bias:    []float64{0, 0},
	}
	v := textvec.Vector{Indices: []int{0, 2}, Values: []float64{0.6, 0.8}}
	for i := 0; i < 5; i++ {
		if got := m.Predict(v); got != 0 {
			t.Fatalf("tie resolved to %d, want 0", got)
		}
	}
}
