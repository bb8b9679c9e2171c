package linear

import (
	"math"
	"testing"

	"github.com/mgrindal/ethica/internal/textvec"
)

// fitVectors builds TF-IDF vectors for docs using a fresh vectorizer.
func fitVectors(t *testing.T, docs []string) ([]textvec.Vector, int) {
	t.Helper()
	v := textvec.New(0)
	if err := v.Fit(docs); err != nil {
		t.Fatal(err)
	}
	return v.Transform(docs), v.NumFeatures()
}

func TestTrainBinary_SeparatesClasses(t *testing.T) {
	docs := []string{
		"app sells personal data to advertisers",
		"platform shares personal data without consent",
		"company leaks personal data records",
		"team publishes safety reports openly",
		"lab documents audit procedures openly",
		"project releases incident logs openly",
	}
	labels := []bool{true, true, true, false, false, false}

	vecs, nf := fitVectors(t, docs)
	m := TrainBinary(vecs, labels, nf, DefaultBinaryConfig())

	for i, v := range vecs {
		p := m.Probability(v)
		if labels[i] && p < 0.5 {
			t.Errorf("positive example %d got probability %f", i, p)
		}
		if !labels[i] && p >= 0.5 {
			t.Errorf("negative example %d got probability %f", i, p)
		}
	}
}

func TestTrainBinary_AllNegative(t *testing.T) {
	docs := []string{"one scenario here", "another scenario there"}
	vecs, nf := fitVectors(t, docs)
	m := TrainBinary(vecs, []bool{false, false}, nf, DefaultBinaryConfig())

	p := m.Probability(vecs[0])
	if p >= 0.5 {
		t.Errorf("all-negative model predicts %f, want < 0.5", p)
	}
	if p <= 0 {
		t.Errorf("probability %f should stay above 0 (smoothed prior)", p)
	}
	if q := m.Probability(vecs[1]); q != p {
		t.Errorf("prior-only model gave %f then %f for different inputs", p, q)
	}
}

func TestTrainBinary_AllPositive(t *testing.T) {
	docs := []string{"one scenario here", "another scenario there"}
	vecs, nf := fitVectors(t, docs)
	m := TrainBinary(vecs, []bool{true, true}, nf, DefaultBinaryConfig())

	if p := m.Probability(vecs[0]); p <= 0.5 || p >= 1 {
		t.Errorf("all-positive model predicts %f, want (0.5, 1)", p)
	}
}

func TestBinary_ProbabilityMatchesSigmoidOfScore(t *testing.T) {
	docs := []string{"alpha beta gamma", "delta epsilon zeta"}
	vecs, nf := fitVectors(t, docs)
	m := TrainBinary(vecs, []bool{true, false}, nf, DefaultBinaryConfig())

	for _, v := range vecs {
		want := sigmoid(m.DecisionScore(v))
		if got := m.Probability(v); math.Abs(got-want) > 1e-12 {
			t.Errorf("Probability = %f, sigmoid(DecisionScore) = %f", got, want)
		}
	}
}

func TestSigmoid(t *testing.T) {
	if got := sigmoid(0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("sigmoid(0) = %f, want 0.5", got)
	}
	if got := sigmoid(50); got <= 0.99 {
		t.Errorf("sigmoid(50) = %f, want ~1", got)
	}
	if got := sigmoid(-50); got >= 0.01 {
		t.Errorf("sigmoid(-50) = %f, want ~0", got)
	}
}
