package pipeline

import (
	"github.com/mgrindal/ethica/internal/corpus"
	"github.com/mgrindal/ethica/internal/linear"
	"github.com/mgrindal/ethica/internal/textvec"
)

// verdictModel predicts the overall verdict with a single multinomial
// classifier over the three verdict labels. It shares the feature space
// with the tagger but no parameters.
type verdictModel struct {
	model *linear.Softmax
}

// verdictIndex maps each verdict to its class index, in the order of
// corpus.Verdicts().
func verdictIndex(v corpus.Verdict) int {
	for i, w := range corpus.Verdicts() {
		if w == v {
			return i
		}
	}
	return -1
}

// trainVerdict fits the verdict classifier with balanced class weights;
// the corpus verdict distribution is skewed and rare verdicts must not
// be systematically under-predicted.
func trainVerdict(vecs []textvec.Vector, verdicts []corpus.Verdict, numFeatures int, cfg linear.SoftmaxConfig) *verdictModel {
	labels := make([]int, len(verdicts))
	for i, v := range verdicts {
		labels[i] = verdictIndex(v)
	}
	m := linear.TrainSoftmax(vecs, labels, len(corpus.Verdicts()), numFeatures, cfg)
	return &verdictModel{model: m}
}

// predict returns exactly one verdict per input, by arg-max. No
// thresholding is exposed.
func (vm *verdictModel) predict(vecs []textvec.Vector) []corpus.Verdict {
	all := corpus.Verdicts()
	out := make([]corpus.Verdict, len(vecs))
	for i, v := range vecs {
		out[i] = all[vm.model.Predict(v)]
	}
	return out
}
