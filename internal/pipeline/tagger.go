package pipeline

import (
	"github.com/mgrindal/ethica/internal/linear"
	"github.com/mgrindal/ethica/internal/taxonomy"
	"github.com/mgrindal/ethica/internal/textvec"
)

// tagger predicts principle sets via one-vs-rest decomposition: one
// independent binary classifier per principle, all sharing the same
// feature space. Scorers are indexed by canonical taxonomy position.
type tagger struct {
	scorers []linear.Scorer
}

// trainTagger fits one binary model per taxonomy principle on the binary
// indicator extracted from each example's principle set.
func trainTagger(vecs []textvec.Vector, principleSets [][]string, numFeatures int, cfg linear.BinaryConfig) *tagger {
	ids := taxonomy.IDs()
	scorers := make([]linear.Scorer, len(ids))

	labels := make([]bool, len(vecs))
	for pi, id := range ids {
		for i := range labels {
			labels[i] = false
			for _, p := range principleSets[i] {
				if p == id {
					labels[i] = true
					break
				}
			}
		}
		model := linear.TrainBinary(vecs, labels, numFeatures, cfg)
		scorers[pi] = linear.NewScorer(model)
	}
	return &tagger{scorers: scorers}
}

// predict returns, per input vector, the principles whose confidence is
// at or above threshold, in canonical taxonomy order. An empty result is
// legal: no principle cleared the threshold.
func (t *tagger) predict(vecs []textvec.Vector, threshold float64) [][]string {
	ids := taxonomy.IDs()
	out := make([][]string, len(vecs))
	for i, v := range vecs {
		set := []string{}
		for pi, s := range t.scorers {
			if s.Confidence(v) >= threshold {
				set = append(set, ids[pi])
			}
		}
		out[i] = set
	}
	return out
}

// confidences returns the per-principle confidence scores for one vector,
// indexed by canonical taxonomy position.
func (t *tagger) confidences(v textvec.Vector) []float64 {
	scores := make([]float64, len(t.scorers))
	for pi, s := range t.scorers {
		scores[pi] = s.Confidence(v)
	}
	return scores
}
