package pipeline

import (
	"github.com/mgrindal/ethica/internal/corpus"
	"github.com/mgrindal/ethica/internal/taxonomy"
)

// PrincipleStats accumulates hold-out counts for one principle.
type PrincipleStats struct {
	ID             string
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Support        int // hold-out examples labeled with this principle
}

// Precision returns TP/(TP+FP), or 0 when nothing was predicted.
func (s PrincipleStats) Precision() float64 {
	denom := s.TruePositives + s.FalsePositives
	if denom == 0 {
		return 0
	}
	return float64(s.TruePositives) / float64(denom)
}

// Recall returns TP/(TP+FN), or 0 when the principle never occurs.
func (s PrincipleStats) Recall() float64 {
	denom := s.TruePositives + s.FalseNegatives
	if denom == 0 {
		return 0
	}
	return float64(s.TruePositives) / float64(denom)
}

// Report summarizes hold-out performance. It is diagnostic output for
// the eval command, never part of the classification contract.
type Report struct {
	TrainSize       int
	TestSize        int
	Threshold       float64
	Principles      []PrincipleStats
	VerdictCorrect  int
	VerdictAccuracy float64
}

// evaluate scores the trained pipeline against the hold-out split.
func (p *Pipeline) evaluate(examples []corpus.Example, trainIdx, testIdx []int) *Report {
	ids := taxonomy.IDs()
	report := &Report{
		TrainSize:  len(trainIdx),
		TestSize:   len(testIdx),
		Threshold:  DefaultThreshold,
		Principles: make([]PrincipleStats, len(ids)),
	}
	for i, id := range ids {
		report.Principles[i].ID = id
	}

	texts := make([]string, len(testIdx))
	for i, idx := range testIdx {
		texts[i] = examples[idx].Text
	}
	predictedSets, _ := p.PredictPrinciples(texts, DefaultThreshold)
	predictedVerdicts, _ := p.PredictVerdicts(texts)

	for i, idx := range testIdx {
		ex := examples[idx]

		actual := make(map[string]bool, len(ex.Principles))
		for _, id := range ex.Principles {
			actual[id] = true
		}
		predicted := make(map[string]bool, len(predictedSets[i]))
		for _, id := range predictedSets[i] {
			predicted[id] = true
		}
		for pi, id := range ids {
			st := &report.Principles[pi]
			switch {
			case actual[id] && predicted[id]:
				st.TruePositives++
			case predicted[id]:
				st.FalsePositives++
			case actual[id]:
				st.FalseNegatives++
			}
			if actual[id] {
				st.Support++
			}
		}

		if predictedVerdicts[i] == ex.Verdict {
			report.VerdictCorrect++
		}
	}
	report.VerdictAccuracy = float64(report.VerdictCorrect) / float64(len(testIdx))
	return report
}
