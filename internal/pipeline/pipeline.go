// Package pipeline ties the vectorizer and both classifiers into a
// single trainable unit: fit once on a labeled corpus, then classify
// scenario text into applicable principles plus an overall verdict.
package pipeline

import (
	"fmt"

	"github.com/mgrindal/ethica/internal/corpus"
	"github.com/mgrindal/ethica/internal/linear"
	"github.com/mgrindal/ethica/internal/textvec"
)

// DefaultThreshold is the confidence cutoff for including a principle in
// the predicted set when the caller doesn't supply one.
const DefaultThreshold = 0.3

// TrainOptions configures a Fit call.
type TrainOptions struct {
	// TestFraction of the corpus is held out for the evaluation report.
	// Zero disables the hold-out; everything trains.
	TestFraction float64
	// Seed drives the train/test shuffle. Same seed, same split.
	Seed int64
	// MaxFeatures caps the vectorizer vocabulary (0 = default).
	MaxFeatures int

	Binary  linear.BinaryConfig
	Softmax linear.SoftmaxConfig
}

// DefaultTrainOptions returns the documented defaults.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		TestFraction: 0.3,
		Seed:         42,
		Binary:       linear.DefaultBinaryConfig(),
		Softmax:      linear.DefaultSoftmaxConfig(),
	}
}

// Result is a single classification outcome.
type Result struct {
	Principles []string       `json:"principles"`
	Verdict    corpus.Verdict `json:"verdict"`
}

// Pipeline bundles the fitted vectorizer, principle tagger, and verdict
// classifier. A Pipeline starts untrained; Fit transitions it to trained
// exactly once per call, all-or-nothing. After a successful Fit the
// pipeline is never written again, so concurrent predict calls are safe.
type Pipeline struct {
	vectorizer *textvec.Vectorizer
	tagger     *tagger
	verdict    *verdictModel
	trained    bool
}

// New returns an untrained pipeline. Every predict call fails with
// ErrNotTrained until Fit succeeds.
func New() *Pipeline {
	return &Pipeline{}
}

// Trained reports whether Fit has completed successfully.
func (p *Pipeline) Trained() bool { return p.trained }

// Fit validates the corpus, splits it with the seeded fraction, fits the
// vectorizer on the training texts only, then fits both classifiers on
// the vectorized training subset. The hold-out is used solely for the
// returned report (nil when TestFraction is 0). On any error the
// pipeline is left untrained; no partial model survives.
func (p *Pipeline) Fit(examples []corpus.Example, opts TrainOptions) (*Report, error) {
	if err := corpus.Validate(examples); err != nil {
		return nil, fmt.Errorf("invalid corpus: %w", err)
	}

	trainIdx, testIdx, err := split(len(examples), opts.TestFraction, opts.Seed)
	if err != nil {
		return nil, err
	}
	if opts.TestFraction > 0 && len(testIdx) == 0 {
		return nil, fmt.Errorf("test fraction %v leaves no hold-out examples on a corpus of %d",
			opts.TestFraction, len(examples))
	}

	texts := make([]string, len(trainIdx))
	principleSets := make([][]string, len(trainIdx))
	verdicts := make([]corpus.Verdict, len(trainIdx))
	for i, idx := range trainIdx {
		texts[i] = examples[idx].Text
		principleSets[i] = examples[idx].Principles
		verdicts[i] = examples[idx].Verdict
	}

	vectorizer := textvec.New(opts.MaxFeatures)
	if err := vectorizer.Fit(texts); err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}
	vecs := vectorizer.Transform(texts)

	nf := vectorizer.NumFeatures()
	tg := trainTagger(vecs, principleSets, nf, opts.Binary)
	vm := trainVerdict(vecs, verdicts, nf, opts.Softmax)

	// Commit only now: a failure above leaves the pipeline untrained.
	p.vectorizer = vectorizer
	p.tagger = tg
	p.verdict = vm
	p.trained = true

	if len(testIdx) == 0 {
		return nil, nil
	}
	return p.evaluate(examples, trainIdx, testIdx), nil
}

// Train is the orchestration entry point: builds a pipeline, fits it on
// the corpus, and returns it with the hold-out report.
func Train(examples []corpus.Example, opts TrainOptions) (*Pipeline, *Report, error) {
	p := New()
	report, err := p.Fit(examples, opts)
	if err != nil {
		return nil, nil, err
	}
	return p, report, nil
}

// PredictPrinciples returns, per text, the set of principle IDs whose
// confidence clears threshold, in canonical taxonomy order. Empty sets
// are legal. Text disjoint from the training vocabulary is fine; unknown
// tokens simply contribute nothing.
func (p *Pipeline) PredictPrinciples(texts []string, threshold float64) ([][]string, error) {
	if !p.trained {
		return nil, ErrNotTrained
	}
	return p.tagger.predict(p.vectorizer.Transform(texts), threshold), nil
}

// PredictVerdicts returns exactly one verdict per text.
func (p *Pipeline) PredictVerdicts(texts []string) ([]corpus.Verdict, error) {
	if !p.trained {
		return nil, ErrNotTrained
	}
	return p.verdict.predict(p.vectorizer.Transform(texts)), nil
}

// Classify runs the vectorizer once and both classifiers over a single
// text. This is the inference façade intended for interactive use.
func (p *Pipeline) Classify(text string, threshold float64) (Result, error) {
	if !p.trained {
		return Result{}, ErrNotTrained
	}
	vecs := p.vectorizer.Transform([]string{text})
	principles := p.tagger.predict(vecs, threshold)[0]
	verdicts := p.verdict.predict(vecs)
	return Result{Principles: principles, Verdict: verdicts[0]}, nil
}

// Confidences exposes the per-principle confidence scores for one text,
// indexed by canonical taxonomy position. Used by the TUI to display how
// close each principle came to the threshold.
func (p *Pipeline) Confidences(text string) ([]float64, error) {
	if !p.trained {
		return nil, ErrNotTrained
	}
	return p.tagger.confidences(p.vectorizer.TransformOne(text)), nil
}
