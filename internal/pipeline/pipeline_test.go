package pipeline

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/mgrindal/ethica/internal/corpus"
	"github.com/mgrindal/ethica/internal/taxonomy"
)

// miniCorpus is a small synthetic corpus with distinctive vocabulary per
// label, enough for the pipeline mechanics without the full seed data.
func miniCorpus() []corpus.Example {
	return []corpus.Example{
		{
			Text:       "An app quietly sells location data to advertisers without consent.",
			Principles: []string{"privacy", "data_agency"},
			Verdict:    corpus.VerdictUnethical,
		},
		{
			Text:       "A platform quietly shares browsing data with brokers without consent.",
			Principles: []string{"privacy", "data_agency"},
			Verdict:    corpus.VerdictUnethical,
		},
		{
			Text:       "A vendor quietly harvests contact data for resale without consent.",
			Principles: []string{"privacy", "data_agency"},
			Verdict:    corpus.VerdictUnethical,
		},
		{
			Text:       "A company lets users download and delete their records at any time.",
			Principles: []string{"data_agency"},
			Verdict:    corpus.VerdictEthical,
		},
		{
			Text:       "A lab lets auditors inspect and delete stored records at any time.",
			Principles: []string{"data_agency", "transparency"},
			Verdict:    corpus.VerdictEthical,
		},
		{
			Text:       "A team lets regulators review and delete archived records at any time.",
			Principles: []string{"data_agency", "accountability"},
			Verdict:    corpus.VerdictEthical,
		},
		{
			Text:       "Emotion recognition monitors students during class, with parental approval.",
			Principles: []string{"privacy", "well_being"},
			Verdict:    corpus.VerdictAmbiguous,
		},
		{
			Text:       "Emotion recognition monitors employees during meetings, with union approval.",
			Principles: []string{"privacy", "well_being"},
			Verdict:    corpus.VerdictAmbiguous,
		},
	}
}

// fastOptions trains on everything with a cheaper epoch budget.
func fastOptions() TrainOptions {
	opts := DefaultTrainOptions()
	opts.TestFraction = 0
	opts.Binary.Epochs = 500
	opts.Softmax.Epochs = 500
	return opts
}

func trainMini(t *testing.T) *Pipeline {
	t.Helper()
	p, _, err := Train(miniCorpus(), fastOptions())
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	return p
}

func TestNotTrainedGuard(t *testing.T) {
	p := New()
	if p.Trained() {
		t.Fatal("fresh pipeline reports trained")
	}
	if _, err := p.Classify("anything", DefaultThreshold); !errors.Is(err, ErrNotTrained) {
		t.Errorf("Classify error = %v, want ErrNotTrained", err)
	}
	if _, err := p.PredictPrinciples([]string{"anything"}, DefaultThreshold); !errors.Is(err, ErrNotTrained) {
		t.Errorf("PredictPrinciples error = %v, want ErrNotTrained", err)
	}
	if _, err := p.PredictVerdicts([]string{"anything"}); !errors.Is(err, ErrNotTrained) {
		t.Errorf("PredictVerdicts error = %v, want ErrNotTrained", err)
	}
	if _, err := p.Confidences("anything"); !errors.Is(err, ErrNotTrained) {
		t.Errorf("Confidences error = %v, want ErrNotTrained", err)
	}
}

func TestFit_InvalidCorpusLeavesUntrained(t *testing.T) {
	bad := []corpus.Example{
		{Text: "x y", Principles: []string{"honesty"}, Verdict: corpus.VerdictEthical},
	}

	tests := []struct {
		name     string
		examples []corpus.Example
	}{
		{"empty corpus", nil},
		{"out-of-taxonomy principle", bad},
		{"empty principle set", []corpus.Example{{Text: "x y", Verdict: corpus.VerdictEthical}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			if _, err := p.Fit(tt.examples, fastOptions()); err == nil {
				t.Fatal("Fit succeeded on a malformed corpus")
			}
			if p.Trained() {
				t.Error("pipeline trained after failed Fit")
			}
			if _, err := p.Classify("anything", DefaultThreshold); !errors.Is(err, ErrNotTrained) {
				t.Errorf("Classify after failed Fit = %v, want ErrNotTrained", err)
			}
		})
	}
}

func TestFit_BadTestFraction(t *testing.T) {
	for _, f := range []float64{-0.1, 1.0, 1.5} {
		opts := fastOptions()
		opts.TestFraction = f
		if _, _, err := Train(miniCorpus(), opts); err == nil {
			t.Errorf("Train with test fraction %v succeeded, want error", f)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	p := trainMini(t)
	text := "An app sells location data without consent."

	first, err := p.Classify(text, DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := p.Classify(text, DefaultThreshold)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: %+v != %+v", i, again, first)
		}
	}
}

func TestClassify_ThresholdMonotonicity(t *testing.T) {
	p := trainMini(t)
	texts := []string{
		"An app sells location data without consent.",
		"Users can delete their records at any time.",
		"Emotion recognition monitors students during class.",
	}
	thresholds := []float64{0.05, 0.1, 0.3, 0.5, 0.7, 0.9}

	for _, text := range texts {
		var prev map[string]bool
		for _, th := range thresholds {
			result, err := p.Classify(text, th)
			if err != nil {
				t.Fatal(err)
			}
			current := make(map[string]bool, len(result.Principles))
			for _, id := range result.Principles {
				current[id] = true
			}
			if prev != nil {
				for id := range current {
					if !prev[id] {
						t.Errorf("%q: principle %s appeared at a higher threshold", text, id)
					}
				}
			}
			prev = current
		}
	}
}

func TestClassify_LabelSetClosure(t *testing.T) {
	p := trainMini(t)
	texts := []string{
		"An app sells location data without consent.",
		"Something entirely different about gardening and recipes.",
	}
	for _, text := range texts {
		result, err := p.Classify(text, 0.05)
		if err != nil {
			t.Fatal(err)
		}
		seen := map[string]bool{}
		lastIdx := -1
		for _, id := range result.Principles {
			if !taxonomy.IsValid(id) {
				t.Errorf("returned principle %q outside taxonomy", id)
			}
			if seen[id] {
				t.Errorf("principle %q returned twice", id)
			}
			seen[id] = true
			if idx := taxonomy.Index(id); idx <= lastIdx {
				t.Errorf("principles out of canonical order at %q", id)
			} else {
				lastIdx = idx
			}
		}
		if _, err := corpus.ParseVerdict(string(result.Verdict)); err != nil {
			t.Errorf("returned verdict %q invalid", result.Verdict)
		}
	}
}

func TestClassify_OutOfVocabularyText(t *testing.T) {
	p := trainMini(t)
	result, err := p.Classify("zxqv wvuts yxwz qpon", DefaultThreshold)
	if err != nil {
		t.Fatalf("out-of-vocabulary classify errored: %v", err)
	}
	if result.Principles == nil {
		t.Error("principle set is nil, want empty or populated set")
	}
	if _, err := corpus.ParseVerdict(string(result.Verdict)); err != nil {
		t.Errorf("verdict %q invalid", result.Verdict)
	}
}

func TestClassify_PrinciplesAbsentFromCorpus(t *testing.T) {
	// miniCorpus never labels human_rights, so its one-vs-rest model is
	// a constant prior. Scoring in-vocabulary text must still work and
	// stay below 0.5.
	p := trainMini(t)
	conf, err := p.Confidences("an app sells location data without consent")
	if err != nil {
		t.Fatal(err)
	}
	idx := taxonomy.Index("human_rights")
	if conf[idx] <= 0 || conf[idx] >= 0.5 {
		t.Errorf("unlabeled principle confidence = %f, want in (0, 0.5)", conf[idx])
	}
}

func TestTrainedPipeline_FitsTrainingExamples(t *testing.T) {
	p := trainMini(t)
	for _, ex := range miniCorpus() {
		verdicts, err := p.PredictVerdicts([]string{ex.Text})
		if err != nil {
			t.Fatal(err)
		}
		if verdicts[0] != ex.Verdict {
			t.Errorf("%q: verdict %s, want %s", ex.Text, verdicts[0], ex.Verdict)
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	train1, test1, err := split(20, 0.3, 42)
	if err != nil {
		t.Fatal(err)
	}
	train2, test2, err := split(20, 0.3, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(train1, train2) || !reflect.DeepEqual(test1, test2) {
		t.Error("same seed produced different splits")
	}

	_, test3, err := split(20, 0.3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(test1, test3) {
		t.Error("different seeds produced identical splits (20 choose 6 makes this absurdly unlikely)")
	}
}

func TestSplit_DisjointAndComplete(t *testing.T) {
	train, test, err := split(10, 0.3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(test) != 3 || len(train) != 7 {
		t.Fatalf("split sizes %d/%d, want 7/3", len(train), len(test))
	}
	seen := map[int]bool{}
	for _, i := range append(append([]int{}, train...), test...) {
		if seen[i] {
			t.Fatalf("index %d in both subsets", i)
		}
		seen[i] = true
	}
	if len(seen) != 10 {
		t.Errorf("%d distinct indices, want 10", len(seen))
	}
}

func TestSplit_TrainNeverEmpty(t *testing.T) {
	train, _, err := split(2, 0.99, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(train) == 0 {
		t.Error("train subset is empty")
	}
}

func TestTrain_WithHoldout_ProducesReport(t *testing.T) {
	examples := miniCorpus()
	opts := fastOptions()
	opts.TestFraction = 0.25
	opts.Seed = 3

	p, report, err := Train(examples, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Trained() {
		t.Fatal("pipeline not trained")
	}
	if report == nil {
		t.Fatal("report is nil with a hold-out split")
	}
	if report.TrainSize+report.TestSize != len(examples) {
		t.Errorf("report sizes %d+%d != %d", report.TrainSize, report.TestSize, len(examples))
	}
	if report.TestSize != 2 {
		t.Errorf("test size %d, want 2", report.TestSize)
	}
	if len(report.Principles) != taxonomy.Count() {
		t.Errorf("report covers %d principles, want %d", len(report.Principles), taxonomy.Count())
	}
	if report.VerdictAccuracy < 0 || report.VerdictAccuracy > 1 {
		t.Errorf("verdict accuracy %f out of [0,1]", report.VerdictAccuracy)
	}
}

func TestTrain_FractionRoundsToEmptyHoldout(t *testing.T) {
	// A 4-example corpus with fraction 0.1 rounds to zero hold-out
	// examples; a requested-but-empty hold-out is an error, not a nil
	// report.
	opts := fastOptions()
	opts.TestFraction = 0.1
	p := New()
	if _, err := p.Fit(miniCorpus()[:4], opts); err == nil {
		t.Fatal("Fit succeeded with an empty requested hold-out")
	}
	if p.Trained() {
		t.Error("pipeline trained after failed Fit")
	}
}

func TestTrain_NoHoldout_NilReport(t *testing.T) {
	_, report, err := Train(miniCorpus(), fastOptions())
	if err != nil {
		t.Fatal(err)
	}
	if report != nil {
		t.Errorf("report = %+v, want nil without a hold-out", report)
	}
}

// seedPipeline trains once on the full built-in corpus and is shared by
// the regression tests below.
var (
	seedOnce sync.Once
	seedPipe *Pipeline
	seedErr  error
)

func seedPipeline(t *testing.T) *Pipeline {
	t.Helper()
	seedOnce.Do(func() {
		opts := DefaultTrainOptions()
		opts.TestFraction = 0
		seedPipe, _, seedErr = Train(corpus.Seed(), opts)
	})
	if seedErr != nil {
		t.Fatalf("train on seed corpus: %v", seedErr)
	}
	return seedPipe
}

func TestRegression_DataAgencyScenario(t *testing.T) {
	p := seedPipeline(t)
	text := "A company allows users to download and delete their personal data and gives " +
		"them fine-grained control over what is collected."

	result, err := p.Classify(text, DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if result.Verdict != corpus.VerdictEthical {
		t.Errorf("verdict = %s, want ethical", result.Verdict)
	}
	got := map[string]bool{}
	for _, id := range result.Principles {
		got[id] = true
	}
	for _, want := range []string{"data_agency", "privacy"} {
		if !got[want] {
			t.Errorf("principle set %v missing %s", result.Principles, want)
		}
	}
}

func TestRegression_TriageScenario(t *testing.T) {
	p := seedPipeline(t)
	text := "A hospital deploys an AI triage system that prioritizes patients, but it has " +
		"never been validated on the local population."

	verdicts, err := p.PredictVerdicts([]string{text})
	if err != nil {
		t.Fatal(err)
	}
	if verdicts[0] != corpus.VerdictUnethical {
		t.Errorf("verdict = %s, want unethical", verdicts[0])
	}
}

func TestRegression_ThresholdSweep(t *testing.T) {
	p := seedPipeline(t)
	text := "A chatbot pretends to be a human agent while collecting personal data."

	loose, err := p.Classify(text, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	strict, err := p.Classify(text, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	if len(strict.Principles) > len(loose.Principles) {
		t.Errorf("threshold 0.9 returned %d principles, 0.1 returned %d",
			len(strict.Principles), len(loose.Principles))
	}
}

func TestRegression_UnseenVocabulary(t *testing.T) {
	p := seedPipeline(t)
	result, err := p.Classify("qqq www zzz xxyyzz", DefaultThreshold)
	if err != nil {
		t.Fatalf("unseen-vocabulary classify errored: %v", err)
	}
	for _, id := range result.Principles {
		if !taxonomy.IsValid(id) {
			t.Errorf("principle %q outside taxonomy", id)
		}
	}
	if _, err := corpus.ParseVerdict(string(result.Verdict)); err != nil {
		t.Errorf("verdict %q invalid", result.Verdict)
	}
}
