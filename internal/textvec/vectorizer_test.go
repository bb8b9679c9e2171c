package textvec

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A company shares data!", []string{"company", "shares", "data"}},
		{"GDPR-compliant, per Article 22", []string{"gdpr", "compliant", "per", "article", "22"}},
		{"a I x", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := tokenize(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNgrams(t *testing.T) {
	got := ngrams([]string{"opaque", "algorithm", "curates"})
	want := []string{"opaque", "algorithm", "curates", "opaque algorithm", "algorithm curates"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ngrams = %v, want %v", got, want)
	}
	if ngrams(nil) != nil {
		t.Error("ngrams(nil) should be nil")
	}
}

func TestFit_EmptyInputs(t *testing.T) {
	v := New(0)
	if err := v.Fit(nil); err == nil {
		t.Error("Fit(nil) succeeded, want error")
	}
	if err := v.Fit([]string{"!!!", "?"}); err == nil {
		t.Error("Fit on token-free docs succeeded, want error")
	}
	if v.Fitted() {
		t.Error("vectorizer reports fitted after failed Fit")
	}
}

func TestFit_CapByFrequencyWithFirstSeenTies(t *testing.T) {
	// "alpha" appears 3 times, "beta" twice; every other term once.
	// With a cap of 2, the vocabulary keeps alpha and beta.
	v := New(2)
	if err := v.Fit([]string{"alpha beta", "alpha beta", "alpha"}); err != nil {
		t.Fatal(err)
	}
	if v.NumFeatures() != 2 {
		t.Fatalf("got %d features, want 2", v.NumFeatures())
	}
	vec := v.TransformOne("alpha beta gamma")
	if vec.Len() != 2 {
		t.Errorf("got %d active features, want 2 (alpha, beta)", vec.Len())
	}

	// All terms tie at one occurrence: first-seen order wins the cap.
	v2 := New(1)
	if err := v2.Fit([]string{"zebra yak"}); err != nil {
		t.Fatal(err)
	}
	if v2.TransformOne("zebra").Len() != 1 {
		t.Error("first-seen term fell out of the capped vocabulary")
	}
	if v2.TransformOne("yak").Len() != 0 {
		t.Error("later term survived the cap over an earlier tie")
	}
}

func TestTransform_UnknownTokensIgnored(t *testing.T) {
	v := New(0)
	if err := v.Fit([]string{"privacy matters here"}); err != nil {
		t.Fatal(err)
	}
	vec := v.TransformOne("completely novel wording")
	if vec.Len() != 0 {
		t.Errorf("out-of-vocabulary text produced %d features, want 0", vec.Len())
	}
}

func TestTransform_L2Normalized(t *testing.T) {
	v := New(0)
	docs := []string{
		"an opaque algorithm curates political content",
		"users control their personal data",
		"the algorithm shares personal data",
	}
	if err := v.Fit(docs); err != nil {
		t.Fatal(err)
	}
	for _, doc := range docs {
		vec := v.TransformOne(doc)
		var sq float64
		for _, x := range vec.Values {
			sq += x * x
		}
		if math.Abs(math.Sqrt(sq)-1) > 1e-9 {
			t.Errorf("norm = %f, want 1", math.Sqrt(sq))
		}
	}
}

func TestIDF_DownweightsCommonTerms(t *testing.T) {
	// "system" is in every doc, "triage" in one. In a doc containing both
	// once, the rarer term must carry more weight.
	v := New(0)
	docs := []string{
		"triage system",
		"ranking system",
		"scoring system",
	}
	if err := v.Fit(docs); err != nil {
		t.Fatal(err)
	}
	vec := v.TransformOne("triage system")
	weightOf := func(term string) float64 {
		single := v.TransformOne(term)
		if single.Len() != 1 {
			t.Fatalf("term %q not in vocabulary", term)
		}
		for k, idx := range vec.Indices {
			if idx == single.Indices[0] {
				return vec.Values[k]
			}
		}
		t.Fatalf("term %q missing from the combined vector", term)
		return 0
	}
	if rare, common := weightOf("triage"), weightOf("system"); rare <= common {
		t.Errorf("rare term weight %f <= common term weight %f", rare, common)
	}
}

func TestFit_ReplacesVocabulary(t *testing.T) {
	v := New(0)
	if err := v.Fit([]string{"privacy consent"}); err != nil {
		t.Fatal(err)
	}
	if err := v.Fit([]string{"fairness audits"}); err != nil {
		t.Fatal(err)
	}
	if v.TransformOne("privacy consent").Len() != 0 {
		t.Error("old vocabulary survived a refit")
	}
	if v.TransformOne("fairness audits").Len() == 0 {
		t.Error("new vocabulary missing after refit")
	}
}

func TestTransform_Unfitted(t *testing.T) {
	v := New(0)
	if got := v.TransformOne("anything at all"); got.Len() != 0 {
		t.Errorf("unfitted TransformOne produced %d features", got.Len())
	}
}
