package corpus

import (
	"errors"
	"testing"
)

func TestSeed_IsValid(t *testing.T) {
	examples := Seed()
	if len(examples) == 0 {
		t.Fatal("seed corpus is empty")
	}
	if err := Validate(examples); err != nil {
		t.Fatalf("seed corpus failed validation: %v", err)
	}
}

func TestSeed_ReturnsCopy(t *testing.T) {
	a := Seed()
	a[0].Text = "tampered"
	a[0].Principles[0] = "tampered"
	fresh := Seed()
	if fresh[0].Text == "tampered" {
		t.Error("mutating the returned slice changed the seed data")
	}
	if fresh[0].Principles[0] == "tampered" {
		t.Error("mutating a principles slice changed the seed data")
	}
}

func TestValidate_EmptyCorpus(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("got %v, want ErrEmptyCorpus", err)
	}
}

func TestValidate_BadExamples(t *testing.T) {
	valid := Example{
		Text:       "A drone films a protest.",
		Principles: []string{"privacy"},
		Verdict:    VerdictAmbiguous,
	}

	tests := []struct {
		name string
		ex   Example
	}{
		{"empty text", Example{Text: "   ", Principles: []string{"privacy"}, Verdict: VerdictEthical}},
		{"empty principles", Example{Text: "x y", Principles: nil, Verdict: VerdictEthical}},
		{"unknown principle", Example{Text: "x y", Principles: []string{"honesty"}, Verdict: VerdictEthical}},
		{"duplicate principle", Example{Text: "x y", Principles: []string{"privacy", "privacy"}, Verdict: VerdictEthical}},
		{"unknown verdict", Example{Text: "x y", Principles: []string{"privacy"}, Verdict: "fine"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]Example{valid, tt.ex})
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var ie *InvalidExampleError
			if !errors.As(err, &ie) {
				t.Fatalf("got %T, want *InvalidExampleError", err)
			}
			if ie.Index != 1 {
				t.Errorf("index = %d, want 1", ie.Index)
			}
		})
	}
}

func TestParseVerdict(t *testing.T) {
	for _, v := range Verdicts() {
		got, err := ParseVerdict(string(v))
		if err != nil {
			t.Errorf("ParseVerdict(%s): %v", v, err)
		}
		if got != v {
			t.Errorf("ParseVerdict(%s) = %s", v, got)
		}
	}
	if _, err := ParseVerdict("legal"); err == nil {
		t.Error("ParseVerdict(legal) succeeded, want error")
	}
}
