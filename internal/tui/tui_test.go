package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mgrindal/ethica/internal/corpus"
	"github.com/mgrindal/ethica/internal/pipeline"
)

func trainedPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	examples := []corpus.Example{
		{
			Text:       "An app quietly sells location data without consent.",
			Principles: []string{"privacy", "data_agency"},
			Verdict:    corpus.VerdictUnethical,
		},
		{
			Text:       "A broker quietly resells location data without consent.",
			Principles: []string{"privacy", "data_agency"},
			Verdict:    corpus.VerdictUnethical,
		},
		{
			Text:       "Users can download and delete their records at any time.",
			Principles: []string{"data_agency"},
			Verdict:    corpus.VerdictEthical,
		},
		{
			Text:       "Auditors can inspect and delete stored records at any time.",
			Principles: []string{"data_agency", "transparency"},
			Verdict:    corpus.VerdictEthical,
		},
	}
	opts := pipeline.DefaultTrainOptions()
	opts.TestFraction = 0
	opts.Binary.Epochs = 300
	opts.Softmax.Epochs = 300
	p, _, err := pipeline.Train(examples, opts)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		m = updated.(Model)
	}
	return m
}

func TestEnterClassifiesAndClearsInput(t *testing.T) {
	m := New(Options{Pipeline: trainedPipeline(t), Threshold: pipeline.DefaultThreshold})
	m.Init()

	m = typeText(m, "an app sells location data without consent")
	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = updated.(Model)

	if len(m.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(m.entries))
	}
	if got := m.entries[0].result.Verdict; got != corpus.VerdictUnethical {
		t.Errorf("verdict = %s, want unethical", got)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared, still %q", m.input.Value())
	}
}

func TestEnterOnEmptyInputIsNoop(t *testing.T) {
	m := New(Options{Pipeline: trainedPipeline(t), Threshold: pipeline.DefaultThreshold})
	m = typeText(m, "   ")

	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = updated.(Model)
	if len(m.entries) != 0 {
		t.Errorf("blank input produced %d entries", len(m.entries))
	}
}

func TestEntriesAreBounded(t *testing.T) {
	m := New(Options{Pipeline: trainedPipeline(t), Threshold: pipeline.DefaultThreshold})
	for i := 0; i < maxEntries+3; i++ {
		m = m.classify("users delete their records at any time")
	}
	if len(m.entries) != maxEntries {
		t.Errorf("got %d entries, want %d", len(m.entries), maxEntries)
	}
}

func TestViewShowsVerdict(t *testing.T) {
	m := New(Options{Pipeline: trainedPipeline(t), Threshold: pipeline.DefaultThreshold, TrainSize: 4})
	m.width = 80
	m = m.classify("an app sells location data without consent")

	view := m.content()
	if !strings.Contains(view, "unethical") {
		t.Error("view does not mention the verdict")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 20); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := strings.Repeat("scenario ", 20)
	got := truncate(long, 20)
	if r := []rune(got); len(r) != 20 {
		t.Errorf("truncated to %d runes, want 20", len(r))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated string %q lacks ellipsis", got)
	}
}
