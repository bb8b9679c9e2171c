package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_OK(t *testing.T) {
	path := writeCorpusFile(t, `[
		{"text": "An app sells location data.", "principles": ["privacy", "data_agency"], "verdict": "unethical"},
		{"text": "A lab publishes its audit logs.", "principles": ["transparency"], "verdict": "ethical"}
	]`)

	examples, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(examples) != 2 {
		t.Fatalf("got %d examples, want 2", len(examples))
	}
	if examples[0].Verdict != VerdictUnethical {
		t.Errorf("verdict = %s, want unethical", examples[0].Verdict)
	}
	if len(examples[0].Principles) != 2 {
		t.Errorf("got %d principles, want 2", len(examples[0].Principles))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{"not JSON", `scenario: yes`, "invalid JSON"},
		{"empty array", `[]`, "schema validation"},
		{"missing verdict", `[{"text": "x y", "principles": ["privacy"]}]`, "schema validation"},
		{"bad verdict enum", `[{"text": "x y", "principles": ["privacy"], "verdict": "fine"}]`, "schema validation"},
		{"empty principles", `[{"text": "x y", "principles": [], "verdict": "ethical"}]`, "schema validation"},
		{"unknown principle", `[{"text": "x y", "principles": ["honesty"], "verdict": "ethical"}]`, "not in the taxonomy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeCorpusFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}
