package taxonomy

import "testing"

func TestCount(t *testing.T) {
	if Count() != 12 {
		t.Errorf("got %d principles, want 12", Count())
	}
}

func TestAll_CanonicalOrder(t *testing.T) {
	want := []string{
		"human_rights",
		"well_being",
		"data_agency",
		"effectiveness",
		"transparency",
		"accountability",
		"awareness_of_misuse",
		"competence",
		"privacy",
		"fairness_non_discrimination",
		"democratic_values",
		"manipulation_autonomy",
	}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("got %d principles, want %d", len(all), len(want))
	}
	for i, p := range all {
		if p.ID != want[i] {
			t.Errorf("position %d = %q, want %q", i, p.ID, want[i])
		}
		if p.Description == "" {
			t.Errorf("%s: description is empty", p.ID)
		}
	}
}

func TestGet_Found(t *testing.T) {
	p := Get("privacy")
	if p == nil {
		t.Fatal("Get(privacy) returned nil")
	}
	if p.ID != "privacy" {
		t.Errorf("ID = %q, want privacy", p.ID)
	}
}

func TestGet_NotFound(t *testing.T) {
	if p := Get("nonexistent"); p != nil {
		t.Errorf("Get(nonexistent) = %v, want nil", p)
	}
}

func TestIndex_MatchesAllOrder(t *testing.T) {
	for i, p := range All() {
		if Index(p.ID) != i {
			t.Errorf("Index(%s) = %d, want %d", p.ID, Index(p.ID), i)
		}
	}
	if Index("nonexistent") != -1 {
		t.Errorf("Index(nonexistent) = %d, want -1", Index("nonexistent"))
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("data_agency") {
		t.Error("IsValid(data_agency) = false, want true")
	}
	if IsValid("ethics") {
		t.Error("IsValid(ethics) = true, want false")
	}
}

func TestIDs_MutationDoesNotLeak(t *testing.T) {
	ids := IDs()
	ids[0] = "tampered"
	if IDs()[0] != "human_rights" {
		t.Error("mutating the returned slice changed the taxonomy")
	}
}
