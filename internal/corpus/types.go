package corpus

import "fmt"

// Verdict is the ternary overall ethical judgment of a scenario.
type Verdict string

const (
	VerdictEthical   Verdict = "ethical"
	VerdictUnethical Verdict = "unethical"
	VerdictAmbiguous Verdict = "ambiguous"
)

// Verdicts lists every valid verdict in canonical order.
func Verdicts() []Verdict {
	return []Verdict{VerdictEthical, VerdictUnethical, VerdictAmbiguous}
}

// ParseVerdict converts a string to a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	switch Verdict(s) {
	case VerdictEthical, VerdictUnethical, VerdictAmbiguous:
		return Verdict(s), nil
	}
	return "", fmt.Errorf("unknown verdict %q", s)
}

// Example is one labeled training scenario. Examples are immutable once
// loaded; principle IDs must belong to the taxonomy.
type Example struct {
	Text       string   `json:"text"`
	Principles []string `json:"principles"`
	Verdict    Verdict  `json:"verdict"`
}
