package corpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mgrindal/ethica/internal/taxonomy"
)

// ErrEmptyCorpus indicates a corpus with no examples.
var ErrEmptyCorpus = errors.New("corpus is empty")

// InvalidExampleError reports a malformed example and its position.
type InvalidExampleError struct {
	Index int
	Err   error
}

func (e *InvalidExampleError) Error() string {
	return fmt.Sprintf("example %d: %v", e.Index, e.Err)
}

func (e *InvalidExampleError) Unwrap() error { return e.Err }

// Seed returns a fresh copy of the built-in labeled corpus. Callers own
// the returned examples, principle slices included; the seed data itself
// is never mutated.
func Seed() []Example {
	out := make([]Example, len(seedExamples))
	copy(out, seedExamples)
	for i := range out {
		out[i].Principles = append([]string(nil), out[i].Principles...)
	}
	return out
}

// Validate checks a corpus against the structural rules: non-empty,
// every example has non-empty text, a non-empty principle set drawn
// from the taxonomy, and a known verdict.
func Validate(examples []Example) error {
	if len(examples) == 0 {
		return ErrEmptyCorpus
	}
	for i, ex := range examples {
		if err := validateExample(ex); err != nil {
			return &InvalidExampleError{Index: i, Err: err}
		}
	}
	return nil
}

func validateExample(ex Example) error {
	if strings.TrimSpace(ex.Text) == "" {
		return errors.New("text is empty")
	}
	if len(ex.Principles) == 0 {
		return errors.New("principle set is empty")
	}
	seen := make(map[string]bool, len(ex.Principles))
	for _, id := range ex.Principles {
		if !taxonomy.IsValid(id) {
			return fmt.Errorf("principle %q is not in the taxonomy", id)
		}
		if seen[id] {
			return fmt.Errorf("principle %q appears twice", id)
		}
		seen[id] = true
	}
	if _, err := ParseVerdict(string(ex.Verdict)); err != nil {
		return err
	}
	return nil
}
