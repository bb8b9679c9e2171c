// Package textvec turns raw text into sparse TF-IDF feature vectors over
// a vocabulary of unigrams and bigrams learned at fit time.
package textvec

import (
	"errors"
	"math"
	"sort"
)

// DefaultMaxFeatures caps the vocabulary size when none is given.
const DefaultMaxFeatures = 5000

// Vector is a sparse feature vector: parallel slices of feature indices
// (ascending) and weights. Keeping entries index-sorted makes every dot
// product sum in the same order, so inference is bit-for-bit
// deterministic. A Vector is owned by the Vectorizer call that produced
// it and is never mutated afterwards.
type Vector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v Vector) Len() int { return len(v.Indices) }

// Dot returns the dot product with a dense weight slice.
func (v Vector) Dot(weights []float64) float64 {
	var sum float64
	for k, i := range v.Indices {
		sum += weights[i] * v.Values[k]
	}
	return sum
}

// Vectorizer learns a bounded unigram+bigram vocabulary and produces
// TF-IDF vectors. Fit fully replaces any previous vocabulary. Concurrent
// Fit and Transform on the same instance must be serialized by the
// caller; once fitted, concurrent Transforms are safe.
type Vectorizer struct {
	maxFeatures int
	vocab       map[string]int
	idf         []float64
	fitted      bool
}

// New creates a Vectorizer with the given vocabulary cap.
// maxFeatures <= 0 selects DefaultMaxFeatures.
func New(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Fitted reports whether Fit has completed successfully.
func (v *Vectorizer) Fitted() bool { return v.fitted }

// NumFeatures returns the learned vocabulary size (0 before Fit).
func (v *Vectorizer) NumFeatures() int { return len(v.vocab) }

// Fit builds the vocabulary from docs: all unigrams and bigrams, capped
// at maxFeatures by total term frequency across the corpus, ties broken
// by first-seen order. Document frequencies feed the IDF weights used at
// transform time.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return errors.New("fit on empty document set")
	}

	type termStat struct {
		count     int // total occurrences across the corpus
		docs      int // documents containing the term
		firstSeen int // arrival order, for deterministic tie-breaks
	}
	stats := make(map[string]*termStat)
	order := 0

	for _, doc := range docs {
		terms := ngrams(tokenize(doc))
		seenInDoc := make(map[string]bool, len(terms))
		for _, t := range terms {
			st := stats[t]
			if st == nil {
				st = &termStat{firstSeen: order}
				order++
				stats[t] = st
			}
			st.count++
			if !seenInDoc[t] {
				st.docs++
				seenInDoc[t] = true
			}
		}
	}
	if len(stats) == 0 {
		return errors.New("fit produced an empty vocabulary")
	}

	terms := make([]string, 0, len(stats))
	for t := range stats {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		a, b := stats[terms[i]], stats[terms[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.firstSeen < b.firstSeen
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, t := range terms {
		vocab[t] = i
		// Smoothed IDF: down-weights terms common across the fit corpus
		// without ever hitting zero.
		idf[i] = math.Log((1+n)/(1+float64(stats[t].docs))) + 1
	}

	v.vocab = vocab
	v.idf = idf
	v.fitted = true
	return nil
}

// Transform vectorizes texts against the fitted vocabulary. Tokens
// absent from the vocabulary contribute nothing; this is a normal
// condition, never an error. Vectors are L2-normalized.
func (v *Vectorizer) Transform(texts []string) []Vector {
	out := make([]Vector, len(texts))
	for i, t := range texts {
		out[i] = v.TransformOne(t)
	}
	return out
}

// TransformOne vectorizes a single text.
func (v *Vectorizer) TransformOne(text string) Vector {
	if !v.fitted {
		return Vector{}
	}
	weights := make(map[int]float64)
	for _, t := range ngrams(tokenize(text)) {
		if idx, ok := v.vocab[t]; ok {
			weights[idx] += v.idf[idx]
		}
	}
	if len(weights) == 0 {
		return Vector{}
	}

	indices := make([]int, 0, len(weights))
	for idx := range weights {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	vec := Vector{Indices: indices, Values: make([]float64, len(indices))}
	var sq float64
	for k, idx := range indices {
		x := weights[idx]
		vec.Values[k] = x
		sq += x * x
	}
	// L2 normalization; sq is non-zero here since IDF weights are positive.
	norm := math.Sqrt(sq)
	for k := range vec.Values {
		vec.Values[k] /= norm
	}
	return vec
}
