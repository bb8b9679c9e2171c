package textvec

import (
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it into word tokens. Tokens are
// maximal runs of letters and digits; single-rune tokens are dropped so
// stray punctuation fragments and "a"/"I" style words don't enter the
// vocabulary.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tok := b.String()
			if len([]rune(tok)) >= 2 {
				tokens = append(tokens, tok)
			}
			b.Reset()
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// ngrams returns the unigrams plus adjacent bigrams of tokens. Bigram
// terms join their parts with a single space.
func ngrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
