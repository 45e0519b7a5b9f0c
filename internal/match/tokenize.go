// Package match turns raw text into token-frequency profiles and computes
// keyword-overlap scores between a resume and a job description.
package match

import (
	"regexp"
	"sort"
	"strings"
)

// symbolPattern matches every character that is not a lowercase letter,
// digit, whitespace, hyphen, plus, or hash. The kept symbols preserve
// tokens like "c++", "c#", and "node-js".
var symbolPattern = regexp.MustCompile(`[^a-z0-9\s\-+#]`)

// Profile maps a normalized token to its occurrence count in one text.
// Keys are lowercase, at least two characters long, and never stopwords.
type Profile map[string]int

// Scorer computes token profiles and overlap scores. It holds the
// process-wide stopword set and is safe for concurrent use.
type Scorer struct {
	stopwords Stopwords
}

// NewScorer creates a scorer with the given stopword set.
func NewScorer(stopwords Stopwords) *Scorer {
	return &Scorer{stopwords: stopwords}
}

// Tokenize lowercases text, strips punctuation down to the allowed
// character set, and counts the surviving tokens.
func (s *Scorer) Tokenize(text string) Profile {
	profile, _ := s.tokenize(text)
	return profile
}

// TokenizeTop returns the n highest-count tokens of the text's profile.
// Ties are broken by first-encounter order. n <= 0 returns the full profile.
func (s *Scorer) TokenizeTop(text string, n int) Profile {
	profile, order := s.tokenize(text)
	if n <= 0 || len(order) <= n {
		return profile
	}

	sort.SliceStable(order, func(i, j int) bool {
		return profile[order[i]] > profile[order[j]]
	})

	top := make(Profile, n)
	for _, token := range order[:n] {
		top[token] = profile[token]
	}
	return top
}

// tokenize counts tokens and records the order in which each token was
// first seen, which TokenizeTop uses for stable tie-breaking.
func (s *Scorer) tokenize(text string) (Profile, []string) {
	cleaned := symbolPattern.ReplaceAllString(strings.ToLower(text), " ")

	profile := make(Profile)
	var order []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= 1 {
			continue
		}
		if _, stop := s.stopwords[token]; stop {
			continue
		}
		if profile[token] == 0 {
			order = append(order, token)
		}
		profile[token]++
	}
	return profile, order
}
