package match

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	scorer := NewScorer(Stopwords{"the": {}, "and": {}, "a": {}})

	tests := []struct {
		name  string
		input string
		want  Profile
	}{
		{"empty string", "", Profile{}},
		{"whitespace only", "  \t\n  ", Profile{}},
		{"simple words", "go developer", Profile{"go": 1, "developer": 1}},
		{"lowercases", "Go DEVELOPER Developer", Profile{"go": 1, "developer": 2}},
		{"strips punctuation", "backend, frontend! (fullstack)", Profile{"backend": 1, "frontend": 1, "fullstack": 1}},
		{"keeps tech symbols", "c++ c# node-js", Profile{"c++": 1, "c#": 1, "node-js": 1}},
		{"drops stopwords", "the go and the grpc", Profile{"go": 1, "grpc": 1}},
		{"drops single characters", "x y golang 5 10", Profile{"golang": 1, "10": 1}},
		{"counts repeats", "python python python", Profile{"python": 3}},
		{"non-ascii becomes separator", "café résumé", Profile{"caf": 1, "sum": 1}},
		{"only symbols", "!@$%^&*()", Profile{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	scorer := NewScorer(LoadStopwords(""))
	text := "Senior Go engineer with Kubernetes, gRPC and PostgreSQL experience. Go, go, go!"

	first := scorer.Tokenize(text)
	for i := 0; i < 5; i++ {
		if got := scorer.Tokenize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize not deterministic: run %d = %v, first = %v", i, got, first)
		}
	}
}

func TestTokenizeProfileInvariants(t *testing.T) {
	stopwords := LoadStopwords("")
	scorer := NewScorer(stopwords)

	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"We are looking for a C++ developer with 10+ years of experience",
		"résumé naïve coöperate — em-dash and diacritics everywhere",
	}

	for _, text := range texts {
		for token := range scorer.Tokenize(text) {
			if len(token) <= 1 {
				t.Errorf("profile for %q contains short token %q", text, token)
			}
			if _, stop := stopwords[token]; stop {
				t.Errorf("profile for %q contains stopword %q", text, token)
			}
		}
	}
}

func TestTokenizeTop(t *testing.T) {
	scorer := NewScorer(Stopwords{})

	// go:3, python:2, rust:1, java:1 — rust encountered before java.
	text := "go python rust go java python go"

	tests := []struct {
		name string
		n    int
		want Profile
	}{
		{"full profile when n is zero", 0, Profile{"go": 3, "python": 2, "rust": 1, "java": 1}},
		{"full profile when n is negative", -1, Profile{"go": 3, "python": 2, "rust": 1, "java": 1}},
		{"truncates to top counts", 2, Profile{"go": 3, "python": 2}},
		{"tie broken by first encounter", 3, Profile{"go": 3, "python": 2, "rust": 1}},
		{"n larger than vocabulary", 10, Profile{"go": 3, "python": 2, "rust": 1, "java": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.TokenizeTop(text, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeTop(%q, %d) = %v, want %v", text, tt.n, got, tt.want)
			}
		})
	}
}

func TestLoadStopwordsBundled(t *testing.T) {
	set := LoadStopwords("")
	if len(set) == 0 {
		t.Fatal("bundled stopword list is empty")
	}
	for _, word := range []string{"the", "and", "with", "is"} {
		if _, ok := set[word]; !ok {
			t.Errorf("bundled stopword list missing %q", word)
		}
	}
}

func TestLoadStopwordsMissingFile(t *testing.T) {
	set := LoadStopwords("/nonexistent/stopwords.txt")
	if len(set) != 0 {
		t.Errorf("missing stopword file should degrade to empty set, got %d entries", len(set))
	}
}
