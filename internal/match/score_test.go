package match

import (
	"math"
	"reflect"
	"testing"
)

func TestScoreWorkedExample(t *testing.T) {
	scorer := NewScorer(Stopwords{"needed": {}, "required": {}})

	jobText := "Python developer needed. Python experience required."
	resumeText := "Experienced Python engineer, 5 years Python."

	// Job profile: {python:2, developer:1, experience:1}, total 4.
	// Resume covers python with min(2,2)=2, nothing else. Score 2/4.
	score, matched := scorer.Score(resumeText, jobText)

	if score != 0.5 {
		t.Errorf("score = %v, want 0.5", score)
	}
	if want := map[string]int{"python": 2}; !reflect.DeepEqual(matched, want) {
		t.Errorf("matched = %v, want %v", matched, want)
	}
}

func TestScoreEmptyJob(t *testing.T) {
	scorer := NewScorer(LoadStopwords(""))

	tests := []struct {
		name    string
		jobText string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t "},
		{"only punctuation", "!!! ... ???"},
		{"only stopwords and short tokens", "the and a of to x y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := scorer.Score("go developer with postgres", tt.jobText)
			if score != 0.0 {
				t.Errorf("score = %v, want 0.0", score)
			}
			if len(matched) != 0 {
				t.Errorf("matched = %v, want empty", matched)
			}
		})
	}
}

func TestScoreFullCoverage(t *testing.T) {
	scorer := NewScorer(Stopwords{})

	jobText := "golang kubernetes golang postgres"
	resumeText := "postgres golang golang kubernetes golang"

	score, matched := scorer.Score(resumeText, jobText)
	if score != 1.0 {
		t.Errorf("score = %v, want exactly 1.0", score)
	}
	// Contributions are clamped to the job's counts.
	want := map[string]int{"golang": 2, "kubernetes": 1, "postgres": 1}
	if !reflect.DeepEqual(matched, want) {
		t.Errorf("matched = %v, want %v", matched, want)
	}
}

func TestScoreNeverExceedsOne(t *testing.T) {
	scorer := NewScorer(Stopwords{})

	// The resume repeats every job keyword far more often than the job
	// does; the per-token min must keep the score at 1.0.
	jobText := "rust wasm"
	resumeText := "rust rust rust rust wasm wasm wasm rust wasm"

	score, _ := scorer.Score(resumeText, jobText)
	if score > 1.0 {
		t.Errorf("score = %v, must not exceed 1.0", score)
	}
	if score != 1.0 {
		t.Errorf("score = %v, want 1.0 for full coverage", score)
	}
}

func TestScoreAsymmetry(t *testing.T) {
	scorer := NewScorer(Stopwords{})

	short := "golang grpc"
	long := "golang grpc docker kubernetes terraform ansible postgres redis kafka"

	forward, _ := scorer.Score(long, short)
	backward, _ := scorer.Score(short, long)

	if forward != 1.0 {
		t.Errorf("score(long resume, short job) = %v, want 1.0", forward)
	}
	if backward >= forward {
		t.Errorf("score(short resume, long job) = %v, expected smaller than %v", backward, forward)
	}
}

func TestScoreMatchedSumsToScore(t *testing.T) {
	scorer := NewScorer(LoadStopwords(""))

	resumeText := "Go engineer: Go, Kubernetes, gRPC, PostgreSQL, five years production Go services."
	jobText := "Looking for a Go engineer. Kubernetes required, gRPC a plus. Go Go Go."

	score, matched := scorer.Score(resumeText, jobText)

	overlap := 0
	for _, contribution := range matched {
		if contribution <= 0 {
			t.Errorf("matched contains non-positive contribution %d", contribution)
		}
		overlap += contribution
	}

	totalJob := 0
	for _, count := range scorer.Tokenize(jobText) {
		totalJob += count
	}

	if want := float64(overlap) / float64(totalJob); math.Abs(score-want) > 1e-12 {
		t.Errorf("score = %v, want overlap/totalJob = %v", score, want)
	}
	if score < 0 {
		t.Errorf("score = %v, must be non-negative", score)
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := NewScorer(LoadStopwords(""))
	resumeText := "python sql airflow dbt python spark"
	jobText := "python sql dbt snowflake"

	firstScore, firstMatched := scorer.Score(resumeText, jobText)
	for i := 0; i < 5; i++ {
		score, matched := scorer.Score(resumeText, jobText)
		if score != firstScore || !reflect.DeepEqual(matched, firstMatched) {
			t.Fatalf("Score not deterministic on run %d: (%v, %v) vs (%v, %v)",
				i, score, matched, firstScore, firstMatched)
		}
	}
}
