package match

// Score computes a directional overlap score between a resume and a job
// description. Every job token found in the resume contributes
// min(resumeCount, jobCount) occurrences; the sum is normalized by the
// job's total token count, so the score is the fraction of job-keyword
// occurrences covered by the resume. The per-token min keeps the score
// from exceeding 1 no matter how often the resume repeats a keyword.
//
// A job text that yields no tokens scores 0.0 with an empty matched map.
// The returned matched map records each contributing token's count.
func (s *Scorer) Score(resumeText, jobText string) (float64, map[string]int) {
	resume := s.Tokenize(resumeText)
	job := s.Tokenize(jobText)

	matched := make(map[string]int)
	if len(job) == 0 {
		return 0.0, matched
	}

	overlap := 0
	totalJob := 0
	for token, jobCount := range job {
		totalJob += jobCount
		resumeCount := resume[token]
		if resumeCount == 0 {
			continue
		}
		contribution := min(resumeCount, jobCount)
		overlap += contribution
		matched[token] = contribution
	}

	return float64(overlap) / float64(totalJob), matched
}
