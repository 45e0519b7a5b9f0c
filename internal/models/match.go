package models

// JobMatch pairs a job with the score a resume achieved against it and the
// keywords that contributed.
type JobMatch struct {
	Job     Job            `json:"job"`
	Score   float64        `json:"score"`
	Matched map[string]int `json:"matched"`
}

// Percent renders the score as a whole percentage for display.
func (m JobMatch) Percent() int {
	return int(m.Score * 100)
}
