package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"resumematch/internal/db"
)

var (
	resumeCountDesc = prometheus.NewDesc(
		"resumematch_resumes_total",
		"Number of stored resumes",
		nil, nil,
	)
	jobCountDesc = prometheus.NewDesc(
		"resumematch_jobs_total",
		"Number of stored job postings",
		nil, nil,
	)

	uploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resumematch_uploads_total",
			Help: "Resume uploads by document format",
		},
		[]string{"format"},
	)
	extractionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resumematch_extraction_empty_total",
			Help: "Uploads whose text extraction produced no usable text, by format",
		},
		[]string{"format"},
	)
	matchScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resumematch_match_score",
			Help:    "Distribution of resume-to-job match scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

// TableCollector is a custom Prometheus collector that reads table counts
// from the database on each scrape.
type TableCollector struct {
	db *db.DB
}

// Describe sends the metric descriptors to the channel.
func (c *TableCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- resumeCountDesc
	ch <- jobCountDesc
}

// Collect queries the database for row counts and emits them as gauges.
func (c *TableCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	resumes, err := c.db.CountResumes(ctx)
	if err != nil {
		slog.Error("failed to collect resume count", "error", err)
		return
	}
	jobs, err := c.db.CountJobs(ctx)
	if err != nil {
		slog.Error("failed to collect job count", "error", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(resumeCountDesc, prometheus.GaugeValue, float64(resumes))
	ch <- prometheus.MustNewConstMetric(jobCountDesc, prometheus.GaugeValue, float64(jobs))
}

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(&TableCollector{db: database})
		prometheus.MustRegister(uploadsTotal, extractionFailures, matchScores)
	})
}

// RecordUpload counts an accepted upload by format.
func RecordUpload(format string, extractedText string) {
	uploadsTotal.WithLabelValues(format).Inc()
	if extractedText == "" {
		extractionFailures.WithLabelValues(format).Inc()
	}
}

// RecordMatchScore observes one resume-to-job score.
func RecordMatchScore(score float64) {
	matchScores.Observe(score)
}
