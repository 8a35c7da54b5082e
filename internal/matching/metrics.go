// internal/matching/metrics.go

package matching

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_requests_total",
			Help: "Total number of find-matches requests by outcome",
		},
		[]string{"outcome"},
	)

	candidatesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_candidates_rejected_total",
			Help: "Candidates removed by eligibility rules",
		},
		[]string{"reason"},
	)

	candidatesExcludedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_candidates_excluded_total",
			Help: "Candidates removed because they were previously declined",
		},
	)

	strategyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_scoring_strategy_total",
			Help: "Pairs scored by strategy",
		},
		[]string{"strategy"},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_scores",
			Help:    "Distribution of returned compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	poolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_candidate_pool_size",
			Help:    "Candidates considered per request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_decisions_total",
			Help: "Match decisions recorded",
		},
		[]string{"decision"},
	)

	responseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "matching_response_time_seconds",
			Help: "Service time for matching operations",
		},
		[]string{"action"},
	)
)

// RecordRequest counts one find-matches request by outcome.
func RecordRequest(outcome string) {
	matchRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordOutcome exports the statistics of one engine run.
func RecordOutcome(out Outcome) {
	for reason, n := range out.Rejections {
		candidatesRejectedTotal.WithLabelValues(string(reason)).Add(float64(n))
	}
	for strategy, n := range out.Strategies {
		strategyTotal.WithLabelValues(strategy.String()).Add(float64(n))
	}
	for _, s := range out.Steps {
		switch s.Name {
		case StepEligibility:
			poolSize.Observe(float64(s.Initial))
		case StepExclusion:
			candidatesExcludedTotal.Add(float64(s.Dropped))
		}
	}
	for _, r := range out.Results {
		compatibilityScores.Observe(r.CompatibilityScore)
	}
}

// RecordDecision counts a recorded decision.
func RecordDecision(decision string) {
	decisionsTotal.WithLabelValues(decision).Inc()
}

// RecordResponseTime observes how long action took.
func RecordResponseTime(action string, duration time.Duration) {
	responseTime.WithLabelValues(action).Observe(duration.Seconds())
}
