// internal/introductions/metrics.go

package introductions

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var introductionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "introductions_status_total",
		Help: "Introductions entering each status",
	},
	[]string{"status"},
)

// RecordStatus counts an introduction entering status
func RecordStatus(status string) {
	introductionsTotal.WithLabelValues(status).Inc()
}
