// Package metrics defines the custom Prometheus metrics of the advisory API.
// They are created unregistered; Register attaches them to a registry.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "advisory"

// AuthAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "failed" or "empty_credential"
var AuthAttemptsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CropMutationsTotal counts catalog changes.
// Labels:
//   - op: "add", "update" or "delete"
//   - result: "ok" or a short error reason such as "duplicate" or "not_found"
var CropMutationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "crop_mutations_total",
		Help:      "Total number of crop catalog mutations, by operation and result.",
	},
	[]string{"op", "result"},
)

// RecommendationResults observes how many crops each recommendation query returns.
var RecommendationResults = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommendation_results",
		Help:      "Number of crops returned per recommendation query.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	},
)

// TopRecommendationScore observes the best score of each non-empty query.
var TopRecommendationScore = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommendation_top_score",
		Help:      "Highest score returned per recommendation query.",
		Buckets:   []float64{25, 35, 40, 60, 65, 75, 100},
	},
)

// Register adds the advisory metrics to reg. Metrics already present in reg
// are skipped, so building several routers on one registry is safe.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		AuthAttemptsTotal,
		CropMutationsTotal,
		RecommendationResults,
		TopRecommendationScore,
	} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
