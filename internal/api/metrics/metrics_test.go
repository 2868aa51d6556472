package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegister_ExposesMetricsOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(reg); err != nil {
		t.Fatalf("second register should be a no-op: %v", err)
	}

	AuthAttemptsTotal.WithLabelValues("success").Inc()
	CropMutationsTotal.WithLabelValues("add", "ok").Inc()
	RecommendationResults.Observe(3)
	TopRecommendationScore.Observe(100)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	got := make(map[string]bool, len(families))
	for _, mf := range families {
		got[mf.GetName()] = true
	}
	for _, name := range []string{
		"advisory_auth_attempts_total",
		"advisory_crop_mutations_total",
		"advisory_recommendation_results",
		"advisory_recommendation_top_score",
	} {
		if !got[name] {
			t.Fatalf("metric %s not gathered; have %v", name, got)
		}
	}
}
