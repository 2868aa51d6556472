package service

import (
	"context"
	"slices"
	"strings"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// Score weights. A perfect match on all three criteria scores 100.
const (
	soilExactScore   = 40
	soilPartialScore = 20
	seasonScore      = 35
	regionScore      = 25
)

// Score rates how well crop matches the criteria:
//
//	soil   40 exact (case-insensitive), 20 substring, else 0
//	season 35 substring (case-insensitive), else 0
//	region 25 exact (case-insensitive), else 0
func Score(crop domain.Crop, c domain.Criteria) int {
	score := 0
	switch {
	case strings.EqualFold(crop.SoilType, c.SoilType):
		score += soilExactScore
	case containsFold(crop.SoilType, c.SoilType):
		score += soilPartialScore
	}
	if containsFold(crop.Season, c.Season) {
		score += seasonScore
	}
	if strings.EqualFold(crop.Region, c.Region) {
		score += regionScore
	}
	return score
}

// Rank scores every crop, drops those scoring zero and orders the rest by
// descending score. Equal scores keep the order of crops.
func Rank(crops []domain.Crop, c domain.Criteria) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(crops))
	for _, crop := range crops {
		if s := Score(crop, c); s > 0 {
			recs = append(recs, domain.Recommendation{Crop: crop, Score: s})
		}
	}
	slices.SortStableFunc(recs, func(x, y domain.Recommendation) int {
		return y.Score - x.Score
	})
	return recs
}

// Recommend ranks the current catalog against the criteria.
func (a *Advisory) Recommend(_ context.Context, c domain.Criteria) []domain.Recommendation {
	a.mu.RLock()
	crops := a.catalog.List()
	a.mu.RUnlock()

	recs := Rank(crops, c)
	a.logger.Debug().
		Str("soil_type", c.SoilType).
		Str("season", c.Season).
		Str("region", c.Region).
		Int("results", len(recs)).
		Msg("recommendations computed")
	return recs
}

// SearchCrops returns crops whose name, season or region contains query,
// ignoring case. An empty query matches every crop.
func (a *Advisory) SearchCrops(_ context.Context, query string) []domain.Crop {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return filter(a.catalog.List(), func(c domain.Crop) bool {
		return containsFold(c.Name, query) || containsFold(c.Season, query) || containsFold(c.Region, query)
	})
}

// SoilSuggestions returns crops whose soil type contains soilType, ignoring
// case.
func (a *Advisory) SoilSuggestions(_ context.Context, soilType string) []domain.Crop {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return filter(a.catalog.List(), func(c domain.Crop) bool {
		return containsFold(c.SoilType, soilType)
	})
}

func filter(crops []domain.Crop, keep func(domain.Crop) bool) []domain.Crop {
	out := make([]domain.Crop, 0, len(crops))
	for _, c := range crops {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
