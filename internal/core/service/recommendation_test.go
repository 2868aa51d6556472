package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

func TestScore(t *testing.T) {
	crop := domain.Crop{
		Name:     "Wheat",
		Season:   "Rabi (Winter)",
		SoilType: "Loamy",
		Region:   "Mianwali City",
	}

	cases := []struct {
		name     string
		crop     domain.Crop
		criteria domain.Criteria
		want     int
	}{
		{"full match", crop, domain.Criteria{SoilType: "Loamy", Season: "Rabi", Region: "Mianwali City"}, 100},
		{"case-insensitive", crop, domain.Criteria{SoilType: "LOAMY", Season: "rabi", Region: "mianwali city"}, 100},
		{"soil only", crop, domain.Criteria{SoilType: "Loamy", Season: "Kharif", Region: "Piplan"}, 40},
		{"season only", crop, domain.Criteria{SoilType: "Clay", Season: "Winter", Region: "Piplan"}, 35},
		{"region only", crop, domain.Criteria{SoilType: "Clay", Season: "Kharif", Region: "Mianwali City"}, 25},
		{"region is not a substring match", crop, domain.Criteria{SoilType: "Clay", Season: "Kharif", Region: "Mianwali"}, 0},
		{
			"partial soil",
			domain.Crop{SoilType: "Sandy Loam", Season: "Kharif (Summer)", Region: "Piplan"},
			domain.Criteria{SoilType: "Sandy", Season: "Rabi", Region: "Kalabagh"},
			20,
		},
		{
			"exact soil beats partial",
			domain.Crop{SoilType: "Sandy", Season: "Kharif (Summer)", Region: "Piplan"},
			domain.Criteria{SoilType: "sandy", Season: "Kharif", Region: "Piplan"},
			100,
		},
		{"no match", crop, domain.Criteria{SoilType: "Clay", Season: "Kharif", Region: "Piplan"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.crop, tc.criteria); got != tc.want {
				t.Fatalf("Score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRank_ExcludesZeroAndKeepsTieOrder(t *testing.T) {
	crops := []domain.Crop{
		{Name: "A", SoilType: "Clay", Season: "Kharif (Summer)", Region: "Piplan"},
		{Name: "F", SoilType: "loamy", Season: "Perennial", Region: "Piplan"},
		{Name: "B", SoilType: "Loamy", Season: "Perennial", Region: "Kalabagh"},
		{Name: "C", SoilType: "Loamy", Season: "Rabi (Winter)", Region: "Kalabagh"},
		{Name: "D", SoilType: "Loamy", Season: "Both Seasons", Region: "Isa Khel"},
		{Name: "E", SoilType: "Sandy Loam", Season: "Rabi (Winter)", Region: "Piplan"},
	}
	criteria := domain.Criteria{SoilType: "Loamy", Season: "Rabi", Region: "Kalabagh"}

	got := Rank(crops, criteria)

	type ranked struct {
		Name  string
		Score int
	}
	var gotRanked []ranked
	for _, r := range got {
		gotRanked = append(gotRanked, ranked{r.Crop.Name, r.Score})
	}
	want := []ranked{
		{"C", 100},
		{"B", 65},
		{"F", 40},
		{"D", 40},
		{"E", 35},
	}
	if diff := cmp.Diff(want, gotRanked); diff != "" {
		t.Fatalf("Rank mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	crops := []domain.Crop{
		{Name: "Low", SoilType: "Clay", Season: "Rabi (Winter)"},
		{Name: "High", SoilType: "Loamy", Season: "Rabi (Winter)"},
	}
	Rank(crops, domain.Criteria{SoilType: "Loamy", Season: "Rabi"})
	if crops[0].Name != "Low" || crops[1].Name != "High" {
		t.Fatalf("input slice reordered: %+v", crops)
	}
}

func TestRecommend_SeedCatalog(t *testing.T) {
	a := newSeededAdvisory(t)

	recs := a.Recommend(context.Background(), domain.Criteria{
		SoilType: "Loamy",
		Season:   "Rabi",
		Region:   "Mianwali City",
	})

	var got []string
	for _, r := range recs {
		if r.Score < 1 || r.Score > 100 {
			t.Fatalf("score out of range for %s: %d", r.Crop.Name, r.Score)
		}
		got = append(got, r.Crop.Name)
	}
	// Scores: 100, 100, 75, 60, 60, 40, 40, 40, 35, 25, 25.
	want := []string{
		"Wheat", "Mustard",
		"Barley",
		"Chickpea", "Potato",
		"Maize", "Onion", "Mango",
		"Lentils",
		"Sugarcane", "Rice",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Recommend order mismatch (-want +got):\n%s", diff)
	}
	if recs[0].Score != 100 {
		t.Fatalf("expected Wheat to score 100, got %d", recs[0].Score)
	}
}

func cropNames(crops []domain.Crop) []string {
	names := make([]string, 0, len(crops))
	for _, c := range crops {
		names = append(names, c.Name)
	}
	return names
}

func TestSearchCrops(t *testing.T) {
	a := newSeededAdvisory(t)
	ctx := context.Background()

	cases := []struct {
		query string
		want  []string
	}{
		{"rabi", []string{"Wheat", "Chickpea", "Barley", "Lentils", "Mustard", "Potato"}},
		{"KALA", []string{"Cotton", "Mango", "Sesame"}},
		{"to", []string{"Cotton", "Tomato", "Potato"}},
		{"nothing-here", []string{}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, cropNames(a.SearchCrops(ctx, tc.query))); diff != "" {
			t.Fatalf("SearchCrops(%q) mismatch (-want +got):\n%s", tc.query, diff)
		}
	}

	if n := len(a.SearchCrops(ctx, "")); n != 20 {
		t.Fatalf("empty query should match all crops, got %d", n)
	}
}

func TestSoilSuggestions(t *testing.T) {
	a := newSeededAdvisory(t)
	ctx := context.Background()

	want := []string{"Sugarcane", "Lentils", "Rice", "Fodder"}
	if diff := cmp.Diff(want, cropNames(a.SoilSuggestions(ctx, "clay"))); diff != "" {
		t.Fatalf("SoilSuggestions(clay) mismatch (-want +got):\n%s", diff)
	}

	if n := len(a.SoilSuggestions(ctx, "Sandy")); n != 10 {
		t.Fatalf("expected 10 sandy crops, got %d", n)
	}
}
