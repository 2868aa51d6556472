package domain

// Region is a tehsil of the district. CommonCrops is descriptive only and is
// not kept in sync with the catalog.
type Region struct {
	Name        string  `json:"name"`
	Climate     string  `json:"climate"`
	AvgRainfall float64 `json:"avg_rainfall_mm"`
	CommonCrops string  `json:"common_crops"`
}
