package domain

// Criteria are the farmer-supplied conditions a recommendation is scored
// against.
type Criteria struct {
	SoilType string
	Season   string
	Region   string
}

// Recommendation pairs a crop with its match score. Score is in [1,100] for
// every recommendation handed to a caller.
type Recommendation struct {
	Crop  Crop `json:"crop"`
	Score int  `json:"score"`
}
