package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// WaterRequirement is the irrigation need of a crop.
type WaterRequirement string

const (
	WaterLow    WaterRequirement = "Low"
	WaterMedium WaterRequirement = "Medium"
	WaterHigh   WaterRequirement = "High"
)

// Valid reports whether w is one of the known water requirement levels.
func (w WaterRequirement) Valid() bool {
	switch w {
	case WaterLow, WaterMedium, WaterHigh:
		return true
	}
	return false
}

// Seasons and soil types found in the seed catalog. The core treats both as
// free text; transports use these lists to validate input.
var (
	Seasons   = []string{"Rabi (Winter)", "Kharif (Summer)", "Both Seasons", "Perennial"}
	SoilTypes = []string{"Loamy", "Clay", "Sandy", "Sandy Loam", "Clay Loam"}
)

// Crop is a catalog entry. Name, Region and WaterRequirement are fixed once
// the crop has been added.
type Crop struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Season           string           `json:"season"`
	SoilType         string           `json:"soil_type"`
	Region           string           `json:"region"`
	WaterRequirement WaterRequirement `json:"water_requirement"`
	ExpectedYield    decimal.Decimal  `json:"expected_yield"`
}

// FoldName returns the key under which crop names are compared for
// uniqueness.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// ParseYield parses an expected yield in tonnes per hectare. Negative and
// malformed values are rejected with ErrInvalidYieldValue.
func ParseYield(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidYieldValue, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidYieldValue, s)
	}
	return d, nil
}
