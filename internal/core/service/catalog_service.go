package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

// AddCrop validates and stores a new crop. Nothing is stored when any field
// is rejected.
func (a *Advisory) AddCrop(_ context.Context, in ports.AddCropInput) (*domain.Crop, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyCropName
	}
	yield, err := domain.ParseYield(in.ExpectedYield)
	if err != nil {
		return nil, fmt.Errorf("add crop: %w", err)
	}
	water := domain.WaterRequirement(in.WaterRequirement)
	if !water.Valid() {
		return nil, fmt.Errorf("add crop: %w: %q", domain.ErrInvalidWaterRequirement, in.WaterRequirement)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.catalog.Region(in.Region); !ok {
		return nil, fmt.Errorf("add crop: %w: %q", domain.ErrRegionNotFound, in.Region)
	}

	crop := domain.Crop{
		ID:               uuid.NewString(),
		Name:             name,
		Season:           in.Season,
		SoilType:         in.SoilType,
		Region:           in.Region,
		WaterRequirement: water,
		ExpectedYield:    yield,
	}
	if err := a.catalog.Add(crop); err != nil {
		return nil, err
	}
	a.appendLocked("Added crop: " + crop.Name)

	a.logger.Info().Str("crop", crop.Name).Str("region", crop.Region).Msg("crop added")
	return &crop, nil
}

// UpdateCrop changes the season, soil type or expected yield of the crop
// named exactly name.
func (a *Advisory) UpdateCrop(_ context.Context, name string, in ports.UpdateCropInput) (*domain.Crop, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	crop, err := a.catalog.Find(name)
	if err != nil {
		return nil, err
	}

	if in.ExpectedYield != nil {
		yield, err := domain.ParseYield(*in.ExpectedYield)
		if err != nil {
			return nil, fmt.Errorf("update crop %q: %w", name, err)
		}
		crop.ExpectedYield = yield
	}
	if in.Season != nil {
		crop.Season = *in.Season
	}
	if in.SoilType != nil {
		crop.SoilType = *in.SoilType
	}

	if err := a.catalog.Replace(crop); err != nil {
		return nil, err
	}
	a.appendLocked("Updated crop: " + crop.Name)

	a.logger.Info().Str("crop", crop.Name).Msg("crop updated")
	return &crop, nil
}

// DeleteCrop removes the crop named exactly name and frees the name.
func (a *Advisory) DeleteCrop(_ context.Context, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.catalog.Delete(name); err != nil {
		return err
	}
	a.appendLocked("Deleted crop: " + name)

	a.logger.Info().Str("crop", name).Msg("crop deleted")
	return nil
}

// ListCrops returns the catalog in insertion order.
func (a *Advisory) ListCrops(_ context.Context) []domain.Crop {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog.List()
}

// ListRegions returns the seeded regions.
func (a *Advisory) ListRegions(_ context.Context) []domain.Region {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog.Regions()
}
