package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

var _ ports.CatalogRepository = (*CatalogStore)(nil)

func crop(name string) domain.Crop {
	return domain.Crop{
		Name:             name,
		Season:           "Rabi (Winter)",
		SoilType:         "Loamy",
		Region:           "Piplan",
		WaterRequirement: domain.WaterMedium,
		ExpectedYield:    decimal.RequireFromString("2.5"),
	}
}

func TestCatalogStore_AddRejectsCaseVariants(t *testing.T) {
	s := NewCatalogStore()

	require.NoError(t, s.Add(crop("Wheat")))
	for _, variant := range []string{"Wheat", "wheat", "WHEAT", "wHeAt"} {
		err := s.Add(crop(variant))
		assert.ErrorIs(t, err, domain.ErrDuplicateCropName, variant)
	}
	assert.Equal(t, 1, s.Count())
}

func TestCatalogStore_ListKeepsInsertionOrder(t *testing.T) {
	s := NewCatalogStore()
	for _, n := range []string{"Maize", "Barley", "Cotton"} {
		require.NoError(t, s.Add(crop(n)))
	}

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "Maize", got[0].Name)
	assert.Equal(t, "Barley", got[1].Name)
	assert.Equal(t, "Cotton", got[2].Name)

	got[0].Name = "mutated"
	assert.Equal(t, "Maize", s.List()[0].Name, "List must return a copy")
}

func TestCatalogStore_FindIsExact(t *testing.T) {
	s := NewCatalogStore()
	require.NoError(t, s.Add(crop("Wheat")))

	c, err := s.Find("Wheat")
	require.NoError(t, err)
	assert.Equal(t, "Wheat", c.Name)

	_, err = s.Find("wheat")
	assert.ErrorIs(t, err, domain.ErrCropNotFound)
}

func TestCatalogStore_DeleteFreesName(t *testing.T) {
	s := NewCatalogStore()
	require.NoError(t, s.Add(crop("Wheat")))
	require.NoError(t, s.Add(crop("Rice")))

	require.NoError(t, s.Delete("Wheat"))
	assert.Equal(t, 1, s.Count())
	assert.ErrorIs(t, s.Delete("Wheat"), domain.ErrCropNotFound)

	require.NoError(t, s.Add(crop("WHEAT")))
	names := []string{}
	for _, c := range s.List() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Rice", "WHEAT"}, names)
}

func TestCatalogStore_Replace(t *testing.T) {
	s := NewCatalogStore()
	require.NoError(t, s.Add(crop("Wheat")))

	updated := crop("Wheat")
	updated.Season = "Both Seasons"
	require.NoError(t, s.Replace(updated))

	c, err := s.Find("Wheat")
	require.NoError(t, err)
	assert.Equal(t, "Both Seasons", c.Season)

	assert.ErrorIs(t, s.Replace(crop("Ghost")), domain.ErrCropNotFound)
}

func TestCatalogStore_Regions(t *testing.T) {
	s := NewCatalogStore()
	require.NoError(t, s.AddRegion(domain.Region{Name: "Piplan", Climate: "Semi-Arid", AvgRainfall: 350}))
	require.NoError(t, s.AddRegion(domain.Region{Name: "Kalabagh", Climate: "Arid", AvgRainfall: 280}))
	assert.Error(t, s.AddRegion(domain.Region{Name: "Piplan"}))

	r, ok := s.Region("Kalabagh")
	require.True(t, ok)
	assert.Equal(t, "Arid", r.Climate)

	_, ok = s.Region("kalabagh")
	assert.False(t, ok)

	regions := s.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, "Piplan", regions[0].Name)
}
