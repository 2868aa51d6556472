// Package seed loads the bootstrap users, regions and crops into the
// in-memory stores. Passwords in the seed are hashed with bcrypt before they
// reach the user directory.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

//go:embed seed.yaml
var defaultSeed []byte

type userRecord struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type regionRecord struct {
	Name        string  `yaml:"name"`
	Climate     string  `yaml:"climate"`
	AvgRainfall float64 `yaml:"avg_rainfall_mm"`
	CommonCrops string  `yaml:"common_crops"`
}

type cropRecord struct {
	Name             string `yaml:"name"`
	Season           string `yaml:"season"`
	SoilType         string `yaml:"soil_type"`
	Region           string `yaml:"region"`
	WaterRequirement string `yaml:"water_requirement"`
	ExpectedYield    string `yaml:"expected_yield"`
}

// Data is a parsed seed document.
type Data struct {
	Users   []userRecord   `yaml:"users"`
	Regions []regionRecord `yaml:"regions"`
	Crops   []cropRecord   `yaml:"crops"`
}

// Default returns the embedded seed.
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads the seed at path, falling back to the embedded seed when path
// is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML seed document.
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &d, nil
}

// Populate fills the stores. Regions go in first so every crop can be checked
// against them. A cost of zero uses bcrypt.DefaultCost.
func (d *Data) Populate(catalog ports.CatalogRepository, users ports.UserRepository, cost int) error {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	for _, r := range d.Regions {
		if err := catalog.AddRegion(domain.Region{
			Name:        r.Name,
			Climate:     r.Climate,
			AvgRainfall: r.AvgRainfall,
			CommonCrops: r.CommonCrops,
		}); err != nil {
			return fmt.Errorf("seed region: %w", err)
		}
	}

	for _, u := range d.Users {
		if u.Role != domain.RoleAdmin && u.Role != domain.RoleFarmer {
			return fmt.Errorf("seed user %q: unknown role %q", u.Username, u.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		if err := users.Add(domain.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
		}); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
	}

	for _, c := range d.Crops {
		crop, err := c.toDomain(catalog)
		if err != nil {
			return fmt.Errorf("seed crop %q: %w", c.Name, err)
		}
		if err := catalog.Add(crop); err != nil {
			return fmt.Errorf("seed crop: %w", err)
		}
	}
	return nil
}

func (c cropRecord) toDomain(catalog ports.CatalogRepository) (domain.Crop, error) {
	if c.Name == "" {
		return domain.Crop{}, domain.ErrEmptyCropName
	}
	yield, err := domain.ParseYield(c.ExpectedYield)
	if err != nil {
		return domain.Crop{}, err
	}
	water := domain.WaterRequirement(c.WaterRequirement)
	if !water.Valid() {
		return domain.Crop{}, fmt.Errorf("%w: %q", domain.ErrInvalidWaterRequirement, c.WaterRequirement)
	}
	if _, ok := catalog.Region(c.Region); !ok {
		return domain.Crop{}, fmt.Errorf("%w: %q", domain.ErrRegionNotFound, c.Region)
	}
	return domain.Crop{
		ID:               uuid.NewString(),
		Name:             c.Name,
		Season:           c.Season,
		SoilType:         c.SoilType,
		Region:           c.Region,
		WaterRequirement: water,
		ExpectedYield:    yield,
	}, nil
}
