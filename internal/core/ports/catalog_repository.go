package ports

import "github.com/mianwali/crop-advisory/internal/core/domain"

// CatalogRepository stores crops and regions. Implementations need not be
// safe for concurrent use; the advisory service serialises access.
type CatalogRepository interface {
	// Add stores a new crop, failing with domain.ErrDuplicateCropName when a
	// crop with the same folded name exists.
	Add(crop domain.Crop) error
	// Find returns the crop whose name matches exactly.
	Find(name string) (domain.Crop, error)
	// Replace overwrites the stored crop with the same name.
	Replace(crop domain.Crop) error
	Delete(name string) error
	// List returns the crops in insertion order.
	List() []domain.Crop
	Count() int

	AddRegion(region domain.Region) error
	Region(name string) (domain.Region, bool)
	// Regions returns the regions in the order they were added.
	Regions() []domain.Region
}
