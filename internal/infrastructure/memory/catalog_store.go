// Package memory holds the process-lifetime stores behind the advisory
// service. None of the types here lock; the service owning them does.
package memory

import (
	"fmt"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// CatalogStore keeps crops in insertion order alongside the set of folded
// names used for the uniqueness check.
type CatalogStore struct {
	crops   []domain.Crop
	names   map[string]struct{}
	regions []domain.Region
	byName  map[string]int
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		names:  make(map[string]struct{}),
		byName: make(map[string]int),
	}
}

func (s *CatalogStore) Add(crop domain.Crop) error {
	key := domain.FoldName(crop.Name)
	if _, exists := s.names[key]; exists {
		return fmt.Errorf("add %q: %w", crop.Name, domain.ErrDuplicateCropName)
	}
	s.crops = append(s.crops, crop)
	s.names[key] = struct{}{}
	return nil
}

func (s *CatalogStore) Find(name string) (domain.Crop, error) {
	i := s.indexOf(name)
	if i < 0 {
		return domain.Crop{}, fmt.Errorf("find %q: %w", name, domain.ErrCropNotFound)
	}
	return s.crops[i], nil
}

// Replace swaps in crop for the stored entry of the same name. The name
// itself cannot change, so the folded-name set is untouched.
func (s *CatalogStore) Replace(crop domain.Crop) error {
	i := s.indexOf(crop.Name)
	if i < 0 {
		return fmt.Errorf("replace %q: %w", crop.Name, domain.ErrCropNotFound)
	}
	s.crops[i] = crop
	return nil
}

func (s *CatalogStore) Delete(name string) error {
	i := s.indexOf(name)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", name, domain.ErrCropNotFound)
	}
	s.crops = append(s.crops[:i], s.crops[i+1:]...)
	delete(s.names, domain.FoldName(name))
	return nil
}

func (s *CatalogStore) List() []domain.Crop {
	out := make([]domain.Crop, len(s.crops))
	copy(out, s.crops)
	return out
}

func (s *CatalogStore) Count() int {
	return len(s.crops)
}

// AddRegion registers a region. Regions are keyed by exact name.
func (s *CatalogStore) AddRegion(region domain.Region) error {
	if _, exists := s.byName[region.Name]; exists {
		return fmt.Errorf("region %q already exists", region.Name)
	}
	s.byName[region.Name] = len(s.regions)
	s.regions = append(s.regions, region)
	return nil
}

func (s *CatalogStore) Region(name string) (domain.Region, bool) {
	i, ok := s.byName[name]
	if !ok {
		return domain.Region{}, false
	}
	return s.regions[i], true
}

func (s *CatalogStore) Regions() []domain.Region {
	out := make([]domain.Region, len(s.regions))
	copy(out, s.regions)
	return out
}

func (s *CatalogStore) indexOf(name string) int {
	for i := range s.crops {
		if s.crops[i].Name == name {
			return i
		}
	}
	return -1
}
