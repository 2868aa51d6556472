package service

import (
	"context"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// Report summarises the catalog by region and by season. Region groups
// follow seed order; season groups follow the first crop seen in each season.
// The audit total is taken before the report's own entry is written.
func (a *Advisory) Report(_ context.Context) domain.Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	crops := a.catalog.List()
	regions := a.catalog.Regions()

	byRegion := make([]domain.CropGroup, 0, len(regions))
	for _, r := range regions {
		g := domain.CropGroup{Key: r.Name, Crops: []string{}}
		for _, c := range crops {
			if c.Region == r.Name {
				g.Crops = append(g.Crops, c.Name)
			}
		}
		g.Count = len(g.Crops)
		byRegion = append(byRegion, g)
	}

	bySeason := []domain.CropGroup{}
	seasonIdx := make(map[string]int)
	for _, c := range crops {
		i, ok := seasonIdx[c.Season]
		if !ok {
			i = len(bySeason)
			seasonIdx[c.Season] = i
			bySeason = append(bySeason, domain.CropGroup{Key: c.Season})
		}
		bySeason[i].Crops = append(bySeason[i].Crops, c.Name)
		bySeason[i].Count++
	}

	report := domain.Report{
		ByRegion: byRegion,
		BySeason: bySeason,
		Totals: domain.ReportTotals{
			Crops:        len(crops),
			Regions:      len(regions),
			Users:        a.users.Count(),
			AuditEntries: a.audit.Len(),
		},
	}
	a.appendLocked("Generated system reports")
	return report
}
