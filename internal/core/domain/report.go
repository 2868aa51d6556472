package domain

// CropGroup lists the crops sharing a region or a season.
type CropGroup struct {
	Key   string   `json:"key"`
	Count int      `json:"count"`
	Crops []string `json:"crops"`
}

// ReportTotals summarises the size of each collection.
type ReportTotals struct {
	Crops        int `json:"crops"`
	Regions      int `json:"regions"`
	Users        int `json:"users"`
	AuditEntries int `json:"audit_entries"`
}

// Report is the administrator overview of the catalog.
type Report struct {
	ByRegion []CropGroup  `json:"by_region"`
	BySeason []CropGroup  `json:"by_season"`
	Totals   ReportTotals `json:"totals"`
}
