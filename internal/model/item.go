package model

import "time"

// Item represents a lost or found report. Vectors are populated at report
// time and never re-embedded; a FOUND item always carries both vectors.
type Item struct {
	ID                string    `json:"id"`
	ReportedBy        string    `json:"reported_by"`
	Status            string    `json:"status"`
	Description       string    `json:"description"`
	Location          string    `json:"location"`
	ImageMime         string    `json:"image_mime,omitempty"`
	DescriptionVector []float32 `json:"-"`
	ImageVector       []float32 `json:"-"`
	IsActive          bool      `json:"is_active"`
	IsAdminReport     bool      `json:"is_admin_report"`
	HasMatchFound     bool      `json:"has_match_found"`
	ReportedAt        time.Time `json:"reported_at"`
}

// Item statuses (immutable after creation).
const (
	ItemStatusLost  = "LOST"
	ItemStatusFound = "FOUND"
)

// OppositeStatus returns the status an item is matched against.
func OppositeStatus(status string) string {
	if status == ItemStatusLost {
		return ItemStatusFound
	}
	return ItemStatusLost
}
