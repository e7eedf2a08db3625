package models

import "time"

// DefaultActor is recorded on audit columns when no actor is supplied.
const DefaultActor = "system"

// NA is the placeholder shown for absent foreign references in views and
// reports.
const NA = "N/A"

// Audit carries the bookkeeping columns shared by every entity.
type Audit struct {
	CreatedDate   time.Time `gorm:"autoCreateTime" json:"created_date"`
	CreatedBy     string    `gorm:"size:50" json:"created_by"`
	LastUpdated   time.Time `gorm:"autoUpdateTime" json:"last_updated"`
	LastUpdatedBy string    `gorm:"size:50" json:"last_updated_by"`
}

func (a *Audit) ensureActor() {
	if a.CreatedBy == "" {
		a.CreatedBy = DefaultActor
	}
	if a.LastUpdatedBy == "" {
		a.LastUpdatedBy = DefaultActor
	}
}
