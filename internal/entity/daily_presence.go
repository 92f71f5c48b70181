package entity

import (
	"github.com/uptrace/bun"
)

// Presence states recorded per worker per day.
const (
	PresenceStatusPresent     = "present"
	PresenceStatusAbsent      = "absent"
	PresenceStatusNotRequired = "not_required"
)

type DailyPresence struct {
	bun.BaseModel `bun:"table:daily_presences"`

	BasicEntity
	BuildingSiteID *int    `json:"building_site_id" bun:"building_site_id"`
	WorkerID       *int    `json:"worker_id"        bun:"worker_id"`
	Date           *string `json:"date"             bun:"date"`
	Status         *string `json:"is_present"       bun:"is_present"`
	Notes          *string `json:"notes"            bun:"notes"`
	OwnerID        *int    `json:"owner_id"         bun:"owner_id"`
}
