package entity

import (
	"github.com/uptrace/bun"
)

// DailyNote holds the free-text fields of one site day. At most one
// row exists per (building_site_id, date), enforced by upsert.
type DailyNote struct {
	bun.BaseModel `bun:"table:daily_notes"`

	BasicEntity
	BuildingSiteID *int    `json:"building_site_id" bun:"building_site_id"`
	Date           *string `json:"date"             bun:"date"`
	Notes          *string `json:"notes"            bun:"notes"`
	OtherNotes     *string `json:"other_notes"      bun:"other_notes"`
	PersonalNotes  *string `json:"personal_notes"   bun:"personal_notes"`
	OwnerID        *int    `json:"owner_id"         bun:"owner_id"`
}
