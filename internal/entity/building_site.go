package entity

import (
	"github.com/uptrace/bun"
)

type BuildingSite struct {
	bun.BaseModel `bun:"table:building_sites"`

	BasicEntity
	Name      *string  `json:"name"       bun:"name"`
	Notes     *string  `json:"notes"      bun:"notes"`
	City      *string  `json:"city"       bun:"city"`
	Address   *string  `json:"address"    bun:"address"`
	Latitude  *float64 `json:"lat"        bun:"lat"`
	Longitude *float64 `json:"lng"        bun:"lng"`
	StartDate *string  `json:"start_date" bun:"start_date"`
	EndDate   *string  `json:"end_date"   bun:"end_date"`
	OwnerID   *int     `json:"owner_id"   bun:"owner_id"`
}
