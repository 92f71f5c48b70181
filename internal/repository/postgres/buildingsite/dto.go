package buildingsite

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	City      *string `json:"city"`
	Address   *string `json:"address"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type GetDetailByIdResponse struct {
	ID        int      `json:"id"`
	Name      *string  `json:"name"`
	Notes     *string  `json:"notes"`
	City      *string  `json:"city"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
	StartDate *string  `json:"start_date"`
	EndDate   *string  `json:"end_date"`
}

type CreateRequest struct {
	Name      *string  `json:"name" form:"name"`
	Notes     *string  `json:"notes" form:"notes"`
	City      *string  `json:"city" form:"city"`
	Address   *string  `json:"address" form:"address"`
	Latitude  *float64 `json:"lat" form:"lat"`
	Longitude *float64 `json:"lng" form:"lng"`
	StartDate *string  `json:"start_date" form:"start_date"`
	EndDate   *string  `json:"end_date" form:"end_date"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:building_sites"`

	ID        int      `json:"id" bun:"-"`
	Name      *string  `json:"name"       bun:"name"`
	Notes     *string  `json:"notes"      bun:"notes"`
	City      *string  `json:"city"       bun:"city"`
	Address   *string  `json:"address"    bun:"address"`
	Latitude  *float64 `json:"lat"        bun:"lat"`
	Longitude *float64 `json:"lng"        bun:"lng"`
	StartDate *string  `json:"start_date" bun:"start_date"`
	EndDate   *string  `json:"end_date"   bun:"end_date"`
	OwnerID   int      `json:"-"          bun:"owner_id"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID        int      `json:"id" form:"id"`
	Name      *string  `json:"name" form:"name"`
	Notes     *string  `json:"notes" form:"notes"`
	City      *string  `json:"city" form:"city"`
	Address   *string  `json:"address" form:"address"`
	Latitude  *float64 `json:"lat" form:"lat"`
	Longitude *float64 `json:"lng" form:"lng"`
	StartDate *string  `json:"start_date" form:"start_date"`
	EndDate   *string  `json:"end_date" form:"end_date"`
}
