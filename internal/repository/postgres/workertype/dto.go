package workertype

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
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

type CreateRequest struct {
	Name *string `json:"name" form:"name"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:worker_types"`

	ID      int     `json:"id" bun:"-"`
	Name    *string `json:"name"     bun:"name"`
	OwnerID int     `json:"-"        bun:"owner_id"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}
