package entity

import (
	"github.com/uptrace/bun"
)

type Worker struct {
	bun.BaseModel `bun:"table:workers"`

	BasicEntity
	FirstName *string `json:"first_name" bun:"first_name"`
	LastName  *string `json:"last_name"  bun:"last_name"`
	Phone     *string `json:"phone"      bun:"phone"`
	Email     *string `json:"email"      bun:"email"`
	Notes     *string `json:"notes"      bun:"notes"`
	OwnerID   *int    `json:"owner_id"   bun:"owner_id"`
}
