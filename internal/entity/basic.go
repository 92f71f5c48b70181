package entity

import "time"

// BasicEntity carries the id and audit columns shared by every table.
type BasicEntity struct {
	ID        int        `json:"id" bun:"id,pk,autoincrement"`
	CreatedAt time.Time  `json:"created_at" bun:"created_at"`
	CreatedBy *int       `json:"created_by" bun:"created_by"`
	UpdatedAt *time.Time `json:"updated_at" bun:"updated_at"`
	UpdatedBy *int       `json:"updated_by" bun:"updated_by"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" bun:"deleted_at"`
	DeletedBy *int       `json:"deleted_by,omitempty" bun:"deleted_by"`
}
