package entity

import (
	"github.com/uptrace/bun"
)

// WorkerType is the job-function category (mansione) used as the pivot
// dimension of the work journal.
type WorkerType struct {
	bun.BaseModel `bun:"table:worker_types"`

	BasicEntity
	Name    *string `json:"name"     bun:"name"`
	OwnerID *int    `json:"owner_id" bun:"owner_id"`
}
