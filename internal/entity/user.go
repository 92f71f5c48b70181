package entity

import (
	"github.com/uptrace/bun"
)

// User is an account holder (site owner) who signs in and owns every
// other record through owner_id.
type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	FirstName *string `json:"first_name" bun:"first_name"`
	LastName  *string `json:"last_name"  bun:"last_name"`
	Username  *string `json:"username"   bun:"username"`
	Email     *string `json:"email"      bun:"email"`
	Password  *string `json:"password"   bun:"password"`
	Phone     *string `json:"phone"      bun:"phone"`
	Role      *string `json:"role"       bun:"role"`
}
