package user

import (
	"time"

	"github.com/uptrace/bun"
)

type SignInRequest struct {
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
}

type DetailResponse struct {
	ID        int     `json:"id"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      string  `json:"role"`
	Password  string  `json:"-"`
}

type CreateRequest struct {
	Email     *string `json:"email" form:"email"`
	FirstName *string `json:"first_name" form:"first_name"`
	LastName  *string `json:"last_name" form:"last_name"`
	Phone     *string `json:"phone" form:"phone"`
	Password  *string `json:"password" form:"password"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID        int     `json:"id" bun:"-"`
	Email     *string `json:"email"      bun:"email"`
	FirstName *string `json:"first_name" bun:"first_name"`
	LastName  *string `json:"last_name"  bun:"last_name"`
	Phone     *string `json:"phone"      bun:"phone"`
	Password  string  `json:"-"          bun:"password"`
	Role      string  `json:"role"       bun:"role"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
}
