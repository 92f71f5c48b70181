package worker

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	SiteID *int
}

type GetListResponse struct {
	ID          int     `json:"id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Notes       *string `json:"notes"`
	WorkerTypes *string `json:"worker_types"`
	Companies   *string `json:"companies"`
	Sites       *string `json:"sites"`
}

type GetDetailByIdResponse struct {
	ID        int     `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Notes     *string `json:"notes"`
}

type CreateRequest struct {
	FirstName     *string `json:"first_name" form:"first_name"`
	LastName      *string `json:"last_name" form:"last_name"`
	Phone         *string `json:"phone" form:"phone"`
	Email         *string `json:"email" form:"email"`
	Notes         *string `json:"notes" form:"notes"`
	WorkerTypeIDs []int   `json:"worker_type_ids" form:"worker_type_ids"`
	CompanyIDs    []int   `json:"company_ids" form:"company_ids"`
	SiteID        *int    `json:"site_id" form:"site_id"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:workers"`

	ID        int     `json:"id" bun:"-"`
	FirstName *string `json:"first_name" bun:"first_name"`
	LastName  *string `json:"last_name"  bun:"last_name"`
	Phone     *string `json:"phone"      bun:"phone"`
	Email     *string `json:"email"      bun:"email"`
	Notes     *string `json:"notes"      bun:"notes"`
	OwnerID   int     `json:"-"          bun:"owner_id"`

	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID            int     `json:"id" form:"id"`
	FirstName     *string `json:"first_name" form:"first_name"`
	LastName      *string `json:"last_name" form:"last_name"`
	Phone         *string `json:"phone" form:"phone"`
	Email         *string `json:"email" form:"email"`
	Notes         *string `json:"notes" form:"notes"`
	WorkerTypeIDs []int   `json:"worker_type_ids" form:"worker_type_ids"`
	CompanyIDs    []int   `json:"company_ids" form:"company_ids"`
}

type LinkSiteRequest struct {
	SiteID   *int `json:"site_id" form:"site_id"`
	WorkerID *int `json:"worker_id" form:"worker_id"`
}

type LinkCompanyRequest struct {
	WorkerID  *int `json:"worker_id" form:"worker_id"`
	CompanyID *int `json:"company_id" form:"company_id"`
}
