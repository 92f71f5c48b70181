package company

import (
	"context"

	"worksite/backend/internal/repository/postgres/company"
)

type Company interface {
	GetList(ctx context.Context, filter company.Filter) ([]company.GetListResponse, int, error)
	Create(ctx context.Context, request company.CreateRequest) (company.CreateResponse, error)
	UpdateAll(ctx context.Context, request company.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
