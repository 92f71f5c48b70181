package buildingsite

import (
	"context"

	"worksite/backend/internal/repository/postgres/buildingsite"
)

type BuildingSite interface {
	GetList(ctx context.Context, filter buildingsite.Filter) ([]buildingsite.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (buildingsite.GetDetailByIdResponse, error)
	Create(ctx context.Context, request buildingsite.CreateRequest) (buildingsite.CreateResponse, error)
	UpdateAll(ctx context.Context, request buildingsite.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
