package workertype

import (
	"context"

	"worksite/backend/internal/repository/postgres/workertype"
)

type WorkerType interface {
	GetList(ctx context.Context, filter workertype.Filter) ([]workertype.GetListResponse, int, error)
	Create(ctx context.Context, request workertype.CreateRequest) (workertype.CreateResponse, error)
	Delete(ctx context.Context, id int) error
}
