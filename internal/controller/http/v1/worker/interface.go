package worker

import (
	"context"

	"worksite/backend/internal/repository/postgres/worker"
)

type Worker interface {
	GetList(ctx context.Context, filter worker.Filter) ([]worker.GetListResponse, int, error)
	GetListNotInSite(ctx context.Context, siteID int) ([]worker.GetDetailByIdResponse, error)
	Create(ctx context.Context, request worker.CreateRequest) (worker.CreateResponse, error)
	UpdateAll(ctx context.Context, request worker.UpdateRequest) error
	LinkSite(ctx context.Context, request worker.LinkSiteRequest) error
	UnlinkSite(ctx context.Context, siteID, workerID int) error
	LinkCompany(ctx context.Context, request worker.LinkCompanyRequest) error
	Delete(ctx context.Context, id int) error
}
