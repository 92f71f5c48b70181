package dailypresence

import (
	"context"

	"worksite/backend/internal/repository/postgres/dailypresence"
)

type DailyPresence interface {
	GetByDate(ctx context.Context, filter dailypresence.Filter) ([]dailypresence.GetListResponse, error)
	Save(ctx context.Context, request dailypresence.SaveRequest) error
	SaveBulk(ctx context.Context, request dailypresence.SaveBulkRequest) error
}
