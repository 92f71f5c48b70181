package dailynote

import (
	"context"

	"worksite/backend/internal/repository/postgres/dailynote"
)

type DailyNote interface {
	GetField(ctx context.Context, request dailynote.GetFieldRequest) (dailynote.GetFieldResponse, error)
	UpsertField(ctx context.Context, request dailynote.UpsertFieldRequest) error
}
