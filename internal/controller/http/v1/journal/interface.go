package journal

import (
	"context"

	"worksite/backend/internal/service/journal"
)

type Generator interface {
	Generate(ctx context.Context, siteID int) ([]byte, error)
}

type DataSource interface {
	journal.DataSource
	GetSiteName(ctx context.Context, siteID int) (string, error)
}
