package auth

import (
	"context"

	"worksite/backend/internal/repository/postgres/user"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (user.DetailResponse, error)
	Create(ctx context.Context, request user.CreateRequest) (user.CreateResponse, error)
}
