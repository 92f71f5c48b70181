package user

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/auth"
	"worksite/backend/internal/pkg/repository/postgresql"
	"worksite/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetByEmail(ctx context.Context, email string) (DetailResponse, error) {
	var detail DetailResponse

	query := `
		SELECT
			id,
			email,
			first_name,
			last_name,
			role,
			password
		FROM users
		WHERE deleted_at IS NULL AND email = $1
	`

	err := r.QueryRowContext(ctx, query, email).Scan(
		&detail.ID,
		&detail.Email,
		&detail.FirstName,
		&detail.LastName,
		&detail.Role,
		&detail.Password,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return DetailResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return DetailResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "Email", "Password", "FirstName"); err != nil {
		return CreateResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}

	response := CreateResponse{
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Password:  string(hash),
		Role:      auth.RoleOwner,
		CreatedAt: time.Now(),
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	return response, nil
}
