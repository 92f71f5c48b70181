package buildingsite

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/entity"
	"worksite/backend/internal/pkg/repository/postgresql"
	"worksite/backend/internal/repository/postgres"
	"worksite/backend/internal/service/journal"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.BuildingSite, error) {
	var detail entity.BuildingSite

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)

	return detail, err
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := fmt.Sprintf(`
			WHERE
				deleted_at IS NULL AND owner_id = %d
			`, claims.UserId)

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
				(name ILIKE '%s' OR city ILIKE '%s')`, "%"+search+"%", "%"+search+"%")
	}
	orderQuery := "ORDER BY start_date desc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			id,
			name,
			city,
			address,
			start_date,
			end_date
		FROM building_sites

		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting building sites"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.City,
			&detail.Address,
			&detail.StartDate,
			&detail.EndDate); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning building site list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(id)
		FROM building_sites
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning building site count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := `
		SELECT
			id,
			name,
			notes,
			city,
			address,
			lat,
			lng,
			start_date,
			end_date
		FROM building_sites
		WHERE deleted_at IS NULL AND id = $1 AND owner_id = $2
	`

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query, id, claims.UserId).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Notes,
		&detail.City,
		&detail.Address,
		&detail.Latitude,
		&detail.Longitude,
		&detail.StartDate,
		&detail.EndDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting building site detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Name", "StartDate"); err != nil {
		return CreateResponse{}, err
	}

	if err := validateRange(request.StartDate, request.EndDate); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse

	response.Name = request.Name
	response.Notes = request.Notes
	response.City = request.City
	response.Address = request.Address
	response.Latitude = request.Latitude
	response.Longitude = request.Longitude
	response.StartDate = request.StartDate
	response.EndDate = request.EndDate
	response.OwnerID = claims.UserId
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating building site"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID", "Name", "StartDate"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := validateRange(request.StartDate, request.EndDate); err != nil {
		return err
	}

	q := r.NewUpdate().Table("building_sites").
		Where("deleted_at IS NULL AND id = ? AND owner_id = ?", request.ID, claims.UserId)
	q.Set("name = ?", request.Name)
	q.Set("notes = ?", request.Notes)
	q.Set("city = ?", request.City)
	q.Set("address = ?", request.Address)
	q.Set("lat = ?", request.Latitude)
	q.Set("lng = ?", request.Longitude)
	q.Set("start_date = ?", request.StartDate)
	q.Set("end_date = ?", request.EndDate)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating building site"), http.StatusBadRequest)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "building_sites", id)
}

// validateRange rejects an end date preceding the start date before
// anything is written, mirroring the precondition the report compiler
// relies on.
func validateRange(startDate, endDate *string) error {
	if startDate == nil {
		return nil
	}

	start, err := time.Parse(journal.DateLayout, *startDate)
	if err != nil {
		if parsed, parseErr := date.ParseDate(*startDate); parseErr == nil {
			start = parsed.Time
		} else {
			return web.NewRequestError(errors.Wrap(err, "parsing start date"), http.StatusBadRequest)
		}
	}

	if endDate == nil || *endDate == "" {
		return nil
	}

	end, err := time.Parse(journal.DateLayout, *endDate)
	if err != nil {
		if parsed, parseErr := date.ParseDate(*endDate); parseErr == nil {
			end = parsed.Time
		} else {
			return web.NewRequestError(errors.Wrap(err, "parsing end date"), http.StatusBadRequest)
		}
	}

	if end.Before(start) {
		return web.NewRequestError(errors.New("end date precedes start date"), http.StatusBadRequest)
	}

	return nil
}
