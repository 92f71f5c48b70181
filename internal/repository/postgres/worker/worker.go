package worker

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/entity"
	"worksite/backend/internal/pkg/repository/postgresql"
	"worksite/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Worker, error) {
	var detail entity.Worker

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)

	return detail, err
}

// GetList aggregates each worker's type, company and site labels into
// comma separated strings, one row per worker.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := fmt.Sprintf(`
			WHERE
				w.deleted_at IS NULL AND w.owner_id = %d
			`, claims.UserId)

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
				(w.first_name ILIKE '%s' OR w.last_name ILIKE '%s')`, "%"+search+"%", "%"+search+"%")
	}
	if filter.SiteID != nil {
		whereQuery += fmt.Sprintf(` AND wbs.site_id = %d`, *filter.SiteID)
	}

	orderQuery := "ORDER BY w.last_name, w.first_name"

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
			w.id,
			w.first_name,
			w.last_name,
			w.phone,
			w.email,
			w.notes,
			string_agg(DISTINCT wt.name, ', ') AS worker_types,
			string_agg(DISTINCT c.name, ', ') AS companies,
			string_agg(DISTINCT bs.name, ', ') AS sites
		FROM workers w
		LEFT JOIN workers_worker_types wwt ON w.id = wwt.worker_id
		LEFT JOIN worker_types wt ON wwt.worker_type_id = wt.id
		LEFT JOIN workers_companies wc ON w.id = wc.worker_id
		LEFT JOIN companies c ON wc.company_id = c.id
		LEFT JOIN workers_building_sites wbs ON w.id = wbs.worker_id
		LEFT JOIN building_sites bs ON wbs.site_id = bs.id
		%s
		GROUP BY w.id, w.first_name, w.last_name, w.phone, w.email, w.notes
		%s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting workers"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Phone,
			&detail.Email,
			&detail.Notes,
			&detail.WorkerTypes,
			&detail.Companies,
			&detail.Sites); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning worker list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(DISTINCT w.id)
		FROM workers w
		LEFT JOIN workers_building_sites wbs ON w.id = wbs.worker_id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning worker count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetListNotInSite returns the owner's workers not yet assigned to the
// given site, for the "add existing worker" picker.
func (r Repository) GetListNotInSite(ctx context.Context, siteID int) ([]GetDetailByIdResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			w.id,
			w.first_name,
			w.last_name,
			w.phone,
			w.email,
			w.notes
		FROM workers w
		WHERE w.deleted_at IS NULL AND w.owner_id = $1
		AND w.id NOT IN (
			SELECT worker_id FROM workers_building_sites WHERE site_id = $2
		)
		ORDER BY w.last_name, w.first_name
	`

	rows, err := r.QueryContext(ctx, query, claims.UserId, siteID)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting workers not in site"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetDetailByIdResponse
	for rows.Next() {
		var detail GetDetailByIdResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Phone,
			&detail.Email,
			&detail.Notes); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning workers not in site"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	return list, nil
}

// Create inserts the worker and its type/company/site links in one
// transaction.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "FirstName", "LastName"); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse

	response.FirstName = request.FirstName
	response.LastName = request.LastName
	response.Phone = request.Phone
	response.Email = request.Email
	response.Notes = request.Notes
	response.OwnerID = claims.UserId
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "opening worker transaction"), http.StatusInternalServerError)
	}
	defer tx.Rollback()

	_, err = tx.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating worker"), http.StatusBadRequest)
	}

	for _, typeID := range request.WorkerTypeIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO workers_worker_types (worker_id, worker_type_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			response.ID, typeID); err != nil {
			return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "linking worker type"), http.StatusBadRequest)
		}
	}
	for _, companyID := range request.CompanyIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO workers_companies (worker_id, company_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			response.ID, companyID); err != nil {
			return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "linking worker company"), http.StatusBadRequest)
		}
	}
	if request.SiteID != nil {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO workers_building_sites (site_id, worker_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			*request.SiteID, response.ID); err != nil {
			return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "linking worker site"), http.StatusBadRequest)
		}
	}

	if err = tx.Commit(); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "committing worker"), http.StatusInternalServerError)
	}

	return response, nil
}

// UpdateAll replaces the worker profile and rebuilds its type and
// company links.
func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID", "FirstName", "LastName"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "opening worker transaction"), http.StatusInternalServerError)
	}
	defer tx.Rollback()

	q := tx.NewUpdate().Table("workers").
		Where("deleted_at IS NULL AND id = ? AND owner_id = ?", request.ID, claims.UserId)
	q.Set("first_name = ?", request.FirstName)
	q.Set("last_name = ?", request.LastName)
	q.Set("phone = ?", request.Phone)
	q.Set("email = ?", request.Email)
	q.Set("notes = ?", request.Notes)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating worker"), http.StatusBadRequest)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM workers_worker_types WHERE worker_id = $1`, request.ID); err != nil {
		return web.NewRequestError(errors.Wrap(err, "clearing worker types"), http.StatusBadRequest)
	}
	for _, typeID := range request.WorkerTypeIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO workers_worker_types (worker_id, worker_type_id) VALUES ($1, $2)`,
			request.ID, typeID); err != nil {
			return web.NewRequestError(errors.Wrap(err, "linking worker type"), http.StatusBadRequest)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM workers_companies WHERE worker_id = $1`, request.ID); err != nil {
		return web.NewRequestError(errors.Wrap(err, "clearing worker companies"), http.StatusBadRequest)
	}
	for _, companyID := range request.CompanyIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO workers_companies (worker_id, company_id) VALUES ($1, $2)`,
			request.ID, companyID); err != nil {
			return web.NewRequestError(errors.Wrap(err, "linking worker company"), http.StatusBadRequest)
		}
	}

	if err = tx.Commit(); err != nil {
		return web.NewRequestError(errors.Wrap(err, "committing worker update"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) LinkSite(ctx context.Context, request LinkSiteRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "SiteID", "WorkerID"); err != nil {
		return err
	}

	if err := r.checkSiteOwner(ctx, *request.SiteID, claims.UserId); err != nil {
		return err
	}

	_, err = r.ExecContext(ctx,
		`INSERT INTO workers_building_sites (site_id, worker_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		*request.SiteID, *request.WorkerID)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "linking worker to site"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) UnlinkSite(ctx context.Context, siteID, workerID int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.checkSiteOwner(ctx, siteID, claims.UserId); err != nil {
		return err
	}

	result, err := r.ExecContext(ctx,
		`DELETE FROM workers_building_sites WHERE site_id = $1 AND worker_id = $2`,
		siteID, workerID)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "unlinking worker from site"), http.StatusBadRequest)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) LinkCompany(ctx context.Context, request LinkCompanyRequest) error {
	if err := r.ValidateStruct(&request, "WorkerID", "CompanyID"); err != nil {
		return err
	}

	if _, err := r.CheckClaims(ctx); err != nil {
		return err
	}

	_, err := r.ExecContext(ctx,
		`INSERT INTO workers_companies (worker_id, company_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		*request.WorkerID, *request.CompanyID)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "linking worker to company"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "workers", id)
}

func (r Repository) checkSiteOwner(ctx context.Context, siteID, ownerID int) error {
	var ok bool
	err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM building_sites WHERE deleted_at IS NULL AND id = $1 AND owner_id = $2)`,
		siteID, ownerID).Scan(&ok)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking site owner"), http.StatusInternalServerError)
	}
	if !ok {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	return nil
}
