package dailypresence

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/entity"
	"worksite/backend/internal/pkg/repository/postgresql"
	"worksite/backend/internal/service/journal"
)

var validStatuses = map[string]struct{}{
	entity.PresenceStatusPresent:     {},
	entity.PresenceStatusAbsent:      {},
	entity.PresenceStatusNotRequired: {},
}

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByDate returns one row per worker assigned to the site, with the
// recorded status for that day or NULL when nothing was recorded yet.
func (r Repository) GetByDate(ctx context.Context, filter Filter) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	if filter.BuildingSiteID == nil || filter.Date == nil {
		return nil, web.NewRequestError(errors.New("building_site_id and date are required"), http.StatusBadRequest)
	}

	day, err := parseDay(*filter.Date)
	if err != nil {
		return nil, err
	}

	if err := r.checkSiteOwner(ctx, *filter.BuildingSiteID, claims.UserId); err != nil {
		return nil, err
	}

	query := `
		SELECT
			w.id,
			w.first_name,
			w.last_name,
			dp.is_present
		FROM workers w
		JOIN workers_building_sites wbs ON wbs.worker_id = w.id
		LEFT JOIN daily_presences dp
			ON dp.worker_id = w.id AND dp.building_site_id = $1 AND dp.date = $2 AND dp.deleted_at IS NULL
		WHERE
			w.deleted_at IS NULL AND wbs.site_id = $1
		ORDER BY w.last_name, w.first_name, w.id
	`

	rows, err := r.QueryContext(ctx, query, *filter.BuildingSiteID, day)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting daily presences"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		detail := GetListResponse{Date: day}
		if err = rows.Scan(
			&detail.WorkerID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Status); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning daily presence list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	return list, nil
}

// Save records one worker's status for one day, replacing any
// previous value for that (worker, day) pair.
func (r Repository) Save(ctx context.Context, request SaveRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "BuildingSiteID", "WorkerID", "Date", "Status"); err != nil {
		return err
	}

	day, err := parseDay(*request.Date)
	if err != nil {
		return err
	}

	if _, ok := validStatuses[*request.Status]; !ok {
		return web.NewRequestError(errors.Errorf("unknown presence status %q", *request.Status), http.StatusBadRequest)
	}

	if err := r.checkSiteOwner(ctx, *request.BuildingSiteID, claims.UserId); err != nil {
		return err
	}

	query := `
		INSERT INTO daily_presences (building_site_id, worker_id, date, is_present, owner_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, now(), $5)
		ON CONFLICT (worker_id, date)
		DO UPDATE SET building_site_id = EXCLUDED.building_site_id, is_present = EXCLUDED.is_present, updated_at = now(), updated_by = $5
	`

	if _, err = r.ExecContext(ctx, query, *request.BuildingSiteID, *request.WorkerID, day, *request.Status, claims.UserId); err != nil {
		return web.NewRequestError(errors.Wrap(err, "saving daily presence"), http.StatusBadRequest)
	}

	return nil
}

// SaveBulk replaces the whole site sheet for one day in a single
// transaction, so a partial write never survives.
func (r Repository) SaveBulk(ctx context.Context, request SaveBulkRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "BuildingSiteID", "Date"); err != nil {
		return err
	}

	day, err := parseDay(*request.Date)
	if err != nil {
		return err
	}

	for _, p := range request.Presences {
		if p.WorkerID == nil || p.Status == nil {
			return web.NewRequestError(errors.New("worker_id and status are required for every presence"), http.StatusBadRequest)
		}
		if _, ok := validStatuses[*p.Status]; !ok {
			return web.NewRequestError(errors.Errorf("unknown presence status %q", *p.Status), http.StatusBadRequest)
		}
	}

	if err := r.checkSiteOwner(ctx, *request.BuildingSiteID, claims.UserId); err != nil {
		return err
	}

	tx, err := r.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "beginning transaction"), http.StatusInternalServerError)
	}

	deleteQuery := `
		DELETE FROM daily_presences
		WHERE building_site_id = $1 AND date = $2
	`
	if _, err = tx.ExecContext(ctx, deleteQuery, *request.BuildingSiteID, day); err != nil {
		tx.Rollback()
		return web.NewRequestError(errors.Wrap(err, "clearing daily presences"), http.StatusInternalServerError)
	}

	insertQuery := `
		INSERT INTO daily_presences (building_site_id, worker_id, date, is_present, owner_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, now(), $5)
	`
	for _, p := range request.Presences {
		if _, err = tx.ExecContext(ctx, insertQuery, *request.BuildingSiteID, *p.WorkerID, day, *p.Status, claims.UserId); err != nil {
			tx.Rollback()
			return web.NewRequestError(errors.Wrap(err, "inserting daily presence"), http.StatusBadRequest)
		}
	}

	if err = tx.Commit(); err != nil {
		return web.NewRequestError(errors.Wrap(err, "committing daily presences"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) checkSiteOwner(ctx context.Context, siteID, ownerID int) error {
	exists := false
	query := `
		SELECT EXISTS (
			SELECT 1 FROM building_sites
			WHERE deleted_at IS NULL AND id = $1 AND owner_id = $2
		)
	`
	if err := r.QueryRowContext(ctx, query, siteID, ownerID).Scan(&exists); err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking building site"), http.StatusInternalServerError)
	}
	if !exists {
		return web.NewRequestError(errors.New("building site not found"), http.StatusNotFound)
	}

	return nil
}

func parseDay(value string) (string, error) {
	t, err := time.Parse(journal.DateLayout, value)
	if err != nil {
		return "", web.NewRequestError(errors.Wrapf(err, "parsing date %q", value), http.StatusBadRequest)
	}

	return t.Format(journal.DateLayout), nil
}
