package journal

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/pkg/repository/postgresql"
	"worksite/backend/internal/repository/postgres"
	"worksite/backend/internal/service/journal"
)

// Repository serves the read-only lookups of the report compiler. Every
// query is scoped by the owner id carried in the request claims, so a
// foreign site behaves exactly like a missing one.
type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetSiteRange(ctx context.Context, siteID int) (journal.SiteRange, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return journal.SiteRange{}, err
	}

	query := `
		SELECT start_date, end_date
		FROM building_sites
		WHERE deleted_at IS NULL AND id = $1 AND owner_id = $2
	`

	var startDate string
	var endDate *string
	err = r.QueryRowContext(ctx, query, siteID, claims.UserId).Scan(&startDate, &endDate)
	if errors.Is(err, sql.ErrNoRows) {
		return journal.SiteRange{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return journal.SiteRange{}, web.NewRequestError(errors.Wrap(err, "selecting site range"), http.StatusInternalServerError)
	}

	siteRange := journal.SiteRange{StartDate: normalizeDate(startDate)}
	if endDate != nil {
		normalized := normalizeDate(*endDate)
		siteRange.EndDate = &normalized
	}

	return siteRange, nil
}

func (r Repository) GetDailyNotes(ctx context.Context, siteID int) ([]journal.DailyNoteRow, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT date, notes, other_notes
		FROM daily_notes
		WHERE deleted_at IS NULL AND building_site_id = $1 AND owner_id = $2
	`

	rows, err := r.QueryContext(ctx, query, siteID, claims.UserId)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting daily notes"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []journal.DailyNoteRow
	for rows.Next() {
		var detail journal.DailyNoteRow
		var day string
		if err = rows.Scan(&day, &detail.Notes, &detail.OtherNotes); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning daily notes"), http.StatusInternalServerError)
		}
		detail.Date = normalizeDate(day)
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading daily notes"), http.StatusInternalServerError)
	}

	return list, nil
}

// GetWorkerTypeCatalog returns the distinct worker types held by the
// workers on the site roster. Ordered by type id ascending so the
// pivot column order is stable across runs.
func (r Repository) GetWorkerTypeCatalog(ctx context.Context, siteID int) ([]journal.WorkerType, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT DISTINCT wt.id, wt.name
		FROM workers_building_sites wbs
		JOIN workers_worker_types wwt ON wbs.worker_id = wwt.worker_id
		JOIN worker_types wt ON wwt.worker_type_id = wt.id
		WHERE wbs.site_id = $1 AND wt.owner_id = $2 AND wt.deleted_at IS NULL
		ORDER BY wt.id
	`

	rows, err := r.QueryContext(ctx, query, siteID, claims.UserId)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting worker type catalog"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []journal.WorkerType
	for rows.Next() {
		var detail journal.WorkerType
		if err = rows.Scan(&detail.ID, &detail.Name); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning worker type catalog"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading worker type catalog"), http.StatusInternalServerError)
	}

	return list, nil
}

// GetAttendanceAggregates counts present records per (date, worker
// type). A worker holding several types is counted once per type.
func (r Repository) GetAttendanceAggregates(ctx context.Context, siteID int) ([]journal.AttendanceAggregate, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT dp.date, wwt.worker_type_id, COUNT(dp.worker_id) AS present_count
		FROM daily_presences dp
		JOIN workers_worker_types wwt ON dp.worker_id = wwt.worker_id
		WHERE dp.deleted_at IS NULL AND dp.building_site_id = $1 AND dp.owner_id = $2 AND dp.is_present = 'present'
		GROUP BY dp.date, wwt.worker_type_id
	`

	rows, err := r.QueryContext(ctx, query, siteID, claims.UserId)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance aggregates"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []journal.AttendanceAggregate
	for rows.Next() {
		var detail journal.AttendanceAggregate
		var day string
		if err = rows.Scan(&day, &detail.TypeID, &detail.PresentCount); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance aggregates"), http.StatusInternalServerError)
		}
		detail.Date = normalizeDate(day)
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading attendance aggregates"), http.StatusInternalServerError)
	}

	return list, nil
}

// GetRoster joins every worker on the site with their types and
// companies. The join fans out: one row per (worker, type, company)
// combination, and the projection keeps that cardinality.
func (r Repository) GetRoster(ctx context.Context, siteID int) ([]journal.RosterEntry, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			w.first_name, w.last_name, w.phone, w.email, w.notes,
			wt.name AS worker_type_name,
			c.name AS company_name
		FROM workers_building_sites wbs
		JOIN workers w ON wbs.worker_id = w.id
		LEFT JOIN workers_worker_types wwt ON w.id = wwt.worker_id
		LEFT JOIN worker_types wt ON wwt.worker_type_id = wt.id
		LEFT JOIN workers_companies wc ON w.id = wc.worker_id
		LEFT JOIN companies c ON wc.company_id = c.id
		WHERE wbs.site_id = $1 AND w.owner_id = $2 AND w.deleted_at IS NULL
		ORDER BY w.id
	`

	rows, err := r.QueryContext(ctx, query, siteID, claims.UserId)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting site roster"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []journal.RosterEntry
	for rows.Next() {
		var detail journal.RosterEntry
		if err = rows.Scan(
			&detail.FirstName,
			&detail.LastName,
			&detail.Phone,
			&detail.Email,
			&detail.Notes,
			&detail.TypeName,
			&detail.CompanyName,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning site roster"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading site roster"), http.StatusInternalServerError)
	}

	return list, nil
}

// GetSiteName resolves the display name used in exported artifacts.
func (r Repository) GetSiteName(ctx context.Context, siteID int) (string, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return "", err
	}

	var name string
	err = r.QueryRowContext(ctx,
		`SELECT name FROM building_sites WHERE deleted_at IS NULL AND id = $1 AND owner_id = $2`,
		siteID, claims.UserId).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "selecting site name"), http.StatusInternalServerError)
	}

	return name, nil
}

// normalizeDate trims whatever timestamp suffix the driver returned
// down to the canonical day key.
func normalizeDate(value string) string {
	parsed, err := date.ParseDate(value)
	if err != nil {
		if len(value) >= len(journal.DateLayout) {
			return value[:len(journal.DateLayout)]
		}
		return value
	}
	return parsed.String()
}
