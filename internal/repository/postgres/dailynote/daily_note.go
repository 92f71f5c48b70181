package dailynote

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/pkg/repository/postgresql"
	"worksite/backend/internal/service/journal"
)

// noteColumns maps the note_type request value onto the column it
// reads or writes. Anything else is rejected before touching SQL.
var noteColumns = map[string]string{
	"notes":          "notes",
	"other_notes":    "other_notes",
	"personal_notes": "personal_notes",
}

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetField(ctx context.Context, request GetFieldRequest) (GetFieldResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetFieldResponse{}, err
	}

	if err := r.ValidateStruct(&request, "BuildingSiteID", "Date", "NoteType"); err != nil {
		return GetFieldResponse{}, err
	}

	column, ok := noteColumns[*request.NoteType]
	if !ok {
		return GetFieldResponse{}, web.NewRequestError(errors.Errorf("unknown note type %q", *request.NoteType), http.StatusBadRequest)
	}

	day, err := parseDay(*request.Date)
	if err != nil {
		return GetFieldResponse{}, err
	}

	if err := r.checkSiteOwner(ctx, *request.BuildingSiteID, claims.UserId); err != nil {
		return GetFieldResponse{}, err
	}

	response := GetFieldResponse{
		BuildingSiteID: *request.BuildingSiteID,
		Date:           day,
		NoteType:       column,
	}

	query := `
		SELECT ` + column + `
		FROM daily_notes
		WHERE deleted_at IS NULL AND building_site_id = $1 AND date = $2
	`

	err = r.QueryRowContext(ctx, query, *request.BuildingSiteID, day).Scan(&response.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetFieldResponse{}, web.NewRequestError(errors.Wrap(err, "selecting daily note"), http.StatusInternalServerError)
	}

	return response, nil
}

func (r Repository) UpsertField(ctx context.Context, request UpsertFieldRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "BuildingSiteID", "Date", "NoteType"); err != nil {
		return err
	}

	column, ok := noteColumns[*request.NoteType]
	if !ok {
		return web.NewRequestError(errors.Errorf("unknown note type %q", *request.NoteType), http.StatusBadRequest)
	}

	day, err := parseDay(*request.Date)
	if err != nil {
		return err
	}

	if err := r.checkSiteOwner(ctx, *request.BuildingSiteID, claims.UserId); err != nil {
		return err
	}

	query := `
		INSERT INTO daily_notes (building_site_id, date, ` + column + `, owner_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, now(), $4)
		ON CONFLICT (building_site_id, date)
		DO UPDATE SET ` + column + ` = EXCLUDED.` + column + `, updated_at = now(), updated_by = $4
	`

	if _, err = r.ExecContext(ctx, query, *request.BuildingSiteID, day, request.Value, claims.UserId); err != nil {
		return web.NewRequestError(errors.Wrap(err, "upserting daily note"), http.StatusBadRequest)
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
