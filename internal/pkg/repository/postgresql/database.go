package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/auth"
)

// Database wraps bun with the claim and validation helpers every
// repository shares.
type Database struct {
	*bun.DB
}

type Config struct {
	Username   string
	Password   string
	Host       string
	Port       string
	Name       string
	DisableTLS bool
	Debug      bool
}

func New(cfg Config) *Database {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	if cfg.DisableTLS {
		dsn += "?sslmode=disable"
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return &Database{DB: db}
}

// CheckClaims returns the authenticated claims stored by the auth
// middleware, failing with 401 when the request is anonymous.
func (d Database) CheckClaims(ctx context.Context) (auth.Claims, error) {
	claims, err := auth.GetClaims(ctx)
	if err != nil {
		return auth.Claims{}, web.NewRequestError(err, http.StatusUnauthorized)
	}
	return claims, nil
}

// ValidateStruct checks that the named fields of request are set.
func (d Database) ValidateStruct(request interface{}, required ...string) error {
	value := reflect.ValueOf(request).Elem()

	var fields []web.FieldError
	for _, name := range required {
		field := value.FieldByName(name)
		if !field.IsValid() || field.IsZero() {
			fields = append(fields, web.FieldError{Field: name, Error: "required"})
		}
	}

	if len(fields) > 0 {
		return &web.Error{
			Err:    errors.New("required fields missing"),
			Status: http.StatusBadRequest,
			Fields: fields,
		}
	}

	return nil
}

// DeleteRow soft deletes an owner-scoped row.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	q := d.NewUpdate().Table(table).
		Where("deleted_at IS NULL AND id = ? AND owner_id = ?", id, claims.UserId).
		Set("deleted_at = ?", time.Now()).
		Set("deleted_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusBadRequest)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "delete rows affected"), http.StatusInternalServerError)
	}
	if n == 0 {
		return web.NewRequestError(errors.Errorf("%s row not found", table), http.StatusNotFound)
	}

	return nil
}
