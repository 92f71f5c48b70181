package commands

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"worksite/backend/internal/pkg/repository/postgresql"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('OWNER');`,
	},
	{
		Index:       2,
		Description: "CREATE TYPE \"presence_status\" AS ENUM",
		Query: `
        CREATE TYPE "presence_status" AS ENUM ('present', 'absent', 'not_required');`,
	},
	{
		Index:       3,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            first_name text,
            last_name text,
            username text,
            email text not null unique,
            password text not null,
            phone text,
            role user_role default 'OWNER',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       4,
		Description: "Create table: building_sites.",
		Query: `
        CREATE TABLE IF NOT EXISTS building_sites (
            id serial primary key,
            name text not null,
            notes text,
            city text,
            address text,
            lat double precision,
            lng double precision,
            start_date date not null,
            end_date date,
            owner_id int not null references users(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            CHECK (end_date IS NULL OR end_date >= start_date)
        );`,
	},
	{
		Index:       5,
		Description: "Create table: companies.",
		Query: `
        CREATE TABLE IF NOT EXISTS companies (
            id serial primary key,
            name text not null,
            owner_id int not null references users(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: worker_types.",
		Query: `
        CREATE TABLE IF NOT EXISTS worker_types (
            id serial primary key,
            name text not null,
            owner_id int not null references users(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: workers.",
		Query: `
        CREATE TABLE IF NOT EXISTS workers (
            id serial primary key,
            first_name text not null,
            last_name text not null,
            phone text,
            email text,
            notes text,
            owner_id int not null references users(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       8,
		Description: "Create table: workers_building_sites.",
		Query: `
        CREATE TABLE IF NOT EXISTS workers_building_sites (
            id serial primary key,
            site_id int not null references building_sites(id),
            worker_id int not null references workers(id),
            UNIQUE (site_id, worker_id)
        );`,
	},
	{
		Index:       9,
		Description: "Create table: workers_worker_types.",
		Query: `
        CREATE TABLE IF NOT EXISTS workers_worker_types (
            id serial primary key,
            worker_id int not null references workers(id),
            worker_type_id int not null references worker_types(id),
            UNIQUE (worker_id, worker_type_id)
        );`,
	},
	{
		Index:       10,
		Description: "Create table: workers_companies.",
		Query: `
        CREATE TABLE IF NOT EXISTS workers_companies (
            id serial primary key,
            worker_id int not null references workers(id),
            company_id int not null references companies(id),
            UNIQUE (worker_id, company_id)
        );`,
	},
	{
		Index:       11,
		Description: "Create table: daily_notes.",
		Query: `
        CREATE TABLE IF NOT EXISTS daily_notes (
            id serial primary key,
            building_site_id int not null references building_sites(id),
            date date not null,
            notes text,
            other_notes text,
            personal_notes text,
            owner_id int not null references users(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (building_site_id, date)
        );`,
	},
	{
		Index:       12,
		Description: "Create table: daily_presences.",
		Query: `
        CREATE TABLE IF NOT EXISTS daily_presences (
            id serial primary key,
            building_site_id int not null references building_sites(id),
            worker_id int not null references workers(id),
            date date not null,
            is_present presence_status not null default 'present',
            notes text,
            owner_id int not null references users(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (worker_id, date)
        );`,
	},
	{
		Index:       13,
		Description: "Index sparse report sources by site and date.",
		Query: `
        CREATE INDEX IF NOT EXISTS idx_daily_notes_site_date ON daily_notes (building_site_id, date);
        CREATE INDEX IF NOT EXISTS idx_daily_presences_site_date ON daily_presences (building_site_id, date);`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
