package journal

import "context"

// DateLayout is the canonical day key shared by the calendar and every
// sparse index.
const DateLayout = "2006-01-02"

// CalendarDay is one entry of the reconstructed dense calendar.
type CalendarDay struct {
	Day     int
	Month   int
	Year    int
	ISODate string
}

// SiteRange is the active period of a building site. A nil EndDate
// means the site is still open and the ledger runs up to today.
type SiteRange struct {
	StartDate string
	EndDate   *string
}

// WorkerType is one pivot column of the report, in catalog order.
type WorkerType struct {
	ID   int
	Name string
}

// DailyNoteRow is a sparse notes record keyed by day.
type DailyNoteRow struct {
	Date       string
	Notes      *string
	OtherNotes *string
}

// AttendanceAggregate is a pre-aggregated count of present workers for
// one (day, worker type) pair. Pairs with no present record have no
// row at all.
type AttendanceAggregate struct {
	Date         string
	TypeID       int
	PresentCount int
}

// RosterEntry is one row of the worker/type/company join. The join is
// not deduplicated: a worker with two companies arrives twice.
type RosterEntry struct {
	FirstName   string
	LastName    string
	Phone       *string
	Email       *string
	Notes       *string
	TypeName    *string
	CompanyName *string
}

// ReportRow is one day of the first sheet: a fixed prefix plus one
// count cell per catalog entry, position-aligned to the catalog. A nil
// count renders as a blank cell, distinct from zero.
type ReportRow struct {
	RecordNumber     int
	Day              int
	Month            int
	Year             int
	SpecialNotes     string
	Observations     string
	AttendanceCounts []*int
}

// RosterRow is one row of the second sheet.
type RosterRow struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Notes     string
	TypeName  string
	Company   string
}

// DataSource is the read-only storage boundary of the report compiler.
// Every lookup is owner-scoped through the claims in ctx.
type DataSource interface {
	GetSiteRange(ctx context.Context, siteID int) (SiteRange, error)
	GetDailyNotes(ctx context.Context, siteID int) ([]DailyNoteRow, error)
	GetWorkerTypeCatalog(ctx context.Context, siteID int) ([]WorkerType, error)
	GetAttendanceAggregates(ctx context.Context, siteID int) ([]AttendanceAggregate, error)
	GetRoster(ctx context.Context, siteID int) ([]RosterEntry, error)
}
