package journal

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"worksite/backend/foundation/web"
)

// DefaultMaxDays bounds the reconstructed calendar. Ten years of daily
// rows is far beyond any real site and well inside spreadsheet limits.
const DefaultMaxDays = 3700

// Clock supplies "today" for open-ended sites, injected so generation
// is deterministic under test.
type Clock func() time.Time

// Generator is the report compiler pipeline: resolve the site, rebuild
// the dense calendar, materialize the three sparse indexes and the
// roster, project, assemble. It holds no state between runs.
type Generator struct {
	source  DataSource
	clock   Clock
	maxDays int
}

type Option func(*Generator)

func WithClock(clock Clock) Option {
	return func(g *Generator) { g.clock = clock }
}

func WithMaxDays(maxDays int) Option {
	return func(g *Generator) { g.maxDays = maxDays }
}

func NewGenerator(source DataSource, opts ...Option) *Generator {
	g := &Generator{
		source:  source,
		clock:   time.Now,
		maxDays: DefaultMaxDays,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the full work journal workbook for one site. The
// operation is read-only and all-or-nothing: the document is assembled
// in memory and nothing is emitted on failure.
func (g *Generator) Generate(ctx context.Context, siteID int) ([]byte, error) {
	// An unresolved or foreign site short-circuits before any index is
	// built.
	siteRange, err := g.source.GetSiteRange(ctx, siteID)
	if err != nil {
		return nil, err
	}

	days, err := g.reconstruct(siteRange)
	if err != nil {
		return nil, err
	}

	// The four reads are independent given a fixed snapshot; the group
	// wait is the barrier before projection, since the catalog size
	// determines every row's shape.
	var (
		noteRows   []DailyNoteRow
		catalog    []WorkerType
		aggregates []AttendanceAggregate
		roster     []RosterEntry
	)

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		noteRows, err = g.source.GetDailyNotes(grpCtx, siteID)
		return err
	})
	grp.Go(func() error {
		var err error
		catalog, err = g.source.GetWorkerTypeCatalog(grpCtx, siteID)
		return err
	})
	grp.Go(func() error {
		var err error
		aggregates, err = g.source.GetAttendanceAggregates(grpCtx, siteID)
		return err
	})
	grp.Go(func() error {
		var err error
		roster, err = g.source.GetRoster(grpCtx, siteID)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	reportRows := ProjectRows(days, BuildNotesIndex(noteRows), BuildAttendanceIndex(aggregates), catalog)
	rosterRows := ProjectRoster(roster)

	document, err := Assemble(reportRows, rosterRows, catalog)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "assembling work journal"), http.StatusInternalServerError)
	}

	return document, nil
}

func (g *Generator) reconstruct(siteRange SiteRange) ([]CalendarDay, error) {
	start, err := time.Parse(DateLayout, siteRange.StartDate)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "parsing site start date"), http.StatusBadRequest)
	}

	var end *time.Time
	if siteRange.EndDate != nil {
		e, err := time.Parse(DateLayout, *siteRange.EndDate)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "parsing site end date"), http.StatusBadRequest)
		}
		end = &e
	}

	days, err := ReconstructCalendar(start, end, g.clock(), g.maxDays)
	if err != nil {
		return nil, web.NewRequestError(err, http.StatusBadRequest)
	}

	return days, nil
}
