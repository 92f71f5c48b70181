package journal

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"worksite/backend/foundation/web"
)

type fakeSource struct {
	siteRange  SiteRange
	rangeErr   error
	notes      []DailyNoteRow
	notesErr   error
	catalog    []WorkerType
	aggregates []AttendanceAggregate
	roster     []RosterEntry
}

func (f fakeSource) GetSiteRange(ctx context.Context, siteID int) (SiteRange, error) {
	return f.siteRange, f.rangeErr
}

func (f fakeSource) GetDailyNotes(ctx context.Context, siteID int) ([]DailyNoteRow, error) {
	return f.notes, f.notesErr
}

func (f fakeSource) GetWorkerTypeCatalog(ctx context.Context, siteID int) ([]WorkerType, error) {
	return f.catalog, nil
}

func (f fakeSource) GetAttendanceAggregates(ctx context.Context, siteID int) ([]AttendanceAggregate, error) {
	return f.aggregates, nil
}

func (f fakeSource) GetRoster(ctx context.Context, siteID int) ([]RosterEntry, error) {
	return f.roster, nil
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestGenerateEndToEnd(t *testing.T) {
	end := "2024-03-03"
	source := fakeSource{
		siteRange: SiteRange{StartDate: "2024-03-01", EndDate: &end},
		notes: []DailyNoteRow{
			{Date: "2024-03-02", Notes: strPtr("Rain delay")},
		},
		catalog: []WorkerType{{ID: 1, Name: "Muratore"}},
		aggregates: []AttendanceAggregate{
			{Date: "2024-03-02", TypeID: 1, PresentCount: 1},
		},
		roster: []RosterEntry{
			{FirstName: "Mario", LastName: "Rossi", CompanyName: strPtr("Edil A")},
		},
	}

	g := NewGenerator(source, WithClock(fixedClock(day(2024, time.June, 1))))

	document, err := g.Generate(context.Background(), 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(document))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Foglio 1")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	// Four header rows plus three calendar days.
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}

	note, err := f.GetCellValue("Foglio 1", "E6")
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if note != "Rain delay" {
		t.Fatalf("expected note on second day, got %q", note)
	}

	count, err := f.GetCellValue("Foglio 1", "G6")
	if err != nil {
		t.Fatalf("get count: %v", err)
	}
	if count != "1" {
		t.Fatalf("expected count 1, got %q", count)
	}

	company, err := f.GetCellValue("Foglio 2", "G2")
	if err != nil {
		t.Fatalf("get company: %v", err)
	}
	if company != "Edil A" {
		t.Fatalf("expected company on roster, got %q", company)
	}
}

func TestGenerateOpenEndedUsesClock(t *testing.T) {
	source := fakeSource{
		siteRange: SiteRange{StartDate: "2024-03-01"},
	}

	g := NewGenerator(source, WithClock(fixedClock(day(2024, time.March, 5))))

	document, err := g.Generate(context.Background(), 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(document))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Foglio 1")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 9 {
		t.Fatalf("expected 4 header rows plus 5 days, got %d", len(rows))
	}
}

func TestGenerateSiteNotFoundShortCircuits(t *testing.T) {
	notFound := web.NewRequestError(errors.New("site not found"), http.StatusNotFound)
	source := fakeSource{rangeErr: notFound}

	g := NewGenerator(source, WithClock(fixedClock(day(2024, time.June, 1))))

	_, err := g.Generate(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected error")
	}
	var webErr *web.Error
	if !errors.As(err, &webErr) || webErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestGenerateInvalidRange(t *testing.T) {
	end := "2024-01-01"
	source := fakeSource{
		siteRange: SiteRange{StartDate: "2024-03-01", EndDate: &end},
	}

	g := NewGenerator(source, WithClock(fixedClock(day(2024, time.June, 1))))

	_, err := g.Generate(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected error")
	}
	var webErr *web.Error
	if !errors.As(err, &webErr) || webErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGenerateRangeCeiling(t *testing.T) {
	source := fakeSource{
		siteRange: SiteRange{StartDate: "2024-01-01"},
	}

	g := NewGenerator(source,
		WithClock(fixedClock(day(2024, time.December, 31))),
		WithMaxDays(30))

	_, err := g.Generate(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected error")
	}
	var webErr *web.Error
	if !errors.As(err, &webErr) || webErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	end := "2024-03-03"
	source := fakeSource{
		siteRange: SiteRange{StartDate: "2024-03-01", EndDate: &end},
		notesErr:  errors.New("connection reset"),
	}

	g := NewGenerator(source, WithClock(fixedClock(day(2024, time.June, 1))))

	document, err := g.Generate(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected error")
	}
	if document != nil {
		t.Fatalf("no document should be emitted on failure")
	}
}
