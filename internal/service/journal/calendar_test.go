package journal

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReconstructCalendarInclusiveRange(t *testing.T) {
	end := day(2024, time.March, 5)
	days, err := ReconstructCalendar(day(2024, time.March, 1), &end, day(2024, time.June, 1), 0)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if days[0].ISODate != "2024-03-01" || days[4].ISODate != "2024-03-05" {
		t.Fatalf("unexpected bounds: %s .. %s", days[0].ISODate, days[4].ISODate)
	}
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse(DateLayout, days[i-1].ISODate)
		curr, _ := time.Parse(DateLayout, days[i].ISODate)
		if curr.Sub(prev) != 24*time.Hour {
			t.Fatalf("gap between %s and %s", days[i-1].ISODate, days[i].ISODate)
		}
	}
}

func TestReconstructCalendarSingleDay(t *testing.T) {
	end := day(2024, time.March, 1)
	days, err := ReconstructCalendar(day(2024, time.March, 1), &end, day(2024, time.June, 1), 0)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Day != 1 || days[0].Month != 3 || days[0].Year != 2024 {
		t.Fatalf("unexpected components: %+v", days[0])
	}
}

func TestReconstructCalendarLeapFebruary(t *testing.T) {
	end := day(2024, time.March, 1)
	days, err := ReconstructCalendar(day(2024, time.February, 28), &end, day(2024, time.June, 1), 0)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days across leap boundary, got %d", len(days))
	}
	if days[1].ISODate != "2024-02-29" {
		t.Fatalf("expected leap day, got %s", days[1].ISODate)
	}
}

func TestReconstructCalendarOpenEndedUsesToday(t *testing.T) {
	days, err := ReconstructCalendar(day(2024, time.March, 1), nil, day(2024, time.March, 10), 0)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(days) != 10 {
		t.Fatalf("expected 10 days up to today, got %d", len(days))
	}

	// The same site a day later grows by one row.
	days, err = ReconstructCalendar(day(2024, time.March, 1), nil, day(2024, time.March, 11), 0)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(days) != 11 {
		t.Fatalf("expected 11 days one day later, got %d", len(days))
	}
}

func TestReconstructCalendarInvalidRange(t *testing.T) {
	end := day(2024, time.February, 1)
	_, err := ReconstructCalendar(day(2024, time.March, 1), &end, day(2024, time.June, 1), 0)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestReconstructCalendarCeiling(t *testing.T) {
	end := day(2024, time.December, 31)
	_, err := ReconstructCalendar(day(2024, time.January, 1), &end, day(2025, time.June, 1), 100)
	if !errors.Is(err, ErrRangeTooLarge) {
		t.Fatalf("expected ErrRangeTooLarge, got %v", err)
	}

	// Exactly at the ceiling still succeeds.
	end = day(2024, time.April, 10)
	days, err := ReconstructCalendar(day(2024, time.January, 1), &end, day(2025, time.June, 1), 101)
	if err != nil {
		t.Fatalf("reconstruct at ceiling: %v", err)
	}
	if len(days) != 101 {
		t.Fatalf("expected 101 days, got %d", len(days))
	}
}
