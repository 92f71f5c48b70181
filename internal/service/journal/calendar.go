package journal

import (
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidRange  = errors.New("end date precedes start date")
	ErrRangeTooLarge = errors.New("date range exceeds the report ceiling")
)

// ReconstructCalendar produces the gapless inclusive day sequence from
// start to end. When end is nil the effective upper bound is today,
// so an open-ended site yields a growing calendar on later runs. The
// sequence drives every row of the first sheet regardless of how
// sparse the underlying records are.
func ReconstructCalendar(start time.Time, end *time.Time, today time.Time, maxDays int) ([]CalendarDay, error) {
	upper := truncateDay(today)
	if end != nil {
		upper = truncateDay(*end)
	}
	lower := truncateDay(start)

	if upper.Before(lower) {
		return nil, ErrInvalidRange
	}

	total := int(upper.Sub(lower).Hours()/24) + 1
	if maxDays > 0 && total > maxDays {
		return nil, errors.Wrapf(ErrRangeTooLarge, "%d days requested, ceiling is %d", total, maxDays)
	}

	days := make([]CalendarDay, 0, total)
	for d := lower; !d.After(upper); d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Day:     d.Day(),
			Month:   int(d.Month()),
			Year:    d.Year(),
			ISODate: d.Format(DateLayout),
		})
	}

	return days, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
