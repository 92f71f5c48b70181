package journal

// ProjectRows joins the three indexes into one dense row per calendar
// day. Record numbers are sequential and 1-based. Missing notes become
// empty strings; a missing (day, type) count stays nil so the cell
// renders blank rather than zero.
func ProjectRows(days []CalendarDay, notes map[string]NoteCell, attendance map[string]map[int]int, catalog []WorkerType) []ReportRow {
	rows := make([]ReportRow, 0, len(days))

	for i, day := range days {
		cell := notes[day.ISODate]

		counts := make([]*int, len(catalog))
		if byType, ok := attendance[day.ISODate]; ok {
			for j, workerType := range catalog {
				if count, ok := byType[workerType.ID]; ok {
					c := count
					counts[j] = &c
				}
			}
		}

		rows = append(rows, ReportRow{
			RecordNumber:     i + 1,
			Day:              day.Day,
			Month:            day.Month,
			Year:             day.Year,
			SpecialNotes:     cell.Notes,
			Observations:     cell.OtherNotes,
			AttendanceCounts: counts,
		})
	}

	return rows
}

// ProjectRoster maps the joined roster entries onto second-sheet rows.
// The (worker, type, company) fan-out of the join is preserved: a
// worker with two companies yields two rows. Missing labels fall back
// to "N/A".
func ProjectRoster(entries []RosterEntry) []RosterRow {
	rows := make([]RosterRow, 0, len(entries))

	for _, entry := range entries {
		rows = append(rows, RosterRow{
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			Phone:     strOrEmpty(entry.Phone),
			Email:     strOrEmpty(entry.Email),
			Notes:     strOrEmpty(entry.Notes),
			TypeName:  strOrNA(entry.TypeName),
			Company:   strOrNA(entry.CompanyName),
		})
	}

	return rows
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
