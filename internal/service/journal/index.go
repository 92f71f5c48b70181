package journal

// NoteCell carries the two free-text fields of one day. Missing fields
// are normalized to empty strings here so the projector never sees a
// nil note.
type NoteCell struct {
	Notes      string
	OtherNotes string
}

// BuildNotesIndex keys the sparse note rows by ISO date. Days without
// a record are simply absent from the map.
func BuildNotesIndex(rows []DailyNoteRow) map[string]NoteCell {
	index := make(map[string]NoteCell, len(rows))
	for _, row := range rows {
		var cell NoteCell
		if row.Notes != nil {
			cell.Notes = *row.Notes
		}
		if row.OtherNotes != nil {
			cell.OtherNotes = *row.OtherNotes
		}
		index[row.Date] = cell
	}
	return index
}

// BuildAttendanceIndex keys the pre-aggregated present counts by ISO
// date, then by worker type id. A worker holding several types has
// already been counted once per type by the aggregation query, and
// that fan-out is kept as is.
func BuildAttendanceIndex(rows []AttendanceAggregate) map[string]map[int]int {
	index := make(map[string]map[int]int)
	for _, row := range rows {
		byType, ok := index[row.Date]
		if !ok {
			byType = make(map[int]int)
			index[row.Date] = byType
		}
		byType[row.TypeID] = row.PresentCount
	}
	return index
}
