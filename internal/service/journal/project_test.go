package journal

import "testing"

func strPtr(s string) *string { return &s }

func TestBuildNotesIndexNormalizesNil(t *testing.T) {
	index := BuildNotesIndex([]DailyNoteRow{
		{Date: "2024-03-01", Notes: strPtr("rain delay"), OtherNotes: nil},
		{Date: "2024-03-02", Notes: nil, OtherNotes: strPtr("inspection")},
	})

	if index["2024-03-01"].Notes != "rain delay" || index["2024-03-01"].OtherNotes != "" {
		t.Fatalf("unexpected cell: %+v", index["2024-03-01"])
	}
	if index["2024-03-02"].Notes != "" || index["2024-03-02"].OtherNotes != "inspection" {
		t.Fatalf("unexpected cell: %+v", index["2024-03-02"])
	}
	if _, ok := index["2024-03-03"]; ok {
		t.Fatalf("absent day should not be indexed")
	}
}

func TestBuildAttendanceIndex(t *testing.T) {
	index := BuildAttendanceIndex([]AttendanceAggregate{
		{Date: "2024-03-01", TypeID: 1, PresentCount: 3},
		{Date: "2024-03-01", TypeID: 2, PresentCount: 1},
		{Date: "2024-03-02", TypeID: 1, PresentCount: 2},
	})

	if index["2024-03-01"][1] != 3 || index["2024-03-01"][2] != 1 {
		t.Fatalf("unexpected counts: %+v", index["2024-03-01"])
	}
	if index["2024-03-02"][1] != 2 {
		t.Fatalf("unexpected counts: %+v", index["2024-03-02"])
	}
}

func TestProjectRowsDenseOutput(t *testing.T) {
	days := []CalendarDay{
		{Day: 1, Month: 3, Year: 2024, ISODate: "2024-03-01"},
		{Day: 2, Month: 3, Year: 2024, ISODate: "2024-03-02"},
		{Day: 3, Month: 3, Year: 2024, ISODate: "2024-03-03"},
	}
	catalog := []WorkerType{{ID: 1, Name: "Muratore"}, {ID: 2, Name: "Elettricista"}}
	notes := BuildNotesIndex([]DailyNoteRow{
		{Date: "2024-03-02", Notes: strPtr("rain delay")},
	})
	attendance := BuildAttendanceIndex([]AttendanceAggregate{
		{Date: "2024-03-01", TypeID: 2, PresentCount: 4},
	})

	rows := ProjectRows(days, notes, attendance, catalog)
	if len(rows) != 3 {
		t.Fatalf("expected one row per day, got %d", len(rows))
	}

	for i, row := range rows {
		if row.RecordNumber != i+1 {
			t.Fatalf("expected record number %d, got %d", i+1, row.RecordNumber)
		}
		if len(row.AttendanceCounts) != len(catalog) {
			t.Fatalf("expected %d count cells, got %d", len(catalog), len(row.AttendanceCounts))
		}
	}

	// Day 1: no notes, count only for type 2.
	if rows[0].SpecialNotes != "" || rows[0].Observations != "" {
		t.Fatalf("expected empty notes on day 1")
	}
	if rows[0].AttendanceCounts[0] != nil {
		t.Fatalf("expected blank count for type 1 on day 1")
	}
	if rows[0].AttendanceCounts[1] == nil || *rows[0].AttendanceCounts[1] != 4 {
		t.Fatalf("expected count 4 for type 2 on day 1")
	}

	// Day 2: notes present, no counts at all.
	if rows[1].SpecialNotes != "rain delay" {
		t.Fatalf("expected note on day 2, got %q", rows[1].SpecialNotes)
	}
	if rows[1].AttendanceCounts[0] != nil || rows[1].AttendanceCounts[1] != nil {
		t.Fatalf("expected blank counts on day 2")
	}
}

func TestProjectRosterFanOutAndFallbacks(t *testing.T) {
	entries := []RosterEntry{
		{FirstName: "Mario", LastName: "Rossi", Phone: strPtr("123"), TypeName: strPtr("Muratore"), CompanyName: strPtr("Edil A")},
		{FirstName: "Mario", LastName: "Rossi", Phone: strPtr("123"), TypeName: strPtr("Muratore"), CompanyName: strPtr("Edil B")},
		{FirstName: "Luca", LastName: "Bianchi"},
	}

	rows := ProjectRoster(entries)
	if len(rows) != 3 {
		t.Fatalf("fan-out must be preserved, got %d rows", len(rows))
	}
	if rows[0].Company != "Edil A" || rows[1].Company != "Edil B" {
		t.Fatalf("expected one row per company: %+v", rows[:2])
	}
	if rows[2].TypeName != "N/A" || rows[2].Company != "N/A" {
		t.Fatalf("expected N/A fallbacks, got %+v", rows[2])
	}
	if rows[2].Phone != "" || rows[2].Email != "" || rows[2].Notes != "" {
		t.Fatalf("expected empty contact fields, got %+v", rows[2])
	}
}
