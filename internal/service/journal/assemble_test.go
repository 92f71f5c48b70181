package journal

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func intPtr(n int) *int { return &n }

func TestAssembleJournalSheet(t *testing.T) {
	catalog := []WorkerType{{ID: 1, Name: "Muratore"}, {ID: 2, Name: "Elettricista"}}
	reportRows := []ReportRow{
		{RecordNumber: 1, Day: 1, Month: 3, Year: 2024, SpecialNotes: "Rain delay", AttendanceCounts: []*int{intPtr(1), nil}},
		{RecordNumber: 2, Day: 2, Month: 3, Year: 2024, AttendanceCounts: []*int{nil, intPtr(3)}},
		{RecordNumber: 3, Day: 3, Month: 3, Year: 2024, Observations: "Inspection", AttendanceCounts: []*int{nil, nil}},
	}

	document, err := Assemble(reportRows, nil, catalog)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(document))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Foglio 1" || sheets[1] != "Foglio 2" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	checks := map[string]string{
		"A1": "N°",
		"B1": "DATA",
		"G1": "Operai e mezzi d'opera impiegati dall'Impresa",
		"G4": "Muratore",
		"H4": "Elettricista",
		"A5": "1",
		"B5": "1",
		"C5": "3",
		"D5": "2024",
		"E5": "Rain delay",
		"G5": "1",
		"H6": "3",
		"F7": "Inspection",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue("Foglio 1", cell)
		if err != nil {
			t.Fatalf("get %s: %v", cell, err)
		}
		if got != want {
			t.Fatalf("cell %s: expected %q, got %q", cell, want, got)
		}
	}

	// A missing count renders blank, not zero.
	for _, cell := range []string{"H5", "G6", "G7", "H7"} {
		got, err := f.GetCellValue("Foglio 1", cell)
		if err != nil {
			t.Fatalf("get %s: %v", cell, err)
		}
		if got != "" {
			t.Fatalf("cell %s: expected blank, got %q", cell, got)
		}
	}

	merged, err := f.GetMergeCells("Foglio 1")
	if err != nil {
		t.Fatalf("get merges: %v", err)
	}
	wantMerges := map[string]bool{
		"A1:A4": false,
		"B1:D4": false,
		"E1:E4": false,
		"F1:F4": false,
		"G1:H3": false,
	}
	for _, m := range merged {
		ref := m.GetStartAxis() + ":" + m.GetEndAxis()
		if _, ok := wantMerges[ref]; ok {
			wantMerges[ref] = true
		}
	}
	for ref, found := range wantMerges {
		if !found {
			t.Fatalf("missing merge %s", ref)
		}
	}
}

func TestAssembleRosterSheet(t *testing.T) {
	rosterRows := []RosterRow{
		{FirstName: "Mario", LastName: "Rossi", Phone: "123", Email: "mario@edil.it", Notes: "foreman", TypeName: "Muratore", Company: "Edil A"},
		{FirstName: "Mario", LastName: "Rossi", Phone: "123", Email: "mario@edil.it", Notes: "foreman", TypeName: "Muratore", Company: "Edil B"},
	}

	document, err := Assemble(nil, rosterRows, nil)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(document))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	headers, err := f.GetRows("Foglio 2")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(headers) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(headers))
	}

	wantHeader := []string{"Nome", "Cognome", "Cellulare", "Email", "Note", "Mansione", "Azienda"}
	for i, h := range wantHeader {
		if headers[0][i] != h {
			t.Fatalf("header %d: expected %q, got %q", i, h, headers[0][i])
		}
	}

	if headers[1][6] != "Edil A" || headers[2][6] != "Edil B" {
		t.Fatalf("company fan-out lost: %v %v", headers[1], headers[2])
	}
}

func TestAssembleEmptyCatalog(t *testing.T) {
	reportRows := []ReportRow{
		{RecordNumber: 1, Day: 1, Month: 3, Year: 2024, AttendanceCounts: nil},
	}

	document, err := Assemble(reportRows, nil, nil)
	if err != nil {
		t.Fatalf("assemble without catalog: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(document))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	// No dynamic columns: no workforce super-header.
	got, err := f.GetCellValue("Foglio 1", "G1")
	if err != nil {
		t.Fatalf("get G1: %v", err)
	}
	if got != "" {
		t.Fatalf("expected no super-header, got %q", got)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	catalog := []WorkerType{{ID: 1, Name: "Muratore"}}
	reportRows := []ReportRow{
		{RecordNumber: 1, Day: 1, Month: 3, Year: 2024, AttendanceCounts: []*int{intPtr(2)}},
	}

	first, err := Assemble(reportRows, nil, catalog)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	second, err := Assemble(reportRows, nil, catalog)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	a, err := excelize.OpenReader(bytes.NewReader(first))
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	defer a.Close()
	b, err := excelize.OpenReader(bytes.NewReader(second))
	if err != nil {
		t.Fatalf("open second: %v", err)
	}
	defer b.Close()

	rowsA, err := a.GetRows("Foglio 1")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	rowsB, err := b.GetRows("Foglio 1")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rowsA) != len(rowsB) {
		t.Fatalf("row count differs: %d vs %d", len(rowsA), len(rowsB))
	}
	for i := range rowsA {
		if len(rowsA[i]) != len(rowsB[i]) {
			t.Fatalf("row %d width differs", i)
		}
		for j := range rowsA[i] {
			if rowsA[i][j] != rowsB[i][j] {
				t.Fatalf("cell (%d,%d) differs: %q vs %q", i, j, rowsA[i][j], rowsB[i][j])
			}
		}
	}
}
