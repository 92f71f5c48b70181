package journal

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	sheetJournal = "Foglio 1"
	sheetRoster  = "Foglio 2"

	headerBandRows  = 4
	fixedColumns    = 6
	firstDynamicCol = 7
)

const (
	headerRecordNumber = "N°"
	headerDate         = "DATA"
	headerSpecialNotes = "ANNOTAZIONI SPECIALI E GENERALI sull'andamento e modo di esecuzione dei lavori, sugli avvenimenti straordinari e sul tempo utilmente impiegato."
	headerObservations = "OSSERVAZIONI E ISTRUZIONI della direzione lavori, del responsabile del procedimento, del coordinatore per l'esecuzione, del collaudatore."
	headerWorkforce    = "Operai e mezzi d'opera impiegati dall'Impresa"
)

var rosterHeaders = []string{"Nome", "Cognome", "Cellulare", "Email", "Note", "Mansione", "Azienda"}

// Assemble lays the projected rows out into the two-sheet workbook and
// returns it fully built in memory, so a late failure never leaks a
// truncated artifact to the transport.
func Assemble(reportRows []ReportRow, rosterRows []RosterRow, catalog []WorkerType) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetJournal); err != nil {
		return nil, errors.Wrap(err, "renaming journal sheet")
	}
	if _, err := f.NewSheet(sheetRoster); err != nil {
		return nil, errors.Wrap(err, "creating roster sheet")
	}

	if err := assembleJournalSheet(f, reportRows, catalog); err != nil {
		return nil, err
	}
	if err := assembleRosterSheet(f, rosterRows); err != nil {
		return nil, err
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}

	return buffer.Bytes(), nil
}

func assembleJournalSheet(f *excelize.File, rows []ReportRow, catalog []WorkerType) error {
	lastCol := fixedColumns + len(catalog)
	lastColName, err := excelize.ColumnNumberToName(lastCol)
	if err != nil {
		return errors.Wrap(err, "resolving last column")
	}

	defaultHeight := 50.0
	customHeight := true
	if err := f.SetSheetProps(sheetJournal, &excelize.SheetPropsOptions{
		DefaultRowHeight: &defaultHeight,
		CustomHeight:     &customHeight,
	}); err != nil {
		return errors.Wrap(err, "setting sheet props")
	}

	// Keep the header band visible while scrolling the ledger.
	if err := f.SetPanes(sheetJournal, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerBandRows,
		TopLeftCell: "A5",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.Wrap(err, "freezing header band")
	}

	if err := f.SetColWidth(sheetJournal, "A", "D", 5); err != nil {
		return errors.Wrap(err, "setting fixed column widths")
	}
	if err := f.SetColWidth(sheetJournal, "E", "F", 50); err != nil {
		return errors.Wrap(err, "setting note column widths")
	}
	if len(catalog) > 0 {
		if err := f.SetColWidth(sheetJournal, "G", lastColName, 11.2); err != nil {
			return errors.Wrap(err, "setting dynamic column widths")
		}
	}
	if err := f.SetRowHeight(sheetJournal, headerBandRows, 64); err != nil {
		return errors.Wrap(err, "setting label row height")
	}

	// Fixed header band, merged vertically across the four header rows.
	merges := []struct {
		from, to, value string
	}{
		{"A1", "A4", headerRecordNumber},
		{"B1", "D4", headerDate},
		{"E1", "E4", headerSpecialNotes},
		{"F1", "F4", headerObservations},
	}
	for _, m := range merges {
		if err := f.MergeCell(sheetJournal, m.from, m.to); err != nil {
			return errors.Wrapf(err, "merging %s:%s", m.from, m.to)
		}
		if err := f.SetCellValue(sheetJournal, m.from, m.value); err != nil {
			return errors.Wrapf(err, "writing header %s", m.from)
		}
	}

	// Dynamic band: one merged super-header over all pivot columns and
	// one rotated label per worker type on row 4.
	if len(catalog) > 0 {
		if err := f.MergeCell(sheetJournal, "G1", fmt.Sprintf("%s3", lastColName)); err != nil {
			return errors.Wrap(err, "merging workforce super-header")
		}
		if err := f.SetCellValue(sheetJournal, "G1", headerWorkforce); err != nil {
			return errors.Wrap(err, "writing workforce super-header")
		}

		for i, workerType := range catalog {
			cell, err := excelize.CoordinatesToCellName(firstDynamicCol+i, headerBandRows)
			if err != nil {
				return errors.Wrap(err, "resolving worker type cell")
			}
			if err := f.SetCellValue(sheetJournal, cell, workerType.Name); err != nil {
				return errors.Wrapf(err, "writing worker type %q", workerType.Name)
			}
		}
	}

	// Ledger rows, one per calendar day, starting under the band.
	for i, row := range rows {
		values := make([]interface{}, 0, lastCol)
		values = append(values, row.RecordNumber, row.Day, row.Month, row.Year, row.SpecialNotes, row.Observations)
		for _, count := range row.AttendanceCounts {
			if count == nil {
				values = append(values, nil)
			} else {
				values = append(values, *count)
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, headerBandRows+1+i)
		if err != nil {
			return errors.Wrap(err, "resolving row cell")
		}
		if err := f.SetSheetRow(sheetJournal, cell, &values); err != nil {
			return errors.Wrapf(err, "writing ledger row %d", row.RecordNumber)
		}
	}

	// Styling pass, applied after all data is in place.
	baseStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return errors.Wrap(err, "creating base style")
	}

	lastRow := headerBandRows + len(rows)
	bottomRight, err := excelize.CoordinatesToCellName(lastCol, lastRow)
	if err != nil {
		return errors.Wrap(err, "resolving styled region")
	}
	if err := f.SetCellStyle(sheetJournal, "A1", bottomRight, baseStyle); err != nil {
		return errors.Wrap(err, "applying base style")
	}

	if len(catalog) > 0 {
		rotatedStyle, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{TextRotation: 90, Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    thinBorders(),
		})
		if err != nil {
			return errors.Wrap(err, "creating rotated style")
		}
		first, err := excelize.CoordinatesToCellName(firstDynamicCol, headerBandRows)
		if err != nil {
			return errors.Wrap(err, "resolving rotated region")
		}
		last, err := excelize.CoordinatesToCellName(lastCol, headerBandRows)
		if err != nil {
			return errors.Wrap(err, "resolving rotated region")
		}
		if err := f.SetCellStyle(sheetJournal, first, last, rotatedStyle); err != nil {
			return errors.Wrap(err, "applying rotated style")
		}
	}

	return nil
}

func assembleRosterSheet(f *excelize.File, rows []RosterRow) error {
	widths := []float64{20, 20, 15, 30, 40, 20, 25}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.Wrap(err, "resolving roster column")
		}
		if err := f.SetColWidth(sheetRoster, col, col, width); err != nil {
			return errors.Wrap(err, "setting roster column width")
		}
	}

	headerCells := make([]interface{}, len(rosterHeaders))
	for i, h := range rosterHeaders {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetRoster, "A1", &headerCells); err != nil {
		return errors.Wrap(err, "writing roster header")
	}

	for i, row := range rows {
		values := []interface{}{row.FirstName, row.LastName, row.Phone, row.Email, row.Notes, row.TypeName, row.Company}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "resolving roster row cell")
		}
		if err := f.SetSheetRow(sheetRoster, cell, &values); err != nil {
			return errors.Wrapf(err, "writing roster row %d", i+1)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return errors.Wrap(err, "creating roster header style")
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(rosterHeaders), 1)
	if err != nil {
		return errors.Wrap(err, "resolving roster header region")
	}
	if err := f.SetCellStyle(sheetRoster, "A1", lastHeader, headerStyle); err != nil {
		return errors.Wrap(err, "applying roster header style")
	}

	if len(rows) > 0 {
		dataStyle, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
			Border:    thinBorders(),
		})
		if err != nil {
			return errors.Wrap(err, "creating roster data style")
		}
		bottomRight, err := excelize.CoordinatesToCellName(len(rosterHeaders), len(rows)+1)
		if err != nil {
			return errors.Wrap(err, "resolving roster data region")
		}
		if err := f.SetCellStyle(sheetRoster, "A2", bottomRight, dataStyle); err != nil {
			return errors.Wrap(err, "applying roster data style")
		}
	}

	return nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
	}
}
