package journal

import (
	"bytes"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pkg/errors"
)

// RosterPDF renders the second-sheet projection as a printable table,
// for posting at the site entrance.
func RosterPDF(siteName string, rows []RosterRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(siteName, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, siteName, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{35, 35, 30, 55, 55, 35, 32}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range rosterHeaders {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		values := []string{row.FirstName, row.LastName, row.Phone, row.Email, row.Notes, row.TypeName, row.Company}
		for i, value := range values {
			pdf.CellFormat(widths[i], 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, errors.Wrap(err, "writing roster pdf")
	}

	return buffer.Bytes(), nil
}
