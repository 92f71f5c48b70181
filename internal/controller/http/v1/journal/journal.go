package journal

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/pkg/errors"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/service/journal"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Controller struct {
	generator Generator
	source    DataSource
	baseURL   string
}

func NewController(generator Generator, source DataSource, baseURL string) *Controller {
	return &Controller{generator: generator, source: source, baseURL: baseURL}
}

// ExportExcel compiles the full work journal workbook for a site and
// streams it as a download.
func (uc Controller) ExportExcel(c *web.Context) error {
	siteID := c.GetParam(reflect.Int, "site_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	document, err := uc.generator.Generate(c.Ctx, siteID)
	if err != nil {
		return c.RespondError(err)
	}

	filename := fmt.Sprintf("report_cantiere_%d.xlsx", siteID)

	return c.RespondBytes(excelContentType, filename, document)
}

// ExportRosterPDF renders the site personnel roster as a printable
// table.
func (uc Controller) ExportRosterPDF(c *web.Context) error {
	siteID := c.GetParam(reflect.Int, "site_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	siteName, err := uc.source.GetSiteName(c.Ctx, siteID)
	if err != nil {
		return c.RespondError(err)
	}

	entries, err := uc.source.GetRoster(c.Ctx, siteID)
	if err != nil {
		return c.RespondError(err)
	}

	document, err := journal.RosterPDF(siteName, journal.ProjectRoster(entries))
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "rendering roster pdf"), http.StatusInternalServerError))
	}

	filename := fmt.Sprintf("roster_cantiere_%d.pdf", siteID)

	return c.RespondBytes("application/pdf", filename, document)
}

// SiteQRCode returns a PNG code that links field devices to the site
// page.
func (uc Controller) SiteQRCode(c *web.Context) error {
	siteID := c.GetParam(reflect.Int, "site_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	// Resolving the name first enforces ownership before anything is
	// generated.
	if _, err := uc.source.GetSiteName(c.Ctx, siteID); err != nil {
		return c.RespondError(err)
	}

	png, err := journal.SiteQRCode(uc.baseURL, siteID)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "encoding qr code"), http.StatusInternalServerError))
	}

	filename := fmt.Sprintf("qr_cantiere_%d.png", siteID)

	return c.RespondBytes("image/png", filename, png)
}
