package dailynote

import (
	"net/http"
	"reflect"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/repository/postgres/dailynote"
)

type Controller struct {
	dailyNote DailyNote
}

func NewController(dailyNote DailyNote) *Controller {
	return &Controller{dailyNote}
}

func (uc Controller) GetField(c *web.Context) error {
	var request dailynote.GetFieldRequest

	if siteID, ok := c.GetQueryFunc(reflect.Int, "building_site_id").(*int); ok {
		request.BuildingSiteID = siteID
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		request.Date = date
	}
	if noteType, ok := c.GetQueryFunc(reflect.String, "note_type").(*string); ok {
		request.NoteType = noteType
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.dailyNote.GetField(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpsertField(c *web.Context) error {
	var request dailynote.UpsertFieldRequest

	if err := c.BindFunc(&request, "BuildingSiteID", "Date", "NoteType"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.dailyNote.UpsertField(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
