package dailypresence

import (
	"net/http"
	"reflect"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/repository/postgres/dailypresence"
)

type Controller struct {
	dailyPresence DailyPresence
}

func NewController(dailyPresence DailyPresence) *Controller {
	return &Controller{dailyPresence}
}

func (uc Controller) GetByDate(c *web.Context) error {
	var filter dailypresence.Filter

	if siteID, ok := c.GetQueryFunc(reflect.Int, "building_site_id").(*int); ok {
		filter.BuildingSiteID = siteID
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := uc.dailyPresence.GetByDate(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Save(c *web.Context) error {
	var request dailypresence.SaveRequest

	if err := c.BindFunc(&request, "BuildingSiteID", "WorkerID", "Date", "Status"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.dailyPresence.Save(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) SaveBulk(c *web.Context) error {
	var request dailypresence.SaveBulkRequest

	if err := c.BindFunc(&request, "BuildingSiteID", "Date"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.dailyPresence.SaveBulk(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
