package worker

import (
	"net/http"
	"reflect"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/repository/postgres/worker"
)

type Controller struct {
	worker Worker
}

func NewController(worker Worker) *Controller {
	return &Controller{worker}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter worker.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if siteID, ok := c.GetQueryFunc(reflect.Int, "site_id").(*int); ok {
		filter.SiteID = siteID
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.worker.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

// GetListNotInSite lists the account's workers still assignable to the
// given site.
func (uc Controller) GetListNotInSite(c *web.Context) error {
	siteID := c.GetParam(reflect.Int, "site_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	list, err := uc.worker.GetListNotInSite(c.Ctx, siteID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request worker.CreateRequest

	if err := c.BindFunc(&request, "FirstName", "LastName"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.worker.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateAll(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request worker.UpdateRequest

	if err := c.BindFunc(&request, "FirstName", "LastName"); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := uc.worker.UpdateAll(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) LinkSite(c *web.Context) error {
	var request worker.LinkSiteRequest

	if err := c.BindFunc(&request, "SiteID", "WorkerID"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.worker.LinkSite(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UnlinkSite(c *web.Context) error {
	siteID := c.GetParam(reflect.Int, "site_id").(int)
	workerID := c.GetParam(reflect.Int, "worker_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.worker.UnlinkSite(c.Ctx, siteID, workerID); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) LinkCompany(c *web.Context) error {
	var request worker.LinkCompanyRequest

	if err := c.BindFunc(&request, "WorkerID", "CompanyID"); err != nil {
		return c.RespondError(err)
	}

	if err := uc.worker.LinkCompany(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.worker.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
