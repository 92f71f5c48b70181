package dailypresence

type Filter struct {
	BuildingSiteID *int
	Date           *string
}

type GetListResponse struct {
	WorkerID  int     `json:"worker_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Date      string  `json:"date"`
	Status    *string `json:"status"`
}

type SaveRequest struct {
	BuildingSiteID *int    `json:"building_site_id" form:"building_site_id"`
	WorkerID       *int    `json:"worker_id" form:"worker_id"`
	Date           *string `json:"date" form:"date"`
	Status         *string `json:"status" form:"status"`
}

type SaveBulkRequest struct {
	BuildingSiteID *int          `json:"building_site_id" form:"building_site_id"`
	Date           *string       `json:"date" form:"date"`
	Presences      []SaveRequest `json:"presences" form:"presences"`
}
