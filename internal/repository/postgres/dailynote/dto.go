package dailynote

type GetFieldRequest struct {
	BuildingSiteID *int    `json:"building_site_id" form:"building_site_id"`
	Date           *string `json:"date" form:"date"`
	NoteType       *string `json:"note_type" form:"note_type"`
}

type GetFieldResponse struct {
	BuildingSiteID int     `json:"building_site_id"`
	Date           string  `json:"date"`
	NoteType       string  `json:"note_type"`
	Value          *string `json:"value"`
}

type UpsertFieldRequest struct {
	BuildingSiteID *int    `json:"building_site_id" form:"building_site_id"`
	Date           *string `json:"date" form:"date"`
	NoteType       *string `json:"note_type" form:"note_type"`
	Value          *string `json:"value" form:"value"`
}
