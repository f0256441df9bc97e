package request_models

type CreateTripRequest struct {
	Destination   string   `json:"destination" binding:"required"`
	StartDate     string   `json:"start_date" binding:"required"`
	EndDate       string   `json:"end_date" binding:"required"`
	TripType      string   `json:"trip_type"`
	Collaborators []string `json:"collaborators"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type ShareTripRequest struct {
	// Hours the share link stays valid, defaults to 72.
	TTLHours int `json:"ttl_hours"`
}
