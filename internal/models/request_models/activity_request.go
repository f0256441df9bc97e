package request_models

type ActivityRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	StartTime    string   `json:"start_time" binding:"required"`
	EndTime      string   `json:"end_time" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Notes        string   `json:"notes"`
	Cost         *float64 `json:"cost"`
	BookedStatus string   `json:"booked_status"`
}
