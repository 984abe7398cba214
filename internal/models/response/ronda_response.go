package response

import "emurai-be-svc/internal/models"

// RondaShiftItem is one rendered shift row
type RondaShiftItem struct {
	models.RondaShift
	Actions *RowActions `json:"actions,omitempty"`
}

// RondaDay is one cell of the weekly schedule. Days without shifts are
// present with an empty shift list so the week always renders seven cells.
type RondaDay struct {
	Tanggal        string           `json:"tanggal" example:"2024-02-19"`
	DayName        string           `json:"day_name" example:"Senin"`
	TanggalDisplay string           `json:"tanggal_display" example:"19 Februari 2024"`
	IsToday        bool             `json:"is_today" example:"true"`
	Shifts         []RondaShiftItem `json:"shifts"`
}

// RondaScheduleResponse is the rendered watch-schedule page: a seven-day
// window anchored at today plus the current week offset.
type RondaScheduleResponse struct {
	WeekOffset int        `json:"week_offset" example:"0"`
	StartDate  string     `json:"start_date" example:"2024-02-19"`
	EndDate    string     `json:"end_date" example:"2024-02-25"`
	Days       []RondaDay `json:"days"`
}
