package response

import "emurai-be-svc/internal/models"

// IuranItem is one rendered dues card
type IuranItem struct {
	models.IuranRecord
	JumlahFormatted string      `json:"jumlah_formatted" example:"Rp 50.000"`
	Actions         *RowActions `json:"actions,omitempty"`
}

// IuranListResponse is the rendered dues page: filtered records sorted by
// house code ascending, plus the month options for the filter control.
type IuranListResponse struct {
	Items  []IuranItem `json:"items"`
	Total  int         `json:"total" example:"8"`
	Months []string    `json:"months" example:"2024-01"`
	Empty  string      `json:"empty,omitempty" example:"Tidak ada data iuran"`
}
