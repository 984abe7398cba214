package response

import "emurai-be-svc/internal/models"

// KasItem is one rendered ledger row
type KasItem struct {
	models.KasEntry
	TanggalDisplay  string      `json:"tanggal_display" example:"15 Januari 2024"`
	JumlahFormatted string      `json:"jumlah_formatted" example:"+ Rp 1.500.000"`
	Actions         *RowActions `json:"actions,omitempty"`
}

// KasListResponse is the rendered ledger page: filtered rows sorted by
// date descending, plus the month options for the filter control.
type KasListResponse struct {
	Items  []KasItem `json:"items"`
	Total  int       `json:"total" example:"5"`
	Months []string  `json:"months" example:"2024-02,2024-01"`
	Empty  string    `json:"empty,omitempty" example:"Tidak ada transaksi"`
}
