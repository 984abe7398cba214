package response

import "emurai-be-svc/internal/models"

// InfoCard is one rendered announcement. Isi is the raw markdown as stored;
// IsiHTML is the rendered body with raw HTML escaped.
type InfoCard struct {
	models.InfoItem
	TanggalDisplay string      `json:"tanggal_display" example:"15 Februari 2024"`
	IsiHTML        string      `json:"isi_html" example:"<p>Mengundang seluruh warga.</p>"`
	Actions        *RowActions `json:"actions,omitempty"`
}

// InfoListResponse is the rendered announcements page in collection order
// (newest first by data-entry convention)
type InfoListResponse struct {
	Items []InfoCard `json:"items"`
	Total int        `json:"total" example:"4"`
	Empty string     `json:"empty,omitempty" example:"Belum ada pengumuman"`
}
