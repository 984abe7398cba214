package models

import "time"

// Transaction directions for the shared cash ledger
const (
	TipeMasuk  = "masuk"
	TipeKeluar = "keluar"
)

// KasEntry represents one row of the kas sheet. Field names follow the
// sheet columns so records round-trip through the Apps Script backend.
type KasEntry struct {
	ID         int64  `json:"id" example:"1"`
	Tanggal    string `json:"tanggal" example:"2024-01-15"`
	Tipe       string `json:"tipe" example:"masuk"`
	Keterangan string `json:"keterangan" example:"Iuran Januari 2024"`
	Jumlah     int64  `json:"jumlah" example:"1500000"`
}

// Validate checks all required fields before a save
func (k *KasEntry) Validate() error {
	fields := map[string]string{}

	if k.Tanggal == "" {
		fields["tanggal"] = "wajib diisi"
	} else if _, err := time.Parse("2006-01-02", k.Tanggal); err != nil {
		fields["tanggal"] = "format harus YYYY-MM-DD"
	}

	if k.Tipe != TipeMasuk && k.Tipe != TipeKeluar {
		fields["tipe"] = "harus 'masuk' atau 'keluar'"
	}

	if k.Keterangan == "" {
		fields["keterangan"] = "wajib diisi"
	}

	if k.Jumlah <= 0 {
		fields["jumlah"] = "harus lebih dari 0"
	}

	return newValidationError(fields)
}
