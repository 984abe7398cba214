package models

import "time"

// Payment statuses for monthly dues
const (
	StatusLunas = "lunas"
	StatusBelum = "belum"
)

// IuranRecord represents one row of the iuran sheet: the monthly due of a
// single household for a single billing month.
//
// The data model allows duplicate (rumah, bulan) pairs; the sheet is the
// system of record and gives no uniqueness signal, so none is enforced here.
type IuranRecord struct {
	ID     int64  `json:"id" example:"1"`
	Rumah  string `json:"rumah" example:"A-01"`
	Nama   string `json:"nama" example:"Budi Santoso"`
	Bulan  string `json:"bulan" example:"2024-01"`
	Jumlah int64  `json:"jumlah" example:"50000"`
	Status string `json:"status" example:"lunas"`
}

// Validate checks all required fields before a save
func (i *IuranRecord) Validate() error {
	fields := map[string]string{}

	if i.Rumah == "" {
		fields["rumah"] = "wajib diisi"
	}

	if i.Nama == "" {
		fields["nama"] = "wajib diisi"
	}

	if i.Bulan == "" {
		fields["bulan"] = "wajib diisi"
	} else if _, err := time.Parse("2006-01", i.Bulan); err != nil {
		fields["bulan"] = "format harus YYYY-MM"
	}

	if i.Jumlah <= 0 {
		fields["jumlah"] = "harus lebih dari 0"
	}

	if i.Status != StatusLunas && i.Status != StatusBelum {
		fields["status"] = "harus 'lunas' atau 'belum'"
	}

	return newValidationError(fields)
}
