package models

import "time"

// RondaShift represents one row of the ronda sheet: a night-watch shift
// assigning exactly two guards to a date and a display time range.
type RondaShift struct {
	ID       int64  `json:"id" example:"1"`
	Tanggal  string `json:"tanggal" example:"2024-02-19"`
	Petugas1 string `json:"petugas1" example:"Budi Santoso"`
	Petugas2 string `json:"petugas2" example:"Ahmad Wijaya"`
	Jam      string `json:"jam" example:"22:00 - 05:00"`
}

// Validate checks all required fields before a save
func (r *RondaShift) Validate() error {
	fields := map[string]string{}

	if r.Tanggal == "" {
		fields["tanggal"] = "wajib diisi"
	} else if _, err := time.Parse("2006-01-02", r.Tanggal); err != nil {
		fields["tanggal"] = "format harus YYYY-MM-DD"
	}

	if r.Petugas1 == "" {
		fields["petugas1"] = "wajib diisi"
	}

	if r.Petugas2 == "" {
		fields["petugas2"] = "wajib diisi"
	}

	if r.Jam == "" {
		fields["jam"] = "wajib diisi"
	}

	return newValidationError(fields)
}
