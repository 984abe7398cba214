package models

import "time"

// Announcement categories
const (
	KategoriAcara    = "acara"
	KategoriPenting  = "penting"
	KategoriKeamanan = "keamanan"
	KategoriUmum     = "umum"
)

// InfoItem represents one row of the info sheet: a community announcement.
//
// Collection order doubles as recency: writers prepend new items so that
// "latest announcements" can take the head of the list without sorting.
type InfoItem struct {
	ID       int64  `json:"id" example:"1"`
	Tanggal  string `json:"tanggal" example:"2024-02-15"`
	Judul    string `json:"judul" example:"Kerja Bakti Bulanan"`
	Kategori string `json:"kategori" example:"acara"`
	Isi      string `json:"isi" example:"Mengundang seluruh warga untuk kerja bakti bersama."`
}

// ValidKategori reports whether a category value is one of the known tags
func ValidKategori(kategori string) bool {
	switch kategori {
	case KategoriAcara, KategoriPenting, KategoriKeamanan, KategoriUmum:
		return true
	}
	return false
}

// Validate checks all required fields before a save
func (i *InfoItem) Validate() error {
	fields := map[string]string{}

	if i.Tanggal == "" {
		fields["tanggal"] = "wajib diisi"
	} else if _, err := time.Parse("2006-01-02", i.Tanggal); err != nil {
		fields["tanggal"] = "format harus YYYY-MM-DD"
	}

	if i.Judul == "" {
		fields["judul"] = "wajib diisi"
	}

	if !ValidKategori(i.Kategori) {
		fields["kategori"] = "harus 'acara', 'penting', 'keamanan', atau 'umum'"
	}

	if i.Isi == "" {
		fields["isi"] = "wajib diisi"
	}

	return newValidationError(fields)
}
