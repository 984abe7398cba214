package store

import (
	"time"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/pkg/format"
)

// SampleDataset returns the fixed demo dataset used when the sheet gateway
// is unconfigured or unreachable on initial load. Ronda dates are anchored
// to the given day so the schedule always shows today, tomorrow, and the
// day after.
func SampleDataset(now time.Time) models.Dataset {
	return models.Dataset{
		Kas: []models.KasEntry{
			{ID: 1, Tanggal: "2024-01-15", Tipe: models.TipeMasuk, Keterangan: "Iuran Januari 2024", Jumlah: 1500000},
			{ID: 2, Tanggal: "2024-01-20", Tipe: models.TipeKeluar, Keterangan: "Bayar listrik gang", Jumlah: 350000},
			{ID: 3, Tanggal: "2024-01-25", Tipe: models.TipeKeluar, Keterangan: "Perbaikan jalan", Jumlah: 500000},
			{ID: 4, Tanggal: "2024-02-01", Tipe: models.TipeMasuk, Keterangan: "Iuran Februari 2024", Jumlah: 1500000},
			{ID: 5, Tanggal: "2024-02-10", Tipe: models.TipeKeluar, Keterangan: "Bayar PDAM", Jumlah: 200000},
		},
		Iuran: []models.IuranRecord{
			{ID: 1, Rumah: "A-01", Nama: "Budi Santoso", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusLunas},
			{ID: 2, Rumah: "A-02", Nama: "Siti Rahayu", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusLunas},
			{ID: 3, Rumah: "A-03", Nama: "Ahmad Wijaya", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusBelum},
			{ID: 4, Rumah: "A-04", Nama: "Dewi Lestari", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusLunas},
			{ID: 5, Rumah: "A-05", Nama: "Eko Prasetyo", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusBelum},
			{ID: 6, Rumah: "B-01", Nama: "Rina Marlina", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusLunas},
			{ID: 7, Rumah: "B-02", Nama: "Hendra Gunawan", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusLunas},
			{ID: 8, Rumah: "B-03", Nama: "Yuni Astuti", Bulan: "2024-01", Jumlah: 50000, Status: models.StatusBelum},
		},
		Ronda: []models.RondaShift{
			{ID: 1, Tanggal: format.Date(now), Petugas1: "Budi Santoso", Petugas2: "Ahmad Wijaya", Jam: "22:00 - 05:00"},
			{ID: 2, Tanggal: format.Date(now.AddDate(0, 0, 1)), Petugas1: "Eko Prasetyo", Petugas2: "Hendra Gunawan", Jam: "22:00 - 05:00"},
			{ID: 3, Tanggal: format.Date(now.AddDate(0, 0, 2)), Petugas1: "Dewi Lestari", Petugas2: "Rina Marlina", Jam: "22:00 - 05:00"},
		},
		Info: []models.InfoItem{
			{ID: 1, Tanggal: "2024-02-15", Judul: "Kerja Bakti Bulanan", Kategori: models.KategoriAcara, Isi: "Mengundang seluruh warga untuk kerja bakti bersama pada hari Minggu, 25 Februari 2024 pukul 07:00 WIB. Harap membawa peralatan kebersihan masing-masing."},
			{ID: 2, Tanggal: "2024-02-10", Judul: "Pembayaran Iuran", Kategori: models.KategoriPenting, Isi: "Diingatkan kepada warga yang belum membayar iuran bulan Januari untuk segera melunasi. Iuran dapat diserahkan ke RT atau melalui transfer."},
			{ID: 3, Tanggal: "2024-02-08", Judul: "Peningkatan Keamanan", Kategori: models.KategoriKeamanan, Isi: "Sehubungan dengan maraknya pencurian di wilayah sekitar, dimohon warga untuk meningkatkan kewaspadaan dan memastikan kendaraan terkunci dengan baik."},
			{ID: 4, Tanggal: "2024-02-01", Judul: "Jadwal Pemadaman Listrik", Kategori: models.KategoriUmum, Isi: "PLN menginformasikan akan ada pemadaman listrik bergilir pada tanggal 5 Februari 2024 pukul 09:00 - 15:00 WIB untuk pemeliharaan jaringan."},
		},
	}
}
