package response

// DashboardResponse aggregates every dashboard card in one payload
type DashboardResponse struct {
	Greeting    string `json:"greeting" example:"Selamat Pagi"`
	CurrentDate string `json:"current_date" example:"Senin, 15 Januari 2024"`

	Saldo                int64  `json:"saldo" example:"1950000"`
	SaldoFormatted       string `json:"saldo_formatted" example:"Rp 1.950.000"`
	PemasukanBulanIni    int64  `json:"pemasukan_bulan_ini" example:"1500000"`
	PemasukanFormatted   string `json:"pemasukan_formatted" example:"Rp 1.500.000"`
	PengeluaranBulanIni  int64  `json:"pengeluaran_bulan_ini" example:"200000"`
	PengeluaranFormatted string `json:"pengeluaran_formatted" example:"Rp 200.000"`
	TotalRumah           int    `json:"total_rumah" example:"8"`

	LatestInfo      []InfoCard    `json:"latest_info"`
	LatestInfoEmpty string        `json:"latest_info_empty,omitempty" example:"Belum ada pengumuman"`
	TodayRonda      []RondaGuard  `json:"today_ronda"`
	TodayRondaEmpty string        `json:"today_ronda_empty,omitempty" example:"Tidak ada jadwal ronda hari ini"`
	OverdueIuran    []OverdueItem `json:"overdue_iuran"`
	OverdueEmpty    string        `json:"overdue_empty,omitempty" example:"Semua iuran sudah lunas!"`
}

// RondaGuard is one guard of a shift on today's watch card. A shift with
// two guards expands to two entries.
type RondaGuard struct {
	Nama    string `json:"nama" example:"Budi Santoso"`
	Initial string `json:"initial" example:"B"`
	Jam     string `json:"jam" example:"22:00 - 05:00"`
}

// OverdueItem is one unpaid due on the dashboard (display capped at five)
type OverdueItem struct {
	Rumah           string `json:"rumah" example:"A-03"`
	Nama            string `json:"nama" example:"Ahmad Wijaya"`
	Jumlah          int64  `json:"jumlah" example:"50000"`
	JumlahFormatted string `json:"jumlah_formatted" example:"Rp 50.000"`
}
