package service

import (
	"strings"
	"time"

	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/format"
	"emurai-be-svc/pkg/logger"
)

// Empty-state messages for the dashboard cards
const (
	emptyInfoMessage    = "Belum ada pengumuman"
	emptyRondaMessage   = "Tidak ada jadwal ronda hari ini"
	emptyOverdueMessage = "Semua iuran sudah lunas!"
)

// overdueDisplayCap limits the unpaid-dues card to the first five records
const overdueDisplayCap = 5

// latestInfoCount is the number of announcements on the dashboard card
const latestInfoCount = 3

// DashboardService interface defines dashboard rendering
type DashboardService interface {
	Summary(isAdmin bool) *response.DashboardResponse
}

// dashboardService implements DashboardService interface. Summary is a pure
// aggregation over a store snapshot: no caching, no hidden state, identical
// output for identical store contents and clock value.
type dashboardService struct {
	store  *store.Store
	logger *logger.Logger
	now    func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(st *store.Store, log *logger.Logger) DashboardService {
	return &dashboardService{
		store:  st,
		logger: log,
		now:    time.Now,
	}
}

// Summary renders every dashboard card from the current collections
func (s *dashboardService) Summary(isAdmin bool) *response.DashboardResponse {
	ds := s.store.Snapshot()
	now := s.now()

	var totalMasuk, totalKeluar int64
	currentMonth := format.MonthPrefix(now)
	var monthMasuk, monthKeluar int64

	for _, k := range ds.Kas {
		switch k.Tipe {
		case models.TipeMasuk:
			totalMasuk += k.Jumlah
			if strings.HasPrefix(k.Tanggal, currentMonth) {
				monthMasuk += k.Jumlah
			}
		case models.TipeKeluar:
			totalKeluar += k.Jumlah
			if strings.HasPrefix(k.Tanggal, currentMonth) {
				monthKeluar += k.Jumlah
			}
		}
	}
	saldo := totalMasuk - totalKeluar

	houses := map[string]struct{}{}
	for _, i := range ds.Iuran {
		houses[i.Rumah] = struct{}{}
	}

	resp := &response.DashboardResponse{
		Greeting:             format.Greeting(now),
		CurrentDate:          format.DateDisplayFull(now),
		Saldo:                saldo,
		SaldoFormatted:       format.Currency(saldo),
		PemasukanBulanIni:    monthMasuk,
		PemasukanFormatted:   format.Currency(monthMasuk),
		PengeluaranBulanIni:  monthKeluar,
		PengeluaranFormatted: format.Currency(monthKeluar),
		TotalRumah:           len(houses),
		LatestInfo:           []response.InfoCard{},
		TodayRonda:           []response.RondaGuard{},
		OverdueIuran:         []response.OverdueItem{},
	}

	// Latest announcements: head of the collection, which by data-entry
	// convention is newest first. No date sort is applied.
	for i, item := range ds.Info {
		if i >= latestInfoCount {
			break
		}
		resp.LatestInfo = append(resp.LatestInfo, newInfoCard(item, isAdmin))
	}
	if len(resp.LatestInfo) == 0 {
		resp.LatestInfoEmpty = emptyInfoMessage
	}

	today := format.Date(now)
	for _, r := range ds.Ronda {
		if r.Tanggal != today {
			continue
		}
		resp.TodayRonda = append(resp.TodayRonda,
			response.RondaGuard{Nama: r.Petugas1, Initial: initial(r.Petugas1), Jam: r.Jam},
			response.RondaGuard{Nama: r.Petugas2, Initial: initial(r.Petugas2), Jam: r.Jam},
		)
	}
	if len(resp.TodayRonda) == 0 {
		resp.TodayRondaEmpty = emptyRondaMessage
	}

	for _, i := range ds.Iuran {
		if i.Status != models.StatusBelum {
			continue
		}
		if len(resp.OverdueIuran) >= overdueDisplayCap {
			break
		}
		resp.OverdueIuran = append(resp.OverdueIuran, response.OverdueItem{
			Rumah:           i.Rumah,
			Nama:            i.Nama,
			Jumlah:          i.Jumlah,
			JumlahFormatted: format.Currency(i.Jumlah),
		})
	}
	if len(resp.OverdueIuran) == 0 {
		resp.OverdueEmpty = emptyOverdueMessage
	}

	return resp
}

func initial(name string) string {
	if name == "" {
		return ""
	}
	return string([]rune(name)[:1])
}
