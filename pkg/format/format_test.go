package format_test

import (
	"testing"
	"time"

	"emurai-be-svc/pkg/format"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "Rp 1.500.000", format.Currency(1500000))
	assert.Equal(t, "Rp 50.000", format.Currency(50000))
	assert.Equal(t, "Rp 0", format.Currency(0))
}

func TestDateRoundTrip(t *testing.T) {
	parsed, err := format.ParseDate("2024-01-15")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-15", format.Date(parsed))
}

func TestParseDateInvalid(t *testing.T) {
	_, err := format.ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestDateDisplay(t *testing.T) {
	assert.Equal(t, "15 Januari 2024", format.DateDisplay("2024-01-15"))
	assert.Equal(t, "1 Desember 2024", format.DateDisplay("2024-12-01"))

	// unparseable input passes through
	assert.Equal(t, "bukan-tanggal", format.DateDisplay("bukan-tanggal"))
}

func TestDateDisplayFull(t *testing.T) {
	// 2024-01-15 is a Monday
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Senin, 15 Januari 2024", format.DateDisplayFull(day))
}

func TestMonthPrefix(t *testing.T) {
	day := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02", format.MonthPrefix(day))
}

func TestGreeting(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, 1, 15, hour, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, "Selamat Pagi", format.Greeting(at(5)))
	assert.Equal(t, "Selamat Pagi", format.Greeting(at(11)))
	assert.Equal(t, "Selamat Siang", format.Greeting(at(12)))
	assert.Equal(t, "Selamat Siang", format.Greeting(at(14)))
	assert.Equal(t, "Selamat Sore", format.Greeting(at(15)))
	assert.Equal(t, "Selamat Sore", format.Greeting(at(17)))
	assert.Equal(t, "Selamat Malam", format.Greeting(at(18)))
	assert.Equal(t, "Selamat Malam", format.Greeting(at(4)))
}
