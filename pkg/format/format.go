// Package format holds pure formatting helpers for currency and dates.
// All user-facing strings are Indonesian, matching the sheet contents.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the wire format for all dates stored in the sheet
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for billing months
const MonthLayout = "2006-01"

var printer = message.NewPrinter(language.Indonesian)

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Indexed by time.Weekday (Sunday = 0)
var dayNames = [7]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

// Currency formats an amount in the smallest Rupiah unit, e.g. "Rp 1.500.000".
// Zero formats as "Rp 0".
func Currency(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}

// Date formats a time as the sheet wire format
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a wire-format date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MonthPrefix returns the billing-month prefix of a time, e.g. "2024-01"
func MonthPrefix(t time.Time) string {
	return t.Format(MonthLayout)
}

// DateDisplay converts a wire-format date to Indonesian long form,
// e.g. "15 Januari 2024". Unparseable input is returned unchanged.
func DateDisplay(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// DateDisplayFull formats a time with its weekday, e.g. "Senin, 15 Januari 2024"
func DateDisplayFull(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", dayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year())
}

// DayName returns the Indonesian weekday name for a time
func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}

// Greeting returns the time-of-day greeting shown on the dashboard
func Greeting(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Selamat Pagi"
	case hour >= 12 && hour < 15:
		return "Selamat Siang"
	case hour >= 15 && hour < 18:
		return "Selamat Sore"
	default:
		return "Selamat Malam"
	}
}
