package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	numberRe       = regexp.MustCompile(`\d[\d.,]*`)
	thousandsDotRe = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
	dayMonthRe     = regexp.MustCompile(`\b(\d{1,2})\s+(?:de\s+)?` +
		`(jan(?:eiro)?|fev(?:ereiro)?|mar(?:co)?|abr(?:il)?|mai(?:o)?|jun(?:ho)?|` +
		`jul(?:ho)?|ago(?:sto)?|set(?:embro)?|out(?:ubro)?|nov(?:embro)?|dez(?:embro)?)` +
		`(?:\.|\b)(?:\s+(?:de\s+)?(\d{4}))?`)
)

var ptMonths = map[string]time.Month{
	"jan": time.January,
	"fev": time.February,
	"mar": time.March,
	"abr": time.April,
	"mai": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"set": time.September,
	"out": time.October,
	"nov": time.November,
	"dez": time.December,
}

// ParseLocaleNumber reads a pt-BR formatted amount ("R$ 1.234,56", "1,85")
// and returns 0 when nothing numeric can be found.
func ParseLocaleNumber(raw string) float64 {
	d, ok := parseLocaleDecimal(raw)
	if !ok {
		return 0
	}

	f, _ := d.Float64()
	return f
}

func parseLocaleDecimal(raw string) (decimal.Decimal, bool) {
	m := numberRe.FindString(raw)
	if m == "" {
		return decimal.Zero, false
	}
	m = strings.TrimRight(m, ".,")

	switch {
	case strings.Contains(m, ","):
		m = strings.ReplaceAll(m, ".", "")
		m = strings.Replace(m, ",", ".", 1)
		m = strings.ReplaceAll(m, ",", "")
	case thousandsDotRe.MatchString(m):
		m = strings.ReplaceAll(m, ".", "")
	case strings.Count(m, ".") > 1:
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

// ParseOdd reads a decimal odd. Odds never carry thousands separators, so a
// single dot or comma is always the decimal mark.
func ParseOdd(raw string) float64 {
	m := numberRe.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	m = strings.TrimRight(strings.Replace(m, ",", ".", 1), ".,")

	d, err := decimal.NewFromString(m)
	if err != nil {
		return 0
	}

	f, _ := d.Float64()
	return f
}

// ParseLocaleDate resolves "DD mon" or "DD mon YYYY" (Portuguese month
// abbreviations) into an ISO date relative to the current day.
func ParseLocaleDate(raw string) (string, bool) {
	return parseLocaleDateAt(raw, time.Now())
}

func parseLocaleDateAt(raw string, now time.Time) (string, bool) {
	m := dayMonthRe.FindStringSubmatch(Fold(raw))
	if m == nil {
		return "", false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}

	month, ok := ptMonths[m[2][:3]]
	if !ok {
		return "", false
	}

	year := now.Year()
	if m[3] != "" {
		year, err = strconv.Atoi(m[3])
		if err != nil {
			return "", false
		}
	} else if month > now.Month() {
		year--
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return "", false
	}

	return t.Format("2006-01-02"), true
}

func round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
