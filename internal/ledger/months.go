package ledger

import (
	"strconv"
	"strings"
)

// monthIndex maps full month names to calendar position, January = 0.
var monthIndex = map[string]int{
	"January":   0,
	"February":  1,
	"March":     2,
	"April":     3,
	"May":       4,
	"June":      5,
	"July":      6,
	"August":    7,
	"September": 8,
	"October":   9,
	"November":  10,
	"December":  11,
}

// monthFull expands the 3-letter abbreviations older ledger rows carry.
var monthFull = map[string]string{
	"Jan": "January",
	"Feb": "February",
	"Mar": "March",
	"Apr": "April",
	"May": "May",
	"Jun": "June",
	"Jul": "July",
	"Aug": "August",
	"Sep": "September",
	"Oct": "October",
	"Nov": "November",
	"Dec": "December",
}

// parseMonthLabel resolves a stored rent_month value ("March", "Sep-24",
// "Jan-2026") into a full month name, the year it belongs to and its sort
// index. Two-digit year suffixes are 2000-based; without a suffix the
// entry's own rent_year applies. Unrecognized month names pass through
// unchanged and sort before January (index -1).
func parseMonthLabel(raw string, fallbackYear int) (name string, year int, index int) {
	year = fallbackYear

	token := strings.TrimSpace(raw)
	suffix := ""
	if i := strings.Index(token, "-"); i >= 0 {
		suffix = strings.TrimSpace(token[i+1:])
		token = strings.TrimSpace(token[:i])
	}

	if full, ok := monthFull[token]; ok {
		name = full
	} else if _, ok := monthIndex[token]; ok {
		name = token
	} else {
		return strings.TrimSpace(raw), fallbackYear, -1
	}

	if suffix != "" {
		if v, err := strconv.Atoi(suffix); err == nil {
			switch len(suffix) {
			case 2:
				year = 2000 + v
			case 4:
				year = v
			}
		}
	}

	return name, year, monthIndex[name]
}
