package ledger

import (
	"sort"
	"strconv"

	"rentledger-backend/internal/models"
)

const duesDescription = "Unpaid rent carried forward from previous years"

type PreviousDues struct {
	TotalDues   float64  `json:"totalDues"`
	DueMonths   []string `json:"dueMonths"`
	Description string   `json:"description"`
}

// computePreviousDues totals the unpaid gap of a shop's old Due/Partial
// entries and lists their months in calendar order. The total is not
// clamped at zero: an overpaid entry subtracts from the carry-forward,
// matching the hand-kept books this system imported.
func computePreviousDues(entries []models.RentLedgerEntry) PreviousDues {
	type parsedEntry struct {
		entry models.RentLedgerEntry
		name  string
		year  int
		index int
	}

	parsed := make([]parsedEntry, 0, len(entries))
	for _, e := range entries {
		name, year, index := parseMonthLabel(e.RentMonth, e.RentYear)
		parsed = append(parsed, parsedEntry{entry: e, name: name, year: year, index: index})
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		if parsed[i].year != parsed[j].year {
			return parsed[i].year < parsed[j].year
		}
		return parsed[i].index < parsed[j].index
	})

	dues := PreviousDues{DueMonths: []string{}, Description: duesDescription}
	for _, p := range parsed {
		e := p.entry
		dues.TotalDues += e.MonthlyRent - (e.AmountPaid + e.AdvanceDeducted + e.PartiallyPaid)
		dues.DueMonths = append(dues.DueMonths, p.name+" "+strconv.Itoa(p.year))
	}
	return dues
}
