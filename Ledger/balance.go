package Ledger

import (
	"fmt"
	"math"
	"strings"

	"Puantaj/Models"
)

// Balance returns the running payroll balance for a set of entries. TIP
// entries are informational only and never count toward the balance.
func Balance(entries []Models.Entry) float64 {
	var total float64
	for _, entry := range entries {
		if entry.Type == Models.EntryTip {
			continue
		}
		total += entry.Amount
	}
	return total
}

// UserBalance filters to one staff member before summing.
func UserBalance(entries []Models.Entry, userID uint) float64 {
	var userEntries []Models.Entry
	for _, entry := range entries {
		if entry.UserID == userID {
			userEntries = append(userEntries, entry)
		}
	}
	return Balance(userEntries)
}

// MonthlySummary splits one calendar month into earned and deducted totals.
// Earned sums the positive amounts, Deducted sums the magnitudes of the
// negative ones; tips are excluded from both.
type MonthlySummary struct {
	Earned   float64 `json:"earned"`
	Deducted float64 `json:"deducted"`
	Net      float64 `json:"net"`
}

func SummarizeMonth(entries []Models.Entry, year int, month int) MonthlySummary {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	var summary MonthlySummary
	for _, entry := range entries {
		if entry.Type == Models.EntryTip || !strings.HasPrefix(entry.Date, prefix) {
			continue
		}
		if entry.Amount > 0 {
			summary.Earned += entry.Amount
		} else {
			summary.Deducted += math.Abs(entry.Amount)
		}
	}
	summary.Net = summary.Earned - summary.Deducted
	return summary
}

// DayCreditTotal sums the positive amounts recorded on one day, the figure
// shown at the top of the daily attendance sheet.
func DayCreditTotal(entries []Models.Entry, date string) float64 {
	var total float64
	for _, entry := range entries {
		if entry.Date == date && entry.Amount > 0 {
			total += entry.Amount
		}
	}
	return total
}
