package Ledger

import (
	"strings"
	"time"

	"Puantaj/Models"

	"golang.org/x/exp/slices"
)

const dateLayout = "2006-01-02"

// UnpaidVade is a purchase invoice with money still owed on it.
type UnpaidVade struct {
	Transaction    Models.AccTransaction `json:"transaction"`
	WholesalerName string                `json:"wholesaler_name"`
	UnpaidAmount   float64               `json:"unpaid_amount"`
}

// UnpaidVades determines which purchase invoices remain unpaid per supplier.
// Payments are not linked to invoices, so the oldest invoices are treated as
// paid first (FIFO). Invoices without a due date are excluded from due-date
// tracking even when a balance remains on them; they still count in the
// aggregate balance elsewhere.
func UnpaidVades(wholesalers []Models.Wholesaler, transactions []Models.AccTransaction) []UnpaidVade {
	var list []UnpaidVade

	for _, wholesaler := range wholesalers {
		var totalPaid float64
		var purchases []Models.AccTransaction
		for _, txn := range transactions {
			if txn.WholesalerID != wholesaler.ID {
				continue
			}
			switch txn.Type {
			case Models.TransactionPayment:
				totalPaid += txn.Amount
			case Models.TransactionPurchase:
				purchases = append(purchases, txn)
			}
		}

		slices.SortStableFunc(purchases, func(a, b Models.AccTransaction) int {
			return strings.Compare(a.Date, b.Date)
		})

		for _, purchase := range purchases {
			paidForThis := purchase.Amount
			if totalPaid < paidForThis {
				paidForThis = totalPaid
			}
			totalPaid -= paidForThis
			remainingDebt := purchase.Amount - paidForThis

			if remainingDebt > 0 && purchase.DueDate != "" {
				list = append(list, UnpaidVade{
					Transaction:    purchase,
					WholesalerName: wholesaler.Name,
					UnpaidAmount:   remainingDebt,
				})
			}
		}
	}

	return list
}

// DaysUntil returns the whole-day distance from today to a date string.
// Negative means the date already passed.
func DaysUntil(date string, today time.Time) int {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(midnight).Hours() / 24)
}

// UrgentVades filters to invoices due within six days or already overdue,
// sorted by due date ascending. Due dates that do not parse are skipped
// rather than treated as due today.
func UrgentVades(vades []UnpaidVade, today time.Time) []UnpaidVade {
	var urgent []UnpaidVade
	for _, vade := range vades {
		if _, err := time.Parse(dateLayout, vade.Transaction.DueDate); err != nil {
			continue
		}
		if DaysUntil(vade.Transaction.DueDate, today) <= 6 {
			urgent = append(urgent, vade)
		}
	}
	slices.SortStableFunc(urgent, func(a, b UnpaidVade) int {
		return strings.Compare(a.Transaction.DueDate, b.Transaction.DueDate)
	})
	return urgent
}

// VadesInMonth filters unpaid invoices to those due in one calendar month,
// for the vade calendar.
func VadesInMonth(vades []UnpaidVade, year int, month int) []UnpaidVade {
	var filtered []UnpaidVade
	for _, vade := range vades {
		d, err := time.Parse(dateLayout, vade.Transaction.DueDate)
		if err != nil {
			continue
		}
		if d.Year() == year && int(d.Month()) == month {
			filtered = append(filtered, vade)
		}
	}
	return filtered
}
