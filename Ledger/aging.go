package Ledger

import (
	"strings"
	"time"

	"Puantaj/Models"

	"golang.org/x/exp/slices"
)

// AgingBuckets holds outstanding supplier debt grouped by age in days.
type AgingBuckets struct {
	Days0to30  float64 `json:"0-30"`
	Days31to60 float64 `json:"31-60"`
	Days61to90 float64 `json:"61-90"`
	Over90     float64 `json:"90+"`
}

func (b AgingBuckets) Total() float64 {
	return b.Days0to30 + b.Days31to60 + b.Days61to90 + b.Over90
}

// WholesalerBalance is the supplier's net position: purchases minus payments.
// Negative means the shop overpaid.
func WholesalerBalance(transactions []Models.AccTransaction) float64 {
	var balance float64
	for _, txn := range transactions {
		switch txn.Type {
		case Models.TransactionPurchase:
			balance += txn.Amount
		case Models.TransactionPayment:
			balance -= txn.Amount
		}
	}
	return balance
}

// Aging buckets each supplier's current outstanding balance by purchase age.
// The balance is allocated newest purchase first (LIFO): this view sizes the
// remaining exposure, which is a different lens from the FIFO invoice
// tracking in UnpaidVades, and the two intentionally stay separate.
// Balance left over after walking every purchase lands in the 90+ bucket.
func Aging(wholesalers []Models.Wholesaler, transactions []Models.AccTransaction, today time.Time) AgingBuckets {
	var buckets AgingBuckets

	for _, wholesaler := range wholesalers {
		var wTrans []Models.AccTransaction
		for _, txn := range transactions {
			if txn.WholesalerID == wholesaler.ID {
				wTrans = append(wTrans, txn)
			}
		}

		balance := WholesalerBalance(wTrans)
		if balance <= 0 {
			continue
		}

		var purchases []Models.AccTransaction
		for _, txn := range wTrans {
			if txn.Type == Models.TransactionPurchase {
				purchases = append(purchases, txn)
			}
		}
		slices.SortStableFunc(purchases, func(a, b Models.AccTransaction) int {
			return strings.Compare(b.Date, a.Date)
		})

		remainingToAllocate := balance
		for _, purchase := range purchases {
			if remainingToAllocate <= 0 {
				break
			}
			amountToPlace := purchase.Amount
			if remainingToAllocate < amountToPlace {
				amountToPlace = remainingToAllocate
			}
			age := -DaysUntil(purchase.Date, today)
			switch {
			case age <= 30:
				buckets.Days0to30 += amountToPlace
			case age <= 60:
				buckets.Days31to60 += amountToPlace
			case age <= 90:
				buckets.Days61to90 += amountToPlace
			default:
				buckets.Over90 += amountToPlace
			}
			remainingToAllocate -= amountToPlace
		}
		if remainingToAllocate > 0 {
			buckets.Over90 += remainingToAllocate
		}
	}

	return buckets
}
