package Ledger

import (
	"testing"
	"time"

	"Puantaj/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchase(id, wholesalerID uint, amount float64, date, dueDate string) Models.AccTransaction {
	return Models.AccTransaction{
		Model:        withID(id),
		WholesalerID: wholesalerID,
		Type:         Models.TransactionPurchase,
		Amount:       amount,
		Date:         date,
		DueDate:      dueDate,
	}
}

func payment(id, wholesalerID uint, amount float64, date string) Models.AccTransaction {
	return Models.AccTransaction{
		Model:        withID(id),
		WholesalerID: wholesalerID,
		Type:         Models.TransactionPayment,
		Amount:       amount,
		Date:         date,
	}
}

func TestUnpaidVadesFIFOAllocation(t *testing.T) {
	wholesalers := []Models.Wholesaler{{Model: withID(1), Name: "Meral Gıda"}}
	transactions := []Models.AccTransaction{
		purchase(1, 1, 100, "2024-04-01", "2024-04-15"),
		purchase(2, 1, 200, "2024-04-10", "2024-04-25"),
		purchase(3, 1, 300, "2024-04-20", "2024-05-05"),
		payment(4, 1, 150, "2024-04-12"),
	}

	vades := UnpaidVades(wholesalers, transactions)

	// 150 paid consumes the oldest invoice (100) and half of the second (50).
	require.Len(t, vades, 2)
	assert.Equal(t, uint(2), vades[0].Transaction.ID)
	assert.Equal(t, 150.0, vades[0].UnpaidAmount)
	assert.Equal(t, uint(3), vades[1].Transaction.ID)
	assert.Equal(t, 300.0, vades[1].UnpaidAmount)

	var remaining float64
	for _, v := range vades {
		remaining += v.UnpaidAmount
	}
	assert.Equal(t, 450.0, remaining) // Σ amounts − total paid

	assert.Equal(t, "Meral Gıda", vades[0].WholesalerName)
}

func TestUnpaidVadesSkipsDueDatelessPurchases(t *testing.T) {
	wholesalers := []Models.Wholesaler{{Model: withID(1), Name: "Kasap"}}
	transactions := []Models.AccTransaction{
		purchase(1, 1, 400, "2024-04-01", ""), // no due date, fully unpaid
	}

	vades := UnpaidVades(wholesalers, transactions)
	assert.Empty(t, vades)
}

func TestUnpaidVadesFullyPaidSupplier(t *testing.T) {
	wholesalers := []Models.Wholesaler{{Model: withID(1), Name: "Fırın"}}
	transactions := []Models.AccTransaction{
		purchase(1, 1, 250, "2024-04-01", "2024-04-20"),
		payment(2, 1, 250, "2024-04-05"),
	}

	assert.Empty(t, UnpaidVades(wholesalers, transactions))
}

func TestUnpaidVadesIgnoresOtherSuppliersPayments(t *testing.T) {
	wholesalers := []Models.Wholesaler{
		{Model: withID(1), Name: "A"},
		{Model: withID(2), Name: "B"},
	}
	transactions := []Models.AccTransaction{
		purchase(1, 1, 100, "2024-04-01", "2024-04-20"),
		payment(2, 2, 100, "2024-04-05"), // different supplier
	}

	vades := UnpaidVades(wholesalers, transactions)
	require.Len(t, vades, 1)
	assert.Equal(t, 100.0, vades[0].UnpaidAmount)
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil("2024-05-10", today))
	assert.Equal(t, 6, DaysUntil("2024-05-16", today))
	assert.Equal(t, 7, DaysUntil("2024-05-17", today))
	assert.Equal(t, -3, DaysUntil("2024-05-07", today))
}

func TestUrgentVadesBoundaryAndOrder(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	vades := []UnpaidVade{
		{Transaction: purchase(1, 1, 100, "2024-04-01", "2024-05-17"), UnpaidAmount: 100}, // 7 days out
		{Transaction: purchase(2, 1, 100, "2024-04-01", "2024-05-16"), UnpaidAmount: 100}, // exactly 6
		{Transaction: purchase(3, 1, 100, "2024-04-01", "2024-05-01"), UnpaidAmount: 100}, // overdue
		{Transaction: purchase(4, 1, 100, "2024-04-01", "2024-05-10"), UnpaidAmount: 100}, // due today
	}

	urgent := UrgentVades(vades, today)

	require.Len(t, urgent, 3)
	assert.Equal(t, "2024-05-01", urgent[0].Transaction.DueDate)
	assert.Equal(t, "2024-05-10", urgent[1].Transaction.DueDate)
	assert.Equal(t, "2024-05-16", urgent[2].Transaction.DueDate)
}

func TestUrgentVadesSkipsMalformedDueDates(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	vades := []UnpaidVade{
		{Transaction: purchase(1, 1, 100, "2024-04-01", "10.05.2024"), UnpaidAmount: 100},
		{Transaction: purchase(2, 1, 100, "2024-04-01", "not-a-date"), UnpaidAmount: 100},
		{Transaction: purchase(3, 1, 100, "2024-04-01", "2024-05-12"), UnpaidAmount: 100},
	}

	urgent := UrgentVades(vades, today)

	require.Len(t, urgent, 1)
	assert.Equal(t, "2024-05-12", urgent[0].Transaction.DueDate)
}

func TestVadesInMonth(t *testing.T) {
	vades := []UnpaidVade{
		{Transaction: purchase(1, 1, 100, "2024-04-01", "2024-05-17")},
		{Transaction: purchase(2, 1, 100, "2024-04-01", "2024-06-02")},
		{Transaction: purchase(3, 1, 100, "2024-04-01", "2023-05-20")}, // wrong year
	}

	filtered := VadesInMonth(vades, 2024, 5)
	require.Len(t, filtered, 1)
	assert.Equal(t, uint(1), filtered[0].Transaction.ID)
}
