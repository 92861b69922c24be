package Ledger

import (
	"testing"

	"Puantaj/Models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func entry(userID uint, entryType string, amount float64, date string) Models.Entry {
	return Models.Entry{
		UserID: userID,
		Type:   entryType,
		Amount: amount,
		Date:   date,
	}
}

func TestBalanceExcludesTips(t *testing.T) {
	entries := []Models.Entry{
		entry(1, Models.EntryEightHour, 800, "2024-05-01"),
		entry(1, Models.EntryTip, 150, "2024-05-01"),
		entry(1, Models.EntryExpense, -120, "2024-05-02"),
		entry(1, Models.EntryTip, 90, "2024-05-03"),
		entry(1, Models.EntryPayment, -500, "2024-05-04"),
	}

	assert.Equal(t, 180.0, Balance(entries))

	// balance(E) == balance(E \ tips)
	var withoutTips []Models.Entry
	for _, e := range entries {
		if e.Type != Models.EntryTip {
			withoutTips = append(withoutTips, e)
		}
	}
	assert.Equal(t, Balance(withoutTips), Balance(entries))
}

func TestBalanceEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, Balance(nil))
	assert.Equal(t, 0.0, Balance([]Models.Entry{}))
}

func TestUserBalanceFiltersByStaffMember(t *testing.T) {
	entries := []Models.Entry{
		entry(1, Models.EntryEightHour, 800, "2024-05-01"),
		entry(2, Models.EntryEightHour, 800, "2024-05-01"),
		entry(1, Models.EntryPayment, -300, "2024-05-02"),
	}

	assert.Equal(t, 500.0, UserBalance(entries, 1))
	assert.Equal(t, 800.0, UserBalance(entries, 2))
	assert.Equal(t, 0.0, UserBalance(entries, 3))
}

func TestSummarizeMonth(t *testing.T) {
	entries := []Models.Entry{
		entry(1, Models.EntryEightHour, 800, "2024-05-01"),
		entry(1, Models.EntryCustom, 200, "2024-05-15"),
		entry(1, Models.EntryExpense, -120, "2024-05-20"),
		entry(1, Models.EntryTip, 999, "2024-05-21"), // never counted
		entry(1, Models.EntryEightHour, 800, "2024-06-01"),
	}

	summary := SummarizeMonth(entries, 2024, 5)
	assert.Equal(t, 1000.0, summary.Earned)
	assert.Equal(t, 120.0, summary.Deducted)
	assert.Equal(t, 880.0, summary.Net)
}

func TestSummarizeMonthRerunIsIdentical(t *testing.T) {
	entries := []Models.Entry{
		entry(1, Models.EntryCustom, 250, "2024-05-10"),
		entry(1, Models.EntryPayment, -100, "2024-05-11"),
	}

	first := SummarizeMonth(entries, 2024, 5)
	second := SummarizeMonth(entries, 2024, 5)
	assert.Equal(t, first, second)
}

func TestDayCreditTotal(t *testing.T) {
	entries := []Models.Entry{
		entry(1, Models.EntryFiveHour, 500, "2024-05-01"),
		entry(2, Models.EntryEightHour, 800, "2024-05-01"),
		entry(1, Models.EntryExpense, -200, "2024-05-01"), // deductions excluded
		entry(1, Models.EntryFiveHour, 500, "2024-05-02"),
	}

	assert.Equal(t, 1300.0, DayCreditTotal(entries, "2024-05-01"))
}

func withID(id uint) gorm.Model {
	return gorm.Model{ID: id}
}
