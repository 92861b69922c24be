package Models

import (
	"gorm.io/gorm"
)

// Entry types form a closed set. 5H/8H are the fixed-shift quick entries,
// CUSTOM covers overtime/bonus lines, EXPENSE and PAYMENT are deductions,
// TIP is informational only and never counts toward a balance.
const (
	EntryFiveHour  = "5H"
	EntryEightHour = "8H"
	EntryCustom    = "CUSTOM"
	EntryExpense   = "EXPENSE"
	EntryPayment   = "PAYMENT"
	EntryTip       = "TIP"
)

// Entry represents one payroll ledger line for a staff member
type Entry struct {
	gorm.Model
	UserID uint     `json:"user_id" gorm:"not null;index"`
	Type   string   `json:"type" gorm:"size:10;not null"`
	Amount float64  `json:"amount" gorm:"not null"`
	Hours  *float64 `json:"hours,omitempty"`
	Date   string   `json:"date" gorm:"size:10;not null;index"`
	Note   string   `json:"note"`
}

// ValidEntryType reports whether t belongs to the closed entry type set.
func ValidEntryType(t string) bool {
	switch t {
	case EntryFiveHour, EntryEightHour, EntryCustom, EntryExpense, EntryPayment, EntryTip:
		return true
	}
	return false
}

// EntryDeduction reports whether entries of this type are stored with a
// negative amount. The sign is assigned once at creation time.
func EntryDeduction(t string) bool {
	return t == EntryExpense || t == EntryPayment
}
