package Models

import (
	"gorm.io/gorm"
)

// Supplier ledger transaction types. Amounts are always stored as a positive
// magnitude; the direction comes from the type.
const (
	TransactionPurchase = "PURCHASE"
	TransactionPayment  = "PAYMENT"
)

type Wholesaler struct {
	gorm.Model
	Name          string `json:"name" gorm:"not null;uniqueIndex"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`

	Transactions []AccTransaction `json:"transactions,omitempty" gorm:"foreignKey:WholesalerID"`
}

// AccTransaction represents a supplier ledger line (invoice or payment)
type AccTransaction struct {
	gorm.Model
	WholesalerID uint    `json:"wholesaler_id" gorm:"not null;index"`
	Type         string  `json:"type" gorm:"size:10;not null"`
	Amount       float64 `json:"amount" gorm:"not null"`
	Date         string  `json:"date" gorm:"size:10;not null;index"`
	DueDate      string  `json:"due_date" gorm:"size:10"`
	Note         string  `json:"note"`
}

// ValidTransactionType reports whether t is PURCHASE or PAYMENT.
func ValidTransactionType(t string) bool {
	return t == TransactionPurchase || t == TransactionPayment
}
