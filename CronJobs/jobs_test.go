package CronJobs

import (
	"testing"
	"time"

	"Puantaj/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupVadeCheckDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.Wholesaler{}, &Models.AccTransaction{}))
	return db
}

func TestVadeCheckerFindsUrgentInvoices(t *testing.T) {
	db := setupVadeCheckDB(t)

	supplier := Models.Wholesaler{Name: "Toptan Gıda"}
	require.NoError(t, db.Create(&supplier).Error)
	require.NoError(t, db.Create(&[]Models.AccTransaction{
		{WholesalerID: supplier.ID, Type: Models.TransactionPurchase, Amount: 400, Date: "2024-05-01", DueDate: "2024-05-12"},
		{WholesalerID: supplier.ID, Type: Models.TransactionPurchase, Amount: 300, Date: "2024-05-02", DueDate: "2024-06-20"},
		{WholesalerID: supplier.ID, Type: Models.TransactionPayment, Amount: 100, Date: "2024-05-03"},
	}).Error)

	checker := NewVadeChecker(db, false, false)
	today := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	urgent, err := checker.urgentVades(today)
	require.NoError(t, err)
	require.Len(t, urgent, 1)
	assert.Equal(t, "Toptan Gıda", urgent[0].WholesalerName)
	assert.Equal(t, "2024-05-12", urgent[0].Transaction.DueDate)
	assert.Equal(t, 300.0, urgent[0].UnpaidAmount)

	// The manual entry point runs the same check end to end.
	checker.RunManualCheck()
}

func TestVadeCheckerEmptyBook(t *testing.T) {
	db := setupVadeCheckDB(t)

	checker := NewVadeChecker(db, false, false)
	urgent, err := checker.urgentVades(time.Now())
	require.NoError(t, err)
	assert.Empty(t, urgent)
}
