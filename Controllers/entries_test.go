package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSignedAmountDeductionsNegative(t *testing.T) {
	assert.Equal(t, -120.0, signedAmount(Models.EntryExpense, 120))
	assert.Equal(t, -120.0, signedAmount(Models.EntryExpense, -120))
	assert.Equal(t, -75.5, signedAmount(Models.EntryPayment, 75.5))
}

func TestSignedAmountCreditsPositive(t *testing.T) {
	assert.Equal(t, 500.0, signedAmount(Models.EntryFiveHour, 500))
	assert.Equal(t, 800.0, signedAmount(Models.EntryEightHour, -800))
	assert.Equal(t, 300.0, signedAmount(Models.EntryCustom, 300))
	assert.Equal(t, 90.0, signedAmount(Models.EntryTip, 90))
}

func setupEntryTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.User{}, &Models.Entry{}, &Models.Settings{}))

	controller := NewEntryController(db)
	app := fiber.New()
	app.Put("/entries/:id", controller.UpdateEntry)
	app.Delete("/entries/:id", controller.DeleteEntry)
	return app, db
}

func putJSON(t *testing.T, app *fiber.App, path string, payload any) int {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPut, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestUpdateEntryPartialKeepsAmount(t *testing.T) {
	app, db := setupEntryTest(t)

	entry := Models.Entry{UserID: 1, Type: Models.EntryCustom, Amount: 350, Date: "2024-05-06", Note: "mesai"}
	require.NoError(t, db.Create(&entry).Error)

	status := putJSON(t, app, fmt.Sprintf("/entries/%d", entry.ID), fiber.Map{"note": "düzeltme"})
	require.Equal(t, fiber.StatusOK, status)

	var updated Models.Entry
	require.NoError(t, db.First(&updated, entry.ID).Error)
	assert.Equal(t, 350.0, updated.Amount)
	assert.Equal(t, "düzeltme", updated.Note)
	assert.Equal(t, "2024-05-06", updated.Date)
}

func TestUpdateEntryTypeChangeRefixesSign(t *testing.T) {
	app, db := setupEntryTest(t)

	entry := Models.Entry{UserID: 1, Type: Models.EntryCustom, Amount: 200, Date: "2024-05-06"}
	require.NoError(t, db.Create(&entry).Error)

	status := putJSON(t, app, fmt.Sprintf("/entries/%d", entry.ID), fiber.Map{"type": Models.EntryExpense})
	require.Equal(t, fiber.StatusOK, status)

	var updated Models.Entry
	require.NoError(t, db.First(&updated, entry.ID).Error)
	assert.Equal(t, Models.EntryExpense, updated.Type)
	assert.Equal(t, -200.0, updated.Amount)
}

func TestUpdateEntryRejectsBadType(t *testing.T) {
	app, db := setupEntryTest(t)

	entry := Models.Entry{UserID: 1, Type: Models.EntryCustom, Amount: 200, Date: "2024-05-06"}
	require.NoError(t, db.Create(&entry).Error)

	status := putJSON(t, app, fmt.Sprintf("/entries/%d", entry.ID), fiber.Map{"type": "BONUS"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDeleteEntry(t *testing.T) {
	app, db := setupEntryTest(t)

	entry := Models.Entry{UserID: 1, Type: Models.EntryCustom, Amount: 200, Date: "2024-05-06"}
	require.NoError(t, db.Create(&entry).Error)

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/entries/%d", entry.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&Models.Entry{}).Where("id = ?", entry.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/entries/99999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEntryInputValidate(t *testing.T) {
	valid := EntryInput{UserID: 1, Type: Models.EntryCustom, Amount: 100, Date: "2024-05-06"}
	assert.NoError(t, valid.validate())

	missing := EntryInput{Type: Models.EntryCustom, Date: "2024-05-06"}
	assert.Error(t, missing.validate())

	badType := EntryInput{UserID: 1, Type: "BONUS", Date: "2024-05-06"}
	assert.Error(t, badType.validate())

	badDate := EntryInput{UserID: 1, Type: Models.EntryCustom, Date: "06.05.2024"}
	assert.Error(t, badDate.validate())
}
