package Controllers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSnapshotTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Models.User{}, &Models.Wholesaler{}, &Models.Settings{},
		&Models.Entry{}, &Models.AccTransaction{}, &Models.SnapshotImport{},
	))

	controller := NewSnapshotController(db)
	app := fiber.New()
	app.Get("/snapshot/export", controller.Export)
	app.Post("/snapshot/import", controller.Import)
	return app, db
}

func TestSnapshotRoundTripKeepsPasswordHashes(t *testing.T) {
	app, db := setupSnapshotTest(t)

	user := Models.User{Name: "Ayşe", Permission: Models.PermissionAdmin, HourlyRate: 60}
	require.NoError(t, user.SetPassword("hunter22"))
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&Models.Entry{
		UserID: user.ID, Type: Models.EntryCustom, Amount: 150, Date: "2024-05-06",
	}).Error)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/snapshot/export", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/snapshot/import", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var restored Models.User
	require.NoError(t, db.First(&restored, user.ID).Error)
	assert.True(t, restored.CheckPassword("hunter22"))
	assert.Equal(t, "Ayşe", restored.Name)

	var entryCount int64
	db.Model(&Models.Entry{}).Count(&entryCount)
	assert.Equal(t, int64(1), entryCount)

	var audit Models.SnapshotImport
	require.NoError(t, db.First(&audit).Error)
	assert.Equal(t, Models.SnapshotVersion, audit.Version)
}

func TestSnapshotImportUpdatesUserFields(t *testing.T) {
	app, db := setupSnapshotTest(t)

	user := Models.User{Name: "Mehmet", Permission: Models.PermissionStaff, HourlyRate: 40}
	require.NoError(t, user.SetPassword("staff-pass"))
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/snapshot/export", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// Change the stored rate; restoring the backup should roll it back
	// without touching the credential.
	require.NoError(t, db.Model(&Models.User{}).Where("id = ?", user.ID).Update("hourly_rate", 99).Error)

	req := httptest.NewRequest(fiber.MethodPost, "/snapshot/import", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var restored Models.User
	require.NoError(t, db.First(&restored, user.ID).Error)
	assert.Equal(t, 40.0, restored.HourlyRate)
	assert.True(t, restored.CheckPassword("staff-pass"))
}

func TestSnapshotImportRejectsInvalidPayload(t *testing.T) {
	app, _ := setupSnapshotTest(t)

	req := httptest.NewRequest(fiber.MethodPost, "/snapshot/import", bytes.NewReader([]byte(`{"version":"1.0"}`)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
