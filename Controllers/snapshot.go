package Controllers

import (
	"encoding/json"
	"time"

	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotController exports and imports the whole database as one JSON
// document for backup/restore.
type SnapshotController struct {
	DB *gorm.DB
}

// NewSnapshotController creates a new SnapshotController
func NewSnapshotController(db *gorm.DB) *SnapshotController {
	return &SnapshotController{DB: db}
}

// Export bundles every collection plus the settings row
func (c *SnapshotController) Export(ctx *fiber.Ctx) error {
	snapshot := Models.Snapshot{
		Version:   Models.SnapshotVersion,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if err := c.DB.Find(&snapshot.Users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export users"})
	}
	if err := c.DB.Find(&snapshot.Entries).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export entries"})
	}
	if err := c.DB.Find(&snapshot.Wholesalers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export wholesalers"})
	}
	if err := c.DB.Find(&snapshot.Transactions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export transactions"})
	}
	settings, err := Models.GetSettings(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export settings"})
	}
	snapshot.Settings = &settings

	// Empty tables must still export as arrays so the file stays importable.
	if snapshot.Users == nil {
		snapshot.Users = []Models.User{}
	}
	if snapshot.Entries == nil {
		snapshot.Entries = []Models.Entry{}
	}
	if snapshot.Wholesalers == nil {
		snapshot.Wholesalers = []Models.Wholesaler{}
	}
	if snapshot.Transactions == nil {
		snapshot.Transactions = []Models.AccTransaction{}
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="puantaj_backup.json"`)
	return ctx.JSON(snapshot)
}

// Import upserts every collection from a snapshot by primary key; the last
// write wins, there is no conflict resolution beyond that.
func (c *SnapshotController) Import(ctx *fiber.Ctx) error {
	var snapshot Models.Snapshot
	if err := ctx.BodyParser(&snapshot); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if snapshot.Users == nil || snapshot.Entries == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Not a valid backup file"})
	}

	upsert := clause.OnConflict{UpdateAll: true}
	// Password hashes never leave the database (json:"-"), so a snapshot
	// carries none; the user upsert must leave the stored hash alone.
	userUpsert := clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"name", "permission", "hourly_rate", "avatar", "updated_at", "deleted_at"}),
	}
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if len(snapshot.Users) > 0 {
			if err := tx.Clauses(userUpsert).Create(&snapshot.Users).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Entries) > 0 {
			if err := tx.Clauses(upsert).Create(&snapshot.Entries).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Wholesalers) > 0 {
			if err := tx.Clauses(upsert).Create(&snapshot.Wholesalers).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Transactions) > 0 {
			if err := tx.Clauses(upsert).Create(&snapshot.Transactions).Error; err != nil {
				return err
			}
		}
		if snapshot.Settings != nil {
			settings, err := Models.GetSettings(tx)
			if err != nil {
				return err
			}
			settings.FiveHourAmount = snapshot.Settings.FiveHourAmount
			settings.EightHourAmount = snapshot.Settings.EightHourAmount
			if err := tx.Save(&settings).Error; err != nil {
				return err
			}
		}

		counts, _ := json.Marshal(fiber.Map{
			"users":        len(snapshot.Users),
			"entries":      len(snapshot.Entries),
			"wholesalers":  len(snapshot.Wholesalers),
			"transactions": len(snapshot.Transactions),
		})
		return tx.Create(&Models.SnapshotImport{
			Version: snapshot.Version,
			Counts:  counts,
		}).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Import failed: " + err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Snapshot imported successfully"})
}
