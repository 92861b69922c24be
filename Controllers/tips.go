package Controllers

import (
	"strconv"

	"Puantaj/Ledger"
	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TipController serves the advisory weekly tip split. It computes only; the
// distribution is never persisted as entries.
type TipController struct {
	DB *gorm.DB
}

// NewTipController creates a new TipController
func NewTipController(db *gorm.DB) *TipController {
	return &TipController{DB: db}
}

// Distribution previews the split of a tip pool over the week ending on the
// given Sunday, proportional to hours worked.
func (c *TipController) Distribution(ctx *fiber.Ctx) error {
	sunday := ctx.Query("sunday")
	if sunday == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sunday is a required query parameter"})
	}
	pool, err := strconv.ParseFloat(ctx.Query("pool", "0"), 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid pool amount"})
	}

	var users []Models.User
	if result := c.DB.Find(&users); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}
	var entries []Models.Entry
	if result := c.DB.Find(&entries); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve entries"})
	}

	dist, err := Ledger.DistributeTips(users, entries, sunday, pool)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(dist)
}
