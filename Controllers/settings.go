package Controllers

import (
	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SettingsController reads and updates the quick-entry amounts
type SettingsController struct {
	DB *gorm.DB
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// GetSettings returns the single settings row
func (c *SettingsController) GetSettings(ctx *fiber.Ctx) error {
	settings, err := Models.GetSettings(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
	}
	return ctx.JSON(settings)
}

type UpdateSettingsInput struct {
	FiveHourAmount  float64 `json:"five_hour_amount" validate:"required,gt=0"`
	EightHourAmount float64 `json:"eight_hour_amount" validate:"required,gt=0"`
}

// UpdateSettings validates and replaces the quick-entry amounts
func (c *SettingsController) UpdateSettings(ctx *fiber.Ctx) error {
	var input UpdateSettingsInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := Models.Validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": Models.ValidationErrors(err)})
	}

	settings, err := Models.GetSettings(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
	}

	settings.FiveHourAmount = input.FiveHourAmount
	settings.EightHourAmount = input.EightHourAmount
	if err := c.DB.Save(&settings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save settings"})
	}

	return ctx.JSON(settings)
}
