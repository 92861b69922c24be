package Controllers

import (
	"strconv"
	"strings"
	"time"

	"Puantaj/Ledger"
	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// WholesalerController handles supplier-related API endpoints
type WholesalerController struct {
	DB *gorm.DB
}

// NewWholesalerController creates a new WholesalerController
func NewWholesalerController(db *gorm.DB) *WholesalerController {
	return &WholesalerController{DB: db}
}

// GetWholesalers retrieves all suppliers
func (c *WholesalerController) GetWholesalers(ctx *fiber.Ctx) error {
	var wholesalers []Models.Wholesaler
	if result := c.DB.Order("name").Find(&wholesalers); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve wholesalers"})
	}
	return ctx.JSON(wholesalers)
}

// GetWholesaler retrieves a single supplier by ID
func (c *WholesalerController) GetWholesaler(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wholesaler ID"})
	}

	var wholesaler Models.Wholesaler
	if result := c.DB.First(&wholesaler, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wholesaler not found"})
	}

	return ctx.JSON(wholesaler)
}

type CreateWholesalerInput struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	ContactPerson  string  `json:"contact_person"`
	OpeningBalance float64 `json:"opening_balance"`
}

// CreateWholesaler creates a supplier, with an optional opening-balance
// purchase recorded in the same database transaction.
func (c *WholesalerController) CreateWholesaler(ctx *fiber.Ctx) error {
	var input CreateWholesalerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if strings.TrimSpace(input.Name) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is a required field"})
	}

	wholesaler := Models.Wholesaler{
		Name:          strings.TrimSpace(input.Name),
		Phone:         input.Phone,
		ContactPerson: input.ContactPerson,
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&wholesaler).Error; err != nil {
			return err
		}
		if input.OpeningBalance > 0 {
			opening := Models.AccTransaction{
				WholesalerID: wholesaler.ID,
				Type:         Models.TransactionPurchase,
				Amount:       input.OpeningBalance,
				Date:         time.Now().Format("2006-01-02"),
				Note:         "Açılış Bakiyesi",
			}
			return tx.Create(&opening).Error
		}
		return nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A wholesaler with this name already exists"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create wholesaler"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(wholesaler)
}

// UpdateWholesaler updates supplier contact details
func (c *WholesalerController) UpdateWholesaler(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wholesaler ID"})
	}

	var wholesaler Models.Wholesaler
	if result := c.DB.First(&wholesaler, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wholesaler not found"})
	}

	var input Models.Wholesaler
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	c.DB.Model(&wholesaler).Updates(Models.Wholesaler{
		Name:          input.Name,
		Phone:         input.Phone,
		ContactPerson: input.ContactPerson,
	})

	return ctx.JSON(wholesaler)
}

// DeleteWholesaler removes a supplier and its entire transaction history
func (c *WholesalerController) DeleteWholesaler(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wholesaler ID"})
	}

	var wholesaler Models.Wholesaler
	if result := c.DB.First(&wholesaler, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wholesaler not found"})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wholesaler_id = ?", wholesaler.ID).Delete(&Models.AccTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&wholesaler).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete wholesaler"})
	}

	return ctx.JSON(fiber.Map{"message": "Wholesaler deleted successfully"})
}

// GetWholesalerBalance calculates the current net balance for a supplier
func (c *WholesalerController) GetWholesalerBalance(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wholesaler ID"})
	}

	var wholesaler Models.Wholesaler
	if result := c.DB.First(&wholesaler, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wholesaler not found"})
	}

	var transactions []Models.AccTransaction
	if result := c.DB.Where("wholesaler_id = ?", id).Find(&transactions); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve transactions"})
	}

	return ctx.JSON(fiber.Map{
		"wholesaler_id": id,
		"name":          wholesaler.Name,
		"balance":       Ledger.WholesalerBalance(transactions),
	})
}
