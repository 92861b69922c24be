package Controllers

import (
	"math"
	"strconv"
	"time"

	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TransactionController handles supplier ledger endpoints
type TransactionController struct {
	DB *gorm.DB
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// GetWholesalerTransactions retrieves all transactions for a specific supplier
func (c *TransactionController) GetWholesalerTransactions(ctx *fiber.Ctx) error {
	wholesalerID, err := strconv.Atoi(ctx.Params("wholesaler_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wholesaler ID"})
	}

	var wholesaler Models.Wholesaler
	if result := c.DB.First(&wholesaler, wholesalerID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wholesaler not found"})
	}

	var transactions []Models.AccTransaction
	result := c.DB.Where("wholesaler_id = ?", wholesalerID).Order("date DESC, id DESC").Find(&transactions)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve transactions"})
	}

	return ctx.JSON(transactions)
}

// GetTransaction retrieves a single transaction by ID
func (c *TransactionController) GetTransaction(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var transaction Models.AccTransaction
	if result := c.DB.First(&transaction, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}

	return ctx.JSON(transaction)
}

type TransactionInput struct {
	Type    string  `json:"type"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
	DueDate string  `json:"due_date"`
	Note    string  `json:"note"`
}

func (in TransactionInput) validate() error {
	if !Models.ValidTransactionType(in.Type) {
		return fiber.NewError(fiber.StatusBadRequest, "Type must be PURCHASE or PAYMENT")
	}
	if in.Amount == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Amount is a required field")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}
	if in.DueDate != "" {
		if _, err := time.Parse("2006-01-02", in.DueDate); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid due date format. Use YYYY-MM-DD")
		}
	}
	return nil
}

// CreateTransaction records a purchase invoice or payment for a supplier.
// Amounts are stored as positive magnitudes; direction comes from the type.
func (c *TransactionController) CreateTransaction(ctx *fiber.Ctx) error {
	wholesalerID, err := strconv.Atoi(ctx.Params("wholesaler_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wholesaler ID"})
	}

	var wholesaler Models.Wholesaler
	if result := c.DB.First(&wholesaler, wholesalerID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wholesaler not found"})
	}

	var input TransactionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := input.validate(); err != nil {
		ferr := err.(*fiber.Error)
		return ctx.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	transaction := Models.AccTransaction{
		WholesalerID: uint(wholesalerID),
		Type:         input.Type,
		Amount:       math.Abs(input.Amount),
		Date:         input.Date,
		DueDate:      input.DueDate,
		Note:         input.Note,
	}

	if result := c.DB.Create(&transaction); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create transaction"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(transaction)
}

// UpdateTransaction rewrites an existing transaction
func (c *TransactionController) UpdateTransaction(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var transaction Models.AccTransaction
	if result := c.DB.First(&transaction, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}

	var input TransactionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Type == "" {
		input.Type = transaction.Type
	}
	if input.Date == "" {
		input.Date = transaction.Date
	}
	if input.Amount == 0 {
		input.Amount = transaction.Amount
	}
	if err := input.validate(); err != nil {
		ferr := err.(*fiber.Error)
		return ctx.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	transaction.Type = input.Type
	transaction.Amount = math.Abs(input.Amount)
	transaction.Date = input.Date
	transaction.DueDate = input.DueDate
	transaction.Note = input.Note

	if result := c.DB.Save(&transaction); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update transaction"})
	}

	return ctx.JSON(transaction)
}

// DeleteTransaction removes a transaction
func (c *TransactionController) DeleteTransaction(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var transaction Models.AccTransaction
	if result := c.DB.First(&transaction, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}

	if result := c.DB.Delete(&transaction); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete transaction"})
	}

	return ctx.JSON(fiber.Map{"message": "Transaction deleted successfully"})
}
