package Controllers

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"Puantaj/Ledger"
	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EntryController handles payroll ledger endpoints
type EntryController struct {
	DB *gorm.DB
}

// NewEntryController creates a new EntryController
func NewEntryController(db *gorm.DB) *EntryController {
	return &EntryController{DB: db}
}

// GetEntries retrieves entries, optionally filtered by date, user or month
func (c *EntryController) GetEntries(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.Entry{})

	if date := ctx.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if userID := ctx.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if month := ctx.Query("month"); month != "" { // YYYY-MM
		query = query.Where("date LIKE ?", month+"%")
	}

	var entries []Models.Entry
	if result := query.Order("date, id").Find(&entries); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve entries"})
	}

	return ctx.JSON(entries)
}

// GetMyEntries returns the calling staff member's own ledger and balance
func (c *EntryController) GetMyEntries(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	var entries []Models.Entry
	if result := c.DB.Where("user_id = ?", user.ID).Order("date, id").Find(&entries); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve entries"})
	}

	now := time.Now()
	return ctx.JSON(fiber.Map{
		"entries": entries,
		"balance": Ledger.Balance(entries),
		"month":   Ledger.SummarizeMonth(entries, now.Year(), int(now.Month())),
	})
}

type EntryInput struct {
	UserID uint     `json:"user_id"`
	Type   string   `json:"type"`
	Amount float64  `json:"amount"`
	Hours  *float64 `json:"hours"`
	Date   string   `json:"date"`
	Note   string   `json:"note"`
}

func (in EntryInput) validate() error {
	if in.UserID == 0 || in.Date == "" {
		return fmt.Errorf("user_id and date are required fields")
	}
	if !Models.ValidEntryType(in.Type) {
		return fmt.Errorf("unknown entry type %q", in.Type)
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("invalid date format. Use YYYY-MM-DD")
	}
	return nil
}

// signedAmount fixes the sign once at creation time: deduction types store a
// negative amount, everything else positive.
func signedAmount(entryType string, amount float64) float64 {
	if Models.EntryDeduction(entryType) {
		return -math.Abs(amount)
	}
	return math.Abs(amount)
}

// CreateEntry records a payroll ledger line for a staff member
func (c *EntryController) CreateEntry(ctx *fiber.Ctx) error {
	var input EntryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := input.validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user Models.User
	if result := c.DB.First(&user, input.UserID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	entry := Models.Entry{
		UserID: input.UserID,
		Type:   input.Type,
		Amount: signedAmount(input.Type, input.Amount),
		Hours:  input.Hours,
		Date:   input.Date,
		Note:   input.Note,
	}

	if result := c.DB.Create(&entry); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create entry"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(entry)
}

type UpdateEntryInput struct {
	UserID *uint    `json:"user_id"`
	Type   *string  `json:"type"`
	Amount *float64 `json:"amount"`
	Hours  *float64 `json:"hours"`
	Date   *string  `json:"date"`
	Note   *string  `json:"note"`
}

// UpdateEntry patches the provided fields only; omitted fields keep their
// stored values. The amount sign is re-fixed from the resulting type.
func (c *EntryController) UpdateEntry(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid entry ID"})
	}

	var entry Models.Entry
	if result := c.DB.First(&entry, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Entry not found"})
	}

	var input UpdateEntryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.UserID != nil {
		entry.UserID = *input.UserID
	}
	if input.Type != nil {
		entry.Type = *input.Type
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Hours != nil {
		entry.Hours = input.Hours
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Note != nil {
		entry.Note = *input.Note
	}

	check := EntryInput{UserID: entry.UserID, Type: entry.Type, Date: entry.Date}
	if err := check.validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	entry.Amount = signedAmount(entry.Type, entry.Amount)

	if result := c.DB.Save(&entry); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update entry"})
	}

	return ctx.JSON(entry)
}

// DeleteEntry removes a single entry
func (c *EntryController) DeleteEntry(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid entry ID"})
	}

	var entry Models.Entry
	if result := c.DB.First(&entry, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Entry not found"})
	}

	if result := c.DB.Delete(&entry); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete entry"})
	}

	return ctx.JSON(fiber.Map{"message": "Entry deleted successfully"})
}

type QuickEntryInput struct {
	UserID uint   `json:"user_id"`
	Type   string `json:"type"` // 5H or 8H
	Date   string `json:"date"`
}

// QuickEntry records a fixed-shift day using the configured amounts
func (c *EntryController) QuickEntry(ctx *fiber.Ctx) error {
	var input QuickEntryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Type != Models.EntryFiveHour && input.Type != Models.EntryEightHour {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quick entries are 5H or 8H only"})
	}
	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	}

	var user Models.User
	if result := c.DB.First(&user, input.UserID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	settings, err := Models.GetSettings(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
	}

	amount := settings.FiveHourAmount
	hours := 5.0
	note := "5 Saat Mesai"
	if input.Type == Models.EntryEightHour {
		amount = settings.EightHourAmount
		hours = 8.0
		note = "8 Saat Tam Gün"
	}

	entry := Models.Entry{
		UserID: input.UserID,
		Type:   input.Type,
		Amount: amount,
		Hours:  &hours,
		Date:   input.Date,
		Note:   note,
	}

	if result := c.DB.Create(&entry); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create entry"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(entry)
}

// DeleteTipsByDate clears every tip entry recorded on one day
func (c *EntryController) DeleteTipsByDate(ctx *fiber.Ctx) error {
	date := ctx.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	result := c.DB.Where("date = ? AND type = ?", date, Models.EntryTip).Delete(&Models.Entry{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete tips"})
	}

	return ctx.JSON(fiber.Map{"message": "Tips deleted", "count": result.RowsAffected})
}
