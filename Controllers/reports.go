package Controllers

import (
	"fmt"
	"strconv"
	"time"

	"Puantaj/Ledger"
	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ReportController serves payroll report endpoints
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// StaffBalance pairs a staff member with their running balance
type StaffBalance struct {
	UserID     uint    `json:"user_id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Balance    float64 `json:"balance"`
}

func (c *ReportController) loadStaffBalances() ([]StaffBalance, error) {
	var users []Models.User
	if err := c.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	var entries []Models.Entry
	if err := c.DB.Find(&entries).Error; err != nil {
		return nil, err
	}

	var balances []StaffBalance
	for _, user := range users {
		balances = append(balances, StaffBalance{
			UserID:     user.ID,
			Name:       user.Name,
			HourlyRate: user.HourlyRate,
			Balance:    Ledger.UserBalance(entries, user.ID),
		})
	}

	slices.SortStableFunc(balances, func(a, b StaffBalance) int {
		switch {
		case a.Balance > b.Balance:
			return -1
		case a.Balance < b.Balance:
			return 1
		}
		return 0
	})

	return balances, nil
}

// StaffBalances returns every staff member's running balance, tips excluded
func (c *ReportController) StaffBalances(ctx *fiber.Ctx) error {
	balances, err := c.loadStaffBalances()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load balances"})
	}
	return ctx.JSON(balances)
}

func monthParams(ctx *fiber.Ctx) (int, int, error) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year")
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month")
	}
	return year, month, nil
}

// Monthly returns the shop-wide earned/deducted split for one month
func (c *ReportController) Monthly(ctx *fiber.Ctx) error {
	year, month, err := monthParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var entries []Models.Entry
	if result := c.DB.Find(&entries); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve entries"})
	}

	return ctx.JSON(Ledger.SummarizeMonth(entries, year, month))
}

// Daily returns one day's attendance sheet: entries grouped per person plus
// the day's credit total.
func (c *ReportController) Daily(ctx *fiber.Ctx) error {
	date := ctx.Query("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	var entries []Models.Entry
	if result := c.DB.Where("date = ?", date).Order("id").Find(&entries); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve entries"})
	}

	byUser := make(map[uint][]Models.Entry)
	for _, entry := range entries {
		byUser[entry.UserID] = append(byUser[entry.UserID], entry)
	}

	return ctx.JSON(fiber.Map{
		"date":         date,
		"entries":      entries,
		"by_user":      byUser,
		"credit_total": Ledger.DayCreditTotal(entries, date),
	})
}

// ExportMonthly writes the month's per-staff report as an Excel workbook
func (c *ReportController) ExportMonthly(ctx *fiber.Ctx) error {
	year, month, err := monthParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var users []Models.User
	if result := c.DB.Order("name").Find(&users); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}
	var entries []Models.Entry
	if result := c.DB.Where("date LIKE ?", fmt.Sprintf("%04d-%02d%%", year, month)).Find(&entries); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve entries"})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	headers := []string{"Staff", "Earned", "Deducted", "Net", "Tips (info)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	row := 2
	for _, user := range users {
		var userEntries []Models.Entry
		var tips float64
		for _, entry := range entries {
			if entry.UserID != user.ID {
				continue
			}
			if entry.Type == Models.EntryTip {
				tips += entry.Amount
				continue
			}
			userEntries = append(userEntries, entry)
		}
		summary := Ledger.SummarizeMonth(userEntries, year, month)

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), user.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.Earned)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), summary.Deducted)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), summary.Net)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tips)
		row++
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("puantaj_%04d_%02d.xlsx", year, month)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Send(buffer.Bytes())
}
