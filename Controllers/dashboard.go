package Controllers

import (
	"strconv"
	"time"

	"Puantaj/Ledger"
	"Puantaj/Models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DashboardController serves the accounts-payable dashboard. Collections are
// fetched wholesale and aggregated in memory; the supplier book for a single
// shop is small enough that no query-side filtering is worth it.
type DashboardController struct {
	DB *gorm.DB
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (c *DashboardController) loadBook() ([]Models.Wholesaler, []Models.AccTransaction, error) {
	var wholesalers []Models.Wholesaler
	if err := c.DB.Find(&wholesalers).Error; err != nil {
		return nil, nil, err
	}
	var transactions []Models.AccTransaction
	if err := c.DB.Find(&transactions).Error; err != nil {
		return nil, nil, err
	}
	return wholesalers, transactions, nil
}

// WholesalerWithBalance pairs a supplier with its computed net balance
type WholesalerWithBalance struct {
	Models.Wholesaler
	Balance float64 `json:"balance"`
}

// Summary returns per-supplier balances sorted by exposure plus the total debt
func (c *DashboardController) Summary(ctx *fiber.Ctx) error {
	wholesalers, transactions, err := c.loadBook()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load supplier book"})
	}

	var balances []WholesalerWithBalance
	var totalDebt float64
	for _, wholesaler := range wholesalers {
		var wTrans []Models.AccTransaction
		for _, txn := range transactions {
			if txn.WholesalerID == wholesaler.ID {
				wTrans = append(wTrans, txn)
			}
		}
		balance := Ledger.WholesalerBalance(wTrans)
		balances = append(balances, WholesalerWithBalance{Wholesaler: wholesaler, Balance: balance})
		totalDebt += balance
	}

	slices.SortStableFunc(balances, func(a, b WholesalerWithBalance) int {
		switch {
		case a.Balance > b.Balance:
			return -1
		case a.Balance < b.Balance:
			return 1
		}
		return 0
	})

	return ctx.JSON(fiber.Map{
		"wholesalers": balances,
		"total_debt":  totalDebt,
	})
}

// Aging returns the LIFO-aged balance buckets for the whole supplier book
func (c *DashboardController) Aging(ctx *fiber.Ctx) error {
	wholesalers, transactions, err := c.loadBook()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load supplier book"})
	}

	buckets := Ledger.Aging(wholesalers, transactions, time.Now())
	return ctx.JSON(buckets)
}

// UpcomingVades returns unpaid invoices overdue or due within six days
func (c *DashboardController) UpcomingVades(ctx *fiber.Ctx) error {
	wholesalers, transactions, err := c.loadBook()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load supplier book"})
	}

	vades := Ledger.UnpaidVades(wholesalers, transactions)
	urgent := Ledger.UrgentVades(vades, time.Now())
	if urgent == nil {
		urgent = []Ledger.UnpaidVade{}
	}
	return ctx.JSON(urgent)
}

// VadeCalendar returns unpaid invoices whose due date falls in one month
func (c *DashboardController) VadeCalendar(ctx *fiber.Ctx) error {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month"})
	}

	wholesalers, transactions, loadErr := c.loadBook()
	if loadErr != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load supplier book"})
	}

	vades := Ledger.VadesInMonth(Ledger.UnpaidVades(wholesalers, transactions), year, month)
	if vades == nil {
		vades = []Ledger.UnpaidVade{}
	}
	return ctx.JSON(vades)
}
