package CronJobs

import (
	"fmt"
	"log"
	"os"
	"time"

	"Puantaj/Ledger"
	"Puantaj/Models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// VadeChecker represents a scheduled due date check service
type VadeChecker struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	saveToFile     bool
	runImmediately bool
	jobID          cron.EntryID
}

// NewVadeChecker creates a new due date checker with the given configuration
func NewVadeChecker(db *gorm.DB, saveToFile, runImmediately bool) *VadeChecker {
	return &VadeChecker{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		saveToFile:     saveToFile,
		runImmediately: runImmediately,
	}
}

// Start initiates the due date checker cron job
func (v *VadeChecker) Start() error {
	// Add the scheduled task
	var err error
	v.jobID, err = v.cronScheduler.AddFunc("0 0 1 * * *", func() {
		log.Println("Running scheduled daily due date check")
		v.runVadeCheck()
	})

	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	// Start the scheduler
	v.cronScheduler.Start()
	fmt.Println("Due date check scheduler started - will run daily at 1:00 AM")

	// Run immediately if requested
	if v.runImmediately {
		fmt.Println("Running initial due date check")
		v.runVadeCheck()
	}

	return nil
}

// Stop terminates the due date checker
func (v *VadeChecker) Stop() {
	if v.cronScheduler != nil {
		v.cronScheduler.Stop()
		log.Println("Due date check scheduler stopped")
	}
}

// UpdateSchedule changes the schedule of the due date checker
// Format: "0 0 1 * * *" = At 01:00:00 AM every day
func (v *VadeChecker) UpdateSchedule(schedule string) error {
	// Remove existing job
	v.cronScheduler.Remove(v.jobID)

	// Add with new schedule
	var err error
	v.jobID, err = v.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled due date check")
		v.runVadeCheck()
	})

	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Due date check schedule updated to: %s\n", schedule)
	return nil
}

// RunManualCheck executes a manual due date check
func (v *VadeChecker) RunManualCheck() {
	log.Println("Running manual due date check")
	v.runVadeCheck()
}

// urgentVades loads the supplier book and returns invoices due within a week
// or already overdue, ordered by due date.
func (v *VadeChecker) urgentVades(today time.Time) ([]Ledger.UnpaidVade, error) {
	var wholesalers []Models.Wholesaler
	if err := v.db.Find(&wholesalers).Error; err != nil {
		return nil, err
	}
	var transactions []Models.AccTransaction
	if err := v.db.Find(&transactions).Error; err != nil {
		return nil, err
	}
	unpaid := Ledger.UnpaidVades(wholesalers, transactions)
	return Ledger.UrgentVades(unpaid, today), nil
}

// runVadeCheck executes the due date check and handles errors
func (v *VadeChecker) runVadeCheck() {
	if v.saveToFile {
		v.setupRunLog()
	}

	today := time.Now()
	urgent, err := v.urgentVades(today)
	if err != nil {
		log.Printf("Error in due date check: %v\n", err)
		return
	}

	if len(urgent) == 0 {
		log.Println("No upcoming supplier due dates within a week")
		return
	}

	log.Printf("Found %d supplier payments due within a week:\n", len(urgent))
	for _, item := range urgent {
		log.Printf("  %s: %.2f due %s (%d days)\n",
			item.WholesalerName, item.UnpaidAmount, item.Transaction.DueDate,
			Ledger.DaysUntil(item.Transaction.DueDate, today))
	}
}

// setupRunLog creates a log file specifically for this run
func (v *VadeChecker) setupRunLog() {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	// Create log file with timestamp in name
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFile, err := os.OpenFile(fmt.Sprintf("logs/vade_check_%s.log", timestamp),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)

	if err != nil {
		log.Printf("Error opening run log file: %v\n", err)
		return
	}

	// We don't close the file because the log package will continue using it
	log.SetOutput(logFile)
}
