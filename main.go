package main

import (
	"log"
	"os"

	"Puantaj/Config"
	"Puantaj/CronJobs"
	"Puantaj/FiberConfig"
	"Puantaj/Models"
)

func main() {
	setupLogging()

	cfg, err := Config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	Models.Connect(cfg)

	vadeChecker := CronJobs.NewVadeChecker(Models.DB, false, true)
	if err := vadeChecker.Start(); err != nil {
		log.Printf("Failed to start due date checker: %v\n", err)
	}
	defer vadeChecker.Stop()

	FiberConfig.FiberConfig(cfg)
}

func setupLogging() {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	// Set up main application log file
	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)

	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	// Redirect log output to the file
	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime)
}
