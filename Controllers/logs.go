package Controllers

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"Puantaj/middleware"

	"github.com/gofiber/fiber/v2"
)

// LogStats summarizes request traffic per route
type LogStats struct {
	Path        string  `json:"path"`
	Method      string  `json:"method"`
	Count       int     `json:"count"`
	ErrorCount  int     `json:"error_count"`
	AvgLatency  float64 `json:"avg_latency_ms"`
	SuccessRate float64 `json:"success_rate"`
}

// readRequestLog parses the JSON-lines request log within a date range
func readRequestLog(dateFrom, dateTo time.Time) ([]middleware.LogData, error) {
	content, err := os.ReadFile("logs/requests.log")
	if err != nil {
		return nil, err
	}

	var logs []middleware.LogData
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var entry middleware.LogData
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			// Skip invalid JSON lines
			continue
		}
		if entry.Timestamp.After(dateFrom) && entry.Timestamp.Before(dateTo) {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

func logDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	dateFrom := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateTo := now

	if fromStr := c.Query("date_from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return dateFrom, dateTo, err
		}
		dateFrom = parsed
	}
	if toStr := c.Query("date_to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return dateFrom, dateTo, err
		}
		dateTo = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 59, 999999999, parsed.Location())
	}
	return dateFrom, dateTo, nil
}

// GetLogs retrieves request logs with date, path and status filtering
func GetLogs(c *fiber.Ctx) error {
	dateFrom, dateTo, err := logDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	logs, err := readRequestLog(dateFrom, dateTo)
	if err != nil {
		if os.IsNotExist(err) {
			return c.JSON([]middleware.LogData{})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read logs"})
	}

	pathFilter := strings.ToLower(c.Query("path"))
	statusFilter := c.Query("status")

	var filtered []middleware.LogData
	for _, entry := range logs {
		if pathFilter != "" && !strings.Contains(strings.ToLower(entry.Path), pathFilter) {
			continue
		}
		if statusFilter != "" {
			status, err := strconv.Atoi(statusFilter)
			if err == nil && entry.Status != status {
				continue
			}
		}
		filtered = append(filtered, entry)
	}
	if filtered == nil {
		filtered = []middleware.LogData{}
	}

	return c.JSON(filtered)
}

// GetLogStats aggregates request logs per method+path
func GetLogStats(c *fiber.Ctx) error {
	dateFrom, dateTo, err := logDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	logs, err := readRequestLog(dateFrom, dateTo)
	if err != nil {
		if os.IsNotExist(err) {
			return c.JSON([]LogStats{})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read logs"})
	}

	statsMap := make(map[string]*LogStats)
	latencyTotals := make(map[string]float64)
	for _, entry := range logs {
		key := entry.Method + " " + entry.Path
		stats, exists := statsMap[key]
		if !exists {
			stats = &LogStats{Path: entry.Path, Method: entry.Method}
			statsMap[key] = stats
		}
		stats.Count++
		if entry.Status >= 400 {
			stats.ErrorCount++
		}
		latencyTotals[key] += float64(entry.Latency.Milliseconds())
	}

	var result []LogStats
	for key, stats := range statsMap {
		if stats.Count > 0 {
			stats.AvgLatency = latencyTotals[key] / float64(stats.Count)
			stats.SuccessRate = float64(stats.Count-stats.ErrorCount) / float64(stats.Count) * 100
		}
		result = append(result, *stats)
	}
	if result == nil {
		result = []LogStats{}
	}

	return c.JSON(result)
}
